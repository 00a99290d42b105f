package copyright

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preflightci/preflight/internal/lint"
	"github.com/preflightci/preflight/internal/runner"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	args := &runner.Args{CurrentYear: 2026}

	t.Run("stale single year", func(t *testing.T) {
		t.Parallel()

		content := "# Copyright (c) 2023, NVIDIA CORPORATION.\necho hello\n"
		l := lint.New("build.sh", content)
		Check(l, args)

		require.Len(t, l.Warnings, 1)
		w := l.Warnings[0]

		years := strings.Index(content, "2023")
		assert.Equal(t, lint.Span{Start: years, End: years + 4}, w.Span)
		assert.Equal(t, "copyright is out of date", w.Message)

		require.Len(t, w.Replacements, 1)
		full := strings.Index(content, "Copyright")
		end := strings.Index(content, "CORPORATION") + len("CORPORATION")
		assert.Equal(t, lint.Span{Start: full, End: end}, w.Replacements[0].Span)
		assert.Equal(t, "Copyright (c) 2023-2026, NVIDIA CORPORATION", w.Replacements[0].NewText)
	})

	t.Run("stale year range", func(t *testing.T) {
		t.Parallel()

		content := "# Copyright (c) 2020-2023, NVIDIA CORPORATION.\n"
		l := lint.New("build.sh", content)
		Check(l, args)

		require.Len(t, l.Warnings, 1)
		w := l.Warnings[0]

		years := strings.Index(content, "2020-2023")
		assert.Equal(t, lint.Span{Start: years, End: years + 9}, w.Span)
		require.Len(t, w.Replacements, 1)
		assert.Equal(t, "Copyright (c) 2020-2026, NVIDIA CORPORATION", w.Replacements[0].NewText)
	})

	t.Run("up to date", func(t *testing.T) {
		t.Parallel()

		l := lint.New("build.sh", "# Copyright (c) 2020-2026, NVIDIA CORPORATION.\n")
		Check(l, args)
		assert.Empty(t, l.Warnings)
	})

	t.Run("lowercase corporation", func(t *testing.T) {
		t.Parallel()

		l := lint.New("build.sh", "# Copyright 2023, NVIDIA Corporation\n")
		Check(l, args)

		require.Len(t, l.Warnings, 1)
		require.Len(t, l.Warnings[0].Replacements, 1)
		assert.Equal(t, "Copyright (c) 2023-2026, NVIDIA CORPORATION",
			l.Warnings[0].Replacements[0].NewText)
	})

	t.Run("missing notice", func(t *testing.T) {
		t.Parallel()

		l := lint.New("build.sh", "echo hello\n")
		Check(l, args)

		require.Len(t, l.Warnings, 1)
		assert.Equal(t, lint.Span{}, l.Warnings[0].Span)
		assert.Equal(t, "no copyright notice found", l.Warnings[0].Message)
		assert.Empty(t, l.Warnings[0].Replacements)
	})

	t.Run("multiple notices", func(t *testing.T) {
		t.Parallel()

		content := "# Copyright (c) 2023, NVIDIA CORPORATION\n" +
			"# Copyright (c) 2026, NVIDIA CORPORATION\n"
		l := lint.New("build.sh", content)
		Check(l, args)

		require.Len(t, l.Warnings, 1)
		assert.Equal(t, "copyright is out of date", l.Warnings[0].Message)
	})
}

func TestCheckFix(t *testing.T) {
	t.Parallel()

	content := "# Copyright (c) 2020-2023, NVIDIA CORPORATION.\necho hello\n"
	l := lint.New("build.sh", content)
	Check(l, &runner.Args{CurrentYear: 2026})

	fixed, err := l.Fix()
	require.NoError(t, err)
	assert.Equal(t, "# Copyright (c) 2020-2026, NVIDIA CORPORATION.\necho hello\n", fixed)
}
