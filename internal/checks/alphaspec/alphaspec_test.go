package alphaspec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preflightci/preflight/internal/lint"
	"github.com/preflightci/preflight/internal/runner"
	"github.com/preflightci/preflight/internal/yamltree"
)

func TestCheckPackageSpec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		content     string
		mode        string
		message     string
		replacement string
	}{
		{
			name:        "add alpha in development",
			content:     "cudf",
			mode:        ModeDevelopment,
			message:     "add alpha spec for RAPIDS package cudf",
			replacement: "cudf>=0.0.0a0",
		},
		{
			name:    "no alpha wanted in release",
			content: "cudf",
			mode:    ModeRelease,
		},
		{
			name:    "alpha already present",
			content: "cudf>=0.0.0a0",
			mode:    ModeDevelopment,
		},
		{
			name:        "remove alpha in release",
			content:     "cudf>=0.0.0a0",
			mode:        ModeRelease,
			message:     "remove alpha spec for RAPIDS package cudf",
			replacement: "cudf",
		},
		{
			name:        "cuda suffixed package",
			content:     "cudf-cu12",
			mode:        ModeDevelopment,
			message:     "add alpha spec for RAPIDS package cudf-cu12",
			replacement: "cudf-cu12>=0.0.0a0",
		},
		{
			name:        "merges with existing specifiers",
			content:     "cuml>=24.04,<=24.06",
			mode:        ModeDevelopment,
			message:     "add alpha spec for RAPIDS package cuml",
			replacement: "cuml<=24.06,>=0.0.0a0,>=24.04",
		},
		{
			name:        "removes alpha among specifiers",
			content:     "cuml>=24.04,<=24.06,>=0.0.0a0",
			mode:        ModeRelease,
			message:     "remove alpha spec for RAPIDS package cuml",
			replacement: "cuml<=24.06,>=24.04",
		},
		{
			name:        "extras stay attached to the name",
			content:     "cudf[all]>=1.0",
			mode:        ModeDevelopment,
			message:     "add alpha spec for RAPIDS package cudf",
			replacement: "cudf[all]>=0.0.0a0,>=1.0",
		},
		{
			name:    "not a RAPIDS package",
			content: "packaging",
			mode:    ModeDevelopment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := lint.New("dependencies.yaml", tt.content)
			node, err := yamltree.Compose(l)
			require.NoError(t, err)

			checkPackageSpec(l, &runner.Args{Mode: tt.mode}, node)

			if tt.replacement == "" {
				assert.Empty(t, l.Warnings)
				return
			}

			expected := lint.New("dependencies.yaml", tt.content)
			expected.AddWarning(lint.Span{Start: 0, End: len(tt.content)}, tt.message).
				AddReplacement(lint.Span{Start: 0, End: len(tt.content)}, tt.replacement)
			assert.Equal(t, expected.Warnings, l.Warnings)
		})
	}
}

const depsYAML = `dependencies:
  run:
    common:
      - output_types: [pyproject, requirements]
        packages:
          - cudf
          - packaging
    specific:
      - output_types: [requirements]
        matrices:
          - matrix:
              cuda: "12.*"
            packages:
              - rmm
`

func TestCheckWalksDependencyTree(t *testing.T) {
	t.Parallel()

	l := lint.New("dependencies.yaml", depsYAML)
	Check(l, &runner.Args{Mode: ModeDevelopment})

	require.Len(t, l.Warnings, 2)

	cudf := strings.Index(depsYAML, "cudf")
	assert.Equal(t, lint.Span{Start: cudf, End: cudf + 4}, l.Warnings[0].Span)
	assert.Equal(t, "add alpha spec for RAPIDS package cudf", l.Warnings[0].Message)
	require.Len(t, l.Warnings[0].Replacements, 1)
	assert.Equal(t, "cudf>=0.0.0a0", l.Warnings[0].Replacements[0].NewText)

	rmm := strings.Index(depsYAML, "rmm")
	assert.Equal(t, lint.Span{Start: rmm, End: rmm + 3}, l.Warnings[1].Span)
	assert.Equal(t, "add alpha spec for RAPIDS package rmm", l.Warnings[1].Message)
}

func TestCheckFixRoundTrip(t *testing.T) {
	t.Parallel()

	l := lint.New("dependencies.yaml", depsYAML)
	Check(l, &runner.Args{Mode: ModeDevelopment})

	fixed, err := l.Fix()
	require.NoError(t, err)
	assert.Contains(t, fixed, "- cudf>=0.0.0a0\n")
	assert.Contains(t, fixed, "- rmm>=0.0.0a0\n")
	assert.Contains(t, fixed, "- packaging\n")
}

func TestCheckReleaseMode(t *testing.T) {
	t.Parallel()

	content := strings.ReplaceAll(depsYAML, "- cudf", "- cudf>=0.0.0a0")
	l := lint.New("dependencies.yaml", content)
	Check(l, &runner.Args{Mode: ModeRelease})

	require.Len(t, l.Warnings, 1)
	assert.Equal(t, "remove alpha spec for RAPIDS package cudf", l.Warnings[0].Message)
	require.Len(t, l.Warnings[0].Replacements, 1)
	assert.Equal(t, "cudf", l.Warnings[0].Replacements[0].NewText)
}

func TestCheckPackagesOverride(t *testing.T) {
	t.Parallel()

	l := lint.New("dependencies.yaml", "packaging")
	node, err := yamltree.Compose(l)
	require.NoError(t, err)

	args := &runner.Args{Mode: ModeDevelopment, Packages: []string{"packaging"}}
	checkPackageSpec(l, args, node)

	require.Len(t, l.Warnings, 1)
	assert.Equal(t, "add alpha spec for RAPIDS package packaging", l.Warnings[0].Message)
}

func TestCheckEmptyAndNullDocuments(t *testing.T) {
	t.Parallel()

	for _, content := range []string{"", "null", "- a\n- b\n"} {
		l := lint.New("dependencies.yaml", content)
		Check(l, &runner.Args{Mode: ModeDevelopment})
		assert.Empty(t, l.Warnings, "content %q", content)
	}
}
