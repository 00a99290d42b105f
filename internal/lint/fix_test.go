package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixIdentity(t *testing.T) {
	t.Parallel()

	l := New("test.txt", "Hello world!")

	fixed, err := l.Fix()
	require.NoError(t, err)
	assert.Equal(t, "Hello world!", fixed)

	// a warning without replacements changes nothing
	l.AddWarning(Span{0, 0}, "no fix")
	fixed, err = l.Fix()
	require.NoError(t, err)
	assert.Equal(t, "Hello world!", fixed)
}

func TestFixCombinesReplacements(t *testing.T) {
	t.Parallel()

	l := New("test.txt", "Hello world!")
	l.AddWarning(Span{5, 5}, "use punctuation").AddReplacement(Span{5, 5}, ",")
	l.AddWarning(Span{0, 5}, "say good bye instead").AddReplacement(Span{0, 5}, "Good bye")
	l.AddWarning(Span{11, 12}, "don't shout").AddReplacement(Span{11, 12}, "")
	l.AddWarning(Span{6, 11}, "no-op replacement").AddReplacement(Span{11, 11}, "")

	fixed, err := l.Fix()
	require.NoError(t, err)
	assert.Equal(t, "Good bye, world", fixed)
}

func TestFixOrderIndependent(t *testing.T) {
	t.Parallel()

	// same replacement set in the reverse registration order
	l := New("test.txt", "Hello world!")
	l.AddWarning(Span{6, 11}, "no-op replacement").AddReplacement(Span{11, 11}, "")
	l.AddWarning(Span{11, 12}, "don't shout").AddReplacement(Span{11, 12}, "")
	l.AddWarning(Span{0, 5}, "say good bye instead").AddReplacement(Span{0, 5}, "Good bye")
	l.AddWarning(Span{5, 5}, "use punctuation").AddReplacement(Span{5, 5}, ",")

	fixed, err := l.Fix()
	require.NoError(t, err)
	assert.Equal(t, "Good bye, world", fixed)
}

func TestFixOverlap(t *testing.T) {
	t.Parallel()

	l := New("test.txt", "Hello world!")
	l.AddWarning(Span{11, 12}, "don't shout").AddReplacement(Span{11, 12}, "")
	l.AddWarning(Span{11, 12}, "don't shout").AddReplacement(Span{11, 12}, ".")

	_, err := l.Fix()
	require.Error(t, err)

	var overlap *OverlapError
	require.ErrorAs(t, err, &overlap)
	assert.Equal(t, Replacement{Span{11, 12}, ""}, overlap.First)
	assert.Equal(t, Replacement{Span{11, 12}, "."}, overlap.Second)
	assert.Equal(t,
		`Replacement(pos=(11, 12), newtext="") overlaps with Replacement(pos=(11, 12), newtext=".")`,
		err.Error())
}

func TestFixInsertionNeverConflicts(t *testing.T) {
	t.Parallel()

	// zero-length edits at a replacement's boundary are fine
	l := New("test.txt", "Hello world!")
	l.AddWarning(Span{0, 5}, "w").AddReplacement(Span{0, 5}, "Howdy")
	l.AddWarning(Span{5, 5}, "w").AddReplacement(Span{5, 5}, " there")
	l.AddWarning(Span{5, 12}, "w").AddReplacement(Span{5, 12}, "")

	fixed, err := l.Fix()
	require.NoError(t, err)
	assert.Equal(t, "Howdy there", fixed)
}

func TestSpanOverlaps(t *testing.T) {
	t.Parallel()

	assert.True(t, Span{0, 5}.Overlaps(Span{4, 6}))
	assert.True(t, Span{4, 6}.Overlaps(Span{0, 5}))
	assert.True(t, Span{0, 5}.Overlaps(Span{0, 5}))
	assert.False(t, Span{0, 5}.Overlaps(Span{5, 6}))
	assert.False(t, Span{5, 5}.Overlaps(Span{5, 5}))
	assert.False(t, Span{5, 5}.Overlaps(Span{0, 12}))
}
