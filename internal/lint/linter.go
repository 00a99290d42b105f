package lint

import "fmt"

// Span is a half-open [Start, End) byte range into a file's content.
// Start == End denotes an insertion point.
type Span struct {
	Start int
	End   int
}

// Overlaps reports whether two spans, treated as half-open intervals, have a
// non-empty intersection. An empty span never overlaps anything, not even an
// identical empty span at the same position.
func (s Span) Overlaps(o Span) bool {
	return max(s.Start, o.Start) < min(s.End, o.End)
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Replacement proposes new text for a span of the original content.
type Replacement struct {
	Span    Span
	NewText string
}

func (r Replacement) String() string {
	return fmt.Sprintf("Replacement(pos=(%d, %d), newtext=%q)", r.Span.Start, r.Span.End, r.NewText)
}

// Warning is a single diagnostic anchored at a span, with zero or more
// suggested replacements. A warning with no replacements is a bare
// diagnostic.
type Warning struct {
	Span         Span
	Message      string
	Replacements []Replacement
}

// AddReplacement attaches a suggested fix to the warning and returns the
// warning so that calls can be chained.
func (w *Warning) AddReplacement(span Span, newText string) *Warning {
	w.Replacements = append(w.Replacements, Replacement{Span: span, NewText: newText})
	return w
}

// Linter accumulates warnings for a single file. It owns the file's content
// and the line index derived from it, and lives for exactly one file's
// processing. Warnings are kept in the order they were added.
type Linter struct {
	Filename string
	Content  string
	Warnings []*Warning

	lines []Span
}

// New builds a Linter over content. The line index is computed once here and
// never changes afterwards.
func New(filename, content string) *Linter {
	return &Linter{
		Filename: filename,
		Content:  content,
		lines:    splitLines(content),
	}
}

// AddWarning records a diagnostic for span and returns it for chaining
// replacements.
func (l *Linter) AddWarning(span Span, msg string) *Warning {
	w := &Warning{Span: span, Message: msg}
	l.Warnings = append(l.Warnings, w)
	return w
}
