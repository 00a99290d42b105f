package lint

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// DefaultMaxFixWidth is the widest replacement text shown inline before the
// renderer truncates it and switches to the "too long to display" notes.
const DefaultMaxFixWidth = 60

var (
	fileStyle = color.New(color.FgCyan, color.Bold)
	warnStyle = color.New(color.FgYellow, color.Bold)
	noteStyle = color.New(color.FgGreen, color.Bold)
	markStyle = color.New(color.FgRed, color.Bold)
)

// Renderer turns a Linter's warnings into human-readable, line-anchored
// report entries.
type Renderer struct {
	out         io.Writer
	maxFixWidth int
}

// NewRenderer returns a Renderer writing to out. maxFixWidth <= 0 selects
// DefaultMaxFixWidth.
func NewRenderer(out io.Writer, maxFixWidth int) *Renderer {
	if maxFixWidth <= 0 {
		maxFixWidth = DefaultMaxFixWidth
	}
	return &Renderer{out: out, maxFixWidth: maxFixWidth}
}

// Render writes one entry per warning followed by one entry per attached
// replacement, in stored order, each separated by a blank line. applied
// selects the note wording used once fixes have been written back.
func (r *Renderer) Render(l *Linter, applied bool) {
	for _, w := range l.Warnings {
		r.renderEntry(l, w.Span, "")
		fmt.Fprintf(r.out, "%s %s\n\n", warnStyle.Sprint("warning:"), w.Message)

		for _, rep := range w.Replacements {
			display, long := r.fixDisplay(rep.NewText)
			r.renderEntry(l, rep.Span, display)
			fmt.Fprintf(r.out, "%s %s\n\n", noteStyle.Sprint("note:"), fixNote(long, applied))
		}
	}
}

// fixNote selects the note wording from the two independent conditions: is
// the replacement too long to display, and are fixes being written back.
func fixNote(long, applied bool) string {
	switch {
	case long && applied:
		return "suggested fix applied but is too long to display"
	case long:
		return "suggested fix is too long to display, use --fix to apply it"
	case applied:
		return "suggested fix applied"
	default:
		return "suggested fix"
	}
}

// fixDisplay returns the single-line display form of a replacement text and
// whether the text was too long to show in full. Truncated text carries a
// trailing ellipsis.
func (r *Renderer) fixDisplay(text string) (string, bool) {
	long := false
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		text = text[:i]
		long = true
	}
	if runewidth.StringWidth(text) > r.maxFixWidth {
		text = runewidth.Truncate(text, r.maxFixWidth, "")
		long = true
	}
	if long {
		text += "..."
	}
	return text, long
}

// renderEntry prints the header naming the file and 1-based line, the
// verbatim source line containing the span's start, and an underline aligned
// to the span's columns. extra, when not empty, goes to the right of the
// underline.
func (r *Renderer) renderEntry(l *Linter, span Span, extra string) {
	lineIdx, ok := l.LineForPos(span.Start)
	if !ok {
		fmt.Fprintf(r.out, "In file %s:\n", fileStyle.Sprint(l.Filename))
		return
	}
	line := l.lines[lineIdx]

	fmt.Fprintf(r.out, "In file %s:\n", fileStyle.Sprintf("%s:%d", l.Filename, lineIdx+1))
	fmt.Fprintln(r.out, l.Content[line.Start:line.End])

	pad := strings.Repeat(" ", runewidth.StringWidth(l.Content[line.Start:span.Start]))
	fmt.Fprint(r.out, pad)
	fmt.Fprint(r.out, markStyle.Sprint(underline(l.Content, span, line)))
	if extra != "" {
		fmt.Fprint(r.out, " "+extra)
	}
	fmt.Fprintln(r.out)
}

// underline builds the marker run for span on line: "^" for an insertion
// point, a "~" run for a span confined to the line, and a trailing "|" when
// the span continues past the line's end.
func underline(content string, span, line Span) string {
	if span.Start == span.End {
		return "^"
	}

	right := span.End
	if right > line.End {
		right = line.End
	}
	width := runewidth.StringWidth(content[span.Start:right])

	if span.End > line.End {
		if width < 1 {
			width = 1
		}
		return strings.Repeat("~", width-1) + "|"
	}
	return strings.Repeat("~", width)
}
