package lint

import (
	"fmt"
	"sort"
	"strings"
)

// OverlapError reports two replacements whose spans intersect. No fixed
// content is produced when this happens; the caller gets both colliding
// replacements to diagnose the misbehaving check.
type OverlapError struct {
	First  Replacement
	Second Replacement
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("%s overlaps with %s", e.First, e.Second)
}

// Fix synthesizes the rewritten file content from every replacement of every
// warning. Replacements are sorted by span start, ties broken by span end,
// and applied in a single left-to-right sweep. With no replacements the
// original content is returned unchanged.
func (l *Linter) Fix() (string, error) {
	var repls []Replacement
	for _, w := range l.Warnings {
		repls = append(repls, w.Replacements...)
	}

	sort.SliceStable(repls, func(i, j int) bool {
		if repls[i].Span.Start != repls[j].Span.Start {
			return repls[i].Span.Start < repls[j].Span.Start
		}
		return repls[i].Span.End < repls[j].Span.End
	})

	for i := 1; i < len(repls); i++ {
		if repls[i].Span.Start < repls[i-1].Span.End {
			return "", &OverlapError{First: repls[i-1], Second: repls[i]}
		}
	}

	var b strings.Builder
	cursor := 0
	for _, r := range repls {
		b.WriteString(l.Content[cursor:r.Span.Start])
		b.WriteString(r.NewText)
		cursor = r.Span.End
	}
	b.WriteString(l.Content[cursor:])

	return b.String(), nil
}
