package lint

import "sort"

// splitLines computes the ordered line spans of content. A line span excludes
// its terminator. Terminators are "\r\n" (consumed as one unit), lone "\r",
// and lone "\n"; each one ends the current line and starts a new one, so
// "\n\r" yields two breaks with an empty line in between. The final line
// always exists, even when it is empty.
func splitLines(content string) []Span {
	var lines []Span

	begin, end := 0, 0
	afterCR := false
	for i := 0; i < len(content); i++ {
		c := content[i]
		if afterCR {
			afterCR = false
			switch c {
			case '\r':
				lines = append(lines, Span{begin, end})
				end++
				begin = end
				afterCR = true
			case '\n':
				// second half of a "\r\n" pair
				end++
				begin = end
			default:
				end++
			}
			continue
		}
		switch c {
		case '\r':
			lines = append(lines, Span{begin, end})
			end++
			begin = end
			afterCR = true
		case '\n':
			lines = append(lines, Span{begin, end})
			end++
			begin = end
		default:
			end++
		}
	}

	return append(lines, Span{begin, end})
}

// Lines returns the line spans of the content, in order.
func (l *Linter) Lines() []Span {
	return l.lines
}

// LineForPos returns the index of the line containing pos. A line's span is
// treated as containing its own end, so a terminator position and the final
// end-of-content position both resolve to the line they close. The second
// byte of a "\r\n" pair belongs to no line; for it, and for any pos outside
// [0, len(content)], ok is false.
func (l *Linter) LineForPos(pos int) (int, bool) {
	i := sort.Search(len(l.lines), func(i int) bool {
		return l.lines[i].End >= pos
	})
	if i < len(l.lines) && l.lines[i].Start <= pos {
		return i, true
	}
	return -1, false
}
