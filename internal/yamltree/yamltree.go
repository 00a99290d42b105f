// Package yamltree exposes a composed YAML document as a read-only node
// tree with byte spans into the original content, suitable for checks that
// need to anchor warnings and replacements at exact positions.
package yamltree

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/preflightci/preflight/internal/lint"
)

// Kind discriminates the node variants exposed to checks.
type Kind int

const (
	Mapping Kind = iota
	Sequence
	Scalar
	Null
)

// Pair is one key/value entry of a mapping node, in document order.
type Pair struct {
	Key   *Node
	Value *Node
}

// Node is a read-only view of one node of a composed document.
type Node struct {
	kind  Kind
	value string
	span  lint.Span
	items []*Node
	pairs []Pair
}

func (n *Node) Kind() Kind { return n.kind }

// Value returns the decoded scalar value. It is empty for collections.
func (n *Node) Value() string { return n.value }

// Span returns the node's byte range in the original content. Spans are
// exact for single-line scalars; block scalars are clamped to their first
// line.
func (n *Node) Span() lint.Span { return n.span }

// Items returns a sequence node's elements.
func (n *Node) Items() []*Node { return n.items }

// Pairs returns a mapping node's entries.
func (n *Node) Pairs() []Pair { return n.pairs }

// Compose parses the linter's content and returns the document root. An
// empty document yields a nil root.
func Compose(l *lint.Linter) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(l.Content), &doc); err != nil {
		return nil, fmt.Errorf("composing %s: %w", l.Filename, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	b := &builder{content: l.Content, lines: l.Lines()}
	return b.build(doc.Content[0]), nil
}

type builder struct {
	content string
	lines   []lint.Span
}

func (b *builder) build(n *yaml.Node) *Node {
	if n.Kind == yaml.AliasNode {
		return b.build(n.Alias)
	}

	start := b.offset(n.Line, n.Column)

	switch n.Kind {
	case yaml.MappingNode:
		node := &Node{kind: Mapping, span: lint.Span{Start: start, End: start}}
		for i := 0; i+1 < len(n.Content); i += 2 {
			pair := Pair{Key: b.build(n.Content[i]), Value: b.build(n.Content[i+1])}
			node.pairs = append(node.pairs, pair)
			node.span.End = pair.Value.span.End
		}
		return node

	case yaml.SequenceNode:
		node := &Node{kind: Sequence, span: lint.Span{Start: start, End: start}}
		for _, c := range n.Content {
			item := b.build(c)
			node.items = append(node.items, item)
			node.span.End = item.span.End
		}
		return node

	default:
		kind := Scalar
		if n.Tag == "!!null" {
			kind = Null
		}
		return &Node{
			kind:  kind,
			value: n.Value,
			span:  lint.Span{Start: start, End: start + b.scalarWidth(n, start)},
		}
	}
}

// scalarWidth computes how many bytes the scalar occupies in the source.
// Plain single-line scalars and quoted scalars closed on their own line are
// exact; block scalars and anything spanning lines are clamped to the end of
// the first line.
func (b *builder) scalarWidth(n *yaml.Node, start int) int {
	switch n.Style {
	case yaml.SingleQuotedStyle:
		return b.quotedWidth(start, '\'')
	case yaml.DoubleQuotedStyle:
		return b.quotedWidth(start, '"')
	case yaml.LiteralStyle, yaml.FoldedStyle:
		return b.restOfLine(start)
	}
	if strings.ContainsAny(n.Value, "\r\n") {
		return b.restOfLine(start)
	}
	return len(n.Value)
}

// quotedWidth scans the source from the opening quote at start to the
// matching closing quote, honoring backslash escapes in double-quoted
// scalars and doubled quotes in single-quoted ones.
func (b *builder) quotedWidth(start int, quote byte) int {
	i, ok := b.lineForOffset(start)
	if !ok {
		return 0
	}
	end := b.lines[i].End

	for pos := start + 1; pos < end; pos++ {
		c := b.content[pos]
		switch {
		case quote == '"' && c == '\\':
			pos++
		case c == quote:
			if quote == '\'' && pos+1 < end && b.content[pos+1] == '\'' {
				pos++
				continue
			}
			return pos + 1 - start
		}
	}
	return end - start
}

func (b *builder) restOfLine(start int) int {
	if i, ok := b.lineForOffset(start); ok {
		return b.lines[i].End - start
	}
	return 0
}

func (b *builder) lineForOffset(off int) (int, bool) {
	for i, ls := range b.lines {
		if ls.Start <= off && off <= ls.End {
			return i, true
		}
	}
	return -1, false
}

// offset converts the parser's 1-based line/column (columns count runes)
// into a byte offset.
func (b *builder) offset(line, col int) int {
	if line < 1 || line > len(b.lines) {
		return 0
	}
	ls := b.lines[line-1]
	text := b.content[ls.Start:ls.End]

	off := ls.Start
	for i := 1; i < col && len(text) > 0; i++ {
		_, size := utf8.DecodeRuneInString(text)
		text = text[size:]
		off += size
	}
	return off
}
