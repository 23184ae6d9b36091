package jsx

import (
	"context"
	"sort"
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// edit is a byte-range replacement against the original source text.
type edit struct {
	start, end uint32
	text       string
}

// splice applies edits to src, highest offset first so earlier offsets stay
// valid. Bytes outside the edited ranges are untouched.
func splice(src []byte, edits []edit) []byte {
	sort.Slice(edits, func(i, j int) bool { return edits[i].start > edits[j].start })

	out := append([]byte(nil), src...)
	for _, e := range edits {
		var b []byte
		b = append(b, out[:e.start]...)
		b = append(b, e.text...)
		b = append(b, out[e.end:]...)
		out = b
	}

	return out
}

// attributeEdit produces the single edit that writes newValue onto el's
// class attribute: replacing the existing value in place, rewriting a bare
// attribute, or appending a new attribute after the last one.
func (e *Engine) attributeEdit(ctx context.Context, el *sitter.Node, src []byte, newValue string) edit {
	attrNode := classAttribute(el, src, e.attr())
	if attrNode == nil {
		pos := insertOffset(el)
		return edit{start: pos, end: pos, text: " " + e.attr() + "=" + renderValue(ctx, newValue, '"')}
	}

	if attrNode.NamedChildCount() < 2 {
		// Bare attribute with no value; rewrite the whole attribute.
		return edit{
			start: attrNode.StartByte(),
			end:   attrNode.EndByte(),
			text:  e.attr() + "=" + renderValue(ctx, newValue, '"'),
		}
	}

	value := attrNode.NamedChild(1)
	quote := byte('"')
	if value.Type() == "string" && value.EndByte() > value.StartByte() {
		quote = src[value.StartByte()]
	}

	return edit{start: value.StartByte(), end: value.EndByte(), text: renderValue(ctx, newValue, quote)}
}

// insertOffset returns the byte offset just past the last attribute (or the
// tag name when there are none), before the closing > or />.
func insertOffset(el *sitter.Node) uint32 {
	pos := el.StartByte() + 1
	for i := 0; i < int(el.NamedChildCount()); i++ {
		if end := el.NamedChild(i).EndByte(); end > pos {
			pos = end
		}
	}
	return pos
}

// renderValue decides how newValue is written back:
//
//   - a ternary expression keeps its shape inside a {...} container,
//   - a quoted string literal becomes a plain literal attribute,
//   - anything else is opaque text, wrapped as a plain literal.
//
// This is what lets a caller hand over either "p-2 text-sm" or
// "cond ? 'a' : 'b'" as a bare string and get the right attribute node.
func renderValue(ctx context.Context, newValue string, quote byte) string {
	shape, inner := tryParseExpression(ctx, newValue)
	switch shape {
	case exprTernary:
		return "{" + strings.TrimSpace(newValue) + "}"
	case exprString:
		return quoteLiteral(inner, quote)
	default:
		return quoteLiteral(newValue, quote)
	}
}

// quoteLiteral renders text as a JSX string attribute value, preferring the
// given quote character. JSX string literals have no escape sequences, so
// text containing both quote kinds is emitted as an expression container
// holding an escaped JS string instead.
func quoteLiteral(text string, preferred byte) string {
	hasDouble := strings.ContainsRune(text, '"')
	hasSingle := strings.ContainsRune(text, '\'')

	switch {
	case hasDouble && hasSingle:
		return "{" + strconv.Quote(text) + "}"
	case hasDouble:
		return "'" + text + "'"
	case hasSingle:
		return `"` + text + `"`
	}

	if preferred == '\'' {
		return "'" + text + "'"
	}
	return `"` + text + `"`
}
