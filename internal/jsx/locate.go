package jsx

import sitter "github.com/smacker/go-tree-sitter"

// walk visits n and its descendants depth-first in document order. The visit
// callback returns false to stop the whole traversal.
func walk(n *sitter.Node, visit func(*sitter.Node) bool) bool {
	if !visit(n) {
		return false
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		if !walk(n.Child(i), visit) {
			return false
		}
	}

	return true
}

// locate returns the opening elements (jsx_opening_element or
// jsx_self_closing_element, never closing tags or text) whose tag name
// equals tag, in document order.
//
// A non-negative index narrows the result to at most the occurrence whose
// zero-based position equals index; skipped occurrences are still counted so
// the ordinal math stays correct. A negative index returns every occurrence.
func locate(root *sitter.Node, src []byte, tag string, index int) []*sitter.Node {
	var matches []*sitter.Node
	count := 0

	walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "jsx_opening_element", "jsx_self_closing_element":
		default:
			return true
		}

		name := n.ChildByFieldName("name")
		if name == nil || name.Content(src) != tag {
			return true
		}

		if index < 0 {
			matches = append(matches, n)
		} else if count == index {
			matches = append(matches, n)
			return false
		}
		count++
		return true
	})

	return matches
}
