package jsx

import sitter "github.com/smacker/go-tree-sitter"

// classAttribute finds the attribute named attr on an opening element.
// Matching is exact and case-sensitive.
func classAttribute(el *sitter.Node, src []byte, attr string) *sitter.Node {
	for i := 0; i < int(el.NamedChildCount()); i++ {
		child := el.NamedChild(i)
		if child.Type() != "jsx_attribute" {
			continue
		}

		name := child.NamedChild(0)
		if name != nil && name.Content(src) == attr {
			return child
		}
	}

	return nil
}

// attributeValue returns the printed value of a class attribute: the inner
// text of a string literal, or the original source text of the expression
// inside a {...} container. A bare attribute with no value reports false.
func attributeValue(attrNode *sitter.Node, src []byte) (string, bool) {
	if attrNode.NamedChildCount() < 2 {
		return "", false
	}

	value := attrNode.NamedChild(1)
	switch value.Type() {
	case "string":
		return stringInner(value, src), true

	case "jsx_expression":
		// Re-print only the expression subtree. Slicing the original bytes
		// keeps the fragment's spacing and quote style intact.
		for i := 0; i < int(value.NamedChildCount()); i++ {
			child := value.NamedChild(i)
			if child.Type() == "comment" {
				continue
			}
			return child.Content(src), true
		}
		return "", false // empty container: className={}

	default:
		return value.Content(src), true
	}
}

// stringInner returns the text of a string literal without its quotes.
func stringInner(s *sitter.Node, src []byte) string {
	text := s.Content(src)
	if len(text) >= 2 {
		return text[1 : len(text)-1]
	}
	return text
}
