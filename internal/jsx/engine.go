package jsx

import "context"

// Engine performs class-attribute reads and writes on JSX/TSX source text.
// The zero value targets the className attribute.
type Engine struct {
	// Attribute is the attribute name to inspect and mutate.
	// Empty means "className".
	Attribute string
}

func (e *Engine) attr() string {
	if e.Attribute == "" {
		return "className"
	}
	return e.Attribute
}

// GetClassExpression returns the current value of the class attribute on the
// index-th occurrence of tag in document order, counting from zero. A string
// literal is returned as its inner text; an expression value is returned as
// the expression's source text.
//
// A negative index means "no ordinal": the last occurrence in document order
// that carries the attribute wins, so only pass a negative index when the
// tag occurs once. The boolean is false when the tag, ordinal, or attribute
// is absent; the only error condition is source text that does not parse.
func (e *Engine) GetClassExpression(ctx context.Context, src []byte, tag string, index int) (string, bool, error) {
	tree, err := parse(ctx, src)
	if err != nil {
		return "", false, err
	}
	defer tree.Close()

	value, found := "", false
	for _, el := range locate(tree.RootNode(), src, tag, index) {
		attrNode := classAttribute(el, src, e.attr())
		if attrNode == nil {
			continue
		}
		if v, ok := attributeValue(attrNode, src); ok {
			value, found = v, true
		}
	}

	return value, found, nil
}

// UpdateClass writes newValue as the class attribute of the index-th
// occurrence of tag and returns the full rewritten source. An existing
// attribute has its value replaced in place; a missing one is appended after
// the element's last attribute. Bytes outside the mutated attribute are
// preserved exactly.
//
// A negative index rewrites every occurrence of the tag. When no occurrence
// matches, the input is returned unchanged; that is not an error. The only
// error condition is source text that does not parse.
func (e *Engine) UpdateClass(ctx context.Context, src []byte, tag, newValue string, index int) ([]byte, error) {
	tree, err := parse(ctx, src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	matches := locate(tree.RootNode(), src, tag, index)
	if len(matches) == 0 {
		return src, nil
	}

	edits := make([]edit, 0, len(matches))
	for _, el := range matches {
		edits = append(edits, e.attributeEdit(ctx, el, src, newValue))
	}

	return splice(src, edits), nil
}

// defaultEngine backs the package-level functions.
var defaultEngine Engine

// GetClassExpression reads the className attribute using a default Engine.
func GetClassExpression(ctx context.Context, src []byte, tag string, index int) (string, bool, error) {
	return defaultEngine.GetClassExpression(ctx, src, tag, index)
}

// UpdateClass writes the className attribute using a default Engine.
func UpdateClass(ctx context.Context, src []byte, tag, newValue string, index int) ([]byte, error) {
	return defaultEngine.UpdateClass(ctx, src, tag, newValue, index)
}
