package jsx

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
)

// parse parses src with the TSX grammar, which covers JSX markup, TypeScript
// type annotations, and decorators. The caller owns the returned tree and
// must Close it.
//
// Tree-sitter always produces a tree; a root containing error or missing
// nodes means the file is broken and mutating it risks corrupting it, so
// that is reported as a hard failure here.
func parse(ctx context.Context, src []byte) (*sitter.Tree, error) {
	p := sitter.NewParser()
	p.SetLanguage(tsx.GetLanguage())

	tree, err := p.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	root := tree.RootNode()
	if root.HasError() {
		n := firstErrorNode(root)
		point := n.StartPoint()
		tree.Close()
		return nil, fmt.Errorf("%w at %d:%d", ErrParse, point.Row+1, point.Column+1)
	}

	return tree, nil
}

// firstErrorNode descends toward the first ERROR or missing node in document
// order. The caller has already checked that n.HasError().
func firstErrorNode(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.HasError() || child.IsMissing() {
			return firstErrorNode(child)
		}
	}

	return n
}

// exprShape classifies a replacement value by what it parses as.
type exprShape int

const (
	exprOpaque  exprShape = iota // does not parse as a single expression
	exprTernary                  // condition ? a : b
	exprString                   // quoted string literal
	exprOther                    // any other expression
)

// tryParseExpression parses text as a standalone expression and reports its
// shape. For exprString the second result is the literal's inner text with
// the quotes stripped.
func tryParseExpression(ctx context.Context, text string) (exprShape, string) {
	p := sitter.NewParser()
	p.SetLanguage(tsx.GetLanguage())

	tree, err := p.ParseCtx(ctx, nil, []byte(text))
	if err != nil {
		return exprOpaque, ""
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() || root.NamedChildCount() != 1 {
		return exprOpaque, ""
	}

	stmt := root.NamedChild(0)
	if stmt.Type() != "expression_statement" || stmt.NamedChildCount() != 1 {
		return exprOpaque, ""
	}

	expr := stmt.NamedChild(0)
	switch expr.Type() {
	case "ternary_expression":
		return exprTernary, ""
	case "string":
		return exprString, stringInner(expr, []byte(text))
	default:
		return exprOther, ""
	}
}
