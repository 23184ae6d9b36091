package jsx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_TypeAnnotationsAndDecorators(t *testing.T) {
	src := []byte(`@Component({ selector: 'card' })
export class Card {
  label: string = 'hi';
}

interface Props {
  active?: boolean;
}

export const View = ({ active }: Props) => <div className="card">{active}</div>;
`)
	tree, err := parse(context.Background(), src)
	require.NoError(t, err)
	tree.Close()
}

func TestParse_BrokenSourceFailsWithPosition(t *testing.T) {
	src := []byte("const x = <div\n")
	_, err := parse(context.Background(), src)
	require.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), "at ")
}

func TestTryParseExpression_Ternary(t *testing.T) {
	shape, _ := tryParseExpression(context.Background(), "isActive ? 'a' : 'b'")
	assert.Equal(t, exprTernary, shape)
}

func TestTryParseExpression_StringLiteral(t *testing.T) {
	shape, inner := tryParseExpression(context.Background(), "'a b c'")
	assert.Equal(t, exprString, shape)
	assert.Equal(t, "a b c", inner)

	shape, inner = tryParseExpression(context.Background(), `"x y"`)
	assert.Equal(t, exprString, shape)
	assert.Equal(t, "x y", inner)
}

func TestTryParseExpression_PlainTokensAreNotStrings(t *testing.T) {
	// Class lists are opaque text: either they fail to parse outright or
	// they parse as some non-string expression. Both take the literal path.
	for _, text := range []string{"p-2 text-sm", "bg-red-500", "", "flex items-center"} {
		shape, _ := tryParseExpression(context.Background(), text)
		assert.NotEqual(t, exprTernary, shape, text)
		assert.NotEqual(t, exprString, shape, text)
	}
}
