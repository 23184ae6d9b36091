package jsx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteLiteral(t *testing.T) {
	assert.Equal(t, `"a b"`, quoteLiteral("a b", '"'))
	assert.Equal(t, `'a b'`, quoteLiteral("a b", '\''))
	assert.Equal(t, `'say "hi"'`, quoteLiteral(`say "hi"`, '"'))
	assert.Equal(t, `"it's"`, quoteLiteral("it's", '\''))
}

func TestQuoteLiteral_BothQuotesEscapesIntoContainer(t *testing.T) {
	got := quoteLiteral(`both " and '`, '"')
	assert.Equal(t, `{"both \" and '"}`, got)
}

func TestRenderValue(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, `{on ? 'a' : 'b'}`, renderValue(ctx, "on ? 'a' : 'b'", '"'))
	assert.Equal(t, `"a b"`, renderValue(ctx, "'a b'", '"'))
	assert.Equal(t, `"p-2 text-sm"`, renderValue(ctx, "p-2 text-sm", '"'))
}

func TestSplice_AppliesHighestOffsetFirst(t *testing.T) {
	src := []byte("abcdef")
	out := splice(src, []edit{
		{start: 1, end: 2, text: "BB"},
		{start: 4, end: 5, text: ""},
	})
	assert.Equal(t, "aBBcdf", string(out))
	assert.Equal(t, "abcdef", string(src), "input must not be mutated")
}

func TestUpdateClass_RewritesBareAttribute(t *testing.T) {
	src := []byte(`const x = <Chip className />;
`)
	out, err := UpdateClass(context.Background(), src, "Chip", "p-1", 0)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<Chip className="p-1" />`)
}

func TestUpdateClass_AttributePositionPreserved(t *testing.T) {
	src := []byte(`const x = <Chip className="old" id="c" />;
`)
	out, err := UpdateClass(context.Background(), src, "Chip", "new", 0)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<Chip className="new" id="c" />`)
}
