package cmd

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testComponent = `export const App = () => (
  <div>
    <Button className="btn btn-primary">Go</Button>
    <Button className={busy ? 'wait' : 'ready'}>Again</Button>
    <Span>text</Span>
  </div>
);
`

func writeComponent(t *testing.T) {
	t.Helper()
	require.NoError(t, os.WriteFile("App.tsx", []byte(testComponent), 0o644))
}

func runGet(t *testing.T, file, tag, index string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunGet(context.Background(), &buf, file, tag, index))
	return buf.String()
}

func TestGet_LiteralValue(t *testing.T) {
	inTempDir(t)
	writeComponent(t)

	out := runGet(t, "App.tsx", "Button", "0")
	assert.Contains(t, out, "btn btn-primary")
}

func TestGet_ExpressionValue(t *testing.T) {
	inTempDir(t)
	writeComponent(t)

	out := runGet(t, "App.tsx", "Button", "1")
	assert.Contains(t, out, "busy ? 'wait' : 'ready'")
}

func TestGet_AbsentAttribute(t *testing.T) {
	inTempDir(t)
	writeComponent(t)

	out := runGet(t, "App.tsx", "Span", "0")
	assert.Contains(t, out, "no class attribute")
}

func TestGet_MissingFile(t *testing.T) {
	inTempDir(t)

	var buf bytes.Buffer
	err := RunGet(context.Background(), &buf, "Nope.tsx", "Button", "0")
	require.Error(t, err)
}

func TestGet_InvalidIndex(t *testing.T) {
	inTempDir(t)
	writeComponent(t)

	var buf bytes.Buffer
	err := RunGet(context.Background(), &buf, "App.tsx", "Button", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid index")
}
