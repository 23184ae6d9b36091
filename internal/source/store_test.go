package source

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	return store, dir
}

func TestNewStore_RejectsMissingRoot(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestResolve_RejectsEscapingPaths(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Resolve("../outside.tsx")
	require.Error(t, err)

	_, err = store.Resolve("a/../../outside.tsx")
	require.Error(t, err)
}

func TestRead(t *testing.T) {
	store, dir := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.tsx"), []byte("content"), 0o644))

	data, err := store.Read("app.tsx")
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestUpdate_WritesTransformedContent(t *testing.T) {
	store, dir := newTestStore(t)
	path := filepath.Join(dir, "app.tsx")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	changed, err := store.Update("app.tsx", func(b []byte) ([]byte, error) {
		assert.Equal(t, "old", string(b))
		return []byte("new"), nil
	})
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestUpdate_UnchangedSkipsWrite(t *testing.T) {
	store, dir := newTestStore(t)
	path := filepath.Join(dir, "app.tsx")
	require.NoError(t, os.WriteFile(path, []byte("same"), 0o644))

	before, err := os.Stat(path)
	require.NoError(t, err)

	changed, err := store.Update("app.tsx", func(b []byte) ([]byte, error) {
		return b, nil
	})
	require.NoError(t, err)
	assert.False(t, changed)

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestUpdate_MissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Update("missing.tsx", func(b []byte) ([]byte, error) {
		return b, nil
	})
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestUpdate_ConcurrentUpdatesSerialize(t *testing.T) {
	store, dir := newTestStore(t)
	path := filepath.Join(dir, "counter.txt")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	// Each update appends one byte; with a lost update the final length
	// would come up short.
	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Update("counter.txt", func(b []byte) ([]byte, error) {
				return append(b, 'x'), nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, data, n)
}
