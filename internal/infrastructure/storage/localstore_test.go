package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/logger"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := NewLocalStore(t.TempDir(), logger.NewLogger())
	require.NoError(t, err)
	return store
}

func TestLocalStoreSave(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	path, size, err := store.Save(ctx, 7, "report.pdf", strings.NewReader("hello world"))
	require.NoError(t, err)
	assert.Equal(t, int64(11), size)
	assert.True(t, strings.HasPrefix(path, "ticket_7/"))
	assert.True(t, strings.HasSuffix(path, ".pdf"))

	data, err := os.ReadFile(filepath.Join(store.Root(), filepath.FromSlash(path)))
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))
}

func TestLocalStoreSaveWeirdExtension(t *testing.T) {
	store := newTestStore(t)

	path, _, err := store.Save(context.Background(), 1, "no-extension", strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotContains(t, filepath.Base(path), ".")

	path, _, err = store.Save(context.Background(), 1, "evil.p/../df", strings.NewReader("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "ticket_1/"))
}

func TestLocalStoreRemove(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	path, _, err := store.Save(ctx, 3, "a.txt", strings.NewReader("data"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, path))
	_, statErr := os.Stat(filepath.Join(store.Root(), filepath.FromSlash(path)))
	assert.True(t, os.IsNotExist(statErr))

	// Removing a missing blob is not an error.
	assert.NoError(t, store.Remove(ctx, path))

	// Escaping the root is.
	assert.Error(t, store.Remove(ctx, "../outside.txt"))
}
