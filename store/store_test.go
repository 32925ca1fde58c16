package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileGetMissingKey(t *testing.T) {
	f, err := NewFile(t.TempDir())
	require.NoError(t, err)

	v, ok, err := f.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestFileSetThenGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	f, err := NewFile(dir)
	require.NoError(t, err)

	require.NoError(t, f.Set("theme", "light"))
	v, ok, err := f.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)

	require.NoError(t, f.Set("theme", "dark"))
	v, _, err = f.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	// Stored as plain text, no temp files left behind
	raw, err := os.ReadFile(filepath.Join(dir, "theme"))
	require.NoError(t, err)
	assert.Equal(t, "dark\n", string(raw))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileRejectsBadKeys(t *testing.T) {
	f, err := NewFile(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../theme", "a/b", ".."} {
		assert.Error(t, f.Set(key, "x"), key)
		_, _, err := f.Get(key)
		assert.Error(t, err, key)
	}
}

func TestNewFileRequiresDir(t *testing.T) {
	_, err := NewFile("")
	assert.Error(t, err)
}
