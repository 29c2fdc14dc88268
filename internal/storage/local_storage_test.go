package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveRoundtrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save("certificate.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	assert.True(t, store.Exists(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))
}

func TestLocalStorage_SaveGeneratesName(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save("../../etc/passwd.png", strings.NewReader("data"))
	require.NoError(t, err)

	// Stored name is server-generated; the client name only supplies the
	// extension.
	name := filepath.Base(path)
	assert.NotContains(t, name, "passwd")
	assert.Equal(t, ".png", filepath.Ext(name))
	assert.Equal(t, store.Dir(), filepath.Dir(path))
}

func TestLocalStorage_SaveDistinctNames(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save("cert.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Save("cert.jpg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalStorage_Remove(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save("cert.png", strings.NewReader("data"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(path))
	assert.False(t, store.Exists(path))
}

func TestLocalStorage_List(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	files, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, files)

	first, err := store.Save("a.png", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Save("b.jpg", strings.NewReader("b"))
	require.NoError(t, err)

	files, err = store.List()
	require.NoError(t, err)
	require.Len(t, files, 2)

	paths := []string{files[0].Path, files[1].Path}
	assert.Contains(t, paths, first)
	assert.Contains(t, paths, second)
	for _, f := range files {
		assert.False(t, f.ModTime.IsZero())
	}
}

func TestLocalStorage_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	info, err := os.Stat(store.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
