package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads", "portfolio")
	store, err := New(dir, "/uploads/portfolio/")
	require.NoError(t, err)

	file, err := store.Save(strings.NewReader("pixels"), "Cover.JPG")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(file.Filename, ".jpg"))
	assert.Equal(t, "/uploads/portfolio/"+file.Filename, file.URL)
	assert.Equal(t, "Cover.JPG", file.OriginalName)
	assert.Equal(t, int64(6), file.Size)
	assert.True(t, store.Exists(file.Filename))

	content, err := os.ReadFile(filepath.Join(dir, file.Filename))
	require.NoError(t, err)
	assert.Equal(t, "pixels", string(content))

	again, err := store.Save(strings.NewReader("x"), "Cover.JPG")
	require.NoError(t, err)
	assert.NotEqual(t, file.Filename, again.Filename)
}

func TestPath_RejectsTraversal(t *testing.T) {
	store, err := New(t.TempDir(), "/uploads")
	require.NoError(t, err)

	for _, name := range []string{"", ".", "..", "../etc/passwd", "a/b.jpg", `a\b.jpg`} {
		_, err := store.Path(name)
		assert.ErrorIs(t, err, ErrInvalidName, name)
		assert.False(t, store.Exists(name), name)
	}

	p, err := store.Path("a.jpg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(store.Dir(), "a.jpg"), p)
}

func TestExistsAndRemove(t *testing.T) {
	store, err := New(t.TempDir(), "uploads")
	require.NoError(t, err)

	assert.False(t, store.Exists("missing.png"))
	require.NoError(t, os.Mkdir(filepath.Join(store.Dir(), "sub"), 0o755))
	assert.False(t, store.Exists("sub"))

	file, err := store.Save(strings.NewReader("x"), "a.png")
	require.NoError(t, err)
	require.NoError(t, store.Remove(file.Filename))
	assert.False(t, store.Exists(file.Filename))
	assert.NoError(t, store.Remove(file.Filename))
	assert.Equal(t, "/uploads/a.png", store.URL("a.png"))
}
