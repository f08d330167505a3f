package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageSave(t *testing.T) {
	storage, err := NewStorage(t.TempDir())
	assert.NoError(t, err)

	name, err := storage.Save("photo.JPG", 11, strings.NewReader("image bytes"))
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.NotEqual(t, "photo.JPG", name)

	data, err := os.ReadFile(filepath.Join(storage.Dir(), name))
	assert.NoError(t, err)
	assert.Equal(t, "image bytes", string(data))
}

func TestStorageSaveUniqueNames(t *testing.T) {
	storage, err := NewStorage(t.TempDir())
	assert.NoError(t, err)

	first, err := storage.Save("a.png", 1, strings.NewReader("x"))
	assert.NoError(t, err)
	second, err := storage.Save("a.png", 1, strings.NewReader("x"))
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestStorageSaveRejectsOversize(t *testing.T) {
	storage, err := NewStorage(t.TempDir())
	assert.NoError(t, err)

	_, err = storage.Save("big.png", MaxFileSize+1, strings.NewReader(""))
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestStorageSaveRejectsExtension(t *testing.T) {
	storage, err := NewStorage(t.TempDir())
	assert.NoError(t, err)

	for _, name := range []string{"doc.pdf", "shell.sh", "noext", "image.gif"} {
		_, err := storage.Save(name, 4, strings.NewReader("data"))
		assert.ErrorIs(t, err, ErrInvalidFileType, name)
	}
}

func TestStorageDelete(t *testing.T) {
	storage, err := NewStorage(t.TempDir())
	assert.NoError(t, err)

	name, err := storage.Save("a.jpeg", 1, strings.NewReader("x"))
	assert.NoError(t, err)

	assert.NoError(t, storage.Delete(name))
	_, statErr := os.Stat(filepath.Join(storage.Dir(), name))
	assert.True(t, os.IsNotExist(statErr))

	// deleting again is fine
	assert.NoError(t, storage.Delete(name))
}
