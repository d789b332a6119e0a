// filepath: internal/storage/storage_test.go
package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoverFilename(t *testing.T) {
	name := NewCoverFilename(".png")
	assert.True(t, strings.HasPrefix(name, "book-cover-"))
	assert.True(t, strings.HasSuffix(name, ".png"))

	// ULIDs are unique per call
	assert.NotEqual(t, name, NewCoverFilename(".png"))
}

func TestGetCoverPath_CreatesDir(t *testing.T) {
	uploadDir := filepath.Join(t.TempDir(), "uploads")

	path, err := GetCoverPath(uploadDir, "book-cover-x.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(uploadDir, "book-cover-x.png"), path)

	info, err := os.Stat(uploadDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestGetCoverPath_RejectsTraversal(t *testing.T) {
	uploadDir := filepath.Join(t.TempDir(), "uploads")

	_, err := GetCoverPath(uploadDir, "../escape.png")
	assert.Error(t, err)
}

func TestSaveAndDeleteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")

	written, err := SaveFile(strings.NewReader("hello"), path)
	require.NoError(t, err)
	assert.Equal(t, int64(5), written)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))

	require.NoError(t, DeleteFile(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Deleting a missing file is not an error
	assert.NoError(t, DeleteFile(path))
}
