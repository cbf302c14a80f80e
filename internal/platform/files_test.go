package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "downloads")

	require.NoError(t, CreateDirectoryIfNotExists(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCreateDirectoryIfNotExistsIdempotent(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, CreateDirectoryIfNotExists(dir))
	assert.NoError(t, CreateDirectoryIfNotExists(dir))
}

func TestOpenFolderMissingDirectory(t *testing.T) {
	err := OpenFolder(filepath.Join(t.TempDir(), "nope"))

	assert.Error(t, err)
}

func TestOpenFolderRejectsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "media.mp4")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	err := OpenFolder(file)

	assert.Error(t, err)
}
