package misc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.csv")
	assert.False(t, IsFileExists(path))

	assert.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	assert.True(t, IsFileExists(path))
}

func TestEnsureDir_nested(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	assert.NoError(t, EnsureDir(dir))
	assert.True(t, IsFileExists(dir))

	// existing folder is fine
	assert.NoError(t, EnsureDir(dir))
}

func TestEnsureDir_blockedByFile(t *testing.T) {
	base := t.TempDir()
	file := filepath.Join(base, "file")
	assert.NoError(t, os.WriteFile(file, nil, 0644))

	err := EnsureDir(filepath.Join(file, "sub"))
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "Create folder [")
	}
}
