package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/editfile/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndReadFile(t *testing.T) {
	dir := t.TempDir()
	path := CreateFile(t, dir, "nested/file.txt", "content\n")

	assert.Equal(t, filepath.Join(dir, "nested", "file.txt"), path)
	AssertFileContent(t, path, "content\n")
	AssertNoFile(t, filepath.Join(dir, "other"))
}

func TestIsolateXDG(t *testing.T) {
	dir := IsolateXDG(t)
	assert.Equal(t, dir, os.Getenv("XDG_CONFIG_HOME"))
	assert.NotEmpty(t, os.Getenv("XDG_STATE_HOME"))
}

func TestFaultyFS(t *testing.T) {
	boom := errors.New("boom")
	fsys := NewFaultyFS(filesystem.NewMemory()).FailOn(OpRename, boom)

	require.NoError(t, fsys.WriteFile("/a", []byte("x"), 0644))
	assert.ErrorIs(t, fsys.Rename("/a", "/b"), boom)
	assert.Equal(t, 1, fsys.Calls(OpRename))
	assert.Equal(t, 1, fsys.Calls(OpWriteFile))

	data, err := fsys.ReadFile("/a")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}
