package editor

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/editfile/pkg/errors"
	"github.com/arthur-debert/editfile/pkg/filesystem"
	"github.com/arthur-debert/editfile/pkg/testutil"
	"github.com/arthur-debert/editfile/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memEditor(t *testing.T, mem afero.Fs, spec types.EditSpec, mode fs.FileMode) *Editor {
	t.Helper()
	ed, err := New(spec, Options{
		FileSystem: filesystem.NewAferoFS(mem),
		Logger:     nopLogger(),
		CreateMode: mode,
	})
	require.NoError(t, err)
	return ed
}

func TestGatewayReadMissing(t *testing.T) {
	mem := afero.NewMemMapFs()
	ed := memEditor(t, mem, types.EditSpec{Path: "/etc/app.conf", Line: "x"}, 0)

	content, found, err := ed.read()
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, content)
}

func TestGatewayPreservesPermissions(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/etc", 0755))
	require.NoError(t, afero.WriteFile(mem, "/etc/secret.conf", []byte("token = old\n"), 0600))

	ed := memEditor(t, mem, types.EditSpec{Path: "/etc/secret.conf", Match: "/^token/", Line: "token = new"}, 0644)
	require.NoError(t, ed.Create())

	data, err := afero.ReadFile(mem, "/etc/secret.conf")
	require.NoError(t, err)
	assert.Equal(t, "token = new\n", string(data))

	info, err := mem.Stat("/etc/secret.conf")
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0600), info.Mode().Perm())
}

func TestGatewayCreateMode(t *testing.T) {
	tests := []struct {
		name string
		mode fs.FileMode
		want fs.FileMode
	}{
		{"default", 0, DefaultCreateMode},
		{"configured", 0640, 0640},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := afero.NewMemMapFs()
			require.NoError(t, mem.MkdirAll("/etc", 0755))

			ed := memEditor(t, mem, types.EditSpec{Path: "/etc/new.conf", Line: "key = value"}, tt.mode)
			require.NoError(t, ed.Create())

			info, err := mem.Stat("/etc/new.conf")
			require.NoError(t, err)
			assert.Equal(t, tt.want, info.Mode().Perm())
		})
	}
}

func TestGatewayLeavesNoTemporaryFiles(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/etc", 0755))
	require.NoError(t, afero.WriteFile(mem, "/etc/app.conf", []byte("a\n"), 0644))

	ed := memEditor(t, mem, types.EditSpec{Path: "/etc/app.conf", Line: "b"}, 0)
	require.NoError(t, ed.Create())

	entries, err := afero.ReadDir(mem, "/etc")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "app.conf", entries[0].Name())
}

func TestGatewayParentMissing(t *testing.T) {
	t.Run("fails", func(t *testing.T) {
		mem := afero.NewMemMapFs()
		ed := memEditor(t, mem, types.EditSpec{Path: "/missing/app.conf", Line: "x"}, 0)

		err := ed.write("x\n")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrParentMissing))
		assert.Equal(t, "/missing/app.conf", errors.GetErrorDetails(err)["path"])
	})

	t.Run("skipped", func(t *testing.T) {
		mem := afero.NewMemMapFs()
		ed := memEditor(t, mem, types.EditSpec{Path: "/missing/app.conf", Line: "x", NoFailWithoutParent: true}, 0)

		require.NoError(t, ed.write("x\n"))
		exists, err := afero.Exists(mem, "/missing/app.conf")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestGatewayReadUnderRegularFile(t *testing.T) {
	parent := testutil.CreateFile(t, t.TempDir(), "parent", "not a dir\n")
	ed, err := New(types.EditSpec{Path: filepath.Join(parent, "app.conf"), Line: "x"}, Options{Logger: nopLogger()})
	require.NoError(t, err)

	content, found, err := ed.read()
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, content)

	exists, err := ed.Exists()
	require.NoError(t, err)
	assert.False(t, exists)

	err = ed.Create()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
}

func TestGatewayParentIsFile(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/etc", []byte("not a dir"), 0644))

	ed := memEditor(t, mem, types.EditSpec{Path: "/etc/app.conf", Line: "x"}, 0)
	err := ed.write("x\n")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
}

func TestGatewayFailedWriteKeepsOriginal(t *testing.T) {
	for _, op := range []string{testutil.OpWriteFile, testutil.OpChmod, testutil.OpRename} {
		t.Run(op, func(t *testing.T) {
			mem := afero.NewMemMapFs()
			require.NoError(t, mem.MkdirAll("/etc", 0755))
			require.NoError(t, afero.WriteFile(mem, "/etc/app.conf", []byte("a\n"), 0644))

			boom := stderrors.New("disk full")
			fsys := testutil.NewFaultyFS(filesystem.NewAferoFS(mem)).FailOn(op, boom)
			ed, err := New(types.EditSpec{Path: "/etc/app.conf", Line: "b"}, Options{
				FileSystem: fsys,
				Logger:     nopLogger(),
			})
			require.NoError(t, err)

			err = ed.Create()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
			assert.ErrorIs(t, err, boom)
			assert.Equal(t, 1, fsys.Calls(testutil.OpRemove))

			data, err := afero.ReadFile(mem, "/etc/app.conf")
			require.NoError(t, err)
			assert.Equal(t, "a\n", string(data))

			entries, err := afero.ReadDir(mem, "/etc")
			require.NoError(t, err)
			assert.Len(t, entries, 1)
		})
	}
}

func TestGatewayReadFailure(t *testing.T) {
	fsys := testutil.NewFaultyFS(filesystem.NewMemory()).FailOn(testutil.OpReadFile, fs.ErrPermission)
	ed, err := New(types.EditSpec{Path: "/etc/app.conf", Line: "b"}, Options{
		FileSystem: fsys,
		Logger:     nopLogger(),
	})
	require.NoError(t, err)

	_, err = ed.Exists()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))
}
