package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/editfile/pkg/testutil"
	"github.com/arthur-debert/editfile/pkg/types"
	"github.com/stretchr/testify/require"
)

// testEnv owns one target file in a temporary directory
type testEnv struct {
	t    *testing.T
	path string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{t: t, path: filepath.Join(t.TempDir(), "target.conf")}
}

func (env *testEnv) input(content string) {
	env.t.Helper()
	require.NoError(env.t, os.WriteFile(env.path, []byte(content), 0644))
}

func (env *testEnv) expect(content string) {
	env.t.Helper()
	testutil.AssertFileContent(env.t, env.path, content)
}

func (env *testEnv) editor(spec types.EditSpec) *Editor {
	env.t.Helper()
	if spec.Path == "" {
		spec.Path = env.path
	}
	ed, err := New(spec, Options{Logger: nopLogger()})
	require.NoError(env.t, err)
	return ed
}

// apply runs the host contract for a present spec that must not hold yet
func (env *testEnv) apply(spec types.EditSpec) {
	env.t.Helper()
	ed := env.editor(spec)
	exists, err := ed.Exists()
	require.NoError(env.t, err)
	require.False(env.t, exists, "resource should not exist before create")
	require.NoError(env.t, ed.Create())
}

// applyExists asserts the spec already holds and create is refused
func (env *testEnv) applyExists(spec types.EditSpec) {
	env.t.Helper()
	ed := env.editor(spec)
	exists, err := ed.Exists()
	require.NoError(env.t, err)
	require.True(env.t, exists, "resource should already exist")
	require.Error(env.t, ed.Create())
}

func (env *testEnv) exists(spec types.EditSpec) bool {
	env.t.Helper()
	exists, err := env.editor(spec).Exists()
	require.NoError(env.t, err)
	return exists
}

var nopLogger = testutil.NopLogger
