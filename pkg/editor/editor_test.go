package editor

import (
	"testing"

	"github.com/arthur-debert/editfile/pkg/errors"
	"github.com/arthur-debert/editfile/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultLine = "This is the result line."

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		spec types.EditSpec
		code errors.ErrorCode
	}{
		{"missing path", types.EditSpec{Line: resultLine}, errors.ErrConfigInvalid},
		{"missing line", types.EditSpec{Path: "/tmp/x"}, errors.ErrConfigInvalid},
		{"bad ensure", types.EditSpec{Path: "/tmp/x", Line: "a", Ensure: "maybe"}, errors.ErrConfigInvalid},
		{"ambiguous match", types.EditSpec{Path: "/tmp/x", Line: "a", Match: `^.*bla.*\n`}, errors.ErrConfigInvalid},
		{"bad match regex", types.EditSpec{Path: "/tmp/x", Line: "a", Match: "/(a/"}, errors.ErrRegexCompile},
		{"bad creates regex", types.EditSpec{Path: "/tmp/x", Line: "a", Creates: "/[b-a]/"}, errors.ErrRegexCompile},
		{"ambiguous creates", types.EditSpec{Path: "/tmp/x", Line: "a", Creates: "^a"}, errors.ErrConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.spec, Options{Logger: nopLogger()})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestNewCreatesFieldInError(t *testing.T) {
	_, err := New(types.EditSpec{Path: "/tmp/x", Line: "a", Creates: "/(/"}, Options{Logger: nopLogger()})
	require.Error(t, err)
	assert.Equal(t, "creates", errors.GetErrorDetails(err)["field"])
}

func TestNewAbsentWithoutLine(t *testing.T) {
	ed, err := New(types.EditSpec{Path: "/tmp/x", Ensure: types.EnsureAbsent, Match: "bar"}, Options{Logger: nopLogger()})
	require.NoError(t, err)
	assert.Equal(t, types.EnsureAbsent, ed.Spec().Ensure)
	assert.False(t, ed.HasBackreferences())
}

func TestNewDefaultsToPresent(t *testing.T) {
	ed, err := New(types.EditSpec{Path: "/tmp/x", Line: "a"}, Options{Logger: nopLogger()})
	require.NoError(t, err)
	assert.Equal(t, types.EnsurePresent, ed.Spec().Ensure)
}
