package testutil

import (
	"io/fs"

	"github.com/arthur-debert/editfile/pkg/types"
)

// Operations FaultyFS can fail
const (
	OpStat       = "stat"
	OpReadFile   = "readfile"
	OpWriteFile  = "writefile"
	OpCreateTemp = "createtemp"
	OpChmod      = "chmod"
	OpRename     = "rename"
	OpRemove     = "remove"
)

// FaultyFS wraps a filesystem and fails selected operations
type FaultyFS struct {
	types.FS
	failures map[string]error
	calls    map[string]int
}

// NewFaultyFS wraps fsys
func NewFaultyFS(fsys types.FS) *FaultyFS {
	return &FaultyFS{FS: fsys, failures: map[string]error{}, calls: map[string]int{}}
}

// FailOn makes every call of op return err
func (f *FaultyFS) FailOn(op string, err error) *FaultyFS {
	f.failures[op] = err
	return f
}

// Calls returns how often op was called
func (f *FaultyFS) Calls(op string) int {
	return f.calls[op]
}

func (f *FaultyFS) check(op string) error {
	f.calls[op]++
	return f.failures[op]
}

func (f *FaultyFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.check(OpStat); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FaultyFS) ReadFile(name string) ([]byte, error) {
	if err := f.check(OpReadFile); err != nil {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FaultyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.check(OpWriteFile); err != nil {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FaultyFS) CreateTemp(dir, pattern string) (string, error) {
	if err := f.check(OpCreateTemp); err != nil {
		return "", err
	}
	return f.FS.CreateTemp(dir, pattern)
}

func (f *FaultyFS) Chmod(name string, mode fs.FileMode) error {
	if err := f.check(OpChmod); err != nil {
		return err
	}
	return f.FS.Chmod(name, mode)
}

func (f *FaultyFS) Rename(oldpath, newpath string) error {
	if err := f.check(OpRename); err != nil {
		return err
	}
	return f.FS.Rename(oldpath, newpath)
}

func (f *FaultyFS) Remove(name string) error {
	if err := f.check(OpRemove); err != nil {
		return err
	}
	return f.FS.Remove(name)
}
