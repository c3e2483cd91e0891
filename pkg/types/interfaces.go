package types

import (
	"io/fs"
)

// FS is the filesystem interface required by the file gateway
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// CreateTemp creates an empty temporary file in dir and returns its name.
	// The pattern follows os.CreateTemp.
	CreateTemp(dir, pattern string) (string, error)

	// Other operations
	Chmod(name string, mode fs.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(name string) error
}
