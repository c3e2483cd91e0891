package editor

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"syscall"

	"github.com/arthur-debert/editfile/pkg/errors"
)

// read returns the whole file. A missing file is empty content with found
// set to false, including when a parent component is not a directory.
func (e *Editor) read() (content string, found bool, err error) {
	data, err := e.fs.ReadFile(e.spec.Path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) || stderrors.Is(err, syscall.ENOTDIR) {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", e.spec.Path).
			WithDetail("path", e.spec.Path)
	}
	return string(data), true, nil
}

// write replaces the file with content. The data goes to a temporary file
// in the same directory first, which is then renamed over the target, so a
// failed write never leaves a truncated file behind. Existing files keep
// their permissions.
func (e *Editor) write(content string) error {
	path := e.spec.Path
	dir := filepath.Dir(path)

	info, err := e.fs.Stat(dir)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			if e.spec.NoFailWithoutParent {
				e.logger.Info().Str("dir", dir).Msg("Parent directory missing, skipping write")
				return nil
			}
			return errors.Wrapf(err, errors.ErrParentMissing, "parent directory of %s does not exist", path).
				WithDetail("path", path)
		}
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to stat %s", dir).WithDetail("path", path)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrFileWrite, "parent of %s is not a directory", path).WithDetail("path", path)
	}

	mode := e.createMode
	if current, err := e.fs.Stat(path); err == nil {
		mode = current.Mode().Perm()
	}

	tmp, err := e.fs.CreateTemp(dir, "."+filepath.Base(path)+".editfile-*")
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to create temporary file for %s", path).
			WithDetail("path", path)
	}

	if err := e.replaceWith(tmp, path, content, mode); err != nil {
		_ = e.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).WithDetail("path", path)
	}

	e.logger.Debug().Int("bytes", len(content)).Msg("File written")
	return nil
}

func (e *Editor) replaceWith(tmp, path, content string, mode fs.FileMode) error {
	if err := e.fs.WriteFile(tmp, []byte(content), mode); err != nil {
		return err
	}
	// CreateTemp uses 0600 and WriteFile keeps the mode of existing files
	if err := e.fs.Chmod(tmp, mode); err != nil {
		return err
	}
	return e.fs.Rename(tmp, path)
}
