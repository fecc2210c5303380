package filesystem

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
)

const (
	// TempDirPerms are the permissions of directories created for temporary
	// files.
	TempDirPerms = 0o755

	// TempFilePattern is the naming pattern of temporary files, with the
	// last "*" replaced by a random string.
	TempFilePattern = "tmp*"
)

// TemporaryFile is an exclusively owned temporary file. It must be given
// back through [TemporaryFile.Release] once no longer needed.
type TemporaryFile struct {
	afero.File
	fsHandler afero.Fs
}

// Path returns the full path of the temporary file.
func (t *TemporaryFile) Path() string {
	return t.Name()
}

// Release closes and removes the temporary file. A file that was already
// removed by someone else is not an error.
func (t *TemporaryFile) Release() error {
	closeErr := t.Close()
	if closeErr != nil && errors.Is(closeErr, fs.ErrClosed) {
		closeErr = nil
	}

	removeErr := t.fsHandler.Remove(t.Name())
	if removeErr != nil && errors.Is(removeErr, fs.ErrNotExist) {
		removeErr = nil
	}

	if err := errors.Join(closeErr, removeErr); err != nil {
		return fmt.Errorf("(fs-tmpfile) failed to release: %w", err)
	}

	return nil
}

// CreateTemporaryFile creates directory along with any missing parents, then
// returns a new [TemporaryFile] inside of it. Existing directories are not an
// error.
func (f *Handler) CreateTemporaryFile(directory string) (*TemporaryFile, error) {
	if err := f.fsHandler.MkdirAll(directory, TempDirPerms); err != nil {
		return nil, newSystemError(ErrSystem, "(fs-tmpfile) mkdir", directory, err)
	}

	file, err := afero.TempFile(f.fsHandler, directory, TempFilePattern)
	if err != nil {
		return nil, newSystemError(ErrSystem, "(fs-tmpfile) create", directory, err)
	}

	return &TemporaryFile{
		File:      file,
		fsHandler: f.fsHandler,
	}, nil
}
