package filesystem

import (
	"fmt"
	"path/filepath"
)

// MountPoint returns the mount point of the filesystem containing
// absolutePath, which must be absolute or [ErrRelativePath] is returned.
//
// The canonical form of absolutePath is ascended one directory at a time
// until the parent lives on a different device than the current directory,
// making the current directory the mount point. Reaching the root without a
// device change makes the root the mount point. The result is always an
// ancestor of (or equal to) the canonical absolutePath.
func (f *Handler) MountPoint(absolutePath string) (string, error) {
	if !filepath.IsAbs(absolutePath) {
		return "", fmt.Errorf("(fs-mountpoint) %w: %s", ErrRelativePath, absolutePath)
	}

	path, err := f.osHandler.EvalSymlinks(absolutePath)
	if err != nil {
		return "", newSystemError(ErrSystem, "(fs-mountpoint) canonicalize", absolutePath, err)
	}

	deviceID, err := f.DeviceID(path)
	if err != nil {
		return "", err
	}

	for !isRoot(path) {
		parent := filepath.Dir(path)

		parentDeviceID, err := f.DeviceID(parent)
		if err != nil {
			return "", err
		}

		if parentDeviceID != deviceID {
			return path, nil
		}

		path = parent
	}

	return path, nil
}

// isRoot checks if a clean path has no components left to ascend.
func isRoot(path string) bool {
	return filepath.Dir(path) == path
}
