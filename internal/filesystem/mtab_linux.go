//go:build linux

package filesystem

import "fmt"

// MountTableSupported reports whether this platform exposes a mount table.
const MountTableSupported = true

// MountEntry returns the first mount table entry whose directory is exactly
// mountPoint. No canonicalization takes place, so mountPoint should already
// be canonical, typically the result of [Handler.MountPoint].
//
// A mount table that cannot be opened yields a [SystemError] wrapping
// [ErrMountTableUnavailable]; a complete scan without a match yields one
// wrapping [ErrMountPointNotFound].
func (f *Handler) MountEntry(mountPoint string) (MountEntry, error) {
	file, err := f.osHandler.Open(f.mountTable)
	if err != nil {
		return MountEntry{}, newSystemError(ErrSystem, "(fs-mtab) open", f.mountTable,
			fmt.Errorf("%w: %w", ErrMountTableUnavailable, err))
	}
	defer file.Close()

	entry, found, err := scanMountTable(file, mountPoint)
	if err != nil {
		return MountEntry{}, newSystemError(ErrSystem, "(fs-mtab) read", f.mountTable, err)
	}

	if !found {
		return MountEntry{}, newSystemError(ErrSystem, "(fs-mtab) lookup", mountPoint, ErrMountPointNotFound)
	}

	return entry, nil
}
