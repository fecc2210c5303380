//go:build !linux

package filesystem

import "fmt"

// MountTableSupported reports whether this platform exposes a mount table.
const MountTableSupported = false

// MountEntry is only supported on Linux. Elsewhere it always returns
// [ErrNotImplemented], without consulting any table.
func (f *Handler) MountEntry(mountPoint string) (MountEntry, error) {
	return MountEntry{}, fmt.Errorf("(fs-mtab) %w: %s", ErrNotImplemented, mountPoint)
}
