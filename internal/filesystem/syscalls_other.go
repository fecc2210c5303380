//go:build !linux && !darwin && !freebsd

package filesystem

import "fmt"

// SpaceProbeSupported reports whether free space can be queried on this
// platform.
const SpaceProbeSupported = false

type unixProvider interface{}

// DeviceID is not implemented on this platform and always returns
// [ErrNotImplemented].
func (f *Handler) DeviceID(path string) (DeviceID, error) {
	return 0, fmt.Errorf("(fs-deviceid) %w: %s", ErrNotImplemented, path)
}

// AvailableSpace is not implemented on this platform and always returns
// [ErrNotImplemented].
func (f *Handler) AvailableSpace(path string) (FilesystemStats, error) {
	return FilesystemStats{}, fmt.Errorf("(fs-space) %w: %s", ErrNotImplemented, path)
}
