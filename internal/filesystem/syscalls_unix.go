//go:build linux || darwin || freebsd

package filesystem

import (
	"errors"

	"golang.org/x/sys/unix"
)

// SpaceProbeSupported reports whether free space can be queried on this
// platform.
const SpaceProbeSupported = true

type unixProvider interface {
	Stat(path string, stat *unix.Stat_t) error
	Statfs(path string, buf *unix.Statfs_t) error
}

// retryOnEINTR calls fn until it returns anything other than [unix.EINTR].
func retryOnEINTR(fn func() error) error {
	for {
		if err := fn(); !errors.Is(err, unix.EINTR) {
			return err
		}
	}
}

// DeviceID returns the [DeviceID] of the device containing path, following
// symbolic links. Interrupted calls are retried, any other failure is
// returned as a [SystemError].
func (f *Handler) DeviceID(path string) (DeviceID, error) {
	var st unix.Stat_t

	if err := retryOnEINTR(func() error {
		return f.unixHandler.Stat(path, &st)
	}); err != nil {
		return 0, newSystemError(ErrSystem, "(fs-deviceid) stat", path, err)
	}

	return DeviceID(st.Dev), nil
}

// AvailableSpace returns [FilesystemStats] for the filesystem containing path.
// Interrupted calls are retried, any other failure is returned as a
// [SystemError] of kind [ErrCannotQueryFilesystem].
func (f *Handler) AvailableSpace(path string) (FilesystemStats, error) {
	var buf unix.Statfs_t

	if err := retryOnEINTR(func() error {
		return f.unixHandler.Statfs(path, &buf)
	}); err != nil {
		return FilesystemStats{}, newSystemError(ErrCannotQueryFilesystem, "(fs-space) statfs", path, err)
	}

	bsize := handleSize(int64(buf.Bsize))
	avail := handleSize(int64(buf.Bavail))

	return FilesystemStats{
		FreeBytes:       uint64(buf.Bfree) * bsize,
		AvailableBytes:  avail * bsize,
		TotalBytes:      uint64(buf.Blocks) * bsize,
		BlockSize:       bsize,
		TotalBlocks:     uint64(buf.Blocks),
		FreeBlocks:      uint64(buf.Bfree),
		AvailableBlocks: avail,
		TotalFiles:      uint64(buf.Files),
		FreeFiles:       handleSize(int64(buf.Ffree)),
	}, nil
}
