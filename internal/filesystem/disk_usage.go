package filesystem

// FilesystemStats holds usage information of a filesystem. It is a snapshot
// valid only at the time of the query and is meant to be passed by value.
type FilesystemStats struct {
	// FreeBytes includes blocks reserved for the superuser.
	FreeBytes uint64
	// AvailableBytes is what unprivileged processes may still allocate.
	AvailableBytes uint64
	TotalBytes     uint64

	BlockSize       uint64
	TotalBlocks     uint64
	FreeBlocks      uint64
	AvailableBlocks uint64

	TotalFiles uint64
	FreeFiles  uint64
}

// HasEnoughSpace reports whether requiredBytes do not exceed the free space
// of the filesystem containing path.
//
// The answer is advisory. Free space can change at any moment after the check,
// so it is no reservation. Without platform support for querying free space it
// optimistically returns true, while a failing query returns the
// [ErrCannotQueryFilesystem] error of [Handler.AvailableSpace].
func (f *Handler) HasEnoughSpace(path string, requiredBytes uint64) (bool, error) {
	if !SpaceProbeSupported {
		return true, nil
	}

	stats, err := f.AvailableSpace(path)
	if err != nil {
		return false, err
	}

	return requiredBytes <= stats.FreeBytes, nil
}

// handleSize converts a int64 size to a uint64 size (with sizes < 0 becoming 0).
func handleSize(size int64) uint64 {
	if size < 0 {
		return 0
	}

	return uint64(size)
}
