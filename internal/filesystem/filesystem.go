// Package filesystem provides introspection primitives describing the medium
// underlying a path: its device, mount point and backing filesystem, the free
// space left on it, and whether one path lies within another. It also hands
// out temporary files in directories it guarantees to exist.
//
// Nothing is cached. Every call reads the state of the operating system at
// the time of the call, so concurrent callers may observe different results
// while mounts or usage change underneath them.
package filesystem

import (
	"os"

	"github.com/spf13/afero"
)

const (
	// DefaultMountTable is the mount table consulted when none is configured.
	DefaultMountTable = "/etc/mtab"
)

type osProvider interface {
	EvalSymlinks(path string) (string, error)
	Getwd() (string, error)
	Open(name string) (*os.File, error)
}

// DeviceID identifies the device backing a path. Values are only meaningful
// when compared for equality.
type DeviceID uint64

// Handler is the principal implementation of the filesystem probes. It holds
// no mutable state and is safe for concurrent use.
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider
	fsHandler   afero.Fs
	mountTable  string
}

// NewHandler returns a pointer to a new [Handler]. An empty mountTable
// selects [DefaultMountTable].
func NewHandler(osHandler osProvider, unixHandler unixProvider, fsHandler afero.Fs, mountTable string) *Handler {
	if mountTable == "" {
		mountTable = DefaultMountTable
	}

	return &Handler{
		osHandler:   osHandler,
		unixHandler: unixHandler,
		fsHandler:   fsHandler,
		mountTable:  mountTable,
	}
}

// MountTable returns the path of the mount table the [Handler] reads.
func (f *Handler) MountTable() string {
	return f.mountTable
}
