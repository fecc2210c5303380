//go:build linux || darwin || freebsd

package schema

import "golang.org/x/sys/unix"

// Unix is an implementation wrapping Unix operating system functions.
type Unix struct{}

// Stat wraps around [unix.Stat].
func (*Unix) Stat(path string, stat *unix.Stat_t) error {
	return unix.Stat(path, stat)
}

// Statfs wraps around [unix.Statfs].
func (*Unix) Statfs(path string, buf *unix.Statfs_t) error {
	return unix.Statfs(path, buf)
}
