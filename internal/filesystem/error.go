package filesystem

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	// ErrLogical is an error that occurs when a caller violates a documented
	// precondition. It indicates a bug in the calling code and is not
	// recoverable by retrying.
	ErrLogical = errors.New("logical error")

	// ErrRelativePath is an error that occurs when a relative path is given
	// to an operation that requires an absolute one.
	ErrRelativePath = fmt.Errorf("%w: path is relative", ErrLogical)

	// ErrSystem is an error that occurs when an operating system call fails
	// for a reason other than being interrupted by a signal.
	ErrSystem = errors.New("system error")

	// ErrCannotQueryFilesystem is an error that occurs when the free space of
	// a filesystem cannot be queried. It is a specialization of [ErrSystem].
	ErrCannotQueryFilesystem = fmt.Errorf("%w: cannot query filesystem", ErrSystem)

	// ErrNotImplemented is an error that occurs when an operation is not
	// supported on the current platform.
	ErrNotImplemented = errors.New("not implemented on this platform")

	// ErrMountTableUnavailable is an error that occurs when the mount table
	// cannot be opened.
	ErrMountTableUnavailable = errors.New("cannot open mount table")

	// ErrMountPointNotFound is an error that occurs when no entry of the
	// mount table matches a requested mount point.
	ErrMountPointNotFound = errors.New("no mount table entry for mount point")
)

// SystemError describes a failed operating system call. It matches both its
// Kind ([ErrSystem] or [ErrCannotQueryFilesystem]) and the underlying cause
// with [errors.Is].
type SystemError struct {
	Op    string
	Path  string
	Errno syscall.Errno
	Kind  error
	Err   error
}

// newSystemError returns a [SystemError] of the given kind, extracting the
// OS error code from err where there is one.
func newSystemError(kind error, op string, path string, err error) *SystemError {
	e := &SystemError{
		Op:   op,
		Path: path,
		Kind: kind,
		Err:  err,
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		e.Errno = errno
	}

	return e
}

func (e *SystemError) Error() string {
	msg := fmt.Sprintf("%v: %s %s: %v", e.Kind, e.Op, e.Path, e.Err)
	if e.Errno != 0 {
		msg += fmt.Sprintf(" (errno %d)", int(e.Errno))
	}

	return msg
}

func (e *SystemError) Unwrap() []error {
	errs := make([]error, 0, 2) //nolint:mnd
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}
