package mmap

import (
	"golang.org/x/sys/unix"

	"github.com/k13-engineering/go-mmap/internal"
	"github.com/k13-engineering/go-mmap/mmaperrors"
)

// checkRange validates the two invariants mmap itself only reports as a
// bare EINVAL: page alignment of the offset and a strictly positive
// length.
func checkRange(offset int64, length int) error {
	if offset%int64(internal.PageSize()) != 0 {
		return mmaperrors.ErrMisalignedOffset
	}
	if length <= 0 {
		return mmaperrors.ErrInvalidLength
	}
	return nil
}

// checkDescriptor verifies fd is non-negative and currently open.
// Mapping a stale descriptor would otherwise fail with a
// low-information EBADF from the kernel, or map the wrong file if the
// number was reused.
func checkDescriptor(fd int) error {
	if fd < 0 {
		return mmaperrors.ErrBadDescriptor
	}
	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		return mmaperrors.ErrBadDescriptor
	}
	return nil
}
