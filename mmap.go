// Package mmap provides a safe, owning handle over raw virtual-memory
// mappings of file descriptors.
//
// MapFd validates a request, translates its semantic flags to the
// bitmasks the kernel expects and wraps a successful mapping in a
// Mapping handle. The handle owns the OS resource: it must be released
// exactly once with Release, and a handle abandoned without a release
// is reported by a process-wide leak detector.
package mmap

import (
	"os"

	"github.com/k13-engineering/go-mmap/internal"
)

// PageSize returns the system's virtual-memory page size. Mapping
// offsets must be multiples of this value.
func PageSize() int {
	return internal.PageSize()
}

// MapFd maps req.Length bytes of req.Fd starting at req.Offset and
// returns the owning handle over the new mapping.
//
// Caller misuse (misaligned offset, non-positive length, bad
// descriptor) returns one of the mmaperrors sentinels before any OS
// call is attempted; branch on those with errors.Is. The kernel
// refusing the mapping is an expected, recoverable condition and
// returns an *os.SyscallError carrying the errno; branch on that with
// errors.As. Exactly one of the handle and the error is non-nil.
func MapFd(req Request) (*Mapping, error) {
	if err := checkRange(req.Offset, req.Length); err != nil {
		return nil, err
	}

	prot := protBits(req.Prot)
	flags := visibilityBits(req.Visibility) | advisoryBits(req.Advisory)

	if err := checkDescriptor(req.Fd); err != nil {
		return nil, err
	}

	// Address hint 0: placement is the kernel's choice.
	addr, errno := internal.Mmap(
		0,
		uintptr(req.Length),
		prot,
		flags,
		req.Fd,
		req.Offset,
	)
	if errno != 0 {
		return nil, os.NewSyscallError("mmap", errno)
	}

	m := &Mapping{
		addr:   addr,
		length: req.Length,
		prot:   req.Prot,
	}
	defaultDetector.register(m)

	return m, nil
}
