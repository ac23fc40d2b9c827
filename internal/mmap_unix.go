//go:build darwin || linux

package internal

import (
	"syscall"
)

// Mmap issues the raw mmap syscall. Arguments are passed through to the
// kernel untouched: no validation, no retries. A zero addr lets the
// kernel choose placement.
func Mmap(
	addr, length uintptr,
	prot, flags int,
	fd int,
	offset int64,
) (uintptr, syscall.Errno) {
	r0, _, errno := syscall.Syscall6(
		syscall.SYS_MMAP,
		addr,
		length,
		uintptr(prot),
		uintptr(flags),
		uintptr(fd),
		uintptr(offset),
	)
	return r0, errno
}

// Munmap issues the raw munmap syscall for the region [addr, addr+length).
func Munmap(addr, length uintptr) syscall.Errno {
	_, _, errno := syscall.Syscall(syscall.SYS_MUNMAP, addr, length, 0)
	return errno
}

// PageSize returns the kernel's virtual-memory page size.
func PageSize() int {
	return syscall.Getpagesize()
}
