//go:build darwin

package mmap

import "golang.org/x/sys/unix"

// Darwin has no validated shared mode and no MAP_32BIT/MAP_LOCKED.
const (
	sharedValidatedBit = unix.MAP_SHARED
	limit32Bit         = 0
	lockedBit          = 0
	noReserveBit       = unix.MAP_NORESERVE
)
