package mmap

import "golang.org/x/sys/unix"

const (
	sharedValidatedBit = unix.MAP_SHARED_VALIDATE
	lockedBit          = unix.MAP_LOCKED
	noReserveBit       = unix.MAP_NORESERVE
)
