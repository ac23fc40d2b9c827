package mmap

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// protBits translates the requested page protection into the OS
// protection bitmask.
func protBits(p Prot) int {
	bits := unix.PROT_NONE
	if p.Read {
		bits |= unix.PROT_READ
	}
	if p.Write {
		bits |= unix.PROT_WRITE
	}
	if p.Exec {
		bits |= unix.PROT_EXEC
	}
	return bits
}

// visibilityBits translates the visibility enum into the OS mapping
// flag. The enum is closed; an unknown value is a caller bug.
func visibilityBits(v Visibility) int {
	switch v {
	case Private:
		return unix.MAP_PRIVATE
	case SharedValidated:
		return sharedValidatedBit
	default:
		panic(fmt.Errorf("invalid visibility %d", v))
	}
}

// advisoryBits ORs together the OS bits for whichever advisory flags
// are set. Per-platform constants are zero where the OS has no
// equivalent.
func advisoryBits(f AdvisoryFlags) int {
	bits := 0
	if f.Limit32Bit {
		bits |= limit32Bit
	}
	if f.Locked {
		bits |= lockedBit
	}
	if f.NoReserve {
		bits |= noReserveBit
	}
	return bits
}
