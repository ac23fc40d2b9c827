package mmap

import "fmt"

// Visibility selects whether writes to a mapping stay private to this
// process or are shared with, and persisted for, every mapper of the
// same backing.
type Visibility uint8

const (
	// Private maps the region copy-on-write: writes are visible only
	// through this mapping and never reach the backing file.
	Private Visibility = iota

	// SharedValidated maps the region shared: writes are carried
	// through to the backing file and to other mappers. On kernels
	// with a validated shared mode the flag combination is verified by
	// the OS instead of being silently ignored.
	SharedValidated
)

func (v Visibility) String() string {
	switch v {
	case Private:
		return "private"
	case SharedValidated:
		return "shared_validated"
	default:
		panic(fmt.Errorf("invalid visibility %d", v))
	}
}

// Prot is the page protection requested for a mapping.
type Prot struct {
	Read  bool
	Write bool
	Exec  bool
}

// AdvisoryFlags are optional mapping flags, all off by default. Flags
// with no equivalent on the running platform translate to nothing.
type AdvisoryFlags struct {
	// Limit32Bit constrains placement to the low 4GiB of the address
	// space.
	Limit32Bit bool

	// Locked locks the mapped pages in memory at map time.
	Locked bool

	// NoReserve skips swap-space reservation for the mapping.
	NoReserve bool
}

// Request describes one mapping of an open file descriptor.
//
// Offset must be a multiple of PageSize() and Length must be strictly
// positive; MapFd rejects anything else before reaching the OS.
type Request struct {
	Fd         int
	Visibility Visibility
	Prot       Prot
	Advisory   AdvisoryFlags
	Offset     int64
	Length     int
}
