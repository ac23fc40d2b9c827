package mmap

import (
	"os"
	"runtime"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/k13-engineering/go-mmap/internal"
	"github.com/k13-engineering/go-mmap/mmaperrors"
)

// Mapping is the owning handle over one successful mmap call. It is
// created only by MapFd and must be released exactly once.
type Mapping struct {
	addr   uintptr
	length int
	prot   Prot

	released uint32
}

// Address returns the base address of the mapping. It is a plain
// integer, safe for diagnostics even after release; dereferencing it
// is not.
func (m *Mapping) Address() uintptr {
	return m.addr
}

// Length returns the byte length of the mapping, fixed at construction.
func (m *Mapping) Length() int {
	return m.length
}

// Writable reports whether the mapping was requested with write access.
func (m *Mapping) Writable() bool {
	return m.prot.Write
}

// AsBytes returns the byte view over the mapped region: exactly
// Length() bytes starting at Address(), with the access the requested
// protection allows. The view is valid only until Release; afterwards
// AsBytes returns mmaperrors.ErrViewInvalid.
func (m *Mapping) AsBytes() ([]byte, error) {
	if atomic.LoadUint32(&m.released) == 1 {
		return nil, mmaperrors.ErrViewInvalid
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(m.addr)), m.length), nil
}

// Release unmaps the region and deregisters the handle from the leak
// detector.
//
// A second call returns mmaperrors.ErrAlreadyReleased. If the kernel
// refuses the unmap, Release returns an *os.SyscallError carrying the
// errno and the handle stays mapped and registered: the OS still holds
// the region, and the caller must not assume it was freed.
func (m *Mapping) Release() error {
	if !atomic.CompareAndSwapUint32(&m.released, 0, 1) {
		return mmaperrors.ErrAlreadyReleased
	}

	if errno := internal.Munmap(m.addr, uintptr(m.length)); errno != 0 {
		atomic.StoreUint32(&m.released, 0)
		return os.NewSyscallError("munmap", errno)
	}

	defaultDetector.deregister(m)
	runtime.KeepAlive(m)
	return nil
}

// view is the guard shared by the operations below: they act on mapped
// memory and are meaningless once the handle is released.
func (m *Mapping) view() ([]byte, error) {
	if atomic.LoadUint32(&m.released) == 1 {
		return nil, mmaperrors.ErrAlreadyReleased
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(m.addr)), m.length), nil
}

// Sync flushes changes to the backing file synchronously.
func (m *Mapping) Sync() error {
	b, err := m.view()
	if err != nil {
		return err
	}
	return unix.Msync(b, unix.MS_SYNC)
}

// SyncAsync schedules a flush to the backing file without waiting for
// it to complete.
func (m *Mapping) SyncAsync() error {
	b, err := m.view()
	if err != nil {
		return err
	}
	return unix.Msync(b, unix.MS_ASYNC)
}

// Advise hints the kernel about the expected access pattern.
func (m *Mapping) Advise(advice int) error {
	b, err := m.view()
	if err != nil {
		return err
	}
	return unix.Madvise(b, advice)
}

// AdviseSequential hints that pages will be accessed sequentially.
func (m *Mapping) AdviseSequential() error {
	return m.Advise(unix.MADV_SEQUENTIAL)
}

// AdviseRandom hints that pages will be accessed randomly.
func (m *Mapping) AdviseRandom() error {
	return m.Advise(unix.MADV_RANDOM)
}

// AdviseWillNeed hints that pages will be needed soon.
func (m *Mapping) AdviseWillNeed() error {
	return m.Advise(unix.MADV_WILLNEED)
}

// AdviseDontNeed hints that pages won't be needed soon.
func (m *Mapping) AdviseDontNeed() error {
	return m.Advise(unix.MADV_DONTNEED)
}

// Lock locks the mapped pages in memory.
func (m *Mapping) Lock() error {
	b, err := m.view()
	if err != nil {
		return err
	}
	return unix.Mlock(b)
}

// Unlock unlocks the mapped pages.
func (m *Mapping) Unlock() error {
	b, err := m.view()
	if err != nil {
		return err
	}
	return unix.Munlock(b)
}
