package mmap

import (
	"fmt"
	"runtime"
	"sync"
)

// Resource identifies a mapped region independently of the handle that
// owns it, so a leak can still be reported after the handle itself is
// gone.
type Resource struct {
	Addr   uintptr
	Length int
}

// LeakFunc receives one abandoned mapping.
type LeakFunc func(Resource)

// leakDetector is the process-wide registry of live mappings. A handle
// that becomes unreachable while still registered is reported through
// the configured LeakFunc by its finalizer, exactly once.
type leakDetector struct {
	mu     sync.Mutex
	live   map[*Mapping]Resource
	onLeak LeakFunc
}

var defaultDetector = &leakDetector{
	live: make(map[*Mapping]Resource),
}

// SetLeakFunc routes leak reports to fn instead of the default panic.
// Passing nil restores the default.
//
// Reports run on the finalizer goroutine, at the garbage collector's
// leisure: the detector is a safety net for diagnosing abandoned
// handles, never a release mechanism.
func SetLeakFunc(fn LeakFunc) {
	defaultDetector.mu.Lock()
	defaultDetector.onLeak = fn
	defaultDetector.mu.Unlock()
}

func leakMessage(res Resource) string {
	return fmt.Sprintf(
		"mmap: leaked mapping of %d bytes at addr=0x%x",
		res.Length,
		res.Addr,
	)
}

func (d *leakDetector) register(m *Mapping) {
	d.mu.Lock()
	d.live[m] = Resource{Addr: m.addr, Length: m.length}
	d.mu.Unlock()

	runtime.SetFinalizer(m, func(m *Mapping) {
		d.finalize(m)
	})
}

// deregister removes m from the registry and clears its finalizer.
// Both happen under the lock so a release can never race a concurrent
// finalization into a false leak report.
func (d *leakDetector) deregister(m *Mapping) {
	d.mu.Lock()
	delete(d.live, m)
	runtime.SetFinalizer(m, nil)
	d.mu.Unlock()
}

func (d *leakDetector) finalize(m *Mapping) {
	d.mu.Lock()
	res, leaked := d.live[m]
	delete(d.live, m)
	fn := d.onLeak
	d.mu.Unlock()

	if !leaked {
		return
	}
	if fn == nil {
		panic(leakMessage(res))
	}
	fn(res)
}
