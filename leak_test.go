package mmap

import (
	"runtime"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestLeakDetection(t *testing.T) {
	leaks := make(chan Resource, 2)
	SetLeakFunc(func(r Resource) { leaks <- r })
	defer SetLeakFunc(nil)

	size := PageSize()
	f := createPatternFile(t, size)

	var want Resource
	func() {
		m, err := MapFd(Request{
			Fd:         int(f.Fd()),
			Visibility: Private,
			Prot:       Prot{Read: true},
			Length:     size,
		})
		if err != nil {
			t.Fatal(err)
		}
		want = Resource{Addr: m.Address(), Length: m.Length()}
		// Abandoned on purpose: no Release.
	}()

	deadline := time.After(10 * time.Second)
	for {
		runtime.GC()
		select {
		case got := <-leaks:
			if got != want {
				t.Fatalf("leak report mismatch: got %+v, want %+v", got, want)
			}
			// Exactly once: no second report for the same handle.
			runtime.GC()
			select {
			case got := <-leaks:
				t.Fatalf("duplicate leak report: %+v", got)
			case <-time.After(100 * time.Millisecond):
			}
			return
		case <-deadline:
			t.Fatal("abandoned mapping was never reported")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestReleasedMappingNotReported(t *testing.T) {
	leaks := make(chan Resource, 1)
	SetLeakFunc(func(r Resource) { leaks <- r })
	defer SetLeakFunc(nil)

	size := PageSize()
	f := createPatternFile(t, size)

	func() {
		m, err := MapFd(Request{
			Fd:         int(f.Fd()),
			Visibility: Private,
			Prot:       Prot{Read: true},
			Length:     size,
		})
		if err != nil {
			t.Fatal(err)
		}
		if err := m.Release(); err != nil {
			t.Fatal(err)
		}
	}()

	for i := 0; i < 10; i++ {
		runtime.GC()
		select {
		case got := <-leaks:
			t.Fatalf("false-positive leak report for a released mapping: %+v", got)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestLeakMessage(t *testing.T) {
	res := Resource{Addr: 0xdeadbeef, Length: 4096}
	msg := leakMessage(res)

	if !strings.Contains(msg, "0xdeadbeef") {
		t.Fatalf("message must embed the address: %q", msg)
	}
	if !strings.Contains(msg, strconv.Itoa(res.Length)) {
		t.Fatalf("message must embed the length: %q", msg)
	}
}
