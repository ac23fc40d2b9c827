package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"net/http/pprof"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/felixge/fgprof"

	mmap "github.com/k13-engineering/go-mmap"
)

var (
	n     = flag.Int("n", 100_000, "number of map/release round trips")
	pages = flag.Int("pages", 1, "mapping size in pages")
	touch = flag.Bool("touch", false, "if true, write one byte per page through the view")
	paddr = flag.String("pprof", "", "address for pprof/fgprof; if empty, no profiling")
)

func main() {
	flag.Parse()

	if *paddr != "" {
		mux := http.NewServeMux()
		mux.HandleFunc("/debug/pprof/", pprof.Index)
		mux.Handle("/debug/fgprof", fgprof.Handler())
		go func() {
			if err := http.ListenAndServe(*paddr, mux); err != nil {
				log.Fatal(err)
			}
		}()
	}

	pageSize := mmap.PageSize()
	size := *pages * pageSize

	f, err := os.CreateTemp("", "maplatency")
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		f.Close()
		os.Remove(f.Name())
	}()

	if err := f.Truncate(int64(size)); err != nil {
		log.Fatal(err)
	}

	req := mmap.Request{
		Fd:         int(f.Fd()),
		Visibility: mmap.SharedValidated,
		Prot:       mmap.Prot{Read: true, Write: true},
		Length:     size,
	}

	hist := hdrhistogram.New(1, 10_000_000_000, 1)

	for i := 0; i < *n; i++ {
		start := time.Now()

		m, err := mmap.MapFd(req)
		if err != nil {
			log.Fatal(err)
		}
		if *touch {
			b, err := m.AsBytes()
			if err != nil {
				log.Fatal(err)
			}
			for off := 0; off < size; off += pageSize {
				b[off] = byte(i)
			}
		}
		if err := m.Release(); err != nil {
			log.Fatal(err)
		}

		hist.RecordValue(time.Since(start).Nanoseconds())
	}

	log.Printf(
		"map+release n=%d size=%d touch=%v min/avg/max/stddev = %d/%d/%d/%dns",
		*n, size, *touch,
		hist.Min(), int(hist.Mean()), hist.Max(), int(hist.StdDev()),
	)
	log.Printf(
		"p50=%dns p99=%dns p99.9=%dns p99.99=%dns",
		hist.ValueAtQuantile(50),
		hist.ValueAtQuantile(99),
		hist.ValueAtQuantile(99.9),
		hist.ValueAtQuantile(99.99),
	)
}
