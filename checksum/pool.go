//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package checksum

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"runtime"
	"sync"

	"github.com/markkurossi/sha1"
	"github.com/markkurossi/sha1/hashio"
	"github.com/markkurossi/sha1/utils"
	"github.com/markkurossi/text/superscript"
)

// Result holds the digest of one hashed file.
type Result struct {
	Name string
	Sum  [sha1.Size]byte
	Err  error
}

// Pool hashes files with a set of worker goroutines. Each file is
// hashed with its own digest and the workers share no state. The
// statistics of a Hash call are added to the Hasher's Stats when the
// call returns. A Pool must not be used by concurrent Hash calls.
type Pool struct {
	Hasher  *hashio.Hasher
	Workers int

	// Log receives the errors of unreadable files. It may be nil.
	Log *utils.Logger

	// Trace receives worker traces. It may be nil.
	Trace io.Writer

	traceM sync.Mutex
}

// NewPool creates a new pool with the number of workers. If workers
// is not positive, the pool uses one worker per CPU.
func NewPool(hasher *hashio.Hasher, workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{
		Hasher:  hasher,
		Workers: workers,
	}
}

func (p *Pool) tracef(format string, a ...interface{}) {
	if p.Trace == nil {
		return
	}
	p.traceM.Lock()
	fmt.Fprintf(p.Trace, format, a...)
	p.traceM.Unlock()
}

// Hash hashes the named files and returns the results in the order
// of names.
func (p *Pool) Hash(names []string) []Result {
	results := make([]Result, len(names))

	workers := p.Workers
	if workers > len(names) {
		workers = len(names)
	}
	if workers < 1 {
		workers = 1
	}

	ch := make(chan int)
	var wg sync.WaitGroup

	// Each worker counts into its own statistics; they are summed
	// into the pool's hasher when all workers are done.
	hashers := make([]*hashio.Hasher, workers)

	for i := 0; i < workers; i++ {
		hashers[i] = hashio.NewHasher()
		hashers[i].Decompress = p.Hasher.Decompress

		wg.Add(1)
		go func(id int, hasher *hashio.Hasher) {
			defer wg.Done()
			for idx := range ch {
				name := names[idx]
				p.tracef("worker%s: %s\n", superscript.Itoa(id), name)

				sum, err := hasher.File(name)
				results[idx] = Result{
					Name: name,
					Sum:  sum,
					Err:  err,
				}
				if err != nil && p.Log != nil {
					p.Log.Errorf(utils.Point{Source: name}, "%v", cause(err))
				}
			}
		}(i, hashers[i])
	}
	for idx := range names {
		ch <- idx
	}
	close(ch)
	wg.Wait()

	stats := p.Hasher.Stats
	for _, hasher := range hashers {
		stats = stats.Add(hasher.Stats)
	}
	p.Hasher.Stats = stats

	return results
}

// cause strips the file name from path errors since diagnostics
// already carry it.
func cause(err error) error {
	var perr *fs.PathError
	if errors.As(err, &perr) {
		return perr.Err
	}
	return err
}

// Report summarizes a checksum list verification.
type Report struct {
	OK         int
	Failed     int
	Unreadable int
}

// Success tests if all entries were verified successfully.
func (r Report) Success() bool {
	return r.Failed == 0 && r.Unreadable == 0
}

// Verify recomputes the digests of the list entries and writes one
// status line per entry to out. If quiet is true, the lines of
// successfully verified entries are omitted.
func (p *Pool) Verify(list *List, out io.Writer, quiet bool) Report {
	names := make([]string, len(list.Entries))
	for idx, entry := range list.Entries {
		names[idx] = entry.Name
	}

	var report Report
	for idx, result := range p.Hash(names) {
		if result.Err != nil {
			report.Unreadable++
			fmt.Fprintf(out, "%s: FAILED open or read\n", result.Name)
			continue
		}
		if result.Sum != list.Entries[idx].Sum {
			report.Failed++
			fmt.Fprintf(out, "%s: FAILED\n", result.Name)
			continue
		}
		report.OK++
		if !quiet {
			fmt.Fprintf(out, "%s: OK\n", result.Name)
		}
	}
	return report
}
