//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

// Package hashio computes SHA-1 digests of streams and files.
package hashio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/markkurossi/sha1"
	"github.com/ulikunitz/xz"
)

// Stdin is the file name that denotes the standard input.
const Stdin = "-"

// Stats implements hashing statistics. The counters are updated
// atomically so a Stats can be shared between workers. The zero Stats
// counts nothing and reads as zero.
type Stats struct {
	Bytes *atomic.Uint64
	Files *atomic.Uint64
}

// NewStats creates a new statistics object.
func NewStats() Stats {
	return Stats{
		Bytes: new(atomic.Uint64),
		Files: new(atomic.Uint64),
	}
}

func load(v *atomic.Uint64) uint64 {
	if v == nil {
		return 0
	}
	return v.Load()
}

func add(v *atomic.Uint64, delta uint64) {
	if v != nil {
		v.Add(delta)
	}
}

// Add adds the argument stats to this Stats and returns the sum.
func (stats Stats) Add(o Stats) Stats {
	bytes := new(atomic.Uint64)
	bytes.Store(load(stats.Bytes) + load(o.Bytes))

	files := new(atomic.Uint64)
	files.Store(load(stats.Files) + load(o.Files))

	return Stats{
		Bytes: bytes,
		Files: files,
	}
}

// Hasher computes digests of streams and files. Each stream is hashed
// with its own sha1.Digest so a Hasher may be used by concurrent
// workers. The zero Hasher hashes without statistics; use NewHasher
// to count the hashed data.
type Hasher struct {
	Stats Stats

	// Decompress selects whether files with the .xz suffix are
	// decompressed before hashing.
	Decompress bool
}

// NewHasher creates a new hasher.
func NewHasher() *Hasher {
	return &Hasher{
		Stats: NewStats(),
	}
}

// digestWriter feeds the bytes written to it to a digest.
type digestWriter struct {
	d *sha1.Digest
}

func (w digestWriter) Write(p []byte) (int, error) {
	if err := w.d.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Reader hashes all data from r until EOF.
func (h *Hasher) Reader(r io.Reader) ([sha1.Size]byte, error) {
	var sum [sha1.Size]byte

	d := sha1.New()

	// Page sized reads; the digest buffers only partial blocks.
	reader := bufio.NewReaderSize(r, os.Getpagesize())
	n, err := io.Copy(digestWriter{d: d}, reader)
	add(h.Stats.Bytes, uint64(n))
	if err != nil {
		return sum, err
	}
	sum, err = d.Finalize()
	if err != nil {
		return sum, err
	}
	add(h.Stats.Files, 1)

	return sum, nil
}

// File hashes the named file. The name Stdin hashes the standard
// input.
func (h *Hasher) File(name string) ([sha1.Size]byte, error) {
	var sum [sha1.Size]byte
	var in io.Reader

	if name == Stdin {
		in = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return sum, err
		}
		defer f.Close()
		in = f
	}

	if h.Decompress && strings.HasSuffix(name, ".xz") {
		r, err := xz.NewReader(in)
		if err != nil {
			return sum, fmt.Errorf("%s: %w", name, err)
		}
		in = r
	}
	return h.Reader(in)
}
