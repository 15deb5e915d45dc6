//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha1 implements the SHA-1 hash algorithm as defined in RFC
// 3174 as an incremental digest engine. Message bytes are fed to the
// engine with Update in any number of chunks and the 20-byte digest is
// produced exactly once with Finalize.
//
// SHA-1 is cryptographically broken and should not be used for secure
// applications.
package sha1

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// The size of a SHA-1 checksum in bytes.
const Size = 20

// The blocksize of SHA-1 in bytes.
const BlockSize = 64

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0

	// Offset of the 64-bit message length in the final block.
	lengthOffset = BlockSize - 8
)

var (
	// ErrInputTooLong is returned when the message would exceed
	// 2^64-1 bits. The digest is corrupted after this error.
	ErrInputTooLong = errors.New("sha1: input too long")

	// ErrState is returned when a digest is used after it has been
	// finalized. The digest is corrupted after this error.
	ErrState = errors.New("sha1: digest already finalized")
)

// Status defines the life-cycle state of a digest.
type Status int

// Digest states.
const (
	Active Status = iota
	Finalized
	Corrupted
)

var statuses = map[Status]string{
	Active:    "active",
	Finalized: "finalized",
	Corrupted: "corrupted",
}

func (s Status) String() string {
	name, ok := statuses[s]
	if ok {
		return name
	}
	return fmt.Sprintf("{Status %d}", s)
}

// Digest holds the running state of one SHA-1 computation. A Digest
// is owned by one caller at a time; independent messages need
// independent Digests.
type Digest struct {
	h      [5]uint32
	block  [BlockSize]byte
	nblock int
	bits   uint64
	status Status
	err    error
}

// New creates a new digest in the Active state.
func New() *Digest {
	d := new(Digest)
	d.reset()
	return d
}

func (d *Digest) reset() {
	d.h[0] = init0
	d.h[1] = init1
	d.h[2] = init2
	d.h[3] = init3
	d.h[4] = init4
	clear(d.block[:])
	d.nblock = 0
	d.bits = 0
	d.status = Active
	d.err = nil
}

// Status returns the digest's current state.
func (d *Digest) Status() Status {
	return d.status
}

// Len returns the number of message bytes consumed so far.
func (d *Digest) Len() uint64 {
	return d.bits >> 3
}

// check verifies that the digest accepts operations. A finalized
// digest becomes corrupted on its first misuse and every later call
// returns the same error.
func (d *Digest) check() error {
	switch d.status {
	case Active:
		return nil

	case Finalized:
		d.corrupt(ErrState)
	}
	return d.err
}

func (d *Digest) corrupt(err error) {
	d.status = Corrupted
	d.err = err
}

// Update adds data to the message. Empty data is a no-op. Full
// 64-byte blocks are compressed as soon as they are available so at
// most 63 bytes stay buffered between calls.
func (d *Digest) Update(data []byte) error {
	if err := d.check(); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if uint64(len(data)) > (math.MaxUint64-d.bits)>>3 {
		d.corrupt(ErrInputTooLong)
		return d.err
	}
	d.bits += uint64(len(data)) << 3

	if d.nblock > 0 {
		n := copy(d.block[d.nblock:], data)
		d.nblock += n
		if d.nblock == BlockSize {
			Block(&d.h, d.block[:])
			d.nblock = 0
		}
		data = data[n:]
	}
	if len(data) >= BlockSize {
		n := len(data) &^ (BlockSize - 1)
		Block(&d.h, data[:n])
		data = data[n:]
	}
	if len(data) > 0 {
		d.nblock = copy(d.block[:], data)
	}
	return nil
}

// Finalize pads the message, compresses the final block(s), and
// returns the digest. The digest moves to the Finalized state and
// accepts no further operations.
func (d *Digest) Finalize() ([Size]byte, error) {
	var digest [Size]byte

	if err := d.check(); err != nil {
		return digest, err
	}
	length := d.bits

	// Padding. Add a 1 bit and 0 bits until 56 bytes mod 64. If the
	// length does not fit into this block, it goes to the next one.
	d.block[d.nblock] = 0x80
	d.nblock++
	if d.nblock > lengthOffset {
		clear(d.block[d.nblock:])
		Block(&d.h, d.block[:])
		d.nblock = 0
	}
	clear(d.block[d.nblock:lengthOffset])

	// Length in bits.
	binary.BigEndian.PutUint64(d.block[lengthOffset:], length)
	Block(&d.h, d.block[:])

	for i, v := range d.h {
		binary.BigEndian.PutUint32(digest[i*4:], v)
	}

	clear(d.block[:])
	d.nblock = 0
	d.bits = 0
	d.status = Finalized

	return digest, nil
}

// Sum returns the SHA-1 checksum of the data.
func Sum(data []byte) [Size]byte {
	var d Digest
	d.reset()
	// A single slice can't hold 2^61 bytes so Update can't fail.
	d.Update(data)
	sum, _ := d.Finalize()
	return sum
}
