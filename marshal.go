//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"encoding/binary"
	"errors"
	"math"
)

// The marshaled state uses the same layout as Go's crypto/sha1 so
// that states can be moved between the two implementations.
const (
	magic         = "sha\x01"
	marshaledSize = len(magic) + 5*4 + BlockSize + 8
)

var (
	errInvalidMagic = errors.New("sha1: invalid hash state identifier")
	errInvalidSize  = errors.New("sha1: invalid hash state size")
	errInvalidLen   = errors.New("sha1: invalid hash state length")
)

// MarshalBinary implements encoding.BinaryMarshaler. Only Active
// digests can be marshaled.
func (d *Digest) MarshalBinary() ([]byte, error) {
	return d.AppendBinary(make([]byte, 0, marshaledSize))
}

// AppendBinary implements encoding.BinaryAppender.
func (d *Digest) AppendBinary(b []byte) ([]byte, error) {
	switch d.status {
	case Active:
	case Finalized:
		return nil, ErrState
	default:
		return nil, d.err
	}
	b = append(b, magic...)
	for _, v := range d.h {
		b = binary.BigEndian.AppendUint32(b, v)
	}
	b = append(b, d.block[:d.nblock]...)
	b = append(b, make([]byte, BlockSize-d.nblock)...)
	b = binary.BigEndian.AppendUint64(b, d.bits>>3)
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The digest
// is restored to the Active state of the marshaled computation.
func (d *Digest) UnmarshalBinary(b []byte) error {
	if len(b) < len(magic) || string(b[:len(magic)]) != magic {
		return errInvalidMagic
	}
	if len(b) != marshaledSize {
		return errInvalidSize
	}
	b = b[len(magic):]

	var h [5]uint32
	for i := range h {
		h[i] = binary.BigEndian.Uint32(b)
		b = b[4:]
	}
	var block [BlockSize]byte
	b = b[copy(block[:], b):]

	length := binary.BigEndian.Uint64(b)
	if length > math.MaxUint64>>3 {
		return errInvalidLen
	}

	d.reset()
	d.h = h
	d.block = block
	d.bits = length << 3
	d.nblock = int(length % BlockSize)
	clear(d.block[d.nblock:])

	return nil
}
