//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"hash"
)

// hasher adapts Digest to the hash.Hash interface.
type hasher struct {
	d Digest
}

// NewHash returns a new hash.Hash computing the SHA-1 checksum. Unlike
// Digest, the returned Hash can be summed any number of times and
// reset for a new message. The Hash also implements
// encoding.BinaryMarshaler and encoding.BinaryUnmarshaler.
func NewHash() hash.Hash {
	h := new(hasher)
	h.d.reset()
	return h
}

func (h *hasher) Size() int { return Size }

func (h *hasher) BlockSize() int { return BlockSize }

func (h *hasher) Reset() {
	h.d.reset()
}

// Write adds p to the message. It fails only if the message grows
// past the SHA-1 length limit.
func (h *hasher) Write(p []byte) (int, error) {
	if err := h.d.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (h *hasher) Sum(in []byte) []byte {
	// Make a copy of d so that caller can keep writing and summing.
	d0 := h.d
	sum, err := d0.Finalize()
	if err != nil {
		panic(err)
	}
	return append(in, sum[:]...)
}

func (h *hasher) MarshalBinary() ([]byte, error) {
	return h.d.MarshalBinary()
}

func (h *hasher) UnmarshalBinary(b []byte) error {
	return h.d.UnmarshalBinary(b)
}
