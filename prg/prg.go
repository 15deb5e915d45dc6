//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package prg implements a deterministic pseudo-random byte source
// for reproducible test and benchmark messages.
package prg

import (
	"golang.org/x/crypto/chacha20"
)

// Reader produces the ChaCha20 keystream of a seed. Readers created
// with the same seed produce identical streams.
type Reader struct {
	cipher *chacha20.Cipher
}

// New creates a keystream reader for the seed. The seed may be any
// length; it is repeated or truncated to form the 32-byte key. The
// nonce is zero.
func New(seed []byte) *Reader {
	key := make([]byte, chacha20.KeySize)
	if len(seed) > 0 {
		for i := 0; i < len(key); i++ {
			key[i] = seed[i%len(seed)]
		}
	}
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		// Key and nonce sizes are fixed above.
		panic(err)
	}
	return &Reader{
		cipher: c,
	}
}

// Read implements io.Reader. It always fills p.
func (r *Reader) Read(p []byte) (int, error) {
	// XOR of zeros gives the keystream directly.
	clear(p)
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// Bytes returns the first n keystream bytes of seed.
func Bytes(seed []byte, n int) []byte {
	out := make([]byte, n)
	New(seed).Read(out)
	return out
}
