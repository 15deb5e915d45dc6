//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"bytes"
	gosha1 "crypto/sha1"
	"encoding"
	"errors"
	"math"
	"testing"

	"github.com/markkurossi/sha1/prg"
)

func TestMarshalResume(t *testing.T) {
	data := prg.Bytes([]byte("marshal"), 1000)
	expected := Sum(data)

	for _, split := range []int{0, 1, 55, 63, 64, 65, 500, 1000} {
		d := New()
		if err := d.Update(data[:split]); err != nil {
			t.Fatal(err)
		}
		state, err := d.MarshalBinary()
		if err != nil {
			t.Fatalf("MarshalBinary: %v", err)
		}
		if len(state) != marshaledSize {
			t.Fatalf("marshaled %d bytes, expected %d", len(state),
				marshaledSize)
		}

		var d2 Digest
		if err := d2.UnmarshalBinary(state); err != nil {
			t.Fatalf("UnmarshalBinary: %v", err)
		}
		if d2.Status() != Active || d2.Len() != uint64(split) {
			t.Fatalf("restored digest: status=%v, len=%v", d2.Status(),
				d2.Len())
		}
		if err := d2.Update(data[split:]); err != nil {
			t.Fatal(err)
		}
		sum, err := d2.Finalize()
		if err != nil {
			t.Fatal(err)
		}
		if sum != expected {
			t.Errorf("split=%d: got %x, expected %x", split, sum, expected)
		}
	}
}

func TestMarshalCompatible(t *testing.T) {
	data := prg.Bytes([]byte("compatible"), 777)
	expected := gosha1.Sum(data)

	// Our state continued by crypto/sha1.
	d := New()
	if err := d.Update(data[:300]); err != nil {
		t.Fatal(err)
	}
	state, err := d.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	h := gosha1.New()
	if err := h.(encoding.BinaryUnmarshaler).UnmarshalBinary(state); err != nil {
		t.Fatalf("crypto/sha1 UnmarshalBinary: %v", err)
	}
	h.Write(data[300:])
	if !bytes.Equal(h.Sum(nil), expected[:]) {
		t.Errorf("crypto/sha1 resumed: got %x, expected %x", h.Sum(nil),
			expected)
	}

	// crypto/sha1 state continued by us.
	h = gosha1.New()
	h.Write(data[:450])
	state, err = h.(encoding.BinaryMarshaler).MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	d = New()
	if err := d.UnmarshalBinary(state); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if err := d.Update(data[450:]); err != nil {
		t.Fatal(err)
	}
	sum, err := d.Finalize()
	if err != nil {
		t.Fatal(err)
	}
	if sum != expected {
		t.Errorf("resumed: got %x, expected %x", sum, expected)
	}
}

func TestMarshalErrors(t *testing.T) {
	d := New()
	if _, err := d.Finalize(); err != nil {
		t.Fatal(err)
	}
	if _, err := d.MarshalBinary(); !errors.Is(err, ErrState) {
		t.Errorf("MarshalBinary of finalized digest: %v", err)
	}

	state, err := New().MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	var d2 Digest
	if err := d2.UnmarshalBinary(state[:10]); err != errInvalidSize {
		t.Errorf("short state: %v", err)
	}
	if err := d2.UnmarshalBinary([]byte("md5\x01")); err != errInvalidMagic {
		t.Errorf("bad magic: %v", err)
	}

	huge := bytes.Clone(state)
	for i := len(huge) - 8; i < len(huge); i++ {
		huge[i] = 0xff
	}
	if err := d2.UnmarshalBinary(huge); err != errInvalidLen {
		t.Errorf("huge length: %v", err)
	}
}

func TestUnmarshalRevives(t *testing.T) {
	state, err := New().MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	d := New()
	d.corrupt(ErrInputTooLong)
	if err := d.UnmarshalBinary(state); err != nil {
		t.Fatal(err)
	}
	if d.Status() != Active {
		t.Errorf("restored digest is %v", d.Status())
	}
	d.bits = math.MaxUint64 - 7
	if err := d.Update([]byte{1}); !errors.Is(err, ErrInputTooLong) {
		t.Errorf("Update past limit: %v", err)
	}
}
