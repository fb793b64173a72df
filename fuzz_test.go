// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package simplefold

import (
	"encoding/binary"
	"slices"
	"testing"
)

// units decodes b as little-endian UTF-16 code units, which lets the fuzzer
// produce unpaired surrogates.
func units(b []byte) []uint16 {
	u := make([]uint16, len(b)/2)
	for i := range u {
		u[i] = binary.LittleEndian.Uint16(b[i*2:])
	}
	return u
}

func addCorpus(f *testing.F) {
	for _, test := range CompareTests {
		a, b := Encode(nil, test.s), Encode(nil, test.t)
		f.Add(utf16Bytes(a), utf16Bytes(b))
	}
	for _, test := range surrogateCompareTests {
		f.Add(utf16Bytes(test.a), utf16Bytes(test.b))
	}
}

func utf16Bytes(u []uint16) []byte {
	b := make([]byte, 0, len(u)*2)
	for _, c := range u {
		b = binary.LittleEndian.AppendUint16(b, c)
	}
	return b
}

func FuzzCompare(f *testing.F) {
	addCorpus(f)
	h := NewHasher(0x5bd1e995)
	f.Fuzz(func(t *testing.T, x, y []byte) {
		a, b := units(x), units(y)
		ab, ba := Compare(a, b), Compare(b, a)
		if sign(ab) != -sign(ba) {
			t.Fatalf("Compare(%#04x, %#04x) = %d and Compare(%#04x, %#04x) = %d",
				a, b, ab, b, a, ba)
		}
		if Compare(a, a) != 0 {
			t.Fatalf("Compare(%#04x, %#04x) != 0", a, a)
		}
		eq := Equal(a, b)
		if eq != (ab == 0) {
			t.Fatalf("Equal(%#04x, %#04x) = %t; Compare = %d", a, b, eq, ab)
		}
		if eq && h.Hash(a) != h.Hash(b) {
			t.Fatalf("Hash(%#04x) != Hash(%#04x)", a, b)
		}
		if eq && Compare(Fold(a), b) != 0 {
			t.Fatalf("Compare(Fold(%#04x), %#04x) != 0", a, b)
		}
	})
}

func FuzzFold(f *testing.F) {
	addCorpus(f)
	f.Fuzz(func(t *testing.T, x, _ []byte) {
		s := units(x)
		folded := Fold(s)
		if len(folded) != len(s) {
			t.Fatalf("len(Fold(%#04x)) = %d; want: %d", s, len(folded), len(s))
		}
		if !Equal(folded, s) {
			t.Fatalf("Fold(%#04x) = %#04x is not Equal to its input", s, folded)
		}
		if again := Fold(folded); !slices.Equal(again, folded) {
			t.Fatalf("Fold is not idempotent: %#04x => %#04x", folded, again)
		}
		if IndexInvalidSurrogate(s) == -1 && IndexInvalidSurrogate(folded) != -1 {
			t.Fatalf("Fold(%#04x) = %#04x introduced an unpaired surrogate", s, folded)
		}
	})
}
