// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package simplefold

import (
	"unicode/utf16"
	"unicode/utf8"
)

// The functions in this file operate on UTF-8 encoded Go strings by first
// converting them to UTF-16. Invalid UTF-8 is converted to U+FFFD.

// Encode appends the UTF-16 encoding of s to dst.
func Encode(dst []uint16, s string) []uint16 {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < utf8.RuneSelf {
			dst = append(dst, uint16(c))
			continue
		}
		for _, r := range s[i:] {
			dst = utf16.AppendRune(dst, r)
		}
		break
	}
	return dst
}

// CompareString is like Compare but for UTF-8 strings.
func CompareString(a, b string) int {
	var abuf, bbuf [64]uint16
	return Compare(Encode(abuf[:0], a), Encode(bbuf[:0], b))
}

// EqualString is like Equal but for UTF-8 strings.
func EqualString(a, b string) bool {
	var abuf, bbuf [64]uint16
	return Equal(Encode(abuf[:0], a), Encode(bbuf[:0], b))
}

// HashString is like Hash but for UTF-8 strings.
func HashString(s string) uint32 {
	return defaultHasher().HashString(s)
}

// HashString is like Hash but for UTF-8 strings.
func (h *Hasher) HashString(s string) uint32 {
	var buf [64]uint16
	return h.Hash(Encode(buf[:0], s))
}

// FoldString returns s with all code points mapped to their simple case
// fold.
func FoldString(s string) string {
	var buf [64]uint16
	u := Encode(buf[:0], s)
	u = AppendFold(u[:0], u)
	return string(utf16.Decode(u))
}
