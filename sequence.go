// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package simplefold

import "slices"

// foldInto writes the simple case fold of src to dst, which must be at
// least as long as src. dst may alias src. Under the Reject policy the
// index of the first unpaired surrogate is returned, otherwise -1.
func foldInto(dst, src []uint16, policy SurrogatePolicy) int {
	dst = dst[:len(src)]
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c < runeSelf:
			dst[i] = foldASCII(c)
		case !isSurrogate(c):
			dst[i] = FoldCharacter(c)
		case isHighSurrogate(c) && i+1 < len(src) && isLowSurrogate(src[i+1]):
			dst[i], dst[i+1] = FoldSurrogatePair(c, src[i+1])
			i++
		default:
			if policy == Reject {
				return i
			}
			dst[i] = c
		}
	}
	return -1
}

// AppendFold appends the simple case fold of s to dst and returns the
// extended slice. The folded text has the same length as s. Unpaired
// surrogates are copied through unchanged.
//
// To fold s in place use:
//
//	s = AppendFold(s[:0], s)
func AppendFold(dst, s []uint16) []uint16 {
	n := len(dst)
	dst = slices.Grow(dst, len(s))[:n+len(s)]
	foldInto(dst[n:], s, PassThrough)
	return dst
}

// Fold returns a copy of s with all code points mapped to their simple case
// fold.
func Fold(s []uint16) []uint16 {
	return AppendFold(make([]uint16, 0, len(s)), s)
}

// AppendFold appends the simple case fold of s to dst. Under the Reject
// policy an unpaired surrogate in s is reported as a *SurrogateError and
// dst is returned with its original length, though s is partially
// overwritten if it was being folded in place.
func (f *Folder) AppendFold(dst, s []uint16) ([]uint16, error) {
	policy := PassThrough
	if f != nil {
		policy = f.Policy
	}
	n := len(dst)
	dst = slices.Grow(dst, len(s))[:n+len(s)]
	if i := foldInto(dst[n:], s, policy); i >= 0 {
		return dst[:n], &SurrogateError{Index: i, Unit: s[i]}
	}
	return dst, nil
}
