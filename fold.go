// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package simplefold

import "unicode"

const (
	// maxFlat is the largest code unit stored in _FlatFold.
	maxFlat = len(_FlatFold) - 1

	surr1    = 0xD800 // first high surrogate
	surr2    = 0xDC00 // first low surrogate
	surr3    = 0xE000 // end of the surrogate range
	surrSelf = 0x10000

	// maxSurrogateIndex is the largest surrogate pair index covered by the
	// surrogate tables: plane 1 is the only supplementary plane with
	// case foldings.
	maxSurrogateIndex = len(_SurrogateLevel1)*256 - 1
)

func isHighSurrogate(c uint16) bool { return surr1 <= c && c < surr2 }
func isLowSurrogate(c uint16) bool  { return surr2 <= c && c < surr3 }
func isSurrogate(c uint16) bool     { return surr1 <= c && c < surr3 }

// FoldCharacter returns the simple case fold of the BMP code unit c. Code
// units that have no fold, which includes surrogates, are returned
// unchanged.
func FoldCharacter(c uint16) uint16 {
	if int(c) <= maxFlat {
		return _FlatFold[c]
	}
	if v := _FoldData[int(_FoldLevel1[c>>8])+int(c&0xFF)]; v != 0 {
		return v
	}
	return c
}

// surrogateIndex returns the index of the pair (hi, lo) in the surrogate
// tables, which is the encoded code point minus 0x10000.
func surrogateIndex(hi, lo uint16) int {
	return int(hi-surr1)<<10 | int(lo-surr2)
}

// lookupPair returns the folded pair of the surrogate pair index i and
// reports if the code point has a fold.
func lookupPair(i int) ([2]uint16, bool) {
	if i > maxSurrogateIndex {
		return [2]uint16{}, false
	}
	p := _SurrogateData[int(_SurrogateLevel1[i>>8])+i&0xFF]
	return p, p != [2]uint16{}
}

// FoldSurrogatePair returns the simple case fold of the supplementary code
// point encoded by the surrogate pair (high, low). The pair is returned
// unchanged if it has no fold or is not a valid surrogate pair.
func FoldSurrogatePair(high, low uint16) (uint16, uint16) {
	if !isHighSurrogate(high) || !isLowSurrogate(low) {
		return high, low
	}
	if p, ok := lookupPair(surrogateIndex(high, low)); ok {
		return p[0], p[1]
	}
	return high, low
}

// foldPair returns the folded code point of the valid surrogate pair
// (hi, lo).
func foldPair(hi, lo uint16) rune {
	i := surrogateIndex(hi, lo)
	if p, ok := lookupPair(i); ok {
		return surrSelf + ((rune(p[0])-surr1)<<10 | (rune(p[1]) - surr2))
	}
	return rune(i) + surrSelf
}

// FoldRune returns the simple case fold of the code point r. Invalid code
// points are returned unchanged.
func FoldRune(r rune) rune {
	switch {
	case 0 <= r && r < surrSelf:
		return rune(FoldCharacter(uint16(r)))
	case surrSelf <= r && r <= unicode.MaxRune:
		r -= surrSelf
		return foldPair(uint16(surr1+(r>>10)&0x3FF), uint16(surr2+r&0x3FF))
	default:
		return r
	}
}
