// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package simplefold

// surrogateOrder orders the unequal code units a and b at a position where
// at least one of them is a surrogate that can not be compared as part of
// a pair. A high surrogate sorts after anything else since it starts a
// supplementary code point, otherwise the raw code units are compared.
func surrogateOrder(a, b uint16) int {
	ha, hb := isHighSurrogate(a), isHighSurrogate(b)
	switch {
	case ha && !hb:
		return 1
	case hb && !ha:
		return -1
	case a < b:
		return -1
	default:
		return 1
	}
}

// Compare compares a and b under simple case folding. The result is the
// difference between the first pair of folded code points that differ or,
// if one is a prefix of the other, the difference between their lengths.
// Only the sign of the result is meaningful for ordering.
//
// Unpaired surrogates are compared as opaque code units: equal units are
// equal and unequal units order as +1 or -1.
func Compare(a, b []uint16) int {
	n := min(len(a), len(b))
	i := 0
	for i < n {
		ca, cb := a[i], b[i]

		// Flat table
		if int(ca) <= maxFlat && int(cb) <= maxFlat {
			if ca != cb {
				fa, fb := _FlatFold[ca], _FlatFold[cb]
				if fa != fb {
					return int(fa) - int(fb)
				}
			}
			i++
			continue
		}

		// BMP
		if !isSurrogate(ca) && !isSurrogate(cb) {
			if ca != cb {
				fa, fb := FoldCharacter(ca), FoldCharacter(cb)
				if fa != fb {
					return int(fa) - int(fb)
				}
			}
			i++
			continue
		}

		// Surrogate pairs
		pa := isHighSurrogate(ca) && i+1 < len(a) && isLowSurrogate(a[i+1])
		pb := isHighSurrogate(cb) && i+1 < len(b) && isLowSurrogate(b[i+1])
		if pa && pb {
			ra, rb := foldPair(ca, a[i+1]), foldPair(cb, b[i+1])
			if ra != rb {
				return int(ra - rb)
			}
			i += 2
			continue
		}
		if ca != cb {
			return surrogateOrder(ca, cb)
		}
		i++
	}
	return len(a) - len(b)
}

// Equal reports whether a and b are equal under simple case folding.
func Equal(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	if isASCII(a) && isASCII(b) {
		return equalASCII(a, b)
	}
	return Compare(a, b) == 0
}

// Compare is like the package level Compare function but under the Reject
// policy an unpaired surrogate in either a or b is reported as an error.
func (f *Folder) Compare(a, b []uint16) (int, error) {
	if err := f.check(a, b); err != nil {
		return 0, err
	}
	return Compare(a, b), nil
}

// Equal is like the package level Equal function but under the Reject
// policy an unpaired surrogate in either a or b is reported as an error.
func (f *Folder) Equal(a, b []uint16) (bool, error) {
	if err := f.check(a, b); err != nil {
		return false, err
	}
	return Equal(a, b), nil
}
