// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package simplefold

// IndexFolded returns the index of the first code unit in s that folds to
// the same value as c, or -1 if there is none. Surrogates only match
// themselves.
func IndexFolded(s []uint16, c uint16) int {
	fc := FoldCharacter(c)
	if c < runeSelf && (fc < 'a' || fc > 'z') {
		// Not a letter: the only match is c itself.
		for i, x := range s {
			if x == c {
				return i
			}
		}
		return -1
	}
	for i, x := range s {
		if x == c || FoldCharacter(x) == fc {
			return i
		}
	}
	return -1
}

// LastIndexFolded returns the index of the last code unit in s that folds
// to the same value as c, or -1 if there is none.
func LastIndexFolded(s []uint16, c uint16) int {
	fc := FoldCharacter(c)
	for i := len(s) - 1; i >= 0; i-- {
		if x := s[i]; x == c || FoldCharacter(x) == fc {
			return i
		}
	}
	return -1
}

// ContainsFolded reports whether any code unit of s folds to the same
// value as c.
func ContainsFolded(s []uint16, c uint16) bool {
	return IndexFolded(s, c) >= 0
}
