// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package simplefold

const runeSelf = 0x80 // code units below runeSelf are ASCII

func isUpper(c uint16) bool { return 'A' <= c && c <= 'Z' }

// foldASCII folds the ASCII code unit c.
func foldASCII(c uint16) uint16 {
	if isUpper(c) {
		c |= ' '
	}
	return c
}

// isASCII reports whether s only contains ASCII code units.
func isASCII(s []uint16) bool {
	for len(s) >= 4 {
		if (s[0]|s[1]|s[2]|s[3])&^(runeSelf-1) != 0 {
			return false
		}
		s = s[4:]
	}
	for _, c := range s {
		if c >= runeSelf {
			return false
		}
	}
	return true
}

// equalASCII reports whether the ASCII strings s and t are equal under
// simple case folding.
func equalASCII(s, t []uint16) bool {
	if len(s) != len(t) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != t[i] && foldASCII(s[i]) != foldASCII(t[i]) {
			return false
		}
	}
	return true
}
