// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package simplefold

import "testing"

func TestIndexFolded(t *testing.T) {
	tests := []struct {
		s     string
		c     rune
		first int
		last  int
	}{
		{"", 'a', -1, -1},
		{"abc", 'd', -1, -1},
		{"abcABC", 'b', 1, 4},
		{"abcABC", 'B', 1, 4},
		{"xyz@", '@', 3, 3},
		{"xyz`", '@', -1, -1},
		{"Ёлки-Палки", 'ё', 0, 0},
		{"Ёлки-Палки", 'К', 2, 8},
		{"ſtop", 's', 0, 0},
		{"Stop", 'ſ', 0, 0},
		{"Temp 300K", 'k', 8, 8},
		{"ẞ ß", 'ß', 0, 2},
	}
	for _, test := range tests {
		s := u16(test.s)
		c := uint16(test.c)
		if got := IndexFolded(s, c); got != test.first {
			t.Errorf("IndexFolded(%q, %q) = %d; want: %d", test.s, test.c, got, test.first)
		}
		if got := LastIndexFolded(s, c); got != test.last {
			t.Errorf("LastIndexFolded(%q, %q) = %d; want: %d", test.s, test.c, got, test.last)
		}
		if got := ContainsFolded(s, c); got != (test.first >= 0) {
			t.Errorf("ContainsFolded(%q, %q) = %t; want: %t", test.s, test.c, got, test.first >= 0)
		}
	}
}

func TestIndexFoldedSurrogates(t *testing.T) {
	s := []uint16{'a', 0xD801, 0xDC00, 0xDC00}
	if got := IndexFolded(s, 0xDC00); got != 2 {
		t.Errorf("IndexFolded(%#04x, 0xDC00) = %d; want: 2", s, got)
	}
	if got := LastIndexFolded(s, 0xDC00); got != 3 {
		t.Errorf("LastIndexFolded(%#04x, 0xDC00) = %d; want: 3", s, got)
	}
	if got := IndexFolded(s, 0xD800); got != -1 {
		t.Errorf("IndexFolded(%#04x, 0xD800) = %d; want: -1", s, got)
	}
}

func BenchmarkIndexFolded(b *testing.B) {
	s := u16("Ёлки-Палки Ёлки-Палки Ёлки-Палки Hello, World!")
	for i := 0; i < b.N; i++ {
		IndexFolded(s, 'w')
	}
}
