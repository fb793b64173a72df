// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package simplefold

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type CompareTest struct {
	s, t string
	out  int
}

var CompareTests = []CompareTest{
	{"", "", 0},
	{"a", "a", 0},
	{"a", "ab", -1},
	{"ab", "a", 1},
	{"123abc", "123ABC", 0},
	{"αβδ", "ΑΒΔ", 0},
	{"αβδa", "ΑΒΔ", 1},
	{"αβδ", "ΑΒΔa", -1},
	{"αβa", "ΑΒΔ", 'a' - 'δ'},
	{"αβδ", "ΑΒa", 'δ' - 'a'},
	{"Hello", "Hello1", -1},
	{"Hello1", "Hello", 1},
	{"Hello1", "Hello2", -1},
	{"AAA", "aaa", 0},
	{"BaC", "bAc", 0},
	{"Ёлки-Палки", "ёлки-палкИ", 0},
	{"Ёлки-ПалкиЯ", "ёлки-палкИq", 'я' - 'q'},
	{"Hello", "There", 'h' - 't'},
	{"", "Hello", -5},
	{"\x00AAAAAAAAA", "\x00BBBBBBBBBBBB", 'a' - 'b'},
	{"ſ", "S", 0},
	{"\u212A", "k", 0}, // Kelvin sign
	{"ẞ", "ß", 0},
	{"ß", "ss", 'ß' - 's'},
	{"ＡＢＣ", "ａｂｃ", 0},
	{"𐐀", "𐐨", 0},
	{"𐐀", "𐐩", -1},
	{"𐐀x", "𐐨X", 0},
	{"a𞤀", "A𞤢", 0},
	{"𐐀", "a", 1},
	{"ａ", "𐐀", -1},
}

func TestCompare(t *testing.T) {
	for _, test := range CompareTests {
		got := Compare(u16(test.s), u16(test.t))
		if got != test.out {
			t.Errorf("Compare(%q, %q) = %d; want: %d", test.s, test.t, got, test.out)
		}
	}
}

var surrogateCompareTests = []struct {
	a, b []uint16
	out  int
}{
	{[]uint16{0xD800}, []uint16{0xD800}, 0},
	{[]uint16{0xD800}, []uint16{'a'}, 1},
	{[]uint16{'a'}, []uint16{0xD800}, -1},
	{[]uint16{0xDC00}, []uint16{'a'}, 1},
	{[]uint16{0xDC00}, []uint16{0xFF21}, -1},
	{[]uint16{0xDC00}, []uint16{0xD800}, -1},
	{[]uint16{0xD801, 0xDC00}, []uint16{0xFF21}, 1},
	{[]uint16{0xD801, 0xDC00}, []uint16{0xD801}, 1},
	{[]uint16{0xD801}, []uint16{0xD801, 0xDC00}, -1},
	{[]uint16{0xD801, 'a'}, []uint16{0xD801, 'A'}, 0},
	{[]uint16{0xD801, 0xDC00}, []uint16{0xD801, 'A'}, 1},
	{[]uint16{0xD800, 0xDC00}, []uint16{0xD800, 0xDC01}, -1},
	{[]uint16{0xD801, 0xDC00}, []uint16{0xD801, 0xDC28}, 0},
	{[]uint16{0xD801, 0xDC00, 0xDC00}, []uint16{0xD801, 0xDC28, 0xDC00}, 0},
	{[]uint16{0xDBFF, 0xDFFF}, []uint16{0xDBFF, 0xDFFF}, 0},
}

func TestCompareSurrogates(t *testing.T) {
	for _, test := range surrogateCompareTests {
		got := Compare(test.a, test.b)
		if got != test.out {
			t.Errorf("Compare(%#04x, %#04x) = %d; want: %d", test.a, test.b, got, test.out)
		}
		if rev := Compare(test.b, test.a); sign(rev) != -sign(test.out) {
			t.Errorf("Compare(%#04x, %#04x) = %d; want sign: %d", test.b, test.a, rev, -sign(test.out))
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// compareCorpus returns the inputs of all the Compare tests.
func compareCorpus() [][]uint16 {
	var all [][]uint16
	for _, test := range CompareTests {
		all = append(all, u16(test.s), u16(test.t))
	}
	for _, test := range surrogateCompareTests {
		all = append(all, test.a, test.b)
	}
	for _, test := range foldTests {
		all = append(all, test.in, test.out)
	}
	return all
}

func TestCompareProperties(t *testing.T) {
	corpus := compareCorpus()
	h := NewHasher(0x9747b28c)
	for _, a := range corpus {
		if c := Compare(a, a); c != 0 {
			t.Errorf("Compare(%#04x, %#04x) = %d; want: 0", a, a, c)
		}
		for _, b := range corpus {
			ab := Compare(a, b)
			ba := Compare(b, a)
			if sign(ab) != -sign(ba) {
				t.Errorf("Compare(%#04x, %#04x) = %d and Compare(%#04x, %#04x) = %d",
					a, b, ab, b, a, ba)
			}
			eq := Equal(a, b)
			if eq != (ab == 0) {
				t.Errorf("Equal(%#04x, %#04x) = %t; Compare = %d", a, b, eq, ab)
			}
			if eq && h.Hash(a) != h.Hash(b) {
				t.Errorf("Hash(%#04x) != Hash(%#04x) for equal inputs", a, b)
			}
		}
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		s, t string
		out  bool
	}{
		{"", "", true},
		{"abc", "ABC", true},
		{"abc", "ABD", false},
		{"abc", "abcd", false},
		{"@", "`", false},
		{"[", "{", false},
		{"Ёлки-Палки", "ёлки-палкИ", true},
		{"straße", "STRASSE", false},
		{"ſ", "s", true},
		{"𐐀𐐁", "𐐨𐐩", true},
	}
	for _, test := range tests {
		got := Equal(u16(test.s), u16(test.t))
		if got != test.out {
			t.Errorf("Equal(%q, %q) = %t; want: %t", test.s, test.t, got, test.out)
		}
	}
}

func TestFolderCompare(t *testing.T) {
	bad := []uint16{'a', 0xD800}
	good := u16("A")

	var f Folder
	c, err := f.Compare(bad, good)
	require.NoError(t, err)
	assert.Equal(t, Compare(bad, good), c)

	f.Policy = Reject
	c, err = f.Compare(good, u16("a"))
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	_, err = f.Compare(good, bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSurrogate))

	_, err = f.Equal(bad, bad)
	var se *SurrogateError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 1, se.Index)

	eq, err := f.Equal(u16("Ёлки"), u16("ёЛКИ"))
	require.NoError(t, err)
	assert.True(t, eq)
}

func BenchmarkCompare(b *testing.B) {
	b.Run("Tests", func(b *testing.B) {
		tests := make([][2][]uint16, len(CompareTests))
		for i, tt := range CompareTests {
			tests[i] = [2][]uint16{u16(tt.s), u16(tt.t)}
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for j, tt := range tests {
				if out := Compare(tt[0], tt[1]); out != CompareTests[j].out {
					b.Fatal("wrong result")
				}
			}
		}
	})

	s1 := u16("abcdefghijKz")
	s2 := u16("abcDefGhijKz")

	b.Run("ASCII", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Compare(s1, s2)
		}
	})

	u1 := u16("Ёлки-Палки ΑΒΔ ⴀⴁⴂ")
	u2 := u16("ёлки-палкИ αβδ ႠႡႢ")

	b.Run("Unicode", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Compare(u1, u2)
		}
	})

	p1 := u16("𐐀𐐁𐐂𐐃𐐄𐐅")
	p2 := u16("𐐨𐐩𐐪𐐫𐐬𐐭")

	b.Run("Surrogates", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Compare(p1, p2)
		}
	})
}
