// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package simplefold

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlievieth/simplefold/internal/ucd"
)

// u16 returns the UTF-16 encoding of s.
func u16(s string) []uint16 { return utf16.Encode([]rune(s)) }

func loadCaseFolding(t testing.TB) ucd.FoldMap {
	t.Helper()
	m, err := ucd.LoadCaseFolding(ucd.CaseFolding())
	require.NoError(t, err)
	return m
}

func visit(rt *unicode.RangeTable, fn func(rune)) {
	for _, r16 := range rt.R16 {
		for r := rune(r16.Lo); r <= rune(r16.Hi); r += rune(r16.Stride) {
			fn(r)
		}
	}
	for _, r32 := range rt.R32 {
		for r := rune(r32.Lo); r <= rune(r32.Hi); r += rune(r32.Stride) {
			fn(r)
		}
	}
}

func TestFoldCharacter(t *testing.T) {
	tests := []struct {
		in, out uint16
	}{
		{'A', 'a'},
		{'a', 'a'},
		{'Z', 'z'},
		{'@', '@'},
		{'[', '['},
		{0x00B5, 0x03BC}, // 'µ' => 'μ'
		{0x00C0, 0x00E0}, // 'À' => 'à'
		{0x00DF, 0x00DF}, // 'ß' has no simple fold
		{0x017F, 's'},    // 'ſ' => 's'
		{0x0401, 0x0451}, // 'Ё' => 'ё'
		{0x042F, 0x044F}, // 'Я' => 'я'
		{0x05FF, 0x05FF}, // last flat entry
		{0x0600, 0x0600}, // first trie entry
		{0x10A0, 0x2D00}, // 'Ⴀ' => 'ⴀ'
		{0x1E9E, 0x00DF}, // 'ẞ' => 'ß'
		{0x212A, 'k'},    // Kelvin sign
		{0x2C00, 0x2C30},
		{0xAB70, 0x13A0}, // Cherokee folds to upper case
		{0xFF21, 0xFF41}, // 'Ａ' => 'ａ'
		{0xD800, 0xD800},
		{0xDBFF, 0xDBFF},
		{0xDC00, 0xDC00},
		{0xFFFF, 0xFFFF},
	}
	for _, test := range tests {
		if got := FoldCharacter(test.in); got != test.out {
			t.Errorf("FoldCharacter(0x%04X) = 0x%04X; want: 0x%04X", test.in, got, test.out)
		}
	}
}

func TestFoldCharacterProperties(t *testing.T) {
	for i := 0; i <= 0xFFFF; i++ {
		c := uint16(i)
		f := FoldCharacter(c)
		if ff := FoldCharacter(f); ff != f {
			t.Errorf("FoldCharacter(FoldCharacter(0x%04X)) = 0x%04X; want: 0x%04X", c, ff, f)
		}
		if isSurrogate(c) && f != c {
			t.Errorf("FoldCharacter(0x%04X) = 0x%04X; surrogates must fold to themselves", c, f)
		}
		if isSurrogate(f) && !isSurrogate(c) {
			t.Errorf("FoldCharacter(0x%04X) = 0x%04X; folded to a surrogate", c, f)
		}
	}
}

func TestFoldDataset(t *testing.T) {
	m := loadCaseFolding(t)
	for _, from := range m.Keys() {
		want := m[from]
		if from < surrSelf {
			if got := FoldCharacter(uint16(from)); got != uint16(want) {
				t.Errorf("FoldCharacter(0x%04X) = 0x%04X; want: 0x%04X", from, got, want)
			}
		}
		if got := FoldRune(from); got != want {
			t.Errorf("FoldRune(0x%04X) = 0x%04X; want: 0x%04X", from, got, want)
		}
	}
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if _, ok := m[r]; ok {
			continue
		}
		if got := FoldRune(r); got != r {
			t.Fatalf("FoldRune(0x%04X) = 0x%04X; want: 0x%04X", r, got, r)
		}
	}
}

func TestFoldRune(t *testing.T) {
	t.Run("Limits", func(t *testing.T) {
		for _, r := range []rune{-1, unicode.MaxRune + 1, unicode.MaxRune, 0x20000, 0xE0000} {
			if got := FoldRune(r); got != r {
				t.Errorf("FoldRune(0x%04X) = 0x%04X; want: 0x%04X", r, got, r)
			}
		}
	})
	t.Run("UnicodeCases", func(t *testing.T) {
		// Every fold must be within the case orbit of the code point.
		for _, rt := range unicode.Categories {
			visit(rt, func(r rune) {
				f := FoldRune(r)
				if !strings.EqualFold(string(f), string(r)) {
					t.Errorf("FoldRune(%q) = %q is an invalid fold", r, f)
				}
			})
		}
	})
}

func TestFoldSurrogatePair(t *testing.T) {
	tests := []struct {
		name     string
		hi, lo   uint16
		hi2, lo2 uint16
	}{
		{"Deseret", 0xD801, 0xDC00, 0xD801, 0xDC28}, // U+10400 => U+10428
		{"DeseretLower", 0xD801, 0xDC28, 0xD801, 0xDC28},
		{"Osage", 0xD801, 0xDCB0, 0xD801, 0xDCD8},     // U+104B0 => U+104D8
		{"Adlam", 0xD83A, 0xDD00, 0xD83A, 0xDD22},     // U+1E900 => U+1E922
		{"NoFold", 0xD800, 0xDC00, 0xD800, 0xDC00},    // U+10000
		{"Plane2", 0xD840, 0xDC00, 0xD840, 0xDC00},    // U+20000
		{"LastPlane", 0xDBFF, 0xDFFF, 0xDBFF, 0xDFFF}, // U+10FFFF
		{"Reversed", 0xDC00, 0xD801, 0xDC00, 0xD801},
		{"NotLow", 0xD801, 'a', 0xD801, 'a'},
		{"NotHigh", 'A', 0xDC00, 'A', 0xDC00},
		{"ASCII", 'A', 'B', 'A', 'B'},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			hi, lo := FoldSurrogatePair(test.hi, test.lo)
			if hi != test.hi2 || lo != test.lo2 {
				t.Errorf("FoldSurrogatePair(0x%04X, 0x%04X) = (0x%04X, 0x%04X); want: (0x%04X, 0x%04X)",
					test.hi, test.lo, hi, lo, test.hi2, test.lo2)
			}
		})
	}
}

func TestFoldSurrogatePairRoundTrip(t *testing.T) {
	m := loadCaseFolding(t)
	n := 0
	for _, from := range m.Keys() {
		if from < surrSelf {
			continue
		}
		n++
		hi, lo := utf16.EncodeRune(from)
		fhi, flo := FoldSurrogatePair(uint16(hi), uint16(lo))
		assert.Equal(t, m[from], utf16.DecodeRune(rune(fhi), rune(flo)), "0x%04X", from)
	}
	require.NotZero(t, n, "no supplementary foldings")
}

func BenchmarkFoldCharacter(b *testing.B) {
	units := u16("Hello, ΑΒΔ Ёлки-Палки ＡＢＣ ⴀⴁ")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, c := range units {
			FoldCharacter(c)
		}
	}
}
