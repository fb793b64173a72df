// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package ucd

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testData = `# CaseFolding-test.txt
#
# Format: <code>; <status>; <mapping>; # <name>

0041; C; 0061; # LATIN CAPITAL LETTER A

00DF; F; 0073 0073; # LATIN SMALL LETTER SHARP S
0049; C; 0069; # LATIN CAPITAL LETTER I
0049; T; 0131; # LATIN CAPITAL LETTER I
1E9E; F; 0073 0073; # LATIN CAPITAL LETTER SHARP S
1E9E; S; 00DF; # LATIN CAPITAL LETTER SHARP S
10400; C; 10428; # DESERET CAPITAL LETTER LONG I
#
# EOF
`

func TestParser(t *testing.T) {
	p := New(strings.NewReader(testData))
	var lines []int
	var fields [][]string
	for p.Next() {
		lines = append(lines, p.Line())
		var a []string
		for i := 0; i < p.NumFields(); i++ {
			a = append(a, p.String(i))
		}
		fields = append(fields, a)
	}
	require.NoError(t, p.Err())
	assert.Equal(t, []int{5, 7, 8, 9, 10, 11, 12}, lines)
	assert.Equal(t, []string{"0041", "C", "0061"}, fields[0])
	assert.Equal(t, []string{"00DF", "F", "0073 0073"}, fields[1])
}

func TestParserRunes(t *testing.T) {
	p := New(strings.NewReader("00DF; F; 0073 0073;\n"))
	require.True(t, p.Next())
	assert.Equal(t, rune(0xDF), p.Rune(0))
	assert.Equal(t, []rune{'s', 's'}, p.Runes(2))
	require.NoError(t, p.Err())
}

func TestParserErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"BadHex", "00ZZ; C; 0061;\n"},
		{"TooLarge", "110000; C; 0061;\n"},
		{"MissingField", "0041; C\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadCaseFolding(strings.NewReader(test.in))
			require.Error(t, err)
			var pe *ParseError
			if assert.True(t, errors.As(err, &pe)) {
				assert.Equal(t, 1, pe.Line)
			}
		})
	}
}

func TestLoadCaseFolding(t *testing.T) {
	m, err := LoadCaseFolding(strings.NewReader(testData))
	require.NoError(t, err)
	want := FoldMap{
		0x0041:  0x0061,
		0x0049:  0x0069,
		0x1E9E:  0x00DF,
		0x10400: 0x10428,
	}
	assert.Equal(t, want, m)
	assert.Equal(t, []rune{0x0041, 0x0049, 0x1E9E, 0x10400}, m.Keys())
	assert.Equal(t, rune('a'), m.Fold('A'))
	assert.Equal(t, rune('b'), m.Fold('b'))

	bmp, supp := m.Split()
	assert.Len(t, bmp, 3)
	assert.Equal(t, FoldMap{0x0400: 0x10428}, supp)
}

func TestLoadCaseFoldingDuplicate(t *testing.T) {
	const in = "0041; C; 0061;\n0041; S; 0062;\n"
	_, err := LoadCaseFolding(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestEmbeddedCaseFolding(t *testing.T) {
	m, err := LoadCaseFolding(CaseFolding())
	require.NoError(t, err)
	// Spot check some well known simple foldings.
	for from, to := range map[rune]rune{
		'A':     'a',
		'Z':     'z',
		0x00C0:  0x00E0, // 'À' => 'à'
		0x0401:  0x0451, // 'Ё' => 'ё'
		0x03A3:  0x03C3, // 'Σ' => 'σ'
		0x03C2:  0x03C3, // 'ς' => 'σ'
		0x017F:  0x0073, // 'ſ' => 's'
		0x212A:  0x006B, // 'K' => 'k'
		0x1E9E:  0x00DF, // 'ẞ' => 'ß'
		0xAB70:  0x13A0, // Cherokee folds to upper case
		0x10400: 0x10428,
		0x1E900: 0x1E922,
	} {
		assert.Equal(t, to, m.Fold(from), "Fold(0x%04X)", from)
	}
	// Full and Turkic foldings must be excluded.
	for _, r := range []rune{0x00DF, 0x0130, 0xFB00} {
		_, ok := m[r]
		assert.False(t, ok, "unexpected mapping for 0x%04X", r)
	}
	for k, v := range m {
		if v == 0 {
			t.Errorf("0x%04X folds to NUL", k)
		}
	}
}
