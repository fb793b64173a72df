// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package ucd

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"slices"

	"golang.org/x/exp/maps"
)

// CaseFoldingVersion is the Unicode version of the embedded CaseFolding.txt.
const CaseFoldingVersion = "14.0.0"

//go:embed CaseFolding.txt
var caseFoldingTxt []byte

// CaseFolding returns a reader over the embedded CaseFolding.txt.
func CaseFolding() io.Reader {
	return bytes.NewReader(caseFoldingTxt)
}

// SupplementaryStart is the first code point outside the BMP.
const SupplementaryStart = 0x10000

// FoldMap maps a code point to its simple case fold. Code points that are
// not present fold to themselves.
type FoldMap map[rune]rune

// Fold returns the fold of r.
func (m FoldMap) Fold(r rune) rune {
	if f, ok := m[r]; ok {
		return f
	}
	return r
}

// Keys returns the code points of m in ascending order.
func (m FoldMap) Keys() []rune {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// Split splits m into the mappings of BMP code points and the mappings of
// supplementary code points. The keys of supp are normalized by subtracting
// SupplementaryStart, its values are not.
func (m FoldMap) Split() (bmp, supp FoldMap) {
	bmp = make(FoldMap)
	supp = make(FoldMap)
	for k, v := range m {
		if k < SupplementaryStart {
			bmp[k] = v
		} else {
			supp[k-SupplementaryStart] = v
		}
	}
	return bmp, supp
}

// LoadCaseFolding reads a CaseFolding.txt formatted file and returns the
// simple case folding, which is the mappings with status 'C' (common) or
// 'S' (simple).
func LoadCaseFolding(r io.Reader) (FoldMap, error) {
	m := make(FoldMap)
	err := Parse(r, func(p *Parser) {
		if p.NumFields() < 3 {
			p.setErr(fmt.Errorf("expected 3 or more fields got: %d", p.NumFields()))
			return
		}
		status := p.String(1)
		if status != "C" && status != "S" {
			return // full ('F') and Turkic ('T') mappings are not simple
		}
		from := p.Rune(0)
		to := p.Rune(2)
		if p.Err() != nil {
			return
		}
		if prev, ok := m[from]; ok && prev != to {
			p.setErr(fmt.Errorf("duplicate mapping for U+%04X: U+%04X and U+%04X", from, prev, to))
			return
		}
		m[from] = to
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}
