// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package tablegen builds the simple case folding lookup tables used by
// simplefold.
//
// BMP code units below FlatSize are stored in a flat table. All other code
// units are looked up in a two-level trie: the high byte selects an offset
// into a data table of 256 entry rows and the low byte selects the entry
// within the row. Identical rows are only stored once. Supplementary code
// points use a second trie keyed by the code point minus 0x10000 whose
// entries are the folded code point encoded as a surrogate pair.
package tablegen

import (
	"errors"
	"fmt"
	"math"
	"unicode"
	"unicode/utf16"

	"golang.org/x/text/unicode/rangetable"

	"github.com/charlievieth/simplefold/internal/ucd"
)

const (
	// FlatSize is the number of code units stored in the flat table.
	FlatSize = 0x600
	// RowSize is the number of entries in a data row.
	RowSize = 256
	// Level1Size is the number of entries in a level 1 index.
	Level1Size = 256

	// MaxSurrogateIndex is the largest normalized supplementary code point
	// (code point - 0x10000) that the surrogate tables can index.
	MaxSurrogateIndex = Level1Size*RowSize - 1
)

// Pair is a UTF-16 surrogate pair: {high, low}.
type Pair [2]uint16

// Tables are the lookup tables generated from a FoldMap.
type Tables struct {
	Flat            []uint16 // len == FlatSize
	Level1          []uint16 // len == Level1Size
	Data            []uint16 // len % RowSize == 0
	SurrogateLevel1 []uint16 // len == Level1Size
	SurrogateData   []Pair   // len % RowSize == 0
}

var (
	errFoldToNUL      = errors.New("tablegen: mapping to U+0000 conflicts with the identity sentinel")
	errSurrogate      = errors.New("tablegen: surrogate code point")
	errOutOfRange     = errors.New("tablegen: code point out of table range")
	errBMPToSupp      = errors.New("tablegen: BMP code point folds to a supplementary code point")
	errOffsetOverflow = errors.New("tablegen: data table offset overflows uint16")
)

// A Builder builds Tables.
type Builder struct {
	// Progress, if non-nil, is called once for each row that is built.
	Progress func(rows int)
}

// Rows is the number of rows Build processes.
const Rows = 2 * Level1Size

// Build builds and validates the tables for m using the default Builder.
func Build(m ucd.FoldMap) (*Tables, error) {
	var b Builder
	return b.Build(m)
}

func checkMapping(from, to rune) error {
	switch {
	case to == 0:
		return fmt.Errorf("%w: U+%04X", errFoldToNUL, from)
	case utf16.IsSurrogate(from) || utf16.IsSurrogate(to):
		return fmt.Errorf("%w: U+%04X => U+%04X", errSurrogate, from, to)
	case from > unicode.MaxRune || to > unicode.MaxRune || from < 0 || to < 0:
		return fmt.Errorf("%w: U+%04X => U+%04X", errOutOfRange, from, to)
	case from < ucd.SupplementaryStart && to >= ucd.SupplementaryStart:
		return fmt.Errorf("%w: U+%04X => U+%04X", errBMPToSupp, from, to)
	case from >= ucd.SupplementaryStart && from-ucd.SupplementaryStart > MaxSurrogateIndex:
		return fmt.Errorf("%w: U+%04X", errOutOfRange, from)
	}
	return nil
}

// Build builds the tables for m and checks that every mapping in m can
// be recovered from them.
func (b *Builder) Build(m ucd.FoldMap) (*Tables, error) {
	for _, from := range m.Keys() {
		if err := checkMapping(from, m[from]); err != nil {
			return nil, err
		}
	}
	bmp, supp := m.Split()

	t := &Tables{Flat: make([]uint16, FlatSize)}
	for i := range t.Flat {
		t.Flat[i] = uint16(bmp.Fold(rune(i)))
	}

	var err error
	t.Level1, t.Data, err = buildTrie(func(i int) uint16 {
		return uint16(bmp[rune(i)]) // zero if unmapped
	}, b.Progress)
	if err != nil {
		return nil, err
	}
	t.SurrogateLevel1, t.SurrogateData, err = buildTrie(func(i int) Pair {
		to, ok := supp[rune(i)]
		if !ok {
			return Pair{}
		}
		r1, r2 := utf16.EncodeRune(to)
		return Pair{uint16(r1), uint16(r2)}
	}, b.Progress)
	if err != nil {
		return nil, err
	}

	if err := t.checkBounds(); err != nil {
		return nil, err
	}
	if err := t.Validate(m); err != nil {
		return nil, err
	}
	return t, nil
}

// buildTrie builds a level 1 index and its deduplicated data rows.
// Rows are keyed by their content so identical rows share one offset.
func buildTrie[T comparable](value func(i int) T, progress func(int)) ([]uint16, []T, error) {
	level1 := make([]uint16, Level1Size)
	var data []T
	seen := make(map[[RowSize]T]int)
	for block := 0; block < Level1Size; block++ {
		var row [RowSize]T
		for k := range row {
			row[k] = value(block<<8 | k)
		}
		off, ok := seen[row]
		if !ok {
			off = len(data)
			if off > math.MaxUint16 {
				return nil, nil, fmt.Errorf("%w: %d", errOffsetOverflow, off)
			}
			seen[row] = off
			data = append(data, row[:]...)
		}
		level1[block] = uint16(off)
		if progress != nil {
			progress(1)
		}
	}
	return level1, data, nil
}

// checkBounds checks that every row referenced by the level 1 indexes is
// entirely contained by its data table. Lookups rely on this so it is
// checked once here instead of on every access.
func (t *Tables) checkBounds() error {
	if len(t.Flat) != FlatSize || len(t.Level1) != Level1Size ||
		len(t.SurrogateLevel1) != Level1Size {
		return errors.New("tablegen: invalid table size")
	}
	for i, off := range t.Level1 {
		if int(off)+RowSize-1 >= len(t.Data) {
			return fmt.Errorf("tablegen: level1[%d] offset %d exceeds data length %d",
				i, off, len(t.Data))
		}
	}
	for i, off := range t.SurrogateLevel1 {
		if int(off)+RowSize-1 >= len(t.SurrogateData) {
			return fmt.Errorf("tablegen: surrogate level1[%d] offset %d exceeds data length %d",
				i, off, len(t.SurrogateData))
		}
	}
	return nil
}

// FoldUnit folds the BMP code unit c using the tables.
func (t *Tables) FoldUnit(c uint16) uint16 {
	if int(c) < len(t.Flat) {
		return t.Flat[c]
	}
	v := t.Data[int(t.Level1[c>>8])+int(c&0xFF)]
	if v == 0 {
		return c
	}
	return v
}

// FoldSupplementary folds the supplementary code point r using the
// surrogate tables.
func (t *Tables) FoldSupplementary(r rune) rune {
	i := r - ucd.SupplementaryStart
	if i < 0 || i > MaxSurrogateIndex {
		return r
	}
	p := t.SurrogateData[int(t.SurrogateLevel1[i>>8])+int(i&0xFF)]
	if p == (Pair{}) {
		return r
	}
	return utf16.DecodeRune(rune(p[0]), rune(p[1]))
}

// Fold folds the code point r using the tables.
func (t *Tables) Fold(r rune) rune {
	switch {
	case r < 0 || r > unicode.MaxRune:
		return r
	case r < ucd.SupplementaryStart:
		return rune(t.FoldUnit(uint16(r)))
	default:
		return t.FoldSupplementary(r)
	}
}

// A MismatchError reports a code point whose fold was not recovered from
// the generated tables.
type MismatchError struct {
	From, Want, Got rune
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("tablegen: fold(U+%04X) = U+%04X; want: U+%04X", e.From, e.Got, e.Want)
}

// Validate refolds every code point of m through the tables and reports
// every mismatch.
func (t *Tables) Validate(m ucd.FoldMap) error {
	var errs []error
	for _, from := range m.Keys() {
		want := m[from]
		if got := t.Fold(from); got != want {
			errs = append(errs, &MismatchError{From: from, Want: want, Got: got})
		}
	}
	return errors.Join(errs...)
}

// Folded returns a RangeTable of all the code points that do not fold to
// themselves.
func (t *Tables) Folded() *unicode.RangeTable {
	var runes []rune
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if utf16.IsSurrogate(r) {
			continue
		}
		if r >= ucd.SupplementaryStart && r-ucd.SupplementaryStart > MaxSurrogateIndex {
			break
		}
		if t.Fold(r) != r {
			runes = append(runes, r)
		}
	}
	return rangetable.New(runes...)
}

// Stats describes the size of the tables.
type Stats struct {
	FoldRows      int // distinct rows in Data
	SurrogateRows int // distinct rows in SurrogateData
	Bytes         int // total size of all tables
}

// Stats returns the size of the tables.
func (t *Tables) Stats() Stats {
	return Stats{
		FoldRows:      len(t.Data) / RowSize,
		SurrogateRows: len(t.SurrogateData) / RowSize,
		Bytes: 2*(len(t.Flat)+len(t.Level1)+len(t.Data)+len(t.SurrogateLevel1)) +
			4*len(t.SurrogateData),
	}
}
