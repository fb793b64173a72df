// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package tablegen

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"go/format"
	"io"

	"github.com/charlievieth/simplefold/internal/ucd"
)

// Config controls the generated Go source.
type Config struct {
	Package        string // package name (default "simplefold")
	UnicodeVersion string // value of the UnicodeVersion constant
}

func (c *Config) pkg() string {
	if c.Package == "" {
		return "simplefold"
	}
	return c.Package
}

func (c *Config) version() string {
	if c.UnicodeVersion == "" {
		return ucd.CaseFoldingVersion
	}
	return c.UnicodeVersion
}

func writeWords(w *bytes.Buffer, a []uint16) {
	for i := 0; i < len(a); i += 16 {
		w.WriteByte('\t')
		for j, v := range a[i:min(i+16, len(a))] {
			if j > 0 {
				w.WriteByte(' ')
			}
			fmt.Fprintf(w, "0x%04X,", v)
		}
		w.WriteByte('\n')
	}
}

func writePairs(w *bytes.Buffer, a []Pair) {
	for i := 0; i < len(a); i += 8 {
		w.WriteByte('\t')
		for j, p := range a[i:min(i+8, len(a))] {
			if j > 0 {
				w.WriteByte(' ')
			}
			fmt.Fprintf(w, "{0x%04X, 0x%04X},", p[0], p[1])
		}
		w.WriteByte('\n')
	}
}

// Source returns the formatted Go source of the tables.
func (t *Tables) Source(conf Config) ([]byte, error) {
	var w bytes.Buffer
	fmt.Fprintf(&w, "// Code generated by \"gentables -unicode %s\"; DO NOT EDIT.\n\n", conf.version())
	fmt.Fprintf(&w, "package %s\n\n", conf.pkg())

	w.WriteString("// UnicodeVersion is the Unicode version of the case folding data used to\n" +
		"// generate the fold tables.\n")
	fmt.Fprintf(&w, "const UnicodeVersion = %q\n\n", conf.version())

	w.WriteString("// _FlatFold stores the simple case fold of every code unit in the range\n" +
		"// U+0000..U+05FF.\n")
	fmt.Fprintf(&w, "var _FlatFold = [%d]uint16{\n", len(t.Flat))
	writeWords(&w, t.Flat)
	w.WriteString("}\n\n")

	w.WriteString("// _FoldLevel1 maps the high byte of a BMP code unit to the offset of its\n" +
		"// row in _FoldData.\n")
	fmt.Fprintf(&w, "var _FoldLevel1 = [%d]uint16{\n", len(t.Level1))
	writeWords(&w, t.Level1)
	w.WriteString("}\n\n")

	fmt.Fprintf(&w, "// _FoldData stores %d deduplicated 256 entry rows of folded code units.\n"+
		"// A zero entry means the code unit folds to itself.\n", len(t.Data)/RowSize)
	fmt.Fprintf(&w, "var _FoldData = [%d]uint16{\n", len(t.Data))
	for off := 0; off < len(t.Data); off += RowSize {
		fmt.Fprintf(&w, "\t// offset 0x%04X\n", off)
		writeWords(&w, t.Data[off:off+RowSize])
	}
	w.WriteString("}\n\n")

	w.WriteString("// _SurrogateLevel1 maps bits 8..15 of a supplementary code point minus\n" +
		"// 0x10000 to the offset of its row in _SurrogateData.\n")
	fmt.Fprintf(&w, "var _SurrogateLevel1 = [%d]uint16{\n", len(t.SurrogateLevel1))
	writeWords(&w, t.SurrogateLevel1)
	w.WriteString("}\n\n")

	fmt.Fprintf(&w, "// _SurrogateData stores %d deduplicated 256 entry rows of folded code points\n"+
		"// encoded as surrogate pairs. A zero pair means the code point folds to\n"+
		"// itself.\n", len(t.SurrogateData)/RowSize)
	fmt.Fprintf(&w, "var _SurrogateData = [%d][2]uint16{\n", len(t.SurrogateData))
	for off := 0; off < len(t.SurrogateData); off += RowSize {
		fmt.Fprintf(&w, "\t// offset 0x%04X\n", off)
		writePairs(&w, t.SurrogateData[off:off+RowSize])
	}
	w.WriteString("}\n")

	src, err := format.Source(w.Bytes())
	if err != nil {
		return nil, fmt.Errorf("tablegen: formatting generated source: %w", err)
	}
	return src, nil
}

// WriteGo writes the formatted Go source of the tables to w.
func (t *Tables) WriteGo(w io.Writer, conf Config) error {
	src, err := t.Source(conf)
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

// FoldHash returns the hex encoded SHA-256 of the mappings of m. Each
// mapping is hashed in ascending order as a pair of little-endian uint32s.
func FoldHash(m ucd.FoldMap) string {
	h := sha256.New()
	b := make([]byte, 8)
	for _, from := range m.Keys() {
		binary.LittleEndian.PutUint32(b[0:4], uint32(from))
		binary.LittleEndian.PutUint32(b[4:8], uint32(m[from]))
		h.Write(b)
	}
	return hex.EncodeToString(h.Sum(nil))
}
