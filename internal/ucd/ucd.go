// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package ucd parses the semicolon separated data files of the Unicode
// Character Database, such as CaseFolding.txt.
package ucd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A ParseError reports a malformed line in a UCD file.
type ParseError struct {
	Line int    // 1-based line number
	Text string // raw line
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ucd: line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrFieldIndex is returned when a field that does not exist is accessed.
var ErrFieldIndex = errors.New("field index out of range")

// A Parser reads one data line at a time. Blank lines and comments, which
// start with '#', are skipped. Fields are trimmed of surrounding space.
type Parser struct {
	sc     *bufio.Scanner
	fields []string
	text   string
	line   int
	err    error
}

// New returns a Parser reading from r.
func New(r io.Reader) *Parser {
	return &Parser{sc: bufio.NewScanner(r)}
}

// Next advances to the next data line. It returns false at EOF or on the
// first error.
func (p *Parser) Next() bool {
	if p.err != nil {
		return false
	}
	for p.sc.Scan() {
		p.line++
		p.text = p.sc.Text()
		s := p.text
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		p.fields = p.fields[:0]
		for _, f := range strings.Split(s, ";") {
			p.fields = append(p.fields, strings.TrimSpace(f))
		}
		// A trailing ';' does not start a field.
		if n := len(p.fields); n > 1 && p.fields[n-1] == "" {
			p.fields = p.fields[:n-1]
		}
		return true
	}
	p.err = p.sc.Err()
	return false
}

// Line returns the 1-based number of the current line.
func (p *Parser) Line() int { return p.line }

// NumFields returns the number of fields on the current line.
func (p *Parser) NumFields() int { return len(p.fields) }

func (p *Parser) setErr(err error) {
	if p.err == nil {
		p.err = &ParseError{Line: p.line, Text: p.text, Err: err}
	}
}

// String returns field i of the current line. A missing field records an
// error and returns "".
func (p *Parser) String(i int) string {
	if i < 0 || i >= len(p.fields) {
		p.setErr(fmt.Errorf("%w: %d", ErrFieldIndex, i))
		return ""
	}
	return p.fields[i]
}

// Rune parses field i as a hexadecimal code point.
func (p *Parser) Rune(i int) rune {
	s := p.String(i)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		p.setErr(err)
		return 0
	}
	if n > 0x10FFFF {
		p.setErr(fmt.Errorf("invalid code point: %s", s))
		return 0
	}
	return rune(n)
}

// Runes parses field i as a space separated list of code points.
func (p *Parser) Runes(i int) []rune {
	s := p.String(i)
	var a []rune
	for _, f := range strings.Fields(s) {
		n, err := strconv.ParseUint(f, 16, 32)
		if err != nil {
			p.setErr(err)
			return nil
		}
		a = append(a, rune(n))
	}
	return a
}

// Err returns the first error encountered.
func (p *Parser) Err() error { return p.err }

// Parse calls fn for every data line of r. Parsing stops at the first
// error, which is returned.
func Parse(r io.Reader, fn func(p *Parser)) error {
	p := New(r)
	for p.Next() {
		fn(p)
	}
	return p.Err()
}
