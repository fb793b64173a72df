// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package simplefold

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var foldTests = []struct {
	in, out []uint16
}{
	{nil, []uint16{}},
	{u16("AbC"), u16("abc")},
	{u16("HELLO, WORLD!"), u16("hello, world!")},
	{u16("@[`{"), u16("@[`{")},
	{u16("Ёлки-Палки"), u16("ёлки-палки")},
	{u16("ΑΒΔ ΣΑΣ"), u16("αβδ σασ")},
	{u16("ẞ straße"), u16("ß straße")},
	{u16("ＡＢＣ"), u16("ａｂｃ")},
	{u16("𐐀𐐁x"), u16("𐐨𐐩x")},
	{u16("A𞤀B"), u16("a𞤢b")},
	// Unpaired surrogates are copied through.
	{[]uint16{'A', 0xD801}, []uint16{'a', 0xD801}},
	{[]uint16{0xDC00, 'A'}, []uint16{0xDC00, 'a'}},
	{[]uint16{0xD801, 'A', 0xDC00}, []uint16{0xD801, 'a', 0xDC00}},
	{[]uint16{0xD801, 0xD801, 0xDC00}, []uint16{0xD801, 0xD801, 0xDC28}},
}

func TestFold(t *testing.T) {
	for _, test := range foldTests {
		got := Fold(test.in)
		if !assert.Equal(t, test.out, got, "Fold(%q)", test.in) {
			continue
		}
		assert.Len(t, got, len(test.in))
		// Folding is idempotent.
		assert.Equal(t, got, Fold(got))
	}
}

func TestAppendFold(t *testing.T) {
	dst := u16("prefix:")
	got := AppendFold(dst, u16("ABC"))
	assert.Equal(t, u16("prefix:abc"), got)

	t.Run("InPlace", func(t *testing.T) {
		for _, test := range foldTests {
			if len(test.in) == 0 {
				continue
			}
			s := append([]uint16(nil), test.in...)
			got := AppendFold(s[:0], s)
			assert.Equal(t, test.out, got)
			assert.Same(t, &s[0], &got[0], "AppendFold allocated")
		}
	})
}

func TestFolderAppendFold(t *testing.T) {
	f := &Folder{Policy: Reject}

	got, err := f.AppendFold(nil, u16("Ab𐐀"))
	require.NoError(t, err)
	assert.Equal(t, u16("ab𐐨"), got)

	dst := u16("xy")
	got, err = f.AppendFold(dst, []uint16{'A', 0xDC00, 'B'})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSurrogate))
	var se *SurrogateError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, &SurrogateError{Index: 1, Unit: 0xDC00}, se)
	assert.Equal(t, u16("xy"), got)

	// The zero Folder passes unpaired surrogates through.
	var zero Folder
	got, err = zero.AppendFold(nil, []uint16{'A', 0xDC00})
	require.NoError(t, err)
	assert.Equal(t, []uint16{'a', 0xDC00}, got)
}

func TestCheckSurrogates(t *testing.T) {
	tests := []struct {
		in  []uint16
		out int
	}{
		{nil, -1},
		{u16("abc"), -1},
		{u16("a𐐀b"), -1},
		{[]uint16{0xD800}, 0},
		{[]uint16{'a', 0xDC00}, 1},
		{[]uint16{0xD800, 0xDC00, 0xD800}, 2},
		{[]uint16{0xD800, 0xD800, 0xDC00}, 0},
	}
	for _, test := range tests {
		got := IndexInvalidSurrogate(test.in)
		if got != test.out {
			t.Errorf("IndexInvalidSurrogate(%q) = %d; want: %d", test.in, got, test.out)
		}
		err := CheckSurrogates(test.in)
		if test.out == -1 {
			assert.NoError(t, err)
		} else {
			assert.EqualError(t, err, (&SurrogateError{Index: test.out, Unit: test.in[test.out]}).Error())
		}
	}
}

func TestSurrogateError(t *testing.T) {
	assert.EqualError(t, &SurrogateError{Index: 3, Unit: 0xD800},
		"simplefold: unpaired high surrogate 0xD800 at index 3")
	assert.EqualError(t, &SurrogateError{Index: 0, Unit: 0xDFFF},
		"simplefold: unpaired low surrogate 0xDFFF at index 0")
}

func TestSurrogatePolicyString(t *testing.T) {
	assert.Equal(t, "PassThrough", PassThrough.String())
	assert.Equal(t, "Reject", Reject.String())
	assert.Equal(t, "SurrogatePolicy(7)", SurrogatePolicy(7).String())
}

func BenchmarkFold(b *testing.B) {
	b.Run("ASCII", func(b *testing.B) {
		s := u16("The Quick Brown Fox Jumps Over The Lazy Dog")
		buf := make([]uint16, 0, len(s))
		b.SetBytes(int64(len(s) * 2))
		for i := 0; i < b.N; i++ {
			buf = AppendFold(buf[:0], s)
		}
	})
	b.Run("Unicode", func(b *testing.B) {
		s := u16("Ёлки-Палки ΑΔΕΛΦΟΣΎΝΗΣ 𐐀𐐁𐐂 ＡＢＣ")
		buf := make([]uint16, 0, len(s))
		b.SetBytes(int64(len(s) * 2))
		for i := 0; i < b.N; i++ {
			buf = AppendFold(buf[:0], s)
		}
	})
}
