// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package comparer

import (
	"errors"
	"math"
	"slices"
	"testing"
	"time"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlievieth/simplefold"
)

func u16(s string) []uint16 { return utf16.Encode([]rune(s)) }

type version struct {
	major, minor int
}

func (v version) CompareTo(other any) (int, error) {
	o, ok := other.(version)
	if !ok {
		return 0, errors.New("version: invalid operand")
	}
	if v.major != o.major {
		return v.major - o.major, nil
	}
	return v.minor - o.minor, nil
}

type point struct{ x, y int }

type caseless string

func (c caseless) Equal(other any) bool {
	o, ok := other.(caseless)
	return ok && simplefold.EqualString(string(c), string(o))
}

func (c caseless) Hash32() uint32 { return simplefold.NewHasher(1).HashString(string(c)) }

func TestCompare(t *testing.T) {
	c := New()
	tests := []struct {
		x, y any
		out  int
	}{
		{nil, nil, 0},
		{nil, "a", -1},
		{"a", nil, 1},
		{"", "", 0},
		{"Hello", "HELLO", 0},
		{"Hello", u16("hELLO"), 0},
		{u16("Ёлки-Палки"), "ёлки-палкИ", 0},
		{"Hello", "Hello1", -1},
		{"Hello1", "Hello", 1},
		{1, 2, -1},
		{2, 1, 1},
		{uint8(7), uint8(7), 0},
		{1.5, 0.5, 1},
		{math.NaN(), 1.0, -1},
		{math.NaN(), math.NaN(), 0},
		{time.Second, time.Minute, -1},
		{version{1, 2}, version{1, 3}, -1},
		{version{2, 0}, version{1, 9}, 1},
	}
	for _, test := range tests {
		got, err := c.Compare(test.x, test.y)
		if err != nil {
			t.Errorf("Compare(%#v, %#v): unexpected error: %v", test.x, test.y, err)
			continue
		}
		if sign(got) != test.out {
			t.Errorf("Compare(%#v, %#v) = %d; want sign: %d", test.x, test.y, got, test.out)
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

func TestCompareErrors(t *testing.T) {
	c := New()
	tests := []struct {
		x, y any
	}{
		{"a", 1},
		{1, "a"},
		{1, int64(1)},
		{point{1, 2}, point{1, 2}},
		{[]int{1}, []int{1}},
	}
	for _, test := range tests {
		_, err := c.Compare(test.x, test.y)
		assert.ErrorIs(t, err, ErrNotComparable, "Compare(%#v, %#v)", test.x, test.y)
	}

	// Errors from Ordered values are returned unchanged.
	_, err := c.Compare(version{1, 0}, 1)
	assert.EqualError(t, err, "version: invalid operand")
}

func TestComparePolicy(t *testing.T) {
	bad := []uint16{'a', 0xD800}

	n, err := New().Compare(bad, "A")
	require.NoError(t, err)
	assert.Positive(t, n)

	_, err = New(WithPolicy(simplefold.Reject)).Compare(bad, "A")
	assert.ErrorIs(t, err, simplefold.ErrInvalidSurrogate)

	assert.True(t, New().Equal(bad, bad))
	assert.False(t, New(WithPolicy(simplefold.Reject)).Equal(bad, bad))
}

func TestEqual(t *testing.T) {
	c := New()
	tests := []struct {
		x, y any
		out  bool
	}{
		{nil, nil, true},
		{nil, "", false},
		{"", nil, false},
		{"ABC", "abc", true},
		{"ABC", u16("abc"), true},
		{"ABC", "abd", false},
		{"1", 1, false},
		{1, "1", false},
		{1, 1, true},
		{1, int64(1), false},
		{point{1, 2}, point{1, 2}, true},
		{point{1, 2}, point{2, 1}, false},
		{caseless("ẞ"), caseless("ß"), true},
		{caseless("a"), "a", false},
		{[]int{1, 2}, []int{1, 2}, true},
		{[]int{1, 2}, []int{1}, false},
		{map[string]int{"a": 1}, map[string]int{"a": 1}, true},
		{struct{ v any }{[]int{1}}, struct{ v any }{[]int{1}}, true},
	}
	for _, test := range tests {
		if got := c.Equal(test.x, test.y); got != test.out {
			t.Errorf("Equal(%#v, %#v) = %t; want: %t", test.x, test.y, got, test.out)
		}
	}
}

func TestHash(t *testing.T) {
	c := New(WithSeed(0))

	h, err := c.Hash("A")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x610), h)
	assert.Equal(t, uint32(0x610), c.HashString("a"))

	for _, p := range [][2]any{
		{"HELLO", "hello"},
		{"Ёлки-Палки", u16("ёлки-палкИ")},
		{point{1, 2}, point{1, 2}},
		{42, 42},
		{caseless("ABC"), caseless("abc")},
	} {
		require.True(t, c.Equal(p[0], p[1]), "Equal(%#v, %#v)", p[0], p[1])
		h0, err := c.Hash(p[0])
		require.NoError(t, err)
		h1, err := c.Hash(p[1])
		require.NoError(t, err)
		assert.Equal(t, h0, h1, "Hash(%#v) != Hash(%#v)", p[0], p[1])
	}

	d := New()
	assert.Equal(t, simplefold.HashString("Hello"), d.HashString("Hello"))
	dh, err := d.Hash("Hello")
	require.NoError(t, err)
	assert.Equal(t, simplefold.HashString("Hello"), dh)
}

func TestHashErrors(t *testing.T) {
	c := New()
	_, err := c.Hash(nil)
	assert.ErrorIs(t, err, ErrNilOperand)

	for _, x := range []any{
		[]int{1},
		map[string]int{},
		func() {},
		struct{ v any }{[]int{1}},
	} {
		_, err := c.Hash(x)
		assert.ErrorIs(t, err, ErrNotHashable, "Hash(%#v)", x)
	}

	_, err = New(WithPolicy(simplefold.Reject)).Hash([]uint16{0xDC00})
	assert.ErrorIs(t, err, simplefold.ErrInvalidSurrogate)
}

func TestSortStrings(t *testing.T) {
	names := []string{"bob", "Alice", "ÉMILE", "alice", "Zoë", "émile", "Bob"}
	slices.SortStableFunc(names, Default.CompareStrings)
	assert.Equal(t, []string{"Alice", "alice", "bob", "Bob", "Zoë", "ÉMILE", "émile"}, names)

	assert.True(t, Default.EqualStrings("ÉMILE", "émile"))
	assert.False(t, Default.EqualStrings("EMILE", "émile"))
}

func TestStringsPolicy(t *testing.T) {
	// Encoded surrogates and other invalid UTF-8 become U+FFFD, so the
	// Reject policy applies to the string methods without failing.
	c := New(WithPolicy(simplefold.Reject), WithSeed(0))
	bad := "a\xed\xa0\x80b"

	assert.Equal(t, 0, c.CompareStrings(bad, "A\xed\xa0\x80B"))
	assert.Negative(t, c.CompareStrings("ABC", "abd"))
	assert.True(t, c.EqualStrings(bad, bad))
	assert.True(t, c.EqualStrings("ÉMILE", "émile"))
	assert.False(t, c.EqualStrings("EMILE", "émile"))

	assert.Equal(t, uint32(0x610), c.HashString("A"))
	h, err := c.Hash(bad)
	require.NoError(t, err)
	assert.Equal(t, h, c.HashString(bad))
	assert.Equal(t, New(WithSeed(0)).HashString(bad), c.HashString(bad))
}
