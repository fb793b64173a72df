// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package simplefold

import (
	"encoding/binary"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceHash hashes the little-endian encoding of the fold of s one byte
// at a time.
func referenceHash(seed uint32, s []uint16) uint32 {
	if len(s) == 0 {
		return 0
	}
	var b []byte
	for _, c := range Fold(s) {
		b = binary.LittleEndian.AppendUint16(b, c)
	}
	acc := seed
	for _, c := range b {
		carry := acc >> 28
		acc <<= 4
		acc ^= uint32(c) ^ carry
	}
	return acc
}

func TestHash(t *testing.T) {
	h := NewHasher(0)
	assert.Equal(t, uint32(0x610), h.Hash(u16("A")))
	assert.Equal(t, uint32(0x610), h.Hash(u16("a")))

	h = NewHasher(0xdeadbeef)
	assert.Equal(t, uint32(0xdeadbeef), h.Seed())
	for _, test := range foldTests {
		assert.Equal(t, referenceHash(h.Seed(), test.in), h.Hash(test.in), "Hash(%q)", test.in)
	}
}

func TestHashEmpty(t *testing.T) {
	assert.Equal(t, uint32(0), Hash(nil))
	assert.Equal(t, uint32(0), Hash([]uint16{}))
	assert.Equal(t, uint32(0), NewHasher(1234).Hash(nil))
	assert.Equal(t, uint32(0), HashString(""))
}

func TestHashEqual(t *testing.T) {
	pairs := [][2]string{
		{"AAA", "aaa"},
		{"BaC", "bAc"},
		{"Ёлки-Палки", "ёлки-палкИ"},
		{"ΑΔΕΛΦΟΣΎΝΗΣ", "αδελφοσύνης"},
		{"𐐀𐐁", "𐐨𐐩"},
		{"ſ", "S"},
	}
	for _, p := range pairs {
		a, b := u16(p[0]), u16(p[1])
		require.True(t, Equal(a, b), "Equal(%q, %q)", p[0], p[1])
		assert.Equal(t, Hash(a), Hash(b), "Hash(%q) != Hash(%q)", p[0], p[1])
	}
	assert.NotEqual(t, Hash(u16("AAA")), Hash(u16("AAB")))
}

func TestHashLong(t *testing.T) {
	// Inputs longer than the stack buffer use a pooled buffer.
	for _, n := range []int{stackBufferSize - 1, stackBufferSize, stackBufferSize + 1, 4096} {
		upper := u16(strings.Repeat("Ё", n))
		lower := u16(strings.Repeat("ё", n))
		h := NewHasher(42)
		assert.Equal(t, referenceHash(42, upper), h.Hash(upper), "n=%d", n)
		assert.Equal(t, h.Hash(lower), h.Hash(upper), "n=%d", n)
	}
}

func TestHashPoolBufferSize(t *testing.T) {
	p := new([]uint16)
	assert.True(t, putBuffer(p, make([]uint16, 10, maxPoolBufferSize)))
	assert.Len(t, *p, 0)
	assert.False(t, putBuffer(p, make([]uint16, 0, maxPoolBufferSize+1)))

	// Hashing an input larger than the pool limit still works.
	s := u16(strings.Repeat("Ab", maxPoolBufferSize))
	h := NewHasher(7)
	assert.Equal(t, referenceHash(7, s), h.Hash(s))
	assert.Equal(t, h.Hash(Fold(s)), h.Hash(s))
}

func TestHashSeed(t *testing.T) {
	var wg sync.WaitGroup
	seeds := make([]uint32, 16)
	hashes := make([]uint32, 16)
	s := u16("Hello, World!")
	for i := range seeds {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seeds[i] = randomSeed()
			hashes[i] = Hash(s)
		}(i)
	}
	wg.Wait()
	for i := range seeds {
		assert.Equal(t, seeds[0], seeds[i])
		assert.Equal(t, hashes[0], hashes[i])
	}
	assert.Equal(t, referenceHash(seeds[0], s), hashes[0])
}

func TestFolderHash(t *testing.T) {
	f := Folder{Policy: Reject, Hasher: NewHasher(7)}
	n, err := f.Hash(u16("abc"))
	require.NoError(t, err)
	assert.Equal(t, NewHasher(7).Hash(u16("ABC")), n)

	_, err = f.Hash([]uint16{'a', 0xDFFF})
	assert.ErrorIs(t, err, ErrInvalidSurrogate)

	var zero Folder
	n, err = zero.Hash([]uint16{'a', 0xDFFF})
	require.NoError(t, err)
	assert.Equal(t, Hash([]uint16{'A', 0xDFFF}), n)
}

func BenchmarkHash(b *testing.B) {
	short := u16("Ёлки-Палки Hello")
	long := u16(strings.Repeat("Ёлки-Палки Hello ", 64))
	b.Run("Short", func(b *testing.B) {
		b.SetBytes(int64(len(short) * 2))
		for i := 0; i < b.N; i++ {
			Hash(short)
		}
	})
	b.Run("Long", func(b *testing.B) {
		b.SetBytes(int64(len(long) * 2))
		for i := 0; i < b.N; i++ {
			Hash(long)
		}
	})
}
