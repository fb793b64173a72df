// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package simplefold

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// stackBufferSize is the largest input, in code units, that Hash folds into
// a stack allocated buffer. Larger inputs use a pooled buffer.
const stackBufferSize = 256

// maxPoolBufferSize is the capacity, in code units, above which a buffer is
// not returned to bufferPool.
const maxPoolBufferSize = 64 << 10

var bufferPool = sync.Pool{
	New: func() any {
		b := make([]uint16, 0, 1024)
		return &b
	},
}

// randomSeed is created on first use and fixed for the life of the process.
var randomSeed = sync.OnceValue(func() uint32 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("simplefold: reading random seed: " + err.Error())
	}
	u := binary.LittleEndian.Uint64(b[:])
	return uint32(u) ^ uint32(u>>32)
})

var defaultHasher = sync.OnceValue(func() *Hasher {
	return NewHasher(randomSeed())
})

// A Hasher computes fold-aware hashes of UTF-16 text. Text that is Equal
// has the same hash. A Hasher is safe for concurrent use.
type Hasher struct {
	seed uint32
}

// NewHasher returns a Hasher that uses seed. Hashes are only stable for a
// given seed.
func NewHasher(seed uint32) *Hasher {
	return &Hasher{seed: seed}
}

// Seed returns the seed of h.
func (h *Hasher) Seed() uint32 { return h.seed }

// Hash returns the hash of the simple case fold of s using the process wide
// random seed, which differs between processes. The hash of an empty
// sequence is always 0.
func Hash(s []uint16) uint32 {
	return defaultHasher().Hash(s)
}

// Hash returns the hash of the simple case fold of s.
func (h *Hasher) Hash(s []uint16) uint32 {
	if len(s) == 0 {
		return 0
	}
	if len(s) <= stackBufferSize {
		var buf [stackBufferSize]uint16
		foldInto(buf[:], s, PassThrough)
		return h.sum(buf[:len(s)])
	}
	p := bufferPool.Get().(*[]uint16)
	buf := AppendFold((*p)[:0], s)
	sum := h.sum(buf)
	putBuffer(p, buf)
	return sum
}

// putBuffer returns buf to bufferPool unless it is too large to keep and
// reports if it was pooled.
func putBuffer(p *[]uint16, buf []uint16) bool {
	if cap(buf) > maxPoolBufferSize {
		return false
	}
	*p = buf[:0]
	bufferPool.Put(p)
	return true
}

// sum hashes the little-endian bytes of the folded code units in buf.
func (h *Hasher) sum(buf []uint16) uint32 {
	acc := h.seed
	if !cpu.IsBigEndian {
		b := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(buf))), len(buf)*2)
		for _, c := range b {
			acc = acc<<4 ^ uint32(c) ^ acc>>28
		}
		return acc
	}
	for _, c := range buf {
		acc = acc<<4 ^ uint32(c&0xFF) ^ acc>>28
		acc = acc<<4 ^ uint32(c>>8) ^ acc>>28
	}
	return acc
}

// Hash is like the package level Hash function but under the Reject policy
// an unpaired surrogate in s is reported as an error.
func (f *Folder) Hash(s []uint16) (uint32, error) {
	if err := f.check(s); err != nil {
		return 0, err
	}
	return f.hasher().Hash(s), nil
}
