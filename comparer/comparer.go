// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package comparer adapts the simplefold comparison, equality and hash
// functions to untyped operands.
//
// Strings and UTF-16 code unit slices ([]uint16) are textual and are
// compared under simple case folding. Other operands fall back to their own
// ordering: built-in ordered types are compared when both operands have the
// same type, and types implementing Ordered, Equaler or Hasher32 are asked
// to compare, equate or hash themselves.
package comparer

import (
	"errors"
	"fmt"
	"hash/maphash"
	"reflect"

	"golang.org/x/exp/constraints"

	"github.com/charlievieth/simplefold"
)

var (
	// ErrNotComparable is returned when an operand can not be ordered
	// against the other operand.
	ErrNotComparable = errors.New("comparer: operand is not comparable")

	// ErrNotHashable is returned when an operand can not be hashed.
	ErrNotHashable = errors.New("comparer: operand is not hashable")

	// ErrNilOperand is returned when hashing nil.
	ErrNilOperand = errors.New("comparer: nil operand")
)

// Ordered is implemented by values that order themselves against other
// values. CompareTo returns a negative number, zero or a positive number
// if the receiver sorts before, with or after other.
type Ordered interface {
	CompareTo(other any) (int, error)
}

// Equaler is implemented by values that define their own equality.
type Equaler interface {
	Equal(other any) bool
}

// Hasher32 is implemented by values that define their own hash. Values
// that are Equal must have the same hash.
type Hasher32 interface {
	Hash32() uint32
}

// An Option configures a Comparer.
type Option func(*Comparer)

// WithPolicy sets the surrogate policy used for textual operands.
func WithPolicy(p simplefold.SurrogatePolicy) Option {
	return func(c *Comparer) { c.folder.Policy = p }
}

// WithSeed sets the seed used to hash textual operands. By default the
// process wide random seed is used.
func WithSeed(seed uint32) Option {
	return func(c *Comparer) { c.folder.Hasher = simplefold.NewHasher(seed) }
}

// A Comparer compares, equates and hashes untyped operands. It is safe for
// concurrent use.
type Comparer struct {
	folder simplefold.Folder
	seed   maphash.Seed
}

// New returns a new Comparer configured by opts.
func New(opts ...Option) *Comparer {
	c := &Comparer{seed: maphash.MakeSeed()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Default is a Comparer with the default options.
var Default = New()

// textual returns x as UTF-16 code units if x is a string or []uint16.
func textual(x any) ([]uint16, bool) {
	switch v := x.(type) {
	case string:
		return simplefold.Encode(nil, v), true
	case []uint16:
		return v, true
	}
	return nil, false
}

func isText(x any) bool {
	switch x.(type) {
	case string, []uint16:
		return true
	}
	return false
}

// isNaN reports whether x is a NaN. It is always false if T is not
// floating-point.
func isNaN[T constraints.Ordered](x T) bool {
	return x != x
}

// compareOrdered orders x and y. NaN sorts before any other number.
func compareOrdered[T constraints.Ordered](x, y T) int {
	xNaN := isNaN(x)
	yNaN := isNaN(y)
	if xNaN && yNaN {
		return 0
	}
	if xNaN || x < y {
		return -1
	}
	if yNaN || x > y {
		return +1
	}
	return 0
}

// compareKinds compares x and y if they have the same type and that type
// is a built-in ordered kind, including named types such as time.Duration.
func compareKinds(x, y any) (int, bool) {
	vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
	if vx.Type() != vy.Type() {
		return 0, false
	}
	switch vx.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return compareOrdered(vx.Int(), vy.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return compareOrdered(vx.Uint(), vy.Uint()), true
	case reflect.Float32, reflect.Float64:
		return compareOrdered(vx.Float(), vy.Float()), true
	case reflect.String:
		return compareOrdered(vx.String(), vy.String()), true
	}
	return 0, false
}

// Compare compares x and y. A nil operand sorts before any other operand.
// Textual operands are compared with simplefold.Compare. An error wrapping
// ErrNotComparable is returned if the operands can not be ordered.
func (c *Comparer) Compare(x, y any) (int, error) {
	switch {
	case x == nil && y == nil:
		return 0, nil
	case x == nil:
		return -1, nil
	case y == nil:
		return 1, nil
	}
	if a, ok := textual(x); ok {
		if b, ok := textual(y); ok {
			return c.folder.Compare(a, b)
		}
		return 0, fmt.Errorf("%w: %T and %T", ErrNotComparable, x, y)
	}
	if o, ok := x.(Ordered); ok {
		return o.CompareTo(y)
	}
	if n, ok := compareKinds(x, y); ok {
		return n, nil
	}
	return 0, fmt.Errorf("%w: %T and %T", ErrNotComparable, x, y)
}

// comparableEqual returns x == y and reports whether the comparison was
// possible. Comparing interfaces that hold incomparable values panics.
func comparableEqual(x, y any) (eq, ok bool) {
	if !reflect.TypeOf(x).Comparable() || reflect.TypeOf(x) != reflect.TypeOf(y) {
		return false, false
	}
	defer func() {
		if e := recover(); e != nil {
			eq, ok = false, false
		}
	}()
	return x == y, true
}

// Equal reports whether x and y are equal. Two nil operands are equal and
// a nil operand is not equal to any other operand. Textual operands are
// equal if they are equal under simple case folding; with the Reject policy
// text containing an unpaired surrogate is not equal to anything.
func (c *Comparer) Equal(x, y any) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	if a, ok := textual(x); ok {
		b, ok := textual(y)
		if !ok {
			return false
		}
		eq, err := c.folder.Equal(a, b)
		return eq && err == nil
	}
	if isText(y) {
		return false
	}
	if e, ok := x.(Equaler); ok {
		return e.Equal(y)
	}
	if eq, ok := comparableEqual(x, y); ok {
		return eq
	}
	return reflect.DeepEqual(x, y)
}

func (c *Comparer) hashComparable(x any) (h uint32, ok bool) {
	if !reflect.TypeOf(x).Comparable() {
		return 0, false
	}
	defer func() {
		if e := recover(); e != nil {
			h, ok = 0, false
		}
	}()
	u := maphash.Comparable(c.seed, x)
	return uint32(u) ^ uint32(u>>32), true
}

// Hash returns the hash of x. Textual operands that are Equal have the same
// hash. Hashing nil returns ErrNilOperand and hashing an operand that is
// neither textual, a Hasher32 nor comparable returns an error wrapping
// ErrNotHashable.
func (c *Comparer) Hash(x any) (uint32, error) {
	if x == nil {
		return 0, ErrNilOperand
	}
	if s, ok := textual(x); ok {
		return c.folder.Hash(s)
	}
	if h, ok := x.(Hasher32); ok {
		return h.Hash32(), nil
	}
	if h, ok := c.hashComparable(x); ok {
		return h, nil
	}
	return 0, fmt.Errorf("%w: %T", ErrNotHashable, x)
}

// CompareStrings compares a and b under simple case folding. It can be
// used with slices.SortFunc. Valid UTF-16 is always produced from a string
// so the surrogate policy never reports an error.
func (c *Comparer) CompareStrings(a, b string) int {
	var abuf, bbuf [64]uint16
	n, _ := c.folder.Compare(simplefold.Encode(abuf[:0], a), simplefold.Encode(bbuf[:0], b))
	return n
}

// EqualStrings reports whether a and b are equal under simple case folding.
func (c *Comparer) EqualStrings(a, b string) bool {
	var abuf, bbuf [64]uint16
	eq, err := c.folder.Equal(simplefold.Encode(abuf[:0], a), simplefold.Encode(bbuf[:0], b))
	return eq && err == nil
}

// HashString returns the hash of s, which is the same as Hash(s).
func (c *Comparer) HashString(s string) uint32 {
	var buf [64]uint16
	h, _ := c.folder.Hash(simplefold.Encode(buf[:0], s))
	return h
}
