// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package simplefold

import (
	"errors"
	"fmt"
	"strconv"
)

// A SurrogatePolicy controls how unpaired surrogates are handled.
type SurrogatePolicy uint8

const (
	// PassThrough treats an unpaired surrogate as an opaque code unit: it
	// is copied through when folding and ordered by its raw value when
	// comparing.
	PassThrough SurrogatePolicy = iota

	// Reject reports an unpaired surrogate as a *SurrogateError.
	Reject
)

var policyNames = [...]string{
	PassThrough: "PassThrough",
	Reject:      "Reject",
}

func (p SurrogatePolicy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return "SurrogatePolicy(" + strconv.Itoa(int(p)) + ")"
}

// ErrInvalidSurrogate is the error wrapped by every *SurrogateError.
var ErrInvalidSurrogate = errors.New("simplefold: invalid surrogate")

// A SurrogateError records an unpaired surrogate.
type SurrogateError struct {
	Index int    // index of the code unit
	Unit  uint16 // the unpaired surrogate
}

func (e *SurrogateError) Error() string {
	kind := "low"
	if isHighSurrogate(e.Unit) {
		kind = "high"
	}
	return fmt.Sprintf("simplefold: unpaired %s surrogate 0x%04X at index %d",
		kind, e.Unit, e.Index)
}

func (e *SurrogateError) Unwrap() error { return ErrInvalidSurrogate }

// IndexInvalidSurrogate returns the index of the first unpaired surrogate in
// s, or -1 if every surrogate in s is part of a valid pair.
func IndexInvalidSurrogate(s []uint16) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isSurrogate(c) {
			continue
		}
		if isHighSurrogate(c) && i+1 < len(s) && isLowSurrogate(s[i+1]) {
			i++
			continue
		}
		return i
	}
	return -1
}

// CheckSurrogates returns a *SurrogateError for the first unpaired
// surrogate in s.
func CheckSurrogates(s []uint16) error {
	if i := IndexInvalidSurrogate(s); i >= 0 {
		return &SurrogateError{Index: i, Unit: s[i]}
	}
	return nil
}

// A Folder folds, compares and hashes UTF-16 text using a configurable
// surrogate policy. The zero value uses the PassThrough policy and the
// process wide hash seed.
type Folder struct {
	Policy SurrogatePolicy

	// Hasher is used by Hash. If nil, the process wide seed is used.
	Hasher *Hasher
}

// check validates the inputs of an operation under the Reject policy.
func (f *Folder) check(a ...[]uint16) error {
	if f == nil || f.Policy != Reject {
		return nil
	}
	for _, s := range a {
		if err := CheckSurrogates(s); err != nil {
			return err
		}
	}
	return nil
}

func (f *Folder) hasher() *Hasher {
	if f == nil || f.Hasher == nil {
		return defaultHasher()
	}
	return f.Hasher
}
