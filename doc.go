// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package simplefold implements Unicode simple case folding, comparison and
// hashing of UTF-16 encoded text.
//
// Text is represented as a slice of UTF-16 code units ([]uint16). Folding
// maps every code point to its simple case fold as defined by the status 'C'
// and 'S' entries of the Unicode Character Database's [CaseFolding.txt].
// Simple folding never changes the number of code units so a folded sequence
// always has the same length as its input.
//
// Unpaired surrogates are passed through unchanged by the package level
// functions. A [Folder] with the [Reject] policy reports them as errors
// instead.
//
// [CaseFolding.txt]: https://www.unicode.org/Public/UCD/latest/ucd/CaseFolding.txt
package simplefold

//go:generate go run -tags gen gen.go

// BUG(cvieth): There is no mechanism for full case folding, that is, for
// characters that fold to multiple code points (for example 'ß' to "ss").
