// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package simplefold_test

import (
	"errors"
	"fmt"
	"unicode/utf16"

	"github.com/charlievieth/simplefold"
)

func ExampleCompare() {
	a := utf16.Encode([]rune("Ёлки-Палки"))
	b := utf16.Encode([]rune("ёлки-палкИ"))
	fmt.Println(simplefold.Compare(a, b))

	fmt.Println(simplefold.Compare(utf16.Encode([]rune("Hello")), utf16.Encode([]rune("Hello1"))))
	fmt.Println(simplefold.Compare(utf16.Encode([]rune("B")), utf16.Encode([]rune("a"))))
	// Output:
	// 0
	// -1
	// 1
}

func ExampleFold() {
	s := simplefold.Fold(utf16.Encode([]rune("ΑΔΕΛΦΟΣΎΝΗΣ 𐐀")))
	fmt.Println(string(utf16.Decode(s)))
	// Output:
	// αδελφοσύνησ 𐐨
}

func ExampleFoldCharacter() {
	fmt.Printf("%c\n", simplefold.FoldCharacter('Ё'))
	fmt.Printf("%c\n", simplefold.FoldCharacter('ẞ'))
	// Output:
	// ё
	// ß
}

func ExampleEqualString() {
	fmt.Println(simplefold.EqualString("GROẞ", "groß"))
	fmt.Println(simplefold.EqualString("GROSS", "groß"))
	// Output:
	// true
	// false
}

func ExampleNewHasher() {
	h := simplefold.NewHasher(0)
	fmt.Printf("%#x\n", h.HashString("A"))
	fmt.Println(h.HashString("Hello") == h.HashString("HELLO"))
	// Output:
	// 0x610
	// true
}

func ExampleFolder() {
	f := simplefold.Folder{Policy: simplefold.Reject}
	_, err := f.Compare([]uint16{'a', 0xD800}, []uint16{'A'})
	fmt.Println(err)
	fmt.Println(errors.Is(err, simplefold.ErrInvalidSurrogate))
	// Output:
	// simplefold: unpaired high surrogate 0xD800 at index 1
	// true
}
