/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package fsmatch_test

import (
	"errors"
	"fmt"

	"github.com/twinfer/fsmatch"
)

// ExampleCompile demonstrates compiling once and matching many inputs.
func ExampleCompile() {
	p, err := fsmatch.Compile("a*4.+hi")
	if err != nil {
		panic(err)
	}

	for _, s := range []string{"aaaaaa4uhi", "4uhi", "meow", "4ghi", "aaaaahi", "a4.h", "aaa4hi", "a4wowhi"} {
		fmt.Println(s, p.MatchString(s))
	}
	// Output:
	// aaaaaa4uhi true
	// 4uhi true
	// meow false
	// 4ghi true
	// aaaaahi false
	// a4.h false
	// aaa4hi false
	// a4wowhi true
}

// ExampleMatch demonstrates one-shot matching.
func ExampleMatch() {
	ok, err := fsmatch.Match("a+b", "aab")
	fmt.Println(ok, err)
	// Output: true <nil>
}

// ExampleMatchByRune shows '.' matching a multi-byte character.
func ExampleMatchByRune() {
	byByte, _ := fsmatch.Match("caf.", "café")
	byRune, _ := fsmatch.MatchByRune("caf.", "café")
	fmt.Println(byByte, byRune)
	// Output: false true
}

// ExampleCompile_danglingQuantifier shows the error for a quantifier with
// nothing to repeat.
func ExampleCompile_danglingQuantifier() {
	_, err := fsmatch.Compile("+x")
	fmt.Println(errors.Is(err, fsmatch.ErrDanglingQuantifier))
	fmt.Println(err)
	// Output:
	// true
	// fsmatch: malformed pattern "+x" at offset 0: quantifier has nothing to repeat
}
