/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package fsm

// Input is a sequence of characters the matcher can index.
type Input interface {
	Len() int
	At(i int) rune
}

// String reads a string one byte at a time.
type String string

func (s String) Len() int      { return len(s) }
func (s String) At(i int) rune { return rune(s[i]) }

// Bytes reads a byte slice one byte at a time.
type Bytes []byte

func (b Bytes) Len() int      { return len(b) }
func (b Bytes) At(i int) rune { return rune(b[i]) }

// Runes reads a decoded rune slice.
type Runes []rune

func (r Runes) Len() int      { return len(r) }
func (r Runes) At(i int) rune { return r[i] }
