/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package fsm

import (
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
)

// RequiredLiteral returns the longest run of characters that every input
// accepted by the chain must contain, encoded as it appears in the input.
// Returns nil when no such run exists.
//
// A run is made of consecutive Ascii states. A Plus around an Ascii state
// ends the current run with its literal and starts the next one with it,
// since further repetitions may sit in between. Star, Dot and case-folded
// literals break runs.
func (c *Chain) RequiredLiteral() []byte {
	var best, run []byte

	flush := func() {
		if len(run) > len(best) {
			best = append(best[:0], run...)
		}
		run = run[:0]
	}

	for i := range c.states {
		s := &c.states[i]
		switch s.kind {
		case KindAscii:
			if !c.appendLiteral(&run, s) {
				flush()
			}
		case KindPlus:
			if s.inner.kind != KindAscii || !c.appendLiteral(&run, s.inner) {
				flush()
				continue
			}
			flush()
			c.appendLiteral(&run, s.inner)
		default:
			flush()
		}
	}
	flush()

	if len(best) == 0 {
		return nil
	}
	return best
}

// appendLiteral adds the literal of an Ascii state to run. It reports false
// when the literal cannot be searched for byte-wise.
func (c *Chain) appendLiteral(run *[]byte, s *State) bool {
	if s.fold {
		return false
	}
	if !c.byRune {
		*run = append(*run, byte(s.lit))
		return true
	}
	// Invalid input bytes decode to RuneError, so the literal U+FFFD would
	// match input that does not contain its encoding.
	if s.lit == utf8.RuneError {
		return false
	}
	*run = utf8.AppendRune(*run, s.lit)
	return true
}

// Prefilter rejects inputs that lack the chain's required literal before any
// backtracking takes place.
type Prefilter struct {
	literal []byte
	auto    *ahocorasick.Automaton
}

// NewPrefilter builds a prefilter for c. It returns (nil, nil) when the
// required literal is shorter than minLen bytes.
func NewPrefilter(c *Chain, minLen int) (*Prefilter, error) {
	lit := c.RequiredLiteral()
	if len(lit) == 0 || len(lit) < minLen {
		return nil, nil
	}

	builder := ahocorasick.NewBuilder()
	builder.AddPattern(lit)
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Prefilter{literal: lit, auto: auto}, nil
}

// Literal returns the searched literal.
func (p *Prefilter) Literal() []byte {
	return p.literal
}

// Accept reports whether haystack may match. A false result is final.
func (p *Prefilter) Accept(haystack []byte) bool {
	if len(haystack) < len(p.literal) {
		return false
	}
	return p.auto.IsMatch(haystack)
}
