/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

// Package fsm holds the finite-state representation of a pattern and the
// backtracking search that walks it.
//
// A pattern is compiled into a Chain: a flat slice of States rooted at a
// synthetic Start state and closed by a synthetic Termination state. Edges
// between states are StateID indices into that slice, so the self-loops
// created by '*' and '+' never form ownership cycles.
//
// # Supported syntax:
//
//   - `c`: any other character matches itself.
//   - `.`: matches any single character.
//   - `x*`: zero or more repetitions of the literal or '.' before it.
//   - `x+`: one or more repetitions of the literal or '.' before it.
package fsm

import (
	"fmt"
	"strings"
)

// StateID indexes a State inside its Chain.
type StateID uint32

// InvalidState represents an absent or unlinked state.
const InvalidState StateID = 0xFFFFFFFF

// Kind identifies the variant of a State.
type Kind uint8

const (
	// KindStart is the synthetic entry point. It accepts nothing.
	KindStart Kind = iota

	// KindAscii accepts exactly one literal character.
	KindAscii

	// KindDot accepts any single character.
	KindDot

	// KindStar accepts zero or more repetitions of its inner state.
	KindStar

	// KindPlus accepts one or more repetitions of its inner state.
	KindPlus

	// KindTermination is the synthetic accept marker. It has no successors.
	KindTermination
)

// String returns a human-readable representation of the Kind
func (k Kind) String() string {
	switch k {
	case KindStart:
		return "Start"
	case KindAscii:
		return "Ascii"
	case KindDot:
		return "Dot"
	case KindStar:
		return "Star"
	case KindPlus:
		return "Plus"
	case KindTermination:
		return "Termination"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// State is one position in a compiled pattern.
// The kind determines which fields are meaningful.
type State struct {
	kind Kind

	// For Ascii: the literal and whether ASCII case is ignored.
	lit  rune
	fold bool

	// For Star/Plus: the wrapped Ascii or Dot state. It has no successors.
	inner *State

	// Ordered candidate next positions. Quantifiers list the self-loop first.
	next []StateID
}

// Kind returns the state's variant.
func (s *State) Kind() Kind {
	return s.kind
}

func (s *State) Inner() *State {
	return s.inner
}

// Literal returns the character of an Ascii state.
func (s *State) Literal() (rune, bool) {
	if s.kind == KindAscii {
		return s.lit, true
	}
	return 0, false
}

// IsQuantifier reports whether the state is a Star or a Plus.
func (s *State) IsQuantifier() bool {
	return s.kind == KindStar || s.kind == KindPlus
}

// IsTerminal reports whether the state is the Termination state.
func (s *State) IsTerminal() bool {
	return s.kind == KindTermination
}

// Accepts reports whether the state itself consumes c.
// Start and Termination never consume input.
func (s *State) Accepts(c rune) bool {
	switch s.kind {
	case KindAscii:
		if s.fold {
			return foldASCII(c) == foldASCII(s.lit)
		}
		return c == s.lit
	case KindDot:
		return true
	case KindStar, KindPlus:
		return s.inner.Accepts(c)
	default:
		return false
	}
}

// Successors returns the candidate next positions in the order they are
// tried. The returned slice belongs to the chain and must not be modified.
func (s *State) Successors() []StateID {
	return s.next
}

// Forward returns the successor that leaves the state, skipping any self-loop.
// Returns InvalidState for Termination.
func (s *State) Forward() StateID {
	if len(s.next) == 0 {
		return InvalidState
	}
	return s.next[len(s.next)-1]
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	switch s.kind {
	case KindAscii:
		if s.fold {
			return fmt.Sprintf("Ascii(%q, fold) -> %v", s.lit, s.next)
		}
		return fmt.Sprintf("Ascii(%q) -> %v", s.lit, s.next)
	case KindStar, KindPlus:
		return fmt.Sprintf("%s(%s) -> %v", s.kind, s.inner.kind, s.next)
	case KindTermination:
		return "Termination"
	default:
		return fmt.Sprintf("%s -> %v", s.kind, s.next)
	}
}

// foldASCII maps ASCII upper case letters to lower case and leaves every
// other character untouched.
func foldASCII(c rune) rune {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Chain is a compiled pattern. It owns every State; edges are indices.
// A Chain is immutable once built and safe for concurrent use.
type Chain struct {
	pattern string
	byRune  bool
	states  []State
}

func (c *Chain) Pattern() string {
	return c.pattern
}

func (c *Chain) ByRune() bool {
	return c.byRune
}

// Len returns the number of states, Start and Termination included.
func (c *Chain) Len() int {
	return len(c.states)
}

// Start returns the ID of the Start state.
func (c *Chain) Start() StateID {
	return 0
}

func (c *Chain) Termination() StateID {
	return StateID(len(c.states) - 1)
}

func (c *Chain) State(id StateID) *State {
	return &c.states[id]
}

// String renders one state per line, prefixed with its ID.
func (c *Chain) String() string {
	var sb strings.Builder
	for i := range c.states {
		fmt.Fprintf(&sb, "%d: %s\n", i, c.states[i].String())
	}
	return sb.String()
}
