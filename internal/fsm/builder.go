/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package fsm

// BuildOption customizes Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	byRune bool
	fold   bool
}

// ByRune makes Build treat the pattern, and later the input, as runes.
// Without it every byte is one character.
func ByRune() BuildOption {
	return func(c *buildConfig) { c.byRune = true }
}

// FoldCase makes literal states ignore ASCII case.
func FoldCase() BuildOption {
	return func(c *buildConfig) { c.fold = true }
}

// Builder appends states to a chain while scanning a pattern.
type Builder struct {
	pattern string
	fold    bool
	states  []State

	// last is the most recent Ascii or Dot state still available for
	// wrapping by a quantifier, or InvalidState.
	last StateID
}

// NewBuilder creates a builder with a Start state already in place.
func NewBuilder(pattern string, capacity int) *Builder {
	b := &Builder{
		pattern: pattern,
		states:  make([]State, 0, capacity+2),
		last:    InvalidState,
	}
	b.states = append(b.states, State{kind: KindStart})
	return b
}

// Build compiles pattern into a Chain.
//
// Characters other than '.', '*' and '+' become Ascii states, '.' becomes a
// Dot state, and a quantifier wraps the state right before it. A quantifier
// with nothing to wrap yields a *MalformedPatternError of kind
// DanglingQuantifier.
func Build(pattern string, opts ...BuildOption) (*Chain, error) {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	b := NewBuilder(pattern, len(pattern))
	b.fold = cfg.fold

	if cfg.byRune {
		for off, r := range pattern {
			if err := b.Add(off, r); err != nil {
				return nil, err
			}
		}
	} else {
		for off := 0; off < len(pattern); off++ {
			if err := b.Add(off, rune(pattern[off])); err != nil {
				return nil, err
			}
		}
	}

	states := b.Finish()
	return &Chain{pattern: pattern, byRune: cfg.byRune, states: states}, nil
}

// Add consumes one pattern character found at byte offset off.
func (b *Builder) Add(off int, c rune) error {
	switch c {
	case '*':
		return b.wrap(off, KindStar)
	case '+':
		return b.wrap(off, KindPlus)
	case '.':
		b.last = b.push(State{kind: KindDot})
	default:
		b.last = b.push(State{kind: KindAscii, lit: c, fold: b.fold})
	}
	return nil
}

// Finish appends Termination and returns the states.
// The builder must not be used afterwards.
func (b *Builder) Finish() []State {
	b.push(State{kind: KindTermination})
	states := b.states
	b.states = nil
	return states
}

// push appends s and links it as the forward successor of the previous state.
func (b *Builder) push(s State) StateID {
	id := StateID(len(b.states))
	prev := StateID(len(b.states) - 1)
	b.states = append(b.states, s)
	b.link(prev, id)
	return id
}

// link sets the successors of from. Quantifiers loop back to themselves
// before moving on to next.
func (b *Builder) link(from, next StateID) {
	s := &b.states[from]
	if s.IsQuantifier() {
		s.next = []StateID{from, next}
		return
	}
	s.next = []StateID{next}
}

// wrap replaces the most recent Ascii or Dot state with a quantifier around it.
func (b *Builder) wrap(off int, kind Kind) error {
	if b.last == InvalidState {
		return &MalformedPatternError{
			Pattern: b.pattern,
			Offset:  off,
			Kind:    DanglingQuantifier,
		}
	}

	s := &b.states[b.last]
	inner := State{kind: s.kind, lit: s.lit, fold: s.fold}
	*s = State{kind: kind, inner: &inner}
	// The wrapped state is always the tail, so its forward edge is set by
	// the next push; until then it only loops.
	s.next = []StateID{b.last}

	b.last = InvalidState
	return nil
}
