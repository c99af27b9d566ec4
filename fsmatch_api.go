/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

// Package fsmatch matches strings against small regular expressions built
// from literal characters, the wildcard `.` and the postfix quantifiers `*`
// and `+`. A pattern must match the whole input.
//
// Patterns are compiled once into a chain of states and can then be matched
// against any number of inputs, from any number of goroutines.
//
// # Supported Syntax:
//
//   - `c`: any other character matches itself.
//   - `.`: matches any single character, newline included.
//   - `x*`: matches zero or more repetitions of `x`, a literal or `.`.
//   - `x+`: matches one or more repetitions of `x`, a literal or `.`.
//
// By default a character is a byte. For multi-byte characters, compile with
// CompileByRune or use the 'ByRune' helpers.
package fsmatch

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/twinfer/fsmatch/internal/fsm"
)

var (
	// ErrDanglingQuantifier is returned when '*' or '+' has no literal or '.'
	// before it, as in "*abc" or "a**".
	ErrDanglingQuantifier = fsm.ErrDanglingQuantifier

	// ErrBacktrackBudgetExceeded is returned by Check when the search examined
	// more than Config.MaxSteps branches without reaching a verdict.
	ErrBacktrackBudgetExceeded = fsm.ErrBacktrackBudgetExceeded
)

// MalformedPatternError describes why a pattern could not be compiled.
type MalformedPatternError = fsm.MalformedPatternError

// Pattern is a compiled pattern. It is safe for concurrent use.
type Pattern struct {
	expr      string
	cfg       Config
	chain     *fsm.Chain
	prefilter *fsm.Prefilter
}

// Compile parses a pattern that treats every byte as one character.
func Compile(expr string) (*Pattern, error) {
	return CompileWithConfig(expr, DefaultConfig())
}

// CompileByRune parses a pattern that treats every rune as one character.
func CompileByRune(expr string) (*Pattern, error) {
	cfg := DefaultConfig()
	cfg.ByRune = true
	return CompileWithConfig(expr, cfg)
}

// MustCompile is like Compile but panics if the pattern is malformed.
func MustCompile(expr string) *Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic("fsmatch: Compile(" + strconv.Quote(expr) + "): " + err.Error())
	}
	return p
}

// CompileWithConfig parses a pattern using the given configuration.
// It returns a *ConfigError for an invalid configuration and a
// *MalformedPatternError for an invalid pattern.
func CompileWithConfig(expr string, cfg Config) (*Pattern, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var opts []fsm.BuildOption
	if cfg.ByRune {
		opts = append(opts, fsm.ByRune())
	}
	if cfg.FoldCase {
		opts = append(opts, fsm.FoldCase())
	}

	chain, err := fsm.Build(expr, opts...)
	if err != nil {
		return nil, err
	}

	p := &Pattern{expr: expr, cfg: cfg, chain: chain}
	log := cfg.logger()

	if cfg.EnablePrefilter {
		pf, err := fsm.NewPrefilter(chain, cfg.MinLiteralLen)
		if err != nil {
			// Matching stays correct without a prefilter.
			log.Debug("prefilter disabled", "pattern", expr, "error", err)
		} else if pf != nil {
			p.prefilter = pf
			log.Debug("prefilter enabled", "pattern", expr, "literal", string(pf.Literal()))
		}
	}

	log.Debug("compiled pattern", "pattern", expr, "states", chain.Len(), "by_rune", cfg.ByRune)
	return p, nil
}

// String returns the source text used to compile the pattern.
func (p *Pattern) String() string {
	return p.expr
}

// MatchString reports whether the pattern matches all of s.
// The step budget of the configuration does not apply; use Check for that.
func (p *Pattern) MatchString(s string) bool {
	if p.prefilter != nil && !p.prefilter.Accept([]byte(s)) {
		return false
	}
	return p.chain.Match(p.stringInput(s))
}

// Match reports whether the pattern matches all of b.
func (p *Pattern) Match(b []byte) bool {
	if p.prefilter != nil && !p.prefilter.Accept(b) {
		return false
	}
	if p.cfg.ByRune {
		return p.chain.Match(fsm.Runes(bytes.Runes(b)))
	}
	return p.chain.Match(fsm.Bytes(b))
}

// Check is like MatchString but honours Config.MaxSteps. When the budget
// runs out it returns ErrBacktrackBudgetExceeded rather than false.
func (p *Pattern) Check(s string) (bool, error) {
	if p.prefilter != nil && !p.prefilter.Accept([]byte(s)) {
		return false, nil
	}
	return p.chain.MatchBudget(p.stringInput(s), p.cfg.MaxSteps)
}

func (p *Pattern) stringInput(s string) fsm.Input {
	if p.cfg.ByRune {
		return fsm.Runes([]rune(s))
	}
	return fsm.String(s)
}

// Match returns true if the pattern matches all of s. It compiles the
// pattern on every call; compile once with Compile to match many inputs.
//
// Characters are bytes: a `.` matches a single byte of a multi-byte
// character. For Unicode input, use MatchByRune.
func Match(pattern, s string) (bool, error) {
	p, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return p.MatchString(s), nil
}

// MatchByRune returns true if the pattern matches all of s, treating both
// as sequences of runes, so a `.` matches `é` as a whole.
func MatchByRune(pattern, s string) (bool, error) {
	p, err := CompileByRune(pattern)
	if err != nil {
		return false, err
	}
	return p.MatchString(s), nil
}

// MatchFromByte returns true if the pattern matches all of the byte slice s.
// It is the byte-slice equivalent of Match.
func MatchFromByte(pattern, s []byte) (bool, error) {
	p, err := Compile(string(pattern))
	if err != nil {
		return false, err
	}
	return p.Match(s), nil
}

// MatchFold returns true if the pattern matches all of s ignoring ASCII
// case. Non-ASCII letters are compared exactly.
func MatchFold(pattern, s string) (bool, error) {
	cfg := DefaultConfig()
	cfg.FoldCase = true
	p, err := CompileWithConfig(pattern, cfg)
	if err != nil {
		return false, err
	}
	return p.MatchString(s), nil
}

// IsMalformed reports whether err comes from an invalid pattern.
func IsMalformed(err error) bool {
	var mpe *MalformedPatternError
	return errors.As(err, &mpe)
}
