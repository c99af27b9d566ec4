/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package fsm

import (
	"errors"
	"fmt"
)

var (
	// ErrDanglingQuantifier indicates a '*' or '+' with no literal or '.' before it.
	ErrDanglingQuantifier = errors.New("quantifier has nothing to repeat")

	// ErrBacktrackBudgetExceeded indicates the search gave up after its step budget.
	// It is never reported as a plain non-match.
	ErrBacktrackBudgetExceeded = errors.New("backtrack budget exceeded")
)

// ErrorKind classifies a MalformedPatternError.
type ErrorKind uint8

const (
	// DanglingQuantifier is a quantifier that does not follow a literal or '.'.
	DanglingQuantifier ErrorKind = iota + 1
)

// String returns a human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case DanglingQuantifier:
		return "DanglingQuantifier"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// MalformedPatternError is returned by Build when the pattern cannot be
// turned into a chain. No chain is returned alongside it.
type MalformedPatternError struct {
	Pattern string
	Offset  int // byte offset of the offending character
	Kind    ErrorKind
}

// Error implements the error interface
func (e *MalformedPatternError) Error() string {
	return fmt.Sprintf("fsmatch: malformed pattern %q at offset %d: %v", e.Pattern, e.Offset, e.Unwrap())
}

// Unwrap returns the sentinel error matching Kind.
func (e *MalformedPatternError) Unwrap() error {
	switch e.Kind {
	case DanglingQuantifier:
		return ErrDanglingQuantifier
	default:
		return errors.New(e.Kind.String())
	}
}
