/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package fsmatch

import "log/slog"

// Config controls how a pattern is compiled and matched.
//
// Example:
//
//	cfg := fsmatch.DefaultConfig()
//	cfg.MaxSteps = 10_000 // Check gives up after 10k branches
//	p, err := fsmatch.CompileWithConfig("a*b+", cfg)
type Config struct {
	// ByRune treats pattern and input as runes instead of bytes, so that '.'
	// matches a whole multi-byte character.
	// Default: false
	ByRune bool

	// FoldCase makes literals ignore ASCII case.
	// Default: false
	FoldCase bool

	// EnablePrefilter rejects inputs lacking the pattern's required literal
	// before backtracking.
	// Default: true
	EnablePrefilter bool

	// MinLiteralLen is the shortest required literal, in bytes, worth a
	// prefilter.
	// Default: 2
	MinLiteralLen int

	// MaxSteps bounds the branches examined by Check. Zero means unlimited.
	// Default: 0
	MaxSteps int

	// Logger receives compile decisions at debug level. Nil disables logging.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration used by Compile.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter: true,
		MinLiteralLen:   2,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - MinLiteralLen: 1 to 64 (when EnablePrefilter is set)
//   - MaxSteps: 0 or more
func (c Config) Validate() error {
	if c.EnablePrefilter && (c.MinLiteralLen < 1 || c.MinLiteralLen > 64) {
		return &ConfigError{
			Field:   "MinLiteralLen",
			Message: "must be between 1 and 64",
		}
	}
	if c.MaxSteps < 0 {
		return &ConfigError{
			Field:   "MaxSteps",
			Message: "must not be negative",
		}
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "fsmatch: invalid config: " + e.Field + ": " + e.Message
}
