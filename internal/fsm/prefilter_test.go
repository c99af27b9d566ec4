/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package fsm

import "testing"

func TestRequiredLiteral(t *testing.T) {
	tests := []struct {
		pattern string
		opts    []BuildOption
		want    string
	}{
		{"", nil, ""},
		{"abc", nil, "abc"},
		{"ab.cdef", nil, "cdef"},
		{"abc*de", nil, "ab"},
		{"abcd*e", nil, "abc"},
		{"ab+c", nil, "ab"},
		{"x+yz", nil, "xyz"},
		{".*", nil, ""},
		{"a.b", nil, "a"},
		{"hello", []BuildOption{FoldCase()}, ""},
		{"héllo.", []BuildOption{ByRune()}, "héllo"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			c := mustBuild(t, tt.pattern, tt.opts...)
			if got := string(c.RequiredLiteral()); got != tt.want {
				t.Errorf("RequiredLiteral(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestNewPrefilterMinLen(t *testing.T) {
	c := mustBuild(t, "a.b")
	pf, err := NewPrefilter(c, 2)
	if err != nil {
		t.Fatalf("NewPrefilter failed: %v", err)
	}
	if pf != nil {
		t.Errorf("literal %q is shorter than 2, want no prefilter", pf.Literal())
	}

	pf, err = NewPrefilter(mustBuild(t, ".*"), 1)
	if err != nil || pf != nil {
		t.Errorf("NewPrefilter(.*) = (%v, %v), want (nil, nil)", pf, err)
	}
}

func TestPrefilterAccept(t *testing.T) {
	c := mustBuild(t, "a*4.+hi")
	pf, err := NewPrefilter(c, 2)
	if err != nil {
		t.Fatalf("NewPrefilter failed: %v", err)
	}
	if pf == nil {
		t.Fatal("expected a prefilter for a*4.+hi")
	}
	if string(pf.Literal()) != "hi" {
		t.Errorf("Literal() = %q, want %q", pf.Literal(), "hi")
	}

	for _, s := range []string{"aaaa4uhi", "hi", "xxhixx"} {
		if !pf.Accept([]byte(s)) {
			t.Errorf("Accept(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "h", "meow", "a4.h"} {
		if pf.Accept([]byte(s)) {
			t.Errorf("Accept(%q) = true, want false", s)
		}
	}
}

// TestPrefilterNeverRejectsMatches checks that every input the chain accepts
// also passes the prefilter.
func TestPrefilterNeverRejectsMatches(t *testing.T) {
	patterns := []string{"ab+c", "x+yz", "abc*de", "a*4.+hi", "he.+llo+"}
	inputs := []string{"abc", "abbc", "xyz", "xxyz", "abde", "abccde", "4uhi", "aa4..hi", "hexllo", "heyyllooo", "hello"}

	for _, p := range patterns {
		c := mustBuild(t, p)
		pf, err := NewPrefilter(c, 1)
		if err != nil {
			t.Fatalf("NewPrefilter(%q) failed: %v", p, err)
		}
		if pf == nil {
			continue
		}
		for _, s := range inputs {
			if c.Match(String(s)) && !pf.Accept([]byte(s)) {
				t.Errorf("prefilter %q rejected %q which %q matches", pf.Literal(), s, p)
			}
		}
	}
}
