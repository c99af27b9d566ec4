/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package fsm

// frame is one pending branch of the search.
type frame struct {
	state StateID
	pos   int

	// satisfied is set once a Plus has consumed at least one character on
	// this branch, which makes its forward edge eligible without consuming.
	satisfied bool
}

// maxVisitedBits caps the dense visited bit vector at 256KB. Larger
// searches record visited triples in a map, which only grows with the
// branches actually explored.
var maxVisitedBits = 256 * 1024 * 8

// search walks a chain over one input.
// It tracks visited (state, pos, satisfied) triples, so a branch already
// explored is never pushed twice.
type search struct {
	chain *Chain
	in    Input
	n     int
	stack []frame

	// Exactly one of visited and seen is set.
	visited []uint64
	seen    map[int]struct{}
}

func newSearch(c *Chain, in Input) *search {
	n := in.Len()
	s := &search{
		chain: c,
		in:    in,
		n:     n,
		stack: make([]frame, 0, len(c.states)),
	}

	bits := len(c.states) * (n + 1) * 2
	if bits <= maxVisitedBits {
		s.visited = make([]uint64, (bits+63)/64)
	} else {
		s.seen = make(map[int]struct{})
	}
	return s
}

// shouldVisit marks idx as visited and reports whether it was new.
func (s *search) shouldVisit(idx int) bool {
	if s.seen != nil {
		if _, ok := s.seen[idx]; ok {
			return false
		}
		s.seen[idx] = struct{}{}
		return true
	}

	word, bit := idx/64, uint64(1)<<(idx%64)
	if s.visited[word]&bit != 0 {
		return false
	}
	s.visited[word] |= bit
	return true
}

// push schedules a branch unless it was scheduled before.
func (s *search) push(state StateID, pos int, satisfied bool) {
	idx := (int(state)*(s.n+1) + pos) * 2
	if satisfied {
		idx++
	}
	if !s.shouldVisit(idx) {
		return
	}
	s.stack = append(s.stack, frame{state: state, pos: pos, satisfied: satisfied})
}

// run explores branches depth first until one reaches Termination with the
// whole input consumed. A positive maxSteps bounds the number of branches
// examined.
func (s *search) run(maxSteps int) (bool, error) {
	states := s.chain.states
	s.push(states[s.chain.Start()].Forward(), 0, false)

	steps := 0
	for len(s.stack) > 0 {
		f := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]

		steps++
		if maxSteps > 0 && steps > maxSteps {
			return false, ErrBacktrackBudgetExceeded
		}

		st := &states[f.state]
		if st.IsTerminal() {
			if f.pos == s.n {
				return true, nil
			}
			continue
		}

		// The stack is LIFO: push the zero-occurrence skip first so that
		// consuming branches are tried before it, in successor order.
		if st.kind == KindStar || (st.kind == KindPlus && f.satisfied) {
			s.push(st.Forward(), f.pos, false)
		}

		if f.pos < s.n && st.Accepts(s.in.At(f.pos)) {
			for i := len(st.next) - 1; i >= 0; i-- {
				next := st.next[i]
				s.push(next, f.pos+1, next == f.state && st.kind == KindPlus)
			}
		}
	}
	return false, nil
}

// Match reports whether the chain matches the whole input.
func (c *Chain) Match(in Input) bool {
	matched, _ := newSearch(c, in).run(0)
	return matched
}

// MatchBudget is like Match but examines at most maxSteps branches.
// When the budget runs out it returns ErrBacktrackBudgetExceeded.
// A maxSteps of zero or less means no limit.
func (c *Chain) MatchBudget(in Input, maxSteps int) (bool, error) {
	return newSearch(c, in).run(maxSteps)
}
