package automaton

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/cznic/sortutil"
)

// distinct reports whether items contain no duplicates.
func distinct(items []Symbol) bool {
	sorted := append(sort.StringSlice(nil), items...)
	sort.Sort(sorted)
	return sortutil.Dedupe(sorted) == len(items)
}

func (s *shape) validate(report func(string)) bool {
	valid := true
	fail := func(msg string, params ...any) {
		valid = false
		if report != nil {
			report(fmt.Sprintf(msg, params...))
		}
	}

	if !distinct(s.states) {
		fail("(1) states must be distinct")
	}
	if !distinct(s.alphabet) {
		fail("(2) alphabet symbols must be distinct")
	}
	for _, a := range s.alphabet {
		if utf8.RuneCountInString(a) != 1 {
			fail("(2) alphabet symbol %q must be a single character", a)
		}
	}

	for i, r := range s.rules {
		if !s.HasState(r.From) {
			fail("(3) transition %d: source %q is not a state", i+1, r.From)
		}
		if !s.HasSymbol(r.Symbol) {
			fail("(3) transition %d: symbol %q is not in alphabet", i+1, r.Symbol)
		}
		if !s.HasState(r.To) {
			fail("(3) transition %d: destination %q is not a state", i+1, r.To)
		}
	}

	if !s.HasState(s.initial) {
		fail("(4) initial state %q is not a state", s.initial)
	}
	for _, q := range s.finals {
		if !s.HasState(q) {
			fail("(5) final state %q is not a state", q)
		}
	}
	return valid
}

// Validate checks structural well-formedness: distinct states,
// distinct single-character symbols, transitions over known states and symbols,
// initial state and final states belonging to the state set.
// Every violation is passed to report; nil report suppresses diagnostics.
func (d *DFA) Validate(report func(string)) bool {
	return d.validate(report)
}

// Validate performs the same checks as DFA.Validate.
func (n *NFA) Validate(report func(string)) bool {
	return n.validate(report)
}
