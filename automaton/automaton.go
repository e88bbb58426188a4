// Package automaton defines deterministic and non-deterministic finite automata.
//
// Both kinds are built once with a builder and are read-only afterwards,
// so a single automaton may be shared by concurrent readers.
package automaton

import (
	"fmt"
)

// Symbol is an alphabet symbol or a state name; which one depends on context.
type Symbol = string

// Transition is a single rule δ(From, Symbol) = To.
type Transition struct {
	From, Symbol, To Symbol
}

func (t Transition) String() string {
	return fmt.Sprintf("δ(%s, %s) = %s", t.From, t.Symbol, t.To)
}

type key struct {
	state, symbol Symbol
}

// shape holds parts common for DFA and NFA.
type shape struct {
	states   []Symbol
	alphabet []Symbol
	initial  Symbol
	finals   []Symbol
	rules    []Transition
	stateSet map[Symbol]bool
	symSet   map[Symbol]bool
	finalSet map[Symbol]bool
}

func newShape(states, alphabet []Symbol, initial Symbol, finals []Symbol, rules []Transition) shape {
	s := shape{
		states:   append([]Symbol(nil), states...),
		alphabet: append([]Symbol(nil), alphabet...),
		initial:  initial,
		finals:   append([]Symbol(nil), finals...),
		rules:    append([]Transition(nil), rules...),
		stateSet: make(map[Symbol]bool, len(states)),
		symSet:   make(map[Symbol]bool, len(alphabet)),
		finalSet: make(map[Symbol]bool, len(finals)),
	}
	for _, q := range states {
		s.stateSet[q] = true
	}
	for _, a := range alphabet {
		s.symSet[a] = true
	}
	for _, q := range finals {
		s.finalSet[q] = true
	}
	return s
}

// States returns state names in definition order.
func (s *shape) States() []Symbol {
	return append([]Symbol(nil), s.states...)
}

// Alphabet returns alphabet symbols in definition order.
func (s *shape) Alphabet() []Symbol {
	return append([]Symbol(nil), s.alphabet...)
}

// Initial returns initial state name or empty string if not defined.
func (s *shape) Initial() Symbol {
	return s.initial
}

// Finals returns final state names in definition order.
func (s *shape) Finals() []Symbol {
	return append([]Symbol(nil), s.finals...)
}

// Transitions returns transition rules in definition order.
func (s *shape) Transitions() []Transition {
	return append([]Transition(nil), s.rules...)
}

func (s *shape) HasState(q Symbol) bool {
	return s.stateSet[q]
}

func (s *shape) HasSymbol(a Symbol) bool {
	return s.symSet[a]
}

func (s *shape) IsFinal(q Symbol) bool {
	return s.finalSet[q]
}

// DFA is a deterministic finite automaton: δ(q, a) has at most one destination.
type DFA struct {
	shape
	delta map[key]Symbol
}

// Next returns δ(q, a) and a flag telling whether it is defined.
func (d *DFA) Next(q, a Symbol) (Symbol, bool) {
	p, found := d.delta[key{q, a}]
	return p, found
}

// IsTotal reports whether δ(q, a) is defined for every state and every symbol.
func (d *DFA) IsTotal() bool {
	for _, q := range d.states {
		for _, a := range d.alphabet {
			if _, found := d.delta[key{q, a}]; !found {
				return false
			}
		}
	}
	return true
}

// NFA is a non-deterministic finite automaton: δ(q, a) is a set of states.
type NFA struct {
	shape
	delta map[key][]Symbol
}

// Targets returns δ(q, a) in the order destinations were first defined.
// Result is empty if no transition is defined.
func (n *NFA) Targets(q, a Symbol) []Symbol {
	return append([]Symbol(nil), n.delta[key{q, a}]...)
}
