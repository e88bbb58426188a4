// Package accept runs words against a DFA.
package accept

import (
	"fmt"

	"github.com/ava12/flang/automaton"
)

// Verdict classifies a word; none of the verdicts is an error.
type Verdict int

const (
	// Accepted means the word was consumed and the last state is final.
	Accepted Verdict = iota
	// Rejected means the last state is not final or the word contains a symbol outside the alphabet.
	Rejected
	// Stuck means no transition was defined for some symbol; the word is not consumed.
	Stuck
)

var verdictNames = []string{"accepted", "rejected", "stuck"}

func (v Verdict) String() string {
	if v < 0 || int(v) >= len(verdictNames) {
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
	return verdictNames[v]
}

// Step is a single transition taken while reading a word.
type Step = automaton.Transition

// Result holds the verdict and the ordered trace of taken transitions.
type Result struct {
	Verdict Verdict

	// Trace lists transitions in the order they were taken.
	Trace []Step

	// State is the state where reading stopped.
	// It is empty if the word was rejected before reading.
	State automaton.Symbol

	// Invalid is the first symbol outside the alphabet, or empty string.
	Invalid automaton.Symbol

	// Consumed is the number of symbols read successfully.
	Consumed int
}

// Check reads word symbol by symbol (one character per symbol) starting at the initial state.
// A word containing a symbol outside the alphabet is rejected without reading.
// d is never modified, so Check may be called concurrently on the same DFA.
func Check(d *automaton.DFA, word string) Result {
	for _, r := range word {
		if a := string(r); !d.HasSymbol(a) {
			return Result{Verdict: Rejected, Invalid: a}
		}
	}

	state := d.Initial()
	result := Result{State: state}
	for _, r := range word {
		a := string(r)
		next, found := d.Next(state, a)
		if !found {
			result.Verdict = Stuck
			return result
		}

		result.Trace = append(result.Trace, Step{From: state, Symbol: a, To: next})
		result.Consumed++
		state = next
		result.State = state
	}

	if d.IsFinal(state) {
		result.Verdict = Accepted
	} else {
		result.Verdict = Rejected
	}
	return result
}

// Accepts reports whether d accepts word.
func Accepts(d *automaton.DFA, word string) bool {
	return Check(d, word).Verdict == Accepted
}
