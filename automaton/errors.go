package automaton

import (
	"github.com/ava12/flang"
)

const (
	MissingFieldError = flang.ModelErrors + iota
	NondeterministicError
)

func missingFieldError(kind, field string) *flang.Error {
	return flang.FormatError(MissingFieldError, "%s: %s is not defined", kind, field)
}

func nondeterministicError(from, symbol, to, other Symbol) *flang.Error {
	return flang.FormatError(NondeterministicError, "DFA: δ(%s, %s) is already defined as %s, cannot redefine as %s", from, symbol, other, to)
}
