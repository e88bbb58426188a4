package grammar

import (
	"github.com/ava12/flang"
)

// Grammar codes share ModelErrors class with automaton package, starting from its middle.
const (
	MissingFieldError = flang.ModelErrors + 50 + iota
)

func missingFieldError(field string) *flang.Error {
	return flang.FormatError(MissingFieldError, "grammar: %s is not defined", field)
}
