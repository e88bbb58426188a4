/*
Package flang models formal-language constructs used by compiler front-ends:
context-free grammars, deterministic and non-deterministic finite automata.

Consists of subpackages:
  - automaton: DFA and NFA structures, builders and structural validation;
  - grammar: context-free grammar structure, builder and validation;
  - langdef: loads automata and grammars from line-oriented text definitions;
  - subset: converts NFA to equivalent total DFA (subset construction);
  - derive: generates terminal words by random derivation from a grammar;
  - accept: runs words against a DFA and reports the trace;
  - render: listings and transition tables for presentation;
  - cmd/flang: console utility tying all of the above together.

Typical usage is:

1. Load a definition using langdef or build it with automaton/grammar builders.

2. Optionally validate it.

3. Feed an NFA to subset.Build, a grammar to derive.Generate,
a DFA (supplied or constructed) to accept.Check.
*/
package flang

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	LoaderErrors = 1   // used by langdef
	ModelErrors  = 101 // used by automaton and grammar
	SubsetErrors = 201 // used by subset
	DeriveErrors = 301 // used by derive
)

// Error is the error type used by flang subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains definition source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source file or 0.
	Line int

	// Col contains column number in source file or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos implements this interface.
type SourcePos interface {
	// SourceName returns source file name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is an *Error with the same code,
// so errors.Is(e, &flang.Error{Code: ...}) works on wrapped errors.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}

// HasCode reports whether e is an *Error with given code.
func HasCode(e error, code int) bool {
	fe, ok := e.(*Error)
	return ok && fe.Code == code
}
