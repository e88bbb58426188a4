package derive

import (
	"github.com/ava12/flang"
)

const (
	StuckError = flang.DeriveErrors + iota
	NonTerminalLeftError
	StepLimitError
)

func stuckError(form string) *flang.Error {
	return flang.FormatError(StuckError, "derivation stuck: no production applies to %q", form)
}

func nonTerminalLeftError(form string) *flang.Error {
	return flang.FormatError(NonTerminalLeftError, "derivation finished with non-terminal symbols in %q", form)
}

func stepLimitError(limit int, form string) *flang.Error {
	return flang.FormatError(StepLimitError, "derivation exceeded %d steps at %q", limit, form)
}
