package subset

import (
	"github.com/ava12/flang"
)

const (
	InvalidInputError = flang.SubsetErrors + iota
)

func invalidInputError(msg string, params ...any) *flang.Error {
	return flang.FormatError(InvalidInputError, msg, params...)
}
