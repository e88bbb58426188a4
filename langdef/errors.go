package langdef

import (
	"github.com/ava12/flang"
	"github.com/ava12/flang/source"
)

const (
	UnexpectedEofError = flang.LoaderErrors + iota
	BlankLineError
	FieldCountError
	ReadError
)

func eofError(src *source.Source, what string) *flang.Error {
	line, col := src.LineCol(src.Len())
	return flang.FormatErrorPos(src.Pos(line, col), UnexpectedEofError, "unexpected end of definition, expecting %s", what)
}

func blankLineError(pos source.Pos) *flang.Error {
	return flang.FormatErrorPos(pos, BlankLineError, "blank line")
}

func fieldCountError(pos source.Pos, what string, expected, got int) *flang.Error {
	return flang.FormatErrorPos(pos, FieldCountError, "%s must have %d field(s), got %d", what, expected, got)
}

func readError(name string, e error) *flang.Error {
	return flang.FormatError(ReadError, "cannot read %s: %s", name, e.Error())
}
