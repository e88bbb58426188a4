// Package source defines named definition source split into lines.
package source

import (
	"bytes"
	"sort"
	"unicode"
	"unicode/utf8"
)

type Source struct {
	name       string
	content    []byte
	lineStarts []int
}

func New(name string, content []byte) *Source {
	s := &Source{name: name, content: content}
	lineCnt := bytes.Count(content, []byte("\n")) + 1
	s.lineStarts = make([]int, 1, lineCnt)
	for i, b := range content {
		if b == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}
	return s
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Len() int {
	return len(s.content)
}

// LineCount returns the number of lines; a final line break does not start a new line.
func (s *Source) LineCount() int {
	l := len(s.lineStarts)
	if l > 1 && s.lineStarts[l-1] == len(s.content) {
		l--
	}
	return l
}

// Line returns content of 1-based line without line break characters.
func (s *Source) Line(line int) []byte {
	if line <= 0 || line > len(s.lineStarts) {
		return nil
	}

	start := s.lineStarts[line-1]
	end := len(s.content)
	if line < len(s.lineStarts) {
		end = s.lineStarts[line] - 1
	}
	return bytes.TrimSuffix(s.content[start:end], []byte("\r"))
}

// LineCol converts byte offset to 1-based line and column (in runes).
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	lineIndex := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > pos
	}) - 1
	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCount(s.content[lineStart:pos]) + 1
}

// Pos returns position of 1-based line and column.
func (s *Source) Pos(line, col int) Pos {
	return Pos{s, line, col}
}

// Field is a whitespace-separated part of a line.
type Field struct {
	Text string
	Pos  Pos
}

// Fields splits 1-based line into whitespace-separated fields, keeping their positions.
func (s *Source) Fields(line int) []Field {
	var result []Field
	content := s.Line(line)
	col := 1
	start, startCol := -1, 0
	for i, r := range string(content) {
		if unicode.IsSpace(r) {
			if start >= 0 {
				result = append(result, Field{string(content[start:i]), s.Pos(line, startCol)})
				start = -1
			}
		} else if start < 0 {
			start, startCol = i, col
		}
		col++
	}
	if start >= 0 {
		result = append(result, Field{string(content[start:]), s.Pos(line, startCol)})
	}
	return result
}

type Pos struct {
	src       *Source
	line, col int
}

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.name
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}
