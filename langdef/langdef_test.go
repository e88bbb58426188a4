package langdef

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ava12/flang"
	"github.com/ava12/flang/automaton"
	"github.com/ava12/flang/grammar"
	. "github.com/ava12/flang/internal/test"
)

const binaryDef = `even odd
even
odd
0 1
even 0 even
even 1 odd
odd 0 even
odd 1 odd
`

const nfaDef = "q0 q1 q2\nq0\nq2\na b\nq0 a q0\nq0 a q1\nq1 b q2"

const grammarDef = `S A
a b
S
S aA
A bA
A λ
`

func checkErrorCode(t *testing.T, samples []string, code int, parse func(string) error) {
	for index, text := range samples {
		t.Run("input #"+strconv.Itoa(index), func(t *testing.T) {
			ExpectErrorCode(t, code, parse(text))
		})
	}
}

func parseDFA(text string) error {
	_, e := ParseDFA(String("dfa", text))
	return e
}

func parseNFA(text string) error {
	_, e := ParseNFA(String("nfa", text))
	return e
}

func parseGrammar(text string) error {
	_, e := ParseGrammar(String("grammar", text))
	return e
}

func TestParseDFA(t *testing.T) {
	d, e := ParseDFA(String("binary", binaryDef))
	ExpectNoError(t, e)
	assert.Equal(t, []string{"even", "odd"}, d.States())
	ExpectString(t, "even", d.Initial())
	assert.Equal(t, []string{"odd"}, d.Finals())
	assert.Equal(t, []string{"0", "1"}, d.Alphabet())
	assert.Equal(t, automaton.Transition{From: "odd", Symbol: "0", To: "even"}, d.Transitions()[2])
	ExpectBool(t, true, d.Validate(nil))
}

func TestParseNFA(t *testing.T) {
	n, e := ParseNFA(String("nfa", nfaDef))
	ExpectNoError(t, e)
	assert.Equal(t, []string{"q0", "q1"}, n.Targets("q0", "a"))
	assert.Equal(t, []string{"q2"}, n.Targets("q1", "b"))
	ExpectInt(t, 3, len(n.Transitions()))
}

func TestParseGrammar(t *testing.T) {
	g, e := ParseGrammar(String("g", grammarDef))
	ExpectNoError(t, e)
	assert.Equal(t, []string{"S", "A"}, g.Nonterminals())
	assert.Equal(t, []string{"a", "b"}, g.Terminals())
	ExpectString(t, "S", g.Start())
	assert.Equal(t, []grammar.Production{
		{Left: "S", Right: "aA"},
		{Left: "A", Right: "bA"},
		{Left: "A", Right: grammar.Empty},
	}, g.Productions())
	ExpectBool(t, true, g.Validate(nil))
}

func TestUnexpectedEof(t *testing.T) {
	samples := []string{
		"",
		"q0",
		"q0\nq0\n",
		"q0\nq0\nq0",
	}
	checkErrorCode(t, samples, UnexpectedEofError, parseDFA)
	checkErrorCode(t, []string{"", "S\na\n"}, UnexpectedEofError, parseGrammar)
}

func TestBlankLine(t *testing.T) {
	samples := []string{
		"\n",
		"q0\n\nq0\na\n",
		"q0\nq0\nq0\na\n\nq0 a q0\n",
		"q0\nq0\nq0\na\nq0 a q0\n\n",
		"q0\nq0\nq0\na\n  \t\n",
	}
	checkErrorCode(t, samples, BlankLineError, parseDFA)
	checkErrorCode(t, samples, BlankLineError, parseNFA)
	checkErrorCode(t, []string{"S\na\nS\n\nS a\n"}, BlankLineError, parseGrammar)
}

func TestFieldCount(t *testing.T) {
	samples := []string{
		"q0 q1\nq0 q1\nq1\na\n",
		"q0\nq0\nq0\na\nq0 a\n",
		"q0\nq0\nq0\na\nq0 a q0 q0\n",
	}
	checkErrorCode(t, samples, FieldCountError, parseDFA)
	checkErrorCode(t, []string{"S\na\nS\nS\n", "S\na\nS\nS a b\n", "S\na\nS T\n"}, FieldCountError, parseGrammar)
}

func TestErrorPosition(t *testing.T) {
	_, e := ParseDFA(String("def.txt", "q0\nq0\nq0\na\n  q0 a\n"))
	fe, ok := e.(*flang.Error)
	Assert(t, ok, "expecting *flang.Error, got %v", e)
	ExpectString(t, "def.txt", fe.SourceName)
	ExpectInt(t, 5, fe.Line)
	ExpectInt(t, 3, fe.Col)
	ExpectString(t, "transition must have 3 field(s), got 2 in def.txt at line 5 col 3", fe.Error())
}

func TestModelErrorsPassThrough(t *testing.T) {
	ExpectErrorCode(t, automaton.NondeterministicError, parseDFA("p q\np\nq\na\np a p\np a q\n"))
	ExpectNoError(t, parseNFA("p q\np\nq\na\np a p\np a q\n"))
}

func TestReadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "binary.txt")
	ExpectNoError(t, os.WriteFile(name, []byte(binaryDef), 0o644))

	src, e := ReadFile(name)
	ExpectNoError(t, e)
	ExpectString(t, name, src.Name())
	_, e = ParseDFA(src)
	ExpectNoError(t, e)

	_, e = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	ExpectErrorCode(t, ReadError, e)
}
