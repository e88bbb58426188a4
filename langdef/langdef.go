package langdef

import (
	"os"

	"github.com/ava12/flang/automaton"
	"github.com/ava12/flang/grammar"
	"github.com/ava12/flang/source"
)

// ReadFile reads definition file into a source named after the file.
func ReadFile(name string) (*source.Source, error) {
	content, e := os.ReadFile(name)
	if e != nil {
		return nil, readError(name, e)
	}
	return source.New(name, content), nil
}

// String makes named source from definition text.
func String(name, text string) *source.Source {
	return source.New(name, []byte(text))
}

type reader struct {
	src  *source.Source
	line int
}

// next returns fields of the next line, false at end of source.
func (r *reader) next() ([]source.Field, bool, error) {
	if r.src.Len() == 0 || r.line >= r.src.LineCount() {
		return nil, false, nil
	}

	r.line++
	fields := r.src.Fields(r.line)
	if len(fields) == 0 {
		return nil, false, blankLineError(r.src.Pos(r.line, 1))
	}
	return fields, true, nil
}

// header reads next mandatory line.
func (r *reader) header(what string) ([]source.Field, error) {
	fields, found, e := r.next()
	if e == nil && !found {
		e = eofError(r.src, what)
	}
	return fields, e
}

func (r *reader) single(what string) (string, error) {
	fields, e := r.header(what)
	if e == nil && len(fields) != 1 {
		e = fieldCountError(fields[0].Pos, what, 1, len(fields))
	}
	if e != nil {
		return "", e
	}
	return fields[0].Text, nil
}

func texts(fields []source.Field) []string {
	result := make([]string, len(fields))
	for i, f := range fields {
		result[i] = f.Text
	}
	return result
}

type automatonParts struct {
	states, finals, alphabet []string
	initial                  string
	rules                    [][3]string
}

func parseAutomaton(src *source.Source) (*automatonParts, error) {
	r := &reader{src: src}
	p := &automatonParts{}

	fields, e := r.header("states")
	if e != nil {
		return nil, e
	}
	p.states = texts(fields)

	p.initial, e = r.single("initial state")
	if e != nil {
		return nil, e
	}

	fields, e = r.header("final states")
	if e != nil {
		return nil, e
	}
	p.finals = texts(fields)

	fields, e = r.header("alphabet")
	if e != nil {
		return nil, e
	}
	p.alphabet = texts(fields)

	for {
		fields, found, e := r.next()
		if e != nil {
			return nil, e
		}
		if !found {
			break
		}
		if len(fields) != 3 {
			return nil, fieldCountError(fields[0].Pos, "transition", 3, len(fields))
		}
		p.rules = append(p.rules, [3]string{fields[0].Text, fields[1].Text, fields[2].Text})
	}
	return p, nil
}

// ParseDFA loads DFA definition.
func ParseDFA(src *source.Source) (*automaton.DFA, error) {
	p, e := parseAutomaton(src)
	if e != nil {
		return nil, e
	}

	b := automaton.NewDFABuilder().
		States(p.states...).
		Initial(p.initial).
		Finals(p.finals...).
		Alphabet(p.alphabet...)
	for _, rule := range p.rules {
		b.Transition(rule[0], rule[1], rule[2])
	}
	return b.Build()
}

// ParseNFA loads NFA definition.
func ParseNFA(src *source.Source) (*automaton.NFA, error) {
	p, e := parseAutomaton(src)
	if e != nil {
		return nil, e
	}

	b := automaton.NewNFABuilder().
		States(p.states...).
		Initial(p.initial).
		Finals(p.finals...).
		Alphabet(p.alphabet...)
	for _, rule := range p.rules {
		b.Transition(rule[0], rule[1], rule[2])
	}
	return b.Build()
}

// ParseGrammar loads grammar definition.
func ParseGrammar(src *source.Source) (*grammar.Grammar, error) {
	r := &reader{src: src}
	b := grammar.NewBuilder()

	fields, e := r.header("nonterminals")
	if e != nil {
		return nil, e
	}
	b.Nonterminals(texts(fields)...)

	fields, e = r.header("terminals")
	if e != nil {
		return nil, e
	}
	b.Terminals(texts(fields)...)

	start, e := r.single("start symbol")
	if e != nil {
		return nil, e
	}
	b.Start(start)

	for {
		fields, found, e := r.next()
		if e != nil {
			return nil, e
		}
		if !found {
			break
		}
		if len(fields) != 2 {
			return nil, fieldCountError(fields[0].Pos, "production", 2, len(fields))
		}
		b.Production(fields[0].Text, fields[1].Text)
	}
	return b.Build()
}
