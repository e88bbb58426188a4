// Package grammar defines context-free grammar over single-character symbols.
package grammar

import (
	"strings"
	"unicode/utf8"
)

// Empty is the only legal spelling of an empty right side:
// applying such production erases the rewritten nonterminal.
const Empty = "λ"

// Production is a rewriting rule Left → Right.
type Production struct {
	Left, Right string
}

// IsEmpty reports whether production erases its left side.
func (p Production) IsEmpty() bool {
	return p.Right == Empty
}

func (p Production) String() string {
	return p.Left + " → " + p.Right
}

// Grammar is a context-free grammar G = (VN, VT, S, P).
// It is built once with Builder and is read-only afterwards.
type Grammar struct {
	nonterms    []string
	terms       []string
	start       string
	productions []Production
	ntSet       map[rune]bool
	tSet        map[rune]bool
}

// Nonterminals returns VN in definition order.
func (g *Grammar) Nonterminals() []string {
	return append([]string(nil), g.nonterms...)
}

// Terminals returns VT in definition order.
func (g *Grammar) Terminals() []string {
	return append([]string(nil), g.terms...)
}

// Start returns start symbol or empty string.
func (g *Grammar) Start() string {
	return g.start
}

// Productions returns productions in definition order, duplicates included.
func (g *Grammar) Productions() []Production {
	return append([]Production(nil), g.productions...)
}

func (g *Grammar) IsNonterminal(r rune) bool {
	return g.ntSet[r]
}

func (g *Grammar) IsTerminal(r rune) bool {
	return g.tSet[r]
}

// IsTerminalString reports whether every character of w is a terminal.
func (g *Grammar) IsTerminalString(w string) bool {
	for _, r := range w {
		if !g.tSet[r] {
			return false
		}
	}
	return true
}

func symbolSet(symbols []string) map[rune]bool {
	result := make(map[rune]bool, len(symbols))
	for _, s := range symbols {
		if utf8.RuneCountInString(s) == 1 {
			r, _ := utf8.DecodeRuneInString(s)
			result[r] = true
		}
	}
	return result
}

// Builder collects grammar parts.
type Builder struct {
	nonterms, terms []string
	start           string
	productions     []Production
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Nonterminals(symbols ...string) *Builder {
	b.nonterms = append(b.nonterms, symbols...)
	return b
}

func (b *Builder) Terminals(symbols ...string) *Builder {
	b.terms = append(b.terms, symbols...)
	return b
}

func (b *Builder) Start(symbol string) *Builder {
	b.start = symbol
	return b
}

// Production adds rule left → right; right may be Empty.
func (b *Builder) Production(left, right string) *Builder {
	b.productions = append(b.productions, Production{left, right})
	return b
}

// Productions adds rules written as "L R" or "L→R" pairs, e.g. "S aS".
func (b *Builder) Productions(rules ...string) *Builder {
	for _, rule := range rules {
		left, right, found := strings.Cut(rule, "→")
		if !found {
			left, right, _ = strings.Cut(strings.TrimSpace(rule), " ")
		}
		b.Production(strings.TrimSpace(left), strings.TrimSpace(right))
	}
	return b
}

// Build checks that VN, VT, and S are present and returns immutable grammar.
func (b *Builder) Build() (*Grammar, error) {
	switch {
	case len(b.nonterms) == 0:
		return nil, missingFieldError("nonterminal set")
	case len(b.terms) == 0:
		return nil, missingFieldError("terminal set")
	case b.start == "":
		return nil, missingFieldError("start symbol")
	}

	return &Grammar{
		nonterms:    append([]string(nil), b.nonterms...),
		terms:       append([]string(nil), b.terms...),
		start:       b.start,
		productions: append([]Production(nil), b.productions...),
		ntSet:       symbolSet(b.nonterms),
		tSet:        symbolSet(b.terms),
	}, nil
}
