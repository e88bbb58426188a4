package grammar

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/cznic/sortutil"
)

func distinct(items []string) bool {
	sorted := append(sort.StringSlice(nil), items...)
	sort.Sort(sorted)
	return sortutil.Dedupe(sorted) == len(items)
}

// Validate checks structural well-formedness:
// distinct single-character symbols, disjoint VN and VT, S ∈ VN,
// left sides consisting of exactly one nonterminal,
// right sides being Empty or strings over VN ∪ VT,
// and at least one production for S.
// Every violation is passed to report; nil report suppresses diagnostics.
func (g *Grammar) Validate(report func(string)) bool {
	valid := true
	fail := func(msg string, params ...any) {
		valid = false
		if report != nil {
			report(fmt.Sprintf(msg, params...))
		}
	}

	if !distinct(g.nonterms) {
		fail("(1) nonterminals must be distinct")
	}
	if !distinct(g.terms) {
		fail("(1) terminals must be distinct")
	}
	for _, s := range append(g.Nonterminals(), g.terms...) {
		if utf8.RuneCountInString(s) != 1 {
			fail("(1) symbol %q must be a single character", s)
		}
		if s == Empty {
			fail("(1) symbol %q is reserved for empty right side", s)
		}
	}
	for _, s := range g.nonterms {
		for _, t := range g.terms {
			if s == t {
				fail("(2) %q is both nonterminal and terminal", s)
			}
		}
	}

	if !g.IsNonterminalString(g.start) || utf8.RuneCountInString(g.start) != 1 {
		fail("(3) start symbol %q is not a nonterminal", g.start)
	}

	hasStart := false
	for i, p := range g.productions {
		if utf8.RuneCountInString(p.Left) != 1 || !g.IsNonterminalString(p.Left) {
			fail("(4) production %d: left side %q is not a single nonterminal", i+1, p.Left)
		}
		if p.Left == g.start {
			hasStart = true
		}
		if p.IsEmpty() {
			continue
		}
		if p.Right == "" {
			fail("(5) production %d: empty right side must be written as %s", i+1, Empty)
		}
		for _, r := range p.Right {
			if !g.ntSet[r] && !g.tSet[r] {
				fail("(5) production %d: unknown symbol %q in right side", i+1, string(r))
			}
		}
	}
	if !hasStart {
		fail("(6) no production for start symbol %q", g.start)
	}

	return valid
}

// IsNonterminalString reports whether w is non-empty and every its character is a nonterminal.
func (g *Grammar) IsNonterminalString(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !g.ntSet[r] {
			return false
		}
	}
	return true
}
