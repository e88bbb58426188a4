// Package render writes human-readable listings of automata, grammars,
// acceptance traces, and derivations.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/ava12/flang/accept"
	"github.com/ava12/flang/automaton"
	"github.com/ava12/flang/derive"
	"github.com/ava12/flang/grammar"
	"github.com/ava12/flang/subset"
)

// Automaton is the read-only view shared by DFA and NFA.
type Automaton interface {
	States() []automaton.Symbol
	Alphabet() []automaton.Symbol
	Initial() automaton.Symbol
	Finals() []automaton.Symbol
	Transitions() []automaton.Transition
}

func sortedList(items []string) string {
	sorted := append([]string(nil), items...)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}

// WriteAutomaton writes states, alphabet, initial and final states, and rules in definition order.
func WriteAutomaton(w io.Writer, title string, a Automaton) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", title)
	fmt.Fprintf(&sb, "States = { %s }\n", sortedList(a.States()))
	fmt.Fprintf(&sb, "Sigma = { %s }\n", sortedList(a.Alphabet()))
	fmt.Fprintf(&sb, "Initial state = %s\n", a.Initial())
	fmt.Fprintf(&sb, "Final states = { %s }\n", sortedList(a.Finals()))
	sb.WriteString("Transitions:\n")
	for _, t := range a.Transitions() {
		fmt.Fprintf(&sb, "  %s\n", t)
	}
	_, e := io.WriteString(w, sb.String())
	return e
}

func WriteDFA(w io.Writer, d *automaton.DFA) error {
	return WriteAutomaton(w, "DFA", d)
}

func WriteNFA(w io.Writer, n *automaton.NFA) error {
	return WriteAutomaton(w, "NFA", n)
}

// WriteGrammar writes VN, VT, S and numbered productions.
func WriteGrammar(w io.Writer, g *grammar.Grammar) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "VN = { %s }\n", sortedList(g.Nonterminals()))
	fmt.Fprintf(&sb, "VT = { %s }\n", sortedList(g.Terminals()))
	fmt.Fprintf(&sb, "S = %s\n", g.Start())
	sb.WriteString("Productions:\n")
	for i, p := range g.Productions() {
		fmt.Fprintf(&sb, "  (%d) %s\n", i+1, p)
	}
	_, e := io.WriteString(w, sb.String())
	return e
}

func stateLabel(d *automaton.DFA, q automaton.Symbol) string {
	label := q
	if q == d.Initial() {
		label = "→" + label
	}
	if d.IsFinal(q) {
		label += "*"
	}
	return label
}

// TransitionTable writes δ as a table: one row per state, one column per symbol.
// The initial state is marked with →, final states with *, undefined entries with -.
func TransitionTable(w io.Writer, d *automaton.DFA) error {
	alphabet := d.Alphabet()
	table := tablewriter.NewWriter(w)
	table.Header(append([]string{"δ"}, alphabet...))
	for _, q := range d.States() {
		row := []string{stateLabel(d, q)}
		for _, a := range alphabet {
			p, found := d.Next(q, a)
			if !found {
				p = "-"
			}
			row = append(row, p)
		}
		if e := table.Append(row); e != nil {
			return e
		}
	}
	return table.Render()
}

// SubsetTable writes DFA state names along with NFA state subsets they represent.
func SubsetTable(w io.Writer, c *subset.Construction) error {
	d := c.DFA()
	table := tablewriter.NewWriter(w)
	table.Header([]string{"DFA state", "NFA states"})
	for _, name := range c.Names() {
		states, _ := c.Subset(name)
		if e := table.Append([]string{stateLabel(d, name), "{" + strings.Join(states, ", ") + "}"}); e != nil {
			return e
		}
	}
	return table.Render()
}

// WriteTrace writes word acceptance steps and the verdict.
func WriteTrace(w io.Writer, d *automaton.DFA, word string, r accept.Result) error {
	var sb strings.Builder
	if r.Invalid != "" {
		fmt.Fprintf(&sb, "invalid symbol %q in %q, alphabet is { %s }\n", r.Invalid, word, strings.Join(d.Alphabet(), ", "))
	} else {
		fmt.Fprintf(&sb, "initial state: %s\n", d.Initial())
		for _, s := range r.Trace {
			fmt.Fprintf(&sb, "  %s --%s--> %s\n", s.From, s.Symbol, s.To)
		}
		if r.Verdict == accept.Stuck {
			runes := []rune(word)
			fmt.Fprintf(&sb, "no transition from %s on %s\n", r.State, string(runes[r.Consumed]))
		} else {
			fmt.Fprintf(&sb, "last state: %s\n", r.State)
		}
	}
	fmt.Fprintf(&sb, "%q: %s\n", word, r.Verdict)
	_, e := io.WriteString(w, sb.String())
	return e
}

// WriteDerivation writes derivation steps as S ⇒ aS ⇒ ... with applied productions.
func WriteDerivation(w io.Writer, steps []derive.Step) error {
	var sb strings.Builder
	for i, s := range steps {
		if i == 0 {
			fmt.Fprintf(&sb, "  %s\n", s.Form)
			continue
		}
		form := s.Form
		if form == "" {
			form = grammar.Empty
		}
		fmt.Fprintf(&sb, "⇒ %s    [%s at %d]\n", form, s.Production, s.Pos)
	}
	_, e := io.WriteString(w, sb.String())
	return e
}
