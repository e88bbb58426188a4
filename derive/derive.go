// Package derive generates terminal words from a grammar by random derivation.
//
// Every step picks one applicable production and one occurrence of its left side,
// both uniformly at random from an explicitly passed Source,
// so a seeded Source reproduces the same derivation.
package derive

import (
	"github.com/ava12/flang/grammar"
)

// Source is a random number generator; *math/rand.Rand satisfies it.
// Intn must return a value in [0, n).
// A Source must not be shared by concurrent derivations without synchronization.
type Source interface {
	Intn(n int) int
}

// DefaultMaxSteps is the step limit used when Options.MaxSteps is 0.
const DefaultMaxSteps = 1000

// Options control derivation.
type Options struct {
	// MaxSteps limits the number of applied productions.
	// 0 means DefaultMaxSteps, negative value means no limit.
	MaxSteps int
}

func (o Options) maxSteps() int {
	if o.MaxSteps == 0 {
		return DefaultMaxSteps
	}
	return o.MaxSteps
}

// Step is a single derivation step.
type Step struct {
	// Form is the sentential form after this step.
	Form string

	// Production is the applied production, nil for the first step (start symbol).
	Production *grammar.Production

	// Pos is the character index in the previous form where Production was applied, or -1.
	Pos int
}

// Generate derives a terminal word from the start symbol of g.
// Returns the sequence of sentential forms starting with the start symbol
// and ending with a form consisting of terminals only.
// Returns nil if g is nil, has no start symbol, or is structurally invalid.
// Fails with StuckError if some non-terminal form has no applicable production
// and with StepLimitError after DefaultMaxSteps steps.
func Generate(g *grammar.Grammar, rng Source) ([]string, error) {
	return GenerateWith(g, rng, Options{})
}

// GenerateWith is Generate with explicit options.
func GenerateWith(g *grammar.Grammar, rng Source, opts Options) ([]string, error) {
	steps, e := TraceWith(g, rng, opts)
	if steps == nil {
		return nil, e
	}
	return forms(steps), e
}

func forms(steps []Step) []string {
	result := make([]string, len(steps))
	for i, s := range steps {
		result[i] = s.Form
	}
	return result
}

// Trace is Generate returning applied productions along with sentential forms.
func Trace(g *grammar.Grammar, rng Source) ([]Step, error) {
	return TraceWith(g, rng, Options{})
}

// TraceWith is Trace with explicit options.
// On error the steps made so far are returned along with it.
func TraceWith(g *grammar.Grammar, rng Source, opts Options) ([]Step, error) {
	if g == nil || g.Start() == "" || !g.Validate(nil) {
		return nil, nil
	}

	limit := opts.maxSteps()
	d := newDeriver(g)
	w := []rune(g.Start())
	steps := []Step{{Form: string(w), Pos: -1}}

	for d.hasNonterminal(w) {
		if limit > 0 && len(steps) > limit {
			return steps, stepLimitError(limit, string(w))
		}

		candidates := d.candidates(w)
		if len(candidates) == 0 {
			return steps, stuckError(string(w))
		}

		p := candidates[rng.Intn(len(candidates))]
		positions := occurrences(w, p.left)
		pos := positions[rng.Intn(len(positions))]
		w = apply(w, pos, p.right)
		production := p.production
		steps = append(steps, Step{string(w), &production, pos})
	}

	if !g.IsTerminalString(string(w)) {
		return steps, nonTerminalLeftError(string(w))
	}
	return steps, nil
}

type rule struct {
	production grammar.Production
	left       rune
	right      []rune
}

type deriver struct {
	g     *grammar.Grammar
	rules []rule
}

// newDeriver keeps one rule per distinct production, in order of first appearance.
func newDeriver(g *grammar.Grammar) *deriver {
	d := &deriver{g: g}
	seen := make(map[grammar.Production]bool)
	for _, p := range g.Productions() {
		if seen[p] {
			continue
		}
		seen[p] = true

		r := rule{production: p, left: []rune(p.Left)[0]}
		if !p.IsEmpty() {
			r.right = []rune(p.Right)
		}
		d.rules = append(d.rules, r)
	}
	return d
}

func (d *deriver) hasNonterminal(w []rune) bool {
	for _, r := range w {
		if d.g.IsNonterminal(r) {
			return true
		}
	}
	return false
}

// candidates returns distinct rules whose left side occurs in w.
func (d *deriver) candidates(w []rune) []*rule {
	present := make(map[rune]bool, len(w))
	for _, r := range w {
		present[r] = true
	}

	var result []*rule
	for i := range d.rules {
		if present[d.rules[i].left] {
			result = append(result, &d.rules[i])
		}
	}
	return result
}

func occurrences(w []rune, symbol rune) []int {
	var result []int
	for i, r := range w {
		if r == symbol {
			result = append(result, i)
		}
	}
	return result
}

// apply replaces the symbol at pos with right; empty right erases it.
func apply(w []rune, pos int, right []rune) []rune {
	result := make([]rune, 0, len(w)-1+len(right))
	result = append(result, w[:pos]...)
	result = append(result, right...)
	return append(result, w[pos+1:]...)
}
