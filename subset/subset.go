// Package subset converts NFA to equivalent DFA using subset (powerset) construction.
//
// Discovered subsets of NFA states are named S1, S2, ... in breadth-first discovery order.
// The empty subset, if reachable, is an ordinary dead state, so the resulting DFA is total.
package subset

import (
	"strconv"

	"github.com/ava12/flang/automaton"
	"github.com/ava12/flang/internal/bits"
	"github.com/ava12/flang/internal/bmap"
	"github.com/ava12/flang/internal/queue"
)

// NamePrefix is prepended to the discovery number to form DFA state names.
const NamePrefix = "S"

// Construction is the result of subset construction:
// the DFA and the bijection between its state names and NFA state subsets.
type Construction struct {
	dfa     *automaton.DFA
	subsets []*bits.Set
	names   *bmap.BMap[automaton.Symbol]
	states  []automaton.Symbol
}

// DFA returns constructed automaton.
func (c *Construction) DFA() *automaton.DFA {
	return c.dfa
}

// Names returns DFA state names in discovery order.
func (c *Construction) Names() []automaton.Symbol {
	result := make([]automaton.Symbol, c.names.Len())
	for i := range result {
		_, result[i] = c.names.At(i)
	}
	return result
}

// Subset returns NFA states represented by DFA state name, in NFA definition order.
// Returns nil and false for unknown names.
func (c *Construction) Subset(name automaton.Symbol) ([]automaton.Symbol, bool) {
	index := nameIndex(name)
	if index < 0 || index >= len(c.subsets) {
		return nil, false
	}
	return c.symbols(c.subsets[index]), true
}

// Name returns DFA state name representing given set of NFA states.
// Order and repetitions of states do not matter.
func (c *Construction) Name(subset []automaton.Symbol) (automaton.Symbol, bool) {
	set := bits.New(len(c.states))
	for _, q := range subset {
		i := indexOf(c.states, q)
		if i < 0 {
			return "", false
		}
		set.Add(i)
	}
	return c.names.Get(set.Key())
}

func (c *Construction) symbols(set *bits.Set) []automaton.Symbol {
	items := set.Items()
	result := make([]automaton.Symbol, len(items))
	for i, item := range items {
		result[i] = c.states[item]
	}
	return result
}

func stateName(index int) automaton.Symbol {
	return NamePrefix + strconv.Itoa(index+1)
}

func nameIndex(name automaton.Symbol) int {
	if len(name) <= len(NamePrefix) || name[:len(NamePrefix)] != NamePrefix {
		return -1
	}
	n, e := strconv.Atoi(name[len(NamePrefix):])
	if e != nil || strconv.Itoa(n) != name[len(NamePrefix):] {
		return -1
	}
	return n - 1
}

func indexOf(items []automaton.Symbol, item automaton.Symbol) int {
	for i, s := range items {
		if s == item {
			return i
		}
	}
	return -1
}

// Build converts n to a total DFA, see Construct.
func Build(n *automaton.NFA) (*automaton.DFA, error) {
	c, e := Construct(n)
	if e != nil {
		return nil, e
	}
	return c.dfa, nil
}

// Construct performs subset construction.
//
// The initial subset is {initial state}. Subsets are processed in discovery order;
// for every alphabet symbol the union of NFA destinations over the current subset
// is either resolved to an already registered name or registered under the next name.
// DFA final states are subsets intersecting NFA final states.
// n is never modified. Fails with InvalidInputError if n has no initial state.
func Construct(n *automaton.NFA) (*Construction, error) {
	if n == nil {
		return nil, invalidInputError("NFA is not defined")
	}
	if n.Initial() == "" {
		return nil, invalidInputError("NFA has no initial state")
	}

	states := n.States()
	initial := indexOf(states, n.Initial())
	if initial < 0 {
		return nil, invalidInputError("NFA initial state %q is not in state set", n.Initial())
	}

	size := len(states)
	index := make(map[automaton.Symbol]int, size)
	for i, q := range states {
		if _, found := index[q]; !found {
			index[q] = i
		}
	}
	finals := bits.New(size)
	for _, q := range n.Finals() {
		if i, found := index[q]; found {
			finals.Add(i)
		}
	}

	alphabet := n.Alphabet()
	// targets[i][k] is δ(states[i], alphabet[k]); destinations outside Q are ignored, Validate reports them
	targets := make([][]*bits.Set, size)
	for i, q := range states {
		targets[i] = make([]*bits.Set, len(alphabet))
		for k, a := range alphabet {
			set := bits.New(size)
			for _, p := range n.Targets(q, a) {
				if j, found := index[p]; found {
					set.Add(j)
				}
			}
			targets[i][k] = set
		}
	}

	c := &Construction{
		names:  bmap.New[automaton.Symbol](size),
		states: states,
	}
	register := func(set *bits.Set) (automaton.Symbol, bool) {
		key := set.Key()
		if name, found := c.names.Get(key); found {
			return name, false
		}

		name := stateName(c.names.Len())
		c.subsets = append(c.subsets, set)
		c.names.Set(key, name)
		return name, true
	}

	builder := automaton.NewDFABuilder().Alphabet(alphabet...)
	first, _ := register(bits.New(size, initial))
	worklist := queue.New(0)
	for !worklist.IsEmpty() {
		current, _ := worklist.First()
		currentName := stateName(current)
		for k, a := range alphabet {
			next := bits.New(size)
			for _, i := range c.subsets[current].Items() {
				next.Union(targets[i][k])
			}

			nextName, isNew := register(next)
			if isNew {
				worklist.Append(len(c.subsets) - 1)
			}
			builder.Transition(currentName, a, nextName)
		}
	}

	for i, set := range c.subsets {
		name := stateName(i)
		builder.States(name)
		if set.Intersects(finals) {
			builder.Finals(name)
		}
	}

	dfa, e := builder.Initial(first).Build()
	if e != nil {
		return nil, e
	}
	c.dfa = dfa
	return c, nil
}
