package automaton

type builder struct {
	states, alphabet, finals []Symbol
	initial                  Symbol
	rules                    []Transition
}

func (b *builder) check(kind string) error {
	switch {
	case len(b.states) == 0:
		return missingFieldError(kind, "state set")
	case len(b.alphabet) == 0:
		return missingFieldError(kind, "alphabet")
	case b.initial == "":
		return missingFieldError(kind, "initial state")
	}
	return nil
}

func (b *builder) shape() shape {
	return newShape(b.states, b.alphabet, b.initial, b.finals, b.rules)
}

// DFABuilder collects DFA parts; Build returns immutable DFA.
type DFABuilder struct {
	b builder
}

func NewDFABuilder() *DFABuilder {
	return &DFABuilder{}
}

func (db *DFABuilder) States(states ...Symbol) *DFABuilder {
	db.b.states = append(db.b.states, states...)
	return db
}

func (db *DFABuilder) Alphabet(symbols ...Symbol) *DFABuilder {
	db.b.alphabet = append(db.b.alphabet, symbols...)
	return db
}

func (db *DFABuilder) Initial(state Symbol) *DFABuilder {
	db.b.initial = state
	return db
}

func (db *DFABuilder) Finals(states ...Symbol) *DFABuilder {
	db.b.finals = append(db.b.finals, states...)
	return db
}

func (db *DFABuilder) Transition(from, symbol, to Symbol) *DFABuilder {
	db.b.rules = append(db.b.rules, Transition{from, symbol, to})
	return db
}

// Build checks that all required parts are present and δ is a function.
// Repeating the same rule is allowed.
func (db *DFABuilder) Build() (*DFA, error) {
	if e := db.b.check("DFA"); e != nil {
		return nil, e
	}

	delta := make(map[key]Symbol, len(db.b.rules))
	for _, r := range db.b.rules {
		k := key{r.From, r.Symbol}
		if other, found := delta[k]; found && other != r.To {
			return nil, nondeterministicError(r.From, r.Symbol, r.To, other)
		}
		delta[k] = r.To
	}
	return &DFA{db.b.shape(), delta}, nil
}

// NFABuilder collects NFA parts; Build returns immutable NFA.
type NFABuilder struct {
	b builder
}

func NewNFABuilder() *NFABuilder {
	return &NFABuilder{}
}

func (nb *NFABuilder) States(states ...Symbol) *NFABuilder {
	nb.b.states = append(nb.b.states, states...)
	return nb
}

func (nb *NFABuilder) Alphabet(symbols ...Symbol) *NFABuilder {
	nb.b.alphabet = append(nb.b.alphabet, symbols...)
	return nb
}

func (nb *NFABuilder) Initial(state Symbol) *NFABuilder {
	nb.b.initial = state
	return nb
}

func (nb *NFABuilder) Finals(states ...Symbol) *NFABuilder {
	nb.b.finals = append(nb.b.finals, states...)
	return nb
}

func (nb *NFABuilder) Transition(from, symbol, to Symbol) *NFABuilder {
	nb.b.rules = append(nb.b.rules, Transition{from, symbol, to})
	return nb
}

func (nb *NFABuilder) Build() (*NFA, error) {
	if e := nb.b.check("NFA"); e != nil {
		return nil, e
	}

	delta := make(map[key][]Symbol, len(nb.b.rules))
	for _, r := range nb.b.rules {
		k := key{r.From, r.Symbol}
		if !contains(delta[k], r.To) {
			delta[k] = append(delta[k], r.To)
		}
	}
	return &NFA{nb.b.shape(), delta}, nil
}

func contains(items []Symbol, item Symbol) bool {
	for _, i := range items {
		if i == item {
			return true
		}
	}
	return false
}
