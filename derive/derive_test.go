package derive

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ava12/flang/grammar"
	. "github.com/ava12/flang/internal/test"
)

// script is a Source returning predefined choices.
type script struct {
	t       *testing.T
	choices []int
}

func (s *script) Intn(n int) int {
	Assert(s.t, len(s.choices) > 0, "no more choices")
	result := s.choices[0]
	s.choices = s.choices[1:]
	Assert(s.t, result < n, "choice %d out of range [0, %d)", result, n)
	return result
}

func build(t *testing.T, nonterms, terms, start string, rules ...string) *grammar.Grammar {
	g, e := grammar.NewBuilder().
		Nonterminals(strings.Fields(nonterms)...).
		Terminals(strings.Fields(terms)...).
		Start(start).
		Productions(rules...).
		Build()
	ExpectNoError(t, e)
	return g
}

func TestScriptedDerivation(t *testing.T) {
	g := build(t, "S", "a b", "S", "S aS", "S b")
	rng := &script{t, []int{0, 0, 0, 0, 1, 0}}
	forms, e := Generate(g, rng)
	ExpectNoError(t, e)
	assert.Equal(t, []string{"S", "aS", "aaS", "aab"}, forms)
	assert.Empty(t, rng.choices)
}

func TestDuplicateProductionsCountOnce(t *testing.T) {
	g := build(t, "S", "a b", "S", "S aS", "S aS", "S b")
	rng := &script{t, []int{1, 0}}
	forms, e := Generate(g, rng)
	ExpectNoError(t, e)
	assert.Equal(t, []string{"S", "b"}, forms)
}

func TestPositionChoice(t *testing.T) {
	g := build(t, "S A", "a b", "S", "S AA", "A a", "A b")
	// S → AA, then A → b at position 1, then A → a at position 0
	rng := &script{t, []int{0, 0, 1, 1, 0, 0}}
	steps, e := Trace(g, rng)
	ExpectNoError(t, e)

	forms := make([]string, len(steps))
	for i, s := range steps {
		forms[i] = s.Form
	}
	assert.Equal(t, []string{"S", "AA", "Ab", "ab"}, forms)
	assert.Nil(t, steps[0].Production)
	ExpectInt(t, -1, steps[0].Pos)
	ExpectString(t, "A → b", steps[2].Production.String())
	ExpectInt(t, 1, steps[2].Pos)
	ExpectInt(t, 0, steps[3].Pos)
}

func TestCandidatesFollowPresentSymbols(t *testing.T) {
	g := build(t, "S A B", "a", "S", "B a", "S A", "A a")
	// only S → A applies to "S", only A → a applies to "A"
	rng := &script{t, []int{0, 0, 0, 0}}
	forms, e := Generate(g, rng)
	ExpectNoError(t, e)
	assert.Equal(t, []string{"S", "A", "a"}, forms)
}

func TestEmptyProduction(t *testing.T) {
	g := build(t, "S", "a", "S", "S aSa", "S λ")
	rng := &script{t, []int{0, 0, 1, 0}}
	forms, e := Generate(g, rng)
	ExpectNoError(t, e)
	assert.Equal(t, []string{"S", "aSa", "aa"}, forms)
}

func TestStuck(t *testing.T) {
	g := build(t, "S A", "a", "S", "S aA")
	forms, e := Generate(g, &script{t, []int{0, 0}})
	ExpectErrorCode(t, StuckError, e)
	assert.Equal(t, []string{"S", "aA"}, forms)
}

func TestInvalidGrammar(t *testing.T) {
	forms, e := Generate(nil, rand.New(rand.NewSource(1)))
	ExpectNoError(t, e)
	assert.Nil(t, forms)

	g := build(t, "S", "a", "S", "S ax")
	forms, e = Generate(g, rand.New(rand.NewSource(1)))
	ExpectNoError(t, e)
	assert.Nil(t, forms)
}

func TestStepLimit(t *testing.T) {
	g := build(t, "S", "a", "S", "S aS", "S a")
	rng := &script{t, []int{0, 0, 0, 0}}
	forms, e := GenerateWith(g, rng, Options{MaxSteps: 2})
	ExpectErrorCode(t, StepLimitError, e)
	assert.Equal(t, []string{"S", "aS", "aaS"}, forms)
}

func TestDeterminism(t *testing.T) {
	g := build(t, "E T F", "x + * ( )", "E",
		"E E+T", "E T", "T T*F", "T F", "F (E)", "F x")
	opts := Options{MaxSteps: 1000}
	for seed := int64(1); seed <= 20; seed++ {
		first, e1 := GenerateWith(g, rand.New(rand.NewSource(seed)), opts)
		second, e2 := GenerateWith(g, rand.New(rand.NewSource(seed)), opts)
		assert.Equal(t, first, second, "seed %d", seed)
		assert.Equal(t, e1, e2, "seed %d", seed)
	}
}

func TestTerminationOrError(t *testing.T) {
	g := build(t, "S A B", "a b", "S", "S AB", "A aA", "A a", "B bB", "B b", "B λ")
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		forms, e := Retry(g, rng, DefaultAttempts, Options{MaxSteps: 500})
		ExpectNoError(t, e)
		Assert(t, len(forms) > 1, "no output")
		ExpectString(t, "S", forms[0])
		last := forms[len(forms)-1]
		ExpectBool(t, true, g.IsTerminalString(last))
		Assert(t, strings.HasPrefix(last, "a"), "unexpected word %q", last)
	}
}

func TestRetryGivesUp(t *testing.T) {
	g := build(t, "S A", "a", "S", "S aA")
	forms, e := Retry(g, rand.New(rand.NewSource(7)), 5, Options{})
	ExpectNoError(t, e)
	assert.Nil(t, forms)
}

func TestGrammarIsNotModified(t *testing.T) {
	g := build(t, "S", "a b", "S", "S aS", "S aS", "S b")
	before := g.Productions()
	_, e := Generate(g, rand.New(rand.NewSource(3)))
	ExpectNoError(t, e)
	assert.Equal(t, before, g.Productions())
}

func TestDefaultStepLimit(t *testing.T) {
	// S → SSS grows the form as often as S → a shrinks it
	g := build(t, "S", "a", "S", "S SSS", "S a")
	for seed := int64(1); seed <= 10; seed++ {
		forms, e := Generate(g, rand.New(rand.NewSource(seed)))
		Assert(t, len(forms) <= DefaultMaxSteps+1, "seed %d: %d forms", seed, len(forms))
		if e != nil {
			ExpectErrorCode(t, StepLimitError, e)
			continue
		}
		ExpectBool(t, true, g.IsTerminalString(forms[len(forms)-1]))
	}

	for seed := int64(1); seed <= 10; seed++ {
		forms, e := Retry(g, rand.New(rand.NewSource(seed)), 10, Options{})
		ExpectNoError(t, e)
		if forms != nil {
			ExpectBool(t, true, g.IsTerminalString(forms[len(forms)-1]))
		}
	}
}

func TestNegativeStepLimit(t *testing.T) {
	g := build(t, "S", "a", "S", "S aS", "S a")
	choices := make([]int, 0, (DefaultMaxSteps+2)*2)
	for i := 0; i <= DefaultMaxSteps; i++ {
		choices = append(choices, 0, 0)
	}
	choices = append(choices, 1, 0)

	forms, e := GenerateWith(g, &script{t, choices}, Options{MaxSteps: -1})
	ExpectNoError(t, e)
	ExpectInt(t, DefaultMaxSteps+3, len(forms))
	ExpectString(t, strings.Repeat("a", DefaultMaxSteps+2), forms[len(forms)-1])
}
