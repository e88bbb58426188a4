package derive

import (
	"github.com/ava12/flang"
	"github.com/ava12/flang/grammar"
)

// DefaultAttempts is the retry bound used by the console utility.
const DefaultAttempts = 100

// Retry calls GenerateWith until a derivation completes or attempts are exhausted.
// Only StuckError and StepLimitError cause another attempt; other errors are returned at once.
// Returns nil and no error ("no output") if every attempt failed.
func Retry(g *grammar.Grammar, rng Source, attempts int, opts Options) ([]string, error) {
	steps, e := RetryTrace(g, rng, attempts, opts)
	if steps == nil {
		return nil, e
	}
	return forms(steps), e
}

// RetryTrace is Retry returning derivation steps.
func RetryTrace(g *grammar.Grammar, rng Source, attempts int, opts Options) ([]Step, error) {
	for i := 0; i < attempts; i++ {
		steps, e := TraceWith(g, rng, opts)
		if e == nil {
			return steps, nil
		}
		if !flang.HasCode(e, StuckError) && !flang.HasCode(e, StepLimitError) {
			return nil, e
		}
	}
	return nil, nil
}
