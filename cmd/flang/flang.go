/*
flang is a console utility working with finite automata and grammars.
Usage is

	flang -dfa <file> [-t] [-i] [<word> ...]
	flang -nfa <file> [-t] [-i] [<word> ...]
	flang -grammar <file> [-seed <n>] [-n <count>] [-attempts <k>] [-steps <m>]

-dfa <file> loads DFA definition, lists it, and checks words given as arguments;

-nfa <file> loads NFA definition, converts it to DFA, lists both, and checks words against the DFA;

-t prints DFA transition table instead of rule listing, in NFA mode also prints DFA state subsets;

-i starts interactive word checking;

-grammar <file> loads grammar definition and prints <count> random derivations;

-seed <n> defines random seed, default is current time; -seed 0 is a valid seed;

-attempts <k> defines the number of attempts for each derivation that gets stuck;

-steps <m> limits the number of steps in a single derivation, negative value means no limit.

Definition formats are described in langdef package.
Every definition is validated before use, validation messages are printed to stderr.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/manifoldco/promptui"

	"github.com/ava12/flang/accept"
	"github.com/ava12/flang/automaton"
	"github.com/ava12/flang/derive"
	"github.com/ava12/flang/langdef"
	"github.com/ava12/flang/render"
	"github.com/ava12/flang/subset"
)

var (
	dfaFileName, nfaFileName, grammarFileName string
	tables, interactive                       bool
	seed                                      int64
	seedSet                                   bool
	count, attempts, maxSteps                 int
)

var errInvalid = errors.New("definition is not valid")

func main() {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintln(out, "Usage is  flang (-dfa <file> | -nfa <file>) [-t] [-i] [<word> ...]")
		fmt.Fprintln(out, "      or  flang -grammar <file> [-seed <n>] [-n <count>] [-attempts <k>] [-steps <m>]")
		flag.PrintDefaults()
	}

	flag.StringVar(&dfaFileName, "dfa", "", "DFA definition file name")
	flag.StringVar(&nfaFileName, "nfa", "", "NFA definition file name, NFA is converted to DFA")
	flag.StringVar(&grammarFileName, "grammar", "", "grammar definition file name")
	flag.BoolVar(&tables, "t", false, "print transition tables")
	flag.BoolVar(&interactive, "i", false, "check words interactively")
	flag.Int64Var(&seed, "seed", 0, "random seed, default is current time")
	flag.IntVar(&count, "n", 1, "number of derivations")
	flag.IntVar(&attempts, "attempts", derive.DefaultAttempts, "attempts per derivation")
	flag.IntVar(&maxSteps, "steps", derive.DefaultMaxSteps, "step limit per derivation, negative means no limit")
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})

	var e error
	switch {
	case dfaFileName != "" && nfaFileName == "" && grammarFileName == "":
		e = runDFA(os.Stdout)
	case nfaFileName != "" && dfaFileName == "" && grammarFileName == "":
		e = runNFA(os.Stdout)
	case grammarFileName != "" && dfaFileName == "" && nfaFileName == "":
		e = runGrammar(os.Stdout)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if e != nil {
		fmt.Fprintln(os.Stderr, e.Error())
		os.Exit(3)
	}
}

func report(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}

func runDFA(out io.Writer) error {
	src, e := langdef.ReadFile(dfaFileName)
	if e != nil {
		return e
	}
	d, e := langdef.ParseDFA(src)
	if e != nil {
		return e
	}
	if !d.Validate(report) {
		return errInvalid
	}

	if e = writeDFA(out, d); e != nil {
		return e
	}
	return checkWords(out, d)
}

func runNFA(out io.Writer) error {
	src, e := langdef.ReadFile(nfaFileName)
	if e != nil {
		return e
	}
	n, e := langdef.ParseNFA(src)
	if e != nil {
		return e
	}
	if !n.Validate(report) {
		return errInvalid
	}

	c, e := subset.Construct(n)
	if e != nil {
		return e
	}

	if e = render.WriteNFA(out, n); e != nil {
		return e
	}
	fmt.Fprintln(out)
	if tables {
		if e = render.SubsetTable(out, c); e != nil {
			return e
		}
	}
	if e = writeDFA(out, c.DFA()); e != nil {
		return e
	}
	return checkWords(out, c.DFA())
}

func writeDFA(out io.Writer, d *automaton.DFA) error {
	if tables {
		return render.TransitionTable(out, d)
	}
	return render.WriteDFA(out, d)
}

func checkWords(out io.Writer, d *automaton.DFA) error {
	for _, word := range flag.Args() {
		fmt.Fprintln(out)
		if e := render.WriteTrace(out, d, word, accept.Check(d, word)); e != nil {
			return e
		}
	}

	if interactive {
		return promptWords(out, d)
	}
	return nil
}

// promptWords checks words until "exit" is entered or the prompt is interrupted.
func promptWords(out io.Writer, d *automaton.DFA) error {
	styles := map[accept.Verdict]func(any) string{
		accept.Accepted: promptui.Styler(promptui.FGGreen),
		accept.Rejected: promptui.Styler(promptui.FGRed),
		accept.Stuck:    promptui.Styler(promptui.FGYellow),
	}
	divider := promptui.Styler(promptui.FGMagenta)("------------------------------")

	for {
		prompt := promptui.Prompt{
			Label: "Enter a word to check (or type 'exit' to quit)",
		}
		word, e := prompt.Run()
		if errors.Is(e, promptui.ErrInterrupt) || errors.Is(e, promptui.ErrEOF) {
			return nil
		}
		if e != nil {
			return e
		}
		if word == "exit" {
			return nil
		}

		r := accept.Check(d, word)
		if e = render.WriteTrace(out, d, word, r); e != nil {
			return e
		}
		fmt.Fprintln(out, styles[r.Verdict](r.Verdict.String()))
		fmt.Fprintln(out, divider)
	}
}

func runGrammar(out io.Writer) error {
	src, e := langdef.ReadFile(grammarFileName)
	if e != nil {
		return e
	}
	g, e := langdef.ParseGrammar(src)
	if e != nil {
		return e
	}
	if !g.Validate(report) {
		return errInvalid
	}

	if e = render.WriteGrammar(out, g); e != nil {
		return e
	}

	if !seedSet {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	opts := derive.Options{MaxSteps: maxSteps}
	fmt.Fprintf(out, "\nseed: %d\n", seed)

	for i := 0; i < count; i++ {
		steps, e := derive.RetryTrace(g, rng, attempts, opts)
		if e != nil {
			return e
		}

		fmt.Fprintf(out, "\nderivation #%d:\n", i+1)
		if steps == nil {
			fmt.Fprintf(out, "no output after %d attempts\n", attempts)
			continue
		}
		if e = render.WriteDerivation(out, steps); e != nil {
			return e
		}
	}
	return nil
}
