/*
Package langdef loads automata and grammars from line-oriented text definitions.

Definition must be a valid UTF-8 text. Fields are separated by whitespace.
Every line is significant: a blank (or whitespace-only) line is an error,
only a single line break at the end of the text is allowed.

Automaton definition (both DFA and NFA):

	q0 q1 q2    # line 1: states
	q0          # line 2: initial state
	q2          # line 3: final states
	a b         # line 4: alphabet
	q0 a q1     # lines 5+: transitions, one per line: <from> <symbol> <to>

For NFA the same (from, symbol) pair may appear on several lines with different destinations.
For DFA this is an error.

Grammar definition:

	S A         # line 1: nonterminals (VN)
	a b         # line 2: terminals (VT)
	S           # line 3: start symbol
	S aA        # lines 4+: productions, one per line: <left> <right>
	A λ

Empty right side is written as λ (grammar.Empty), it is the only legal spelling.
Comments shown above are not part of the format.

Structural validation is not performed by the loader; use Validate methods of the loaded values.
*/
package langdef
