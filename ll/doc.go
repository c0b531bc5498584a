/*
Package ll implements prerequisites for LL parsing: a grammar model and
the computation of FIRST- and FOLLOW-sets.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Grammars may
contain epsilon-productions.

Example:

    b := ll.NewGrammarBuilder("G")
    b.LHS("S").N("A").N("B").End()     // S  ->  A B
    b.LHS("A").T("a").End()            // A  ->  a
    b.LHS("A").Epsilon()               // A  ->
    b.LHS("B").T("b").End()            // B  ->  b
    g, err := b.Grammar()

This results in the following trivial grammar:

   g.Dump()

   0: [S] ::= [A B]
   1: [A] ::= [a]
   2: [A] ::= []
   3: [B] ::= [b]

The start symbol of a grammar is the left hand side of its first rule.
b.Grammar() validates the rules and will return an error if a grammar
references a non-terminal without any rule, uses a reserved marker as a
symbol name, or contains a non-terminal which never derives a string of
terminals.

Static Grammar Analysis

FIRST(N) holds the terminals which may start a string derived from N, plus
the epsilon marker '#' if N is nullable. FOLLOW(N) holds the terminals which
may immediately follow N in a sentential form derived from the start
symbol, plus the end marker '$' if N may appear at the end of one.
Both are computed by iterating over all rules until no set changes any more.

    first := ll.ComputeFirst(g)
    follow := ll.ComputeFollow(g, first)

Or, bundled into an analysis object:

    ga := ll.Analysis(g)
    g.EachNonTerminal(func(N *ll.Symbol) interface{} {
        fmt.Printf("FIRST(%s) = %v\n", N, ga.First(N))
        return nil
    })

    // Output:
    FIRST(S) = [a b]
    FIRST(A) = [a #]
    FIRST(B) = [b]

FIRST must be complete before FOLLOW is computed. Tables are frozen by the
engine which computed them; ComputeFollow refuses a FIRST table which is
not frozen.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ffgram.ll'.
func tracer() tracing.Trace {
	return tracing.Select("ffgram.ll")
}
