/*
Command ffsets computes FIRST- and FOLLOW-sets of context-free grammars.

Called with a grammar file, ffsets reads and validates the grammar, prints
the FIRST- and FOLLOW-sets and exits:

    ffsets -format bnf expr.bnf
    ffsets -html sets.html grammar.txt

Without a file argument ffsets starts an interactive session. Every input
line is a production, appended to the session grammar. Lines starting with
a colon are commands:

    :first [N]        print FIRST-sets, or FIRST(N) only
    :follow [N]       print FOLLOW-sets, or FOLLOW(N) only
    :show             print both tables
    :grammar          print the rules of the session grammar
    :format f         switch notation to 'compact' or 'bnf'
    :load file        append the lines of a file
    :html file        export the tables in HTML format
    :clear            start over with an empty grammar
    :quit             leave the session (same as <ctrl>D)

Analyses are cached by a fingerprint of the grammar. Asking for tables of an
unchanged grammar re-uses a previous analysis.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ffgram.cli'
func tracer() tracing.Trace {
	return tracing.Select("ffgram.cli")
}
