/*
Package ffgram is a toolbox for static analysis of context-free grammars.

It computes FIRST- and FOLLOW-sets, the classic prerequisites for
constructing top-down (LL) parsers. Package structure is as follows:

■ ll: Package ll holds the grammar model and the FIRST/FOLLOW engines.

■ ll/iteratable: Package iteratable implements the insertion-ordered set type
the engines operate on.

■ ll/scanner: Package scanner defines tokens and a lexmachine-backed scanner
for grammar descriptions.

■ ll/reader: Package reader reads grammars from textual production notations.

■ cmd/ffsets: A command line tool to print FIRST/FOLLOW tables for a grammar,
either from a file or entered interactively.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ffgram
