/*
Package reader reads context-free grammars from textual descriptions.

Two notations are supported.

Compact notation has one production per line, with single-character symbols:

    S=AB
    A=a|#
    B=b

The left hand side is an upper-case letter. On the right hand side, upper-case
letters are non-terminals, '#' denotes epsilon and every other printable
character is a terminal. '|' separates alternatives. Blank lines and lines
consisting of a number only (a production count) are ignored.

BNF notation allows for multi-character symbol names:

    Expr  -> Term Expr' ;
    Expr' -> "+" Term Expr' | # ;
    Term  -> "id" | "(" Expr ")" ;

Identifiers are non-terminals, quoted strings are terminals and '#' denotes
epsilon. Arrows may be written as '->', '::=', ':' or '→'. Comments start
with '//'.

In both notations the left hand side of the first production is the start
symbol. Grammars are validated by ll.GrammarBuilder; validation errors are
passed through to the caller.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package reader

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/ffgram/ll"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ffgram.reader'.
func tracer() tracing.Trace {
	return tracing.Select("ffgram.reader")
}

// ErrSyntax is wrapped by all errors concerning the notation of a grammar.
var ErrSyntax = errors.New("syntax error")

// Format denotes a grammar notation.
type Format int

// Supported notations.
const (
	Compact Format = iota
	BNF
)

func (f Format) String() string {
	switch f {
	case Compact:
		return "compact"
	case BNF:
		return "bnf"
	}
	return fmt.Sprintf("<format %d>", int(f))
}

// ParseFormat gets a format from its name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "compact", "":
		return Compact, nil
	case "bnf":
		return BNF, nil
	}
	return Compact, fmt.Errorf("unknown grammar format %q", s)
}

// Read reads a grammar in a given notation. name is used as the name of the
// grammar and in error messages.
func Read(name string, r io.Reader, format Format) (*ll.Grammar, error) {
	switch format {
	case Compact:
		return ReadCompact(name, r)
	case BNF:
		return ReadBNF(name, r)
	}
	return nil, fmt.Errorf("unknown grammar format %v", format)
}

// syntaxError creates an error with a position, wrapping ErrSyntax.
func syntaxError(name string, line, col int, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s:%d:%d: %w: %s", name, line, col, ErrSyntax, msg)
}
