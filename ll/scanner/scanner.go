/*
Package scanner defines an interface for scanners reading grammar descriptions.

The default implementation is an adapter for lexmachine
(https://github.com/timtadh/lexmachine). Clients hand it the literals and
patterns of a notation and receive a tokenizer per input string.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/ffgram"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ffgram.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("ffgram.scanner")
}

// EOF is the token type signalling the end of input.
const EOF ffgram.TokType = -1

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() ffgram.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the lexmachine
// scanner.
type DefaultToken struct {
	kind   ffgram.TokType
	lexeme string
	Val    interface{}
	span   ffgram.Span
}

var _ ffgram.Token = DefaultToken{}

// MakeDefaultToken creates a token. Its value is set to the lexeme and may
// be replaced by scanners which compute token values.
func MakeDefaultToken(typ ffgram.TokType, lexeme string, span ffgram.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		Val:    lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() ffgram.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() ffgram.Span {
	return t.span
}
