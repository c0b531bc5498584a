package ffgram

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Scanners define their own
// constants for it.
type TokType int

// TokTypeStringer is a type to be provided by a scanner to be able
// to print out token categories, e.g. in error messages.
type TokTypeStringer func(TokType) string

// Token represents an input token of a grammar description. Tokens are produced
// by a scanner and reflect the symbols of a production notation.
//
// An example would be a token for a non-terminal in compact notation:
//
//    TokType = NonTerm     // identifier for this kind of tokens (scanner specific)
//    Lexeme  = "A"         // lexeme how it appeared in the input stream
//    Value   = "A"         // symbol name
//    Span    = 4…5         // occured from position 4 in the input line
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input positions. A span denotes
// a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// IsNull is true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
