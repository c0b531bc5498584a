package reader

import (
	"bufio"
	"io"
	"strings"
	"sync"
	"unicode"

	"github.com/npillmayer/ffgram"
	"github.com/npillmayer/ffgram/ll"
	"github.com/npillmayer/ffgram/ll/scanner"
	"github.com/timtadh/lexmachine"
)

// Token types of the compact notation.
const (
	tokNonTerm = iota + 1
	tokTerm
	tokArrow
	tokAlt
	tokEps
)

var compactTokenIds = map[string]int{
	"NONTERM": tokNonTerm,
	"TERM":    tokTerm,
	"=":       tokArrow,
	"|":       tokAlt,
	"#":       tokEps,
}

// compactTokenName names token types of the compact notation in error messages.
var compactTokenName ffgram.TokTypeStringer = func(t ffgram.TokType) string {
	switch t {
	case tokNonTerm:
		return "non-terminal"
	case tokTerm:
		return "terminal"
	case tokArrow:
		return "'='"
	case tokAlt:
		return "'|'"
	case tokEps:
		return "'#'"
	case scanner.EOF:
		return "end of line"
	}
	return "unknown token"
}

var (
	compactOnce    sync.Once
	compactAdapter *scanner.LMAdapter
	compactErr     error
)

// compactLexer compiles the DFA for the compact notation once.
func compactLexer() (*scanner.LMAdapter, error) {
	compactOnce.Do(func() {
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`( |\t|\r)+`), scanner.Skip)
			lexer.Add([]byte(`[A-Z]`), scanner.MakeToken("NONTERM", tokNonTerm))
			lexer.Add([]byte(`[!-~]`), scanner.MakeToken("TERM", tokTerm))
		}
		literals := []string{"=", "|", "#"}
		compactAdapter, compactErr = scanner.NewLMAdapter(init, literals, nil, compactTokenIds)
	})
	return compactAdapter, compactErr
}

// ReadCompact reads a grammar in compact notation.
func ReadCompact(name string, r io.Reader) (*ll.Grammar, error) {
	lm, err := compactLexer()
	if err != nil {
		return nil, err
	}
	b := ll.NewGrammarBuilder(name)
	lines := bufio.NewScanner(r)
	lineno := 0
	for lines.Scan() {
		lineno++
		line := strings.TrimSpace(lines.Text())
		if line == "" || isCount(line) {
			continue
		}
		if err := compactProduction(b, lm, name, lineno, line); err != nil {
			return nil, err
		}
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}
	return b.Grammar()
}

func isCount(line string) bool {
	for _, r := range line {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// compactProduction parses one line "A=α|β|…" and adds a rule for every
// alternative.
func compactProduction(b *ll.GrammarBuilder, lm *scanner.LMAdapter, name string, lineno int, line string) error {
	sc, err := lm.Scanner(line)
	if err != nil {
		return syntaxError(name, lineno, 1, "%v", err)
	}
	var scanErr error
	sc.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	var tokens []ffgram.Token
	for { // collect tokens including EOF
		tok := sc.NextToken()
		tokens = append(tokens, tok)
		if tok.TokType() == scanner.EOF {
			break
		}
	}
	if scanErr != nil {
		return syntaxError(name, lineno, 1, "illegal character: %v", scanErr)
	}
	col := func(tok ffgram.Token) int {
		return int(tok.Span().From()) + 1
	}
	if tokens[0].TokType() != tokNonTerm {
		return syntaxError(name, lineno, col(tokens[0]),
			"left hand side must be an upper-case letter, have %s", describe(tokens[0]))
	}
	if tokens[1].TokType() != tokArrow {
		return syntaxError(name, lineno, col(tokens[1]), "expected '=', have %s", describe(tokens[1]))
	}
	lhs := symbolName(tokens[0])
	var alt []ffgram.Token
	for _, tok := range tokens[2:] {
		switch tok.TokType() {
		case tokAlt, scanner.EOF:
			if err := compactAlternative(b, lhs, alt, name, lineno, col(tok), line); err != nil {
				return err
			}
			alt = alt[:0]
		case tokArrow:
			return syntaxError(name, lineno, col(tok), "unexpected '='")
		default:
			alt = append(alt, tok)
		}
	}
	tracer().Debugf("%s:%d: production for %s", name, lineno, lhs)
	return nil
}

// compactAlternative adds a rule lhs → alt. col is the column of the token
// terminating alt, used for reporting empty alternatives.
func compactAlternative(b *ll.GrammarBuilder, lhs string, alt []ffgram.Token, name string, lineno, col int, line string) error {
	if len(alt) == 0 {
		return syntaxError(name, lineno, col, "empty alternative for %s, use '#' for epsilon", lhs)
	}
	var span ffgram.Span
	for _, tok := range alt {
		if span.IsNull() {
			span = tok.Span()
		} else {
			span = span.Extend(tok.Span())
		}
	}
	rb := b.LHS(lhs)
	for _, tok := range alt {
		switch tok.TokType() {
		case tokEps:
			if len(alt) > 1 {
				return syntaxError(name, lineno, int(span.From())+1,
					"'#' must be the only symbol of an alternative, have %q", line[span.From():span.To()])
			}
			rb.Epsilon()
			return nil
		case tokNonTerm:
			rb.N(symbolName(tok))
		default:
			rb.T(symbolName(tok))
		}
	}
	rb.End()
	return nil
}

// symbolName returns the symbol name a token stands for.
func symbolName(tok ffgram.Token) string {
	if s, ok := tok.Value().(string); ok && s != "" {
		return s
	}
	return tok.Lexeme()
}

func describe(tok ffgram.Token) string {
	if tok.TokType() == scanner.EOF {
		return compactTokenName(scanner.EOF)
	}
	return compactTokenName(tok.TokType()) + " " + tok.Lexeme()
}
