package reader

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/npillmayer/ffgram/ll"
)

// --- BNF syntax ------------------------------------------------------------

type bnfFile struct {
	Rules []*bnfRule `parser:"@@*"`
}

type bnfRule struct {
	Pos  lexer.Position
	LHS  string    `parser:"@Ident Arrow"`
	Alts []*bnfAlt `parser:"@@ ( '|' @@ )* ';'"`
}

type bnfAlt struct {
	Pos     lexer.Position
	Symbols []*bnfSymbol `parser:"@@*"`
}

type bnfSymbol struct {
	Pos         lexer.Position
	Epsilon     bool    `parser:"  @'#'"`
	Terminal    *string `parser:"| @String"`
	NonTerminal *string `parser:"| @Ident"`
}

var bnfLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "String", Pattern: `"[^"]*"|'[^']*'`},
	{Name: "Arrow", Pattern: `->|::=|:|→`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_']*`},
	{Name: "Punct", Pattern: `[|;#]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var bnfParser = participle.MustBuild[bnfFile](
	participle.Lexer(bnfLexer),
	participle.Elide("Whitespace", "Comment"),
)

// ReadBNF reads a grammar in BNF notation.
func ReadBNF(name string, r io.Reader) (*ll.Grammar, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	ast, err := bnfParser.ParseString(name, string(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	b := ll.NewGrammarBuilder(name)
	for _, rule := range ast.Rules {
		for _, alt := range rule.Alts {
			if err := bnfAlternative(b, rule.LHS, alt, name); err != nil {
				return nil, err
			}
		}
		tracer().Debugf("%s:%d: production for %s", name, rule.Pos.Line, rule.LHS)
	}
	return b.Grammar()
}

// bnfAlternative adds a rule for one alternative. An empty alternative is an
// epsilon rule, as is an alternative consisting of '#' only.
func bnfAlternative(b *ll.GrammarBuilder, lhs string, alt *bnfAlt, name string) error {
	rb := b.LHS(lhs)
	for _, sym := range alt.Symbols {
		switch {
		case sym.Epsilon:
			if len(alt.Symbols) > 1 {
				return syntaxError(name, sym.Pos.Line, sym.Pos.Column,
					"'#' must be the only symbol of an alternative")
			}
			rb.Epsilon()
			return nil
		case sym.Terminal != nil:
			rb.T(unquote(*sym.Terminal))
		case sym.NonTerminal != nil:
			rb.N(*sym.NonTerminal)
		}
	}
	if len(alt.Symbols) == 0 {
		rb.Epsilon()
		return nil
	}
	rb.End()
	return nil
}

func unquote(s string) string {
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return s
}
