package reader

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/ffgram/ll"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func setString(set []*ll.Symbol) string {
	names := make([]string, len(set))
	for i, a := range set {
		names[i] = a.Name
	}
	return strings.Join(names, ",")
}

func TestReadCompact(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ffgram.reader")
	defer teardown()
	//
	input := `4
S=AB
A=a
A=#
B=b
`
	g, err := ReadCompact("simple", strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 4 {
		t.Fatalf("expected 4 rules, have %d", g.Size())
	}
	if g.Start().Name != "S" {
		t.Errorf("expected start symbol S, is %s", g.Start())
	}
	if !g.Rule(2).IsEps() {
		t.Errorf("expected A=# to be an epsilon rule")
	}
	ga := ll.Analysis(g)
	if s := setString(ga.First(g.NonTerminal("A"))); s != "a,#" {
		t.Errorf("expected FIRST(A) = {a,#}, is {%s}", s)
	}
	if s := setString(ga.Follow(g.NonTerminal("A"))); s != "b" {
		t.Errorf("expected FOLLOW(A) = {b}, is {%s}", s)
	}
}

func TestReadCompactAlternatives(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ffgram.reader")
	defer teardown()
	//
	g, err := ReadCompact("alt", strings.NewReader("E = T R\nR = +TR | #\nT = (E) | i\n"))
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 5 {
		t.Errorf("expected 5 rules, have %d", g.Size())
	}
	if g.Terminal("+") == nil || g.Terminal("(") == nil || g.Terminal("i") == nil {
		t.Errorf("expected terminals + ( i, have %v", g.Terminals())
	}
	ga := ll.Analysis(g)
	if s := setString(ga.Follow(g.NonTerminal("T"))); s != "+,$,)" {
		t.Errorf("expected FOLLOW(T) = {+,$,)}, is {%s}", s)
	}
}

func TestReadCompactErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ffgram.reader")
	defer teardown()
	//
	tests := []struct {
		caption string
		input   string
		err     error
	}{
		{"lower-case left hand side", "a=b", ErrSyntax},
		{"missing arrow", "AB", ErrSyntax},
		{"empty alternative", "A=a|", ErrSyntax},
		{"epsilon within alternative", "A=a#", ErrSyntax},
		{"second arrow", "A=a=b", ErrSyntax},
		{"illegal character", "A=ä", ErrSyntax},
		{"undefined non-terminal", "S=Ab", ll.ErrUnknownNonTerminal},
		{"end marker as terminal", "S=a$", ll.ErrReservedSymbol},
		{"empty input", "\n\n", ll.ErrEmptyGrammar},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			_, err := ReadCompact("bad", strings.NewReader(tt.input))
			if !errors.Is(err, tt.err) {
				t.Errorf("expected error %q, have %v", tt.err, err)
			}
		})
	}
}

func TestReadCompactErrorPosition(t *testing.T) {
	_, err := ReadCompact("pos", strings.NewReader("S=a\nS=b c=d\n"))
	if err == nil {
		t.Fatalf("expected syntax error")
	}
	if !strings.HasPrefix(err.Error(), "pos:2:6:") {
		t.Errorf("expected error at pos:2:6, is %q", err)
	}
}

func TestReadCompactAlternativeSpan(t *testing.T) {
	_, err := ReadCompact("alt", strings.NewReader("A=c|ab#|d"))
	if err == nil {
		t.Fatalf("expected syntax error")
	}
	if !strings.HasPrefix(err.Error(), "alt:1:5:") {
		t.Errorf("expected error at start of alternative alt:1:5, is %q", err)
	}
	if !strings.Contains(err.Error(), `"ab#"`) {
		t.Errorf("expected error to quote alternative \"ab#\", is %q", err)
	}
	_, err = ReadCompact("alt", strings.NewReader("a=b"))
	if err == nil || !strings.Contains(err.Error(), "have terminal a") {
		t.Errorf("expected error to name the offending terminal, is %v", err)
	}
}

func TestReadBNF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ffgram.reader")
	defer teardown()
	//
	input := `
// classic expression grammar
Expr   -> Term Expr' ;
Expr'  -> "+" Term Expr' | # ;
Term   ::= Factor Term' ;
Term'  :  '*' Factor Term' | # ;
Factor -> "(" Expr ")" | "id" ;
`
	g, err := ReadBNF("expr", strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 8 {
		t.Fatalf("expected 8 rules, have %d", g.Size())
	}
	if g.Start().Name != "Expr" {
		t.Errorf("expected start symbol Expr, is %s", g.Start())
	}
	ga := ll.Analysis(g)
	if s := setString(ga.First(g.NonTerminal("Expr"))); s != "(,id" {
		t.Errorf("expected FIRST(Expr) = {(,id}, is {%s}", s)
	}
	if s := setString(ga.Follow(g.NonTerminal("Factor"))); s != "*,+,$,)" {
		t.Errorf("expected FOLLOW(Factor) = {*,+,$,)}, is {%s}", s)
	}
}

func TestReadBNFErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ffgram.reader")
	defer teardown()
	//
	tests := []struct {
		caption string
		input   string
		err     error
	}{
		{"missing semicolon", `S -> "a"`, ErrSyntax},
		{"missing arrow", `S "a" ;`, ErrSyntax},
		{"epsilon within alternative", `S -> "a" # ;`, ErrSyntax},
		{"undefined non-terminal", `S -> A "b" ;`, ll.ErrUnknownNonTerminal},
		{"no rules", `// nothing`, ll.ErrEmptyGrammar},
		{"non-terminating", `S -> S "a" ;`, ll.ErrNonTerminating},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			_, err := ReadBNF("bad", strings.NewReader(tt.input))
			if !errors.Is(err, tt.err) {
				t.Errorf("expected error %q, have %v", tt.err, err)
			}
		})
	}
}

func TestRead(t *testing.T) {
	f, err := ParseFormat("BNF")
	if err != nil || f != BNF {
		t.Fatalf("expected format bnf, have %v (%v)", f, err)
	}
	if _, err := ParseFormat("yacc"); err == nil {
		t.Errorf("expected unknown format to be rejected")
	}
	g, err := Read("S", strings.NewReader("S -> A 'a' ;\nA -> # ;"), f)
	if err != nil {
		t.Fatal(err)
	}
	ga := ll.Analysis(g)
	if s := setString(ga.Follow(g.NonTerminal("A"))); s != "a" {
		t.Errorf("expected FOLLOW(A) = {a}, is {%s}", s)
	}
	g, err = Read("S", strings.NewReader("S=A\nA=#"), Compact)
	if err != nil {
		t.Fatal(err)
	}
	if s := setString(ll.Analysis(g).First(g.Start())); s != "#" {
		t.Errorf("expected FIRST(S) = {#}, is {%s}", s)
	}
}
