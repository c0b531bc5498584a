package ll

import (
	"errors"
	"strings"
	"testing"
	"unicode"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// makeGrammar builds a grammar from rules like "S -> A b". Words starting
// with an upper-case letter are non-terminals, "#" denotes an epsilon rule.
func makeGrammar(t *testing.T, name string, rules ...string) *Grammar {
	t.Helper()
	g, err := buildGrammar(name, rules...)
	if err != nil {
		t.Fatalf("cannot create grammar %s: %v", name, err)
	}
	return g
}

func buildGrammar(name string, rules ...string) (*Grammar, error) {
	b := NewGrammarBuilder(name)
	for _, r := range rules {
		parts := strings.SplitN(r, "->", 2)
		rb := b.LHS(strings.TrimSpace(parts[0]))
		rhs := strings.Fields(parts[1])
		if len(rhs) == 1 && rhs[0] == "#" {
			rb.Epsilon()
			continue
		}
		for _, s := range rhs {
			if unicode.IsUpper([]rune(s)[0]) {
				rb.N(s)
			} else {
				rb.T(s)
			}
		}
		rb.End()
	}
	return b.Grammar()
}

func TestGrammarBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ffgram.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").N("B").End()
	b.LHS("A").T("a").End()
	b.LHS("A").Epsilon()
	b.LHS("B").T("b").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	if g.Size() != 4 {
		t.Errorf("expected 4 rules, have %d", g.Size())
	}
	if g.Start() != g.NonTerminal("S") {
		t.Errorf("expected start symbol S, is %v", g.Start())
	}
	if !g.Rule(2).IsEps() {
		t.Errorf("expected rule 2 to be an epsilon rule: %v", g.Rule(2))
	}
	if g.Rule(4) != nil || g.Rule(-1) != nil {
		t.Errorf("expected nil for out-of-range rule numbers")
	}
	if s := g.Rule(0).String(); s != "[S] ::= [A B]" {
		t.Errorf("unexpected rule format: %s", s)
	}
	if len(g.FindNonTermRules(g.NonTerminal("A"))) != 2 {
		t.Errorf("expected 2 rules for A")
	}
	if g.Terminal("a") == nil || !g.Terminal("a").IsTerminal() {
		t.Errorf("expected a to be a terminal")
	}
	if g.Terminal("A") != nil || g.NonTerminal("a") != nil {
		t.Errorf("terminals and non-terminals mixed up")
	}
}

func TestGrammarSymbolOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ffgram.ll")
	defer teardown()
	//
	g := makeGrammar(t, "G", "S -> B x A", "A -> y", "B -> z x")
	var names []string
	g.EachSymbol(func(A *Symbol) interface{} {
		names = append(names, A.Name)
		return nil
	})
	if strings.Join(names, " ") != "S A B x y z" {
		t.Errorf("unexpected symbol order: %v", names)
	}
}

func TestGrammarValidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ffgram.ll")
	defer teardown()
	//
	tests := []struct {
		caption string
		rules   []string
		err     error
	}{
		{
			caption: "reference to a non-terminal without rules",
			rules:   []string{"S -> A b", "B -> b"},
			err:     ErrUnknownNonTerminal,
		},
		{
			caption: "epsilon marker used as a terminal",
			rules:   []string{"S -> a #"},
			err:     ErrReservedSymbol,
		},
		{
			caption: "end marker used as a non-terminal",
			rules:   []string{"$ -> a"},
			err:     ErrReservedSymbol,
		},
		{
			caption: "non-terminal without terminating rule",
			rules:   []string{"S -> A", "A -> A a"},
			err:     ErrNonTerminating,
		},
		{
			caption: "mutually recursive non-terminals without base case",
			rules:   []string{"S -> a", "S -> A", "A -> B", "B -> A b"},
			err:     ErrNonTerminating,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			_, err := buildGrammar("G", tt.rules...)
			if err == nil {
				t.Fatalf("expected grammar to be rejected")
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("expected error %q, have %q", tt.err, err)
			}
			t.Logf("error = %v", err)
		})
	}
}

func TestGrammarValidationNamesRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ffgram.ll")
	defer teardown()
	//
	_, err := buildGrammar("G", "S -> a", "S -> b C")
	if err == nil {
		t.Fatalf("expected grammar to be rejected")
	}
	if !strings.Contains(err.Error(), "rule 1 (S ::= b C)") {
		t.Errorf("expected error to name offending rule, is %q", err)
	}
}

func TestEmptyGrammar(t *testing.T) {
	b := NewGrammarBuilder("G")
	if _, err := b.Grammar(); !errors.Is(err, ErrEmptyGrammar) {
		t.Errorf("expected empty grammar to be rejected, err = %v", err)
	}
	b.LHS("").T("a").End()
	if _, err := b.Grammar(); !errors.Is(err, ErrEmptySymbolName) {
		t.Errorf("expected empty LHS to be rejected, err = %v", err)
	}
}

func TestSymbolClash(t *testing.T) {
	b := NewGrammarBuilder("G")
	b.LHS("S").T("A").End()
	b.LHS("A").T("a").End()
	if _, err := b.Grammar(); !errors.Is(err, ErrSymbolClash) {
		t.Errorf("expected clash of terminal and non-terminal A, err = %v", err)
	}
}

func TestLeftRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ffgram.ll")
	defer teardown()
	//
	tests := []struct {
		caption string
		rules   []string
		lrec    string
	}{
		{
			caption: "direct left recursion",
			rules:   []string{"E -> E plus T", "E -> T", "T -> id"},
			lrec:    "E",
		},
		{
			caption: "indirect left recursion",
			rules:   []string{"S -> A a", "S -> b", "A -> S c", "A -> d"},
			lrec:    "S A",
		},
		{
			caption: "left recursion hidden behind nullable prefix",
			rules:   []string{"S -> N S x", "S -> y", "N -> #"},
			lrec:    "S",
		},
		{
			caption: "right recursion only",
			rules:   []string{"L -> x L", "L -> #"},
			lrec:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := makeGrammar(t, "G", tt.rules...)
			var names []string
			for _, N := range g.LeftRecursive() {
				names = append(names, N.Name)
			}
			if strings.Join(names, " ") != tt.lrec {
				t.Errorf("expected left recursive = [%s], have %v", tt.lrec, names)
			}
		})
	}
}

func TestSymbolKinds(t *testing.T) {
	if !Epsilon.IsEpsilon() || Epsilon.IsTerminal() {
		t.Errorf("epsilon marker misclassified")
	}
	if !EndMarker.IsEndMarker() || EndMarker.IsNonTerminal() {
		t.Errorf("end marker misclassified")
	}
	if !IsReservedName("#") || !IsReservedName("$") || IsReservedName("a") {
		t.Errorf("reserved names misclassified")
	}
	if NonTerminalKind.String() != "non-terminal" {
		t.Errorf("unexpected kind string %q", NonTerminalKind)
	}
}
