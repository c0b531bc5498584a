package ll

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Errors reported by grammar validation. Errors returned by
// GrammarBuilder.Grammar wrap one of these.
var (
	ErrEmptyGrammar       = errors.New("grammar has no rules")
	ErrEmptySymbolName    = errors.New("empty symbol name")
	ErrReservedSymbol     = errors.New("reserved symbol name")
	ErrSymbolClash        = errors.New("symbol used as terminal and as non-terminal")
	ErrUnknownNonTerminal = errors.New("non-terminal has no rules")
	ErrNonTerminating     = errors.New("non-terminal derives no terminal string")
)

// === Rules =================================================================

// Rule is a type for rules of a grammar. Rules cannot be shared between
// grammars.
type Rule struct {
	Serial int       // order number of this rule within a grammar
	LHS    *Symbol   // symbol of left hand side
	rhs    []*Symbol // right hand side; empty for epsilon rules
}

// RHS returns the right hand side of a rule. Clients must not modify it.
func (r *Rule) RHS() []*Symbol {
	return r.rhs
}

// IsEps is true for epsilon rules, i.e. rules with an empty right hand side.
func (r *Rule) IsEps() bool {
	return len(r.rhs) == 0
}

func (r *Rule) String() string {
	return fmt.Sprintf("[%s] ::= %v", r.LHS, r.rhs)
}

// === Grammars ==============================================================

// Grammar is a type for a context-free grammar. Create one with a
// GrammarBuilder. After construction a grammar is read-only.
type Grammar struct {
	Name         string
	rules        []*Rule
	nonterminals *linkedhashmap.Map // name -> *Symbol, in order of definition
	terminals    *linkedhashmap.Map // name -> *Symbol, in order of appearance
}

func newGrammar(name string) *Grammar {
	return &Grammar{
		Name:         name,
		rules:        make([]*Rule, 0, 16),
		nonterminals: linkedhashmap.New(),
		terminals:    linkedhashmap.New(),
	}
}

// Start returns the start symbol of a grammar, i.e. the left hand side of
// the first rule.
func (g *Grammar) Start() *Symbol {
	return g.rules[0].LHS
}

// Size returns the number of rules in a grammar.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule gets a grammar rule by serial number.
func (g *Grammar) Rule(no int) *Rule {
	if no < 0 || no >= len(g.rules) {
		return nil
	}
	return g.rules[no]
}

// EachRule calls mapper for each rule in order of serial number.
func (g *Grammar) EachRule(mapper func(r *Rule) interface{}) []interface{} {
	var res = make([]interface{}, len(g.rules))
	for i, r := range g.rules {
		res[i] = mapper(r)
	}
	return res
}

// NonTerminal returns the non-terminal with a given name, or nil.
func (g *Grammar) NonTerminal(name string) *Symbol {
	if A, found := g.nonterminals.Get(name); found {
		return A.(*Symbol)
	}
	return nil
}

// Terminal returns the terminal with a given name, or nil.
func (g *Grammar) Terminal(name string) *Symbol {
	if a, found := g.terminals.Get(name); found {
		return a.(*Symbol)
	}
	return nil
}

// NonTerminals returns all non-terminals in order of their definition.
func (g *Grammar) NonTerminals() []*Symbol {
	return symbolValues(g.nonterminals)
}

// Terminals returns all terminals in order of their first appearance
// within the rules.
func (g *Grammar) Terminals() []*Symbol {
	return symbolValues(g.terminals)
}

func symbolValues(m *linkedhashmap.Map) []*Symbol {
	syms := make([]*Symbol, 0, m.Size())
	it := m.Iterator()
	for it.Next() {
		syms = append(syms, it.Value().(*Symbol))
	}
	return syms
}

// EachNonTerminal calls mapper for each non-terminal, in order of definition.
// Results of the mapper calls are collected.
func (g *Grammar) EachNonTerminal(mapper func(N *Symbol) interface{}) []interface{} {
	var res []interface{}
	for _, N := range g.NonTerminals() {
		res = append(res, mapper(N))
	}
	return res
}

// EachTerminal calls mapper for each terminal, in order of appearance.
func (g *Grammar) EachTerminal(mapper func(a *Symbol) interface{}) []interface{} {
	var res []interface{}
	for _, a := range g.Terminals() {
		res = append(res, mapper(a))
	}
	return res
}

// EachSymbol calls mapper for each non-terminal and then for each terminal.
func (g *Grammar) EachSymbol(mapper func(A *Symbol) interface{}) []interface{} {
	res := g.EachNonTerminal(mapper)
	return append(res, g.EachTerminal(mapper)...)
}

// FindNonTermRules returns all rules with left hand side A.
func (g *Grammar) FindNonTermRules(A *Symbol) []*Rule {
	var rules []*Rule
	for _, r := range g.rules {
		if r.LHS == A {
			rules = append(rules, r)
		}
	}
	return rules
}

// Dump is a debugging helper, writing the rules to the tracer.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	tracer().Debugf("#Terminals = %d", g.terminals.Size())
	tracer().Debugf("#NonTerminals = %d", g.nonterminals.Size())
	tracer().Debugf("#Rules = %d", len(g.rules))
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf("-------------------------------------------------------")
}

// String returns the rules of g, one per line.
func (g *Grammar) String() string {
	var b bytes.Buffer
	for _, r := range g.rules {
		b.WriteString(fmt.Sprintf("%d: %s\n", r.Serial, r))
	}
	return b.String()
}

// LeftRecursive returns all non-terminals N which derive a sentential form
// starting with N, either directly or indirectly. Nullable prefixes are
// taken into account. Left recursive grammars are valid, but are not suited
// for top-down parsing.
func (g *Grammar) LeftRecursive() []*Symbol {
	nullable := g.nullables()
	corners := make(map[*Symbol][]*Symbol) // direct left corners
	for _, r := range g.rules {
		for _, X := range r.rhs {
			if X.IsNonTerminal() {
				corners[r.LHS] = append(corners[r.LHS], X)
			}
			if !nullable[X] {
				break
			}
		}
	}
	var lrec []*Symbol
	for _, N := range g.NonTerminals() {
		if reachesLeft(N, N, corners, map[*Symbol]bool{}) {
			lrec = append(lrec, N)
		}
	}
	return lrec
}

func reachesLeft(target, from *Symbol, corners map[*Symbol][]*Symbol, seen map[*Symbol]bool) bool {
	for _, X := range corners[from] {
		if X == target {
			return true
		}
		if !seen[X] {
			seen[X] = true
			if reachesLeft(target, X, corners, seen) {
				return true
			}
		}
	}
	return false
}

// nullables computes the set of non-terminals deriving the empty string.
// This is used for grammar checks only; the analysis derives nullability
// from FIRST-sets.
func (g *Grammar) nullables() map[*Symbol]bool {
	nullable := make(map[*Symbol]bool)
	for changed := true; changed; {
		changed = false
		for _, r := range g.rules {
			if nullable[r.LHS] {
				continue
			}
			all := true
			for _, X := range r.rhs {
				if !nullable[X] {
					all = false
					break
				}
			}
			if all {
				nullable[r.LHS] = true
				changed = true
			}
		}
	}
	return nullable
}

// productives computes the set of non-terminals which derive at least one
// string of terminals (possibly the empty one).
func (g *Grammar) productives() map[*Symbol]bool {
	productive := make(map[*Symbol]bool)
	for changed := true; changed; {
		changed = false
		for _, r := range g.rules {
			if productive[r.LHS] {
				continue
			}
			all := true
			for _, X := range r.rhs {
				if X.IsNonTerminal() && !productive[X] {
					all = false
					break
				}
			}
			if all {
				productive[r.LHS] = true
				changed = true
			}
		}
	}
	return productive
}

// === Grammar Builder =======================================================

// GrammarBuilder is a helper object to construct a grammar rule by rule.
//
//    b := NewGrammarBuilder("G")
//    b.LHS("S").N("A").T("a").End()  // S  ->  A a
//    b.LHS("A").Epsilon()            // A  ->
//    g, err := b.Grammar()
//
type GrammarBuilder struct {
	name  string
	rules []*pendingRule
}

type symref struct {
	name string
	kind SymbolKind
}

type pendingRule struct {
	lhs string
	rhs []symref
}

func (pr *pendingRule) String() string {
	var b bytes.Buffer
	b.WriteString(pr.lhs)
	b.WriteString(" ::=")
	for _, s := range pr.rhs {
		b.WriteString(" ")
		b.WriteString(s.name)
	}
	return b.String()
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar
// to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{name: gname}
}

// RuleBuilder is a builder type for a single rule. It is created by
// GrammarBuilder.LHS and completed by End or Epsilon.
type RuleBuilder struct {
	gb   *GrammarBuilder
	rule *pendingRule
}

// LHS starts a new rule with a left hand side non-terminal.
func (gb *GrammarBuilder) LHS(s string) *RuleBuilder {
	return &RuleBuilder{
		gb:   gb,
		rule: &pendingRule{lhs: s},
	}
}

// N appends a non-terminal to the right hand side of the rule.
func (rb *RuleBuilder) N(s string) *RuleBuilder {
	rb.rule.rhs = append(rb.rule.rhs, symref{name: s, kind: NonTerminalKind})
	return rb
}

// T appends a terminal to the right hand side of the rule.
func (rb *RuleBuilder) T(s string) *RuleBuilder {
	rb.rule.rhs = append(rb.rule.rhs, symref{name: s, kind: TerminalKind})
	return rb
}

// End completes the rule and adds it to the grammar.
func (rb *RuleBuilder) End() {
	rb.gb.rules = append(rb.gb.rules, rb.rule)
}

// Epsilon completes the rule with an empty right hand side. Symbols
// appended before are discarded.
func (rb *RuleBuilder) Epsilon() {
	rb.rule.rhs = nil
	rb.End()
}

// Grammar validates the rules added so far and returns the grammar. The
// builder may be used to add further rules and create another grammar
// afterwards.
//
// Errors name the offending rule and wrap one of the Err… sentinel errors.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if len(gb.rules) == 0 {
		return nil, fmt.Errorf("grammar %s: %w", gb.name, ErrEmptyGrammar)
	}
	g := newGrammar(gb.name)
	for serial, pr := range gb.rules { // define non-terminals
		if err := checkName(pr.lhs); err != nil {
			return nil, ruleError(gb.name, serial, pr, pr.lhs, err)
		}
		if g.NonTerminal(pr.lhs) == nil {
			g.nonterminals.Put(pr.lhs, newSymbol(pr.lhs, NonTerminalKind, g.nonterminals.Size()))
		}
	}
	for serial, pr := range gb.rules {
		r := &Rule{Serial: serial, LHS: g.NonTerminal(pr.lhs)}
		for _, ref := range pr.rhs {
			if err := checkName(ref.name); err != nil {
				return nil, ruleError(gb.name, serial, pr, ref.name, err)
			}
			var X *Symbol
			switch ref.kind {
			case NonTerminalKind:
				if X = g.NonTerminal(ref.name); X == nil {
					return nil, ruleError(gb.name, serial, pr, ref.name, ErrUnknownNonTerminal)
				}
			case TerminalKind:
				if g.NonTerminal(ref.name) != nil {
					return nil, ruleError(gb.name, serial, pr, ref.name, ErrSymbolClash)
				}
				if X = g.Terminal(ref.name); X == nil {
					X = newSymbol(ref.name, TerminalKind, g.terminals.Size())
					g.terminals.Put(ref.name, X)
				}
			}
			r.rhs = append(r.rhs, X)
		}
		g.rules = append(g.rules, r)
	}
	productive := g.productives()
	for _, r := range g.rules {
		if !productive[r.LHS] {
			return nil, ruleError(gb.name, r.Serial, gb.rules[r.Serial], r.LHS.Name, ErrNonTerminating)
		}
	}
	tracer().Debugf("grammar %s has %d rules, %d non-terminals, %d terminals",
		g.Name, len(g.rules), g.nonterminals.Size(), g.terminals.Size())
	return g, nil
}

func checkName(name string) error {
	if name == "" {
		return ErrEmptySymbolName
	}
	if IsReservedName(name) {
		return ErrReservedSymbol
	}
	return nil
}

func ruleError(gname string, serial int, pr *pendingRule, sym string, err error) error {
	return fmt.Errorf("grammar %s, rule %d (%s): %w: %q", gname, serial, pr, err, sym)
}
