package ll

import (
	"bytes"
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/ffgram/ll/iteratable"
)

// SetTable maps each non-terminal of a grammar to a set of symbols. It is
// the result type of both ComputeFirst and ComputeFollow.
//
// Entries are iterated in order of non-terminal definition, and the symbols
// of an entry in order of first insertion. A table is mutated only by the
// engine computing it and is frozen as soon as the engine has converged.
type SetTable struct {
	Name   string             // "FIRST" or "FOLLOW"
	sets   *linkedhashmap.Map // non-terminal -> *iteratable.Set
	passes int                // number of passes until convergence
	frozen bool
}

func newSetTable(name string, g *Grammar) *SetTable {
	t := &SetTable{Name: name, sets: linkedhashmap.New()}
	for _, N := range g.NonTerminals() {
		t.sets.Put(N, iteratable.NewSet())
	}
	return t
}

// entry returns the set for A, or nil if A is not a non-terminal of the
// table's grammar.
func (t *SetTable) entry(A *Symbol) *iteratable.Set {
	if S, found := t.sets.Get(A); found {
		return S.(*iteratable.Set)
	}
	return nil
}

// unionInto is the only mutating operation on table entries. It unions S
// into the entry for A, leaving out the epsilon marker if noEps is set.
func (t *SetTable) unionInto(A *Symbol, S *iteratable.Set, noEps bool) bool {
	if t.frozen {
		panic(fmt.Sprintf("attempt to modify frozen %s table", t.Name))
	}
	if noEps {
		return t.entry(A).UnionExcept(S, Epsilon)
	}
	return t.entry(A).Union(S)
}

func (t *SetTable) freeze() {
	t.frozen = true
}

// Frozen is true if the computation of this table has been completed.
func (t *SetTable) Frozen() bool {
	return t.frozen
}

// Passes returns the number of passes over all rules the engine needed to
// converge.
func (t *SetTable) Passes() int {
	return t.passes
}

// Set returns the symbols for non-terminal A in order of insertion, or nil
// if A is not a non-terminal of the table's grammar.
func (t *SetTable) Set(A *Symbol) []*Symbol {
	S := t.entry(A)
	if S == nil {
		return nil
	}
	return asSymbols(S)
}

// Contains checks if symbol a is in the set for non-terminal A.
func (t *SetTable) Contains(A *Symbol, a *Symbol) bool {
	S := t.entry(A)
	return S != nil && S.Contains(a)
}

// Size returns the number of entries, i.e. the number of non-terminals.
func (t *SetTable) Size() int {
	return t.sets.Size()
}

// Each calls mapper for each entry, in order of non-terminal definition.
func (t *SetTable) Each(mapper func(A *Symbol, set []*Symbol)) {
	it := t.sets.Iterator()
	for it.Next() {
		mapper(it.Key().(*Symbol), asSymbols(it.Value().(*iteratable.Set)))
	}
}

// Equals is true if both tables have the same entries with the same
// symbols. Order of symbols is not significant.
func (t *SetTable) Equals(other *SetTable) bool {
	if other == nil || t.Size() != other.Size() {
		return false
	}
	it := t.sets.Iterator()
	for it.Next() {
		o := other.entry(it.Key().(*Symbol))
		if o == nil || !it.Value().(*iteratable.Set).Equals(o) {
			return false
		}
	}
	return true
}

// snapshot creates an unfrozen deep copy of t.
func (t *SetTable) snapshot() *SetTable {
	c := &SetTable{Name: t.Name, sets: linkedhashmap.New(), passes: t.passes}
	it := t.sets.Iterator()
	for it.Next() {
		c.sets.Put(it.Key(), it.Value().(*iteratable.Set).Copy())
	}
	return c
}

// Dump is a debugging helper, writing the table to the tracer.
func (t *SetTable) Dump() {
	t.Each(func(A *Symbol, set []*Symbol) {
		tracer().Debugf("%s(%s) = %s", t.Name, A, symbolSetString(set))
	})
}

func (t *SetTable) String() string {
	var b bytes.Buffer
	t.Each(func(A *Symbol, set []*Symbol) {
		b.WriteString(fmt.Sprintf("%s(%s) = %s\n", t.Name, A, symbolSetString(set)))
	})
	return b.String()
}

// ----------------------------------------------------------------------

func asSymbols(S *iteratable.Set) []*Symbol {
	syms := make([]*Symbol, 0, S.Size())
	S.Each(func(x interface{}) {
		syms = append(syms, x.(*Symbol))
	})
	return syms
}

// symbolSetString formats symbols like {a,b,#}.
func symbolSetString(set []*Symbol) string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, a := range set {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(a.Name)
	}
	b.WriteString("}")
	return b.String()
}
