package ll

import (
	"github.com/npillmayer/ffgram/ll/iteratable"
)

// passObserver is called after every pass of a fixpoint iteration.
type passObserver func(pass int, table *SetTable)

// ComputeFirst computes FIRST(N) for every non-terminal N of g.
//
// FIRST(N) contains the terminals which may appear as the first symbol of a
// string of terminals derived from N, plus Epsilon if and only if N
// derives the empty string. The returned table is frozen.
func ComputeFirst(g *Grammar) *SetTable {
	return computeFirst(g, nil)
}

func computeFirst(g *Grammar, observe passObserver) *SetTable {
	first := newSetTable("FIRST", g)
	changed := true
	for changed {
		changed = false
		first.passes++
		for _, r := range g.rules {
			S := firstOfSequence(first, r.rhs)
			if first.unionInto(r.LHS, S, false) {
				tracer().Debugf("FIRST(%s) += %v  from rule %d", r.LHS, S, r.Serial)
				changed = true
			}
		}
		if observe != nil {
			observe(first.passes, first)
		}
	}
	tracer().Debugf("FIRST converged after %d passes", first.passes)
	first.freeze()
	return first
}

// FirstOfSequence computes FIRST of a sequence of symbols, given a complete
// FIRST table. The result contains Epsilon if the sequence is nullable,
// in particular for the empty sequence.
func FirstOfSequence(first *SetTable, seq []*Symbol) []*Symbol {
	return asSymbols(firstOfSequence(first, seq))
}

// firstOfSequence walks seq from left to right. It stops at the first symbol
// which is not nullable; if it falls off the end, the sequence is nullable.
func firstOfSequence(first *SetTable, seq []*Symbol) *iteratable.Set {
	S := iteratable.NewSet()
	for _, X := range seq {
		switch X.Kind() {
		case EpsilonKind:
			S.Add(Epsilon)
			return S
		case NonTerminalKind:
			FX := first.entry(X)
			if FX == nil {
				return S
			}
			S.UnionExcept(FX, Epsilon)
			if !FX.Contains(Epsilon) {
				return S
			}
		default:
			S.Add(X)
			return S
		}
	}
	S.Add(Epsilon)
	return S
}
