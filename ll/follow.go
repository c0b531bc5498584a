package ll

import (
	"github.com/npillmayer/ffgram/ll/iteratable"
)

// ComputeFollow computes FOLLOW(N) for every non-terminal N of g, given the
// FIRST table of g. first has to be complete (i.e., frozen); ComputeFollow
// panics otherwise.
//
// FOLLOW(N) contains the terminals which may immediately follow N in a
// sentential form derived from the start symbol, plus EndMarker if N may
// appear at the end of one. Epsilon never is a member of a FOLLOW-set.
// The returned table is frozen.
func ComputeFollow(g *Grammar, first *SetTable) *SetTable {
	return computeFollow(g, first, nil)
}

func computeFollow(g *Grammar, first *SetTable, observe passObserver) *SetTable {
	if first == nil || !first.Frozen() {
		panic("FOLLOW computation needs a complete FIRST table")
	}
	// FIRST(β) for every suffix β behind a non-terminal, indexed by rule and
	// position. They do not change during the iteration.
	betas := make([][]*iteratable.Set, len(g.rules))
	for _, r := range g.rules {
		betas[r.Serial] = make([]*iteratable.Set, len(r.rhs))
		for i, B := range r.rhs {
			if B.IsNonTerminal() {
				betas[r.Serial][i] = firstOfSequence(first, r.rhs[i+1:])
			}
		}
	}
	follow := newSetTable("FOLLOW", g)
	follow.entry(g.Start()).Add(EndMarker)
	changed := true
	for changed {
		changed = false
		follow.passes++
		for _, r := range g.rules {
			A := r.LHS
			for i, B := range r.rhs {
				if !B.IsNonTerminal() {
					continue
				}
				beta := betas[r.Serial][i]
				if follow.unionInto(B, beta, true) {
					tracer().Debugf("FOLLOW(%s) += FIRST(β)=%v  from rule %d", B, beta, r.Serial)
					changed = true
				}
				if beta.Contains(Epsilon) && A != B {
					if follow.unionInto(B, follow.entry(A), true) {
						tracer().Debugf("FOLLOW(%s) += FOLLOW(%s)  from rule %d", B, A, r.Serial)
						changed = true
					}
				}
			}
		}
		if observe != nil {
			observe(follow.passes, follow)
		}
	}
	for _, N := range g.NonTerminals() {
		follow.entry(N).Remove(Epsilon)
	}
	tracer().Debugf("FOLLOW converged after %d passes", follow.passes)
	follow.freeze()
	return follow
}
