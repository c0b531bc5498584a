package ll

// LLAnalysis is an object for static analysis of a grammar. It holds the
// FIRST- and FOLLOW-tables of the grammar.
type LLAnalysis struct {
	g      *Grammar
	first  *SetTable
	follow *SetTable
}

// Analysis computes FIRST- and FOLLOW-sets for a grammar, in that order.
// Returns nil for a nil grammar.
func Analysis(g *Grammar) *LLAnalysis {
	if g == nil {
		return nil
	}
	ga := &LLAnalysis{g: g}
	ga.first = ComputeFirst(g)
	ga.follow = ComputeFollow(g, ga.first)
	ga.first.Dump()
	ga.follow.Dump()
	return ga
}

// Grammar returns the grammar this analyser operates on.
func (ga *LLAnalysis) Grammar() *Grammar {
	return ga.g
}

// FirstTable returns the (frozen) FIRST table.
func (ga *LLAnalysis) FirstTable() *SetTable {
	return ga.first
}

// FollowTable returns the (frozen) FOLLOW table.
func (ga *LLAnalysis) FollowTable() *SetTable {
	return ga.follow
}

// First returns FIRST(A) for a non-terminal A. For a terminal a, FIRST(a)
// is {a}.
func (ga *LLAnalysis) First(A *Symbol) []*Symbol {
	if A == nil {
		return nil
	}
	if !A.IsNonTerminal() {
		return []*Symbol{A}
	}
	return ga.first.Set(A)
}

// Follow returns FOLLOW(A) for a non-terminal A.
func (ga *LLAnalysis) Follow(A *Symbol) []*Symbol {
	if A == nil || !A.IsNonTerminal() {
		return nil
	}
	return ga.follow.Set(A)
}

// Nullable is true if A derives the empty string.
func (ga *LLAnalysis) Nullable(A *Symbol) bool {
	if A == nil {
		return false
	}
	if A.IsEpsilon() {
		return true
	}
	return A.IsNonTerminal() && ga.first.Contains(A, Epsilon)
}

// FirstOf returns FIRST of a sequence of symbols.
func (ga *LLAnalysis) FirstOf(seq []*Symbol) []*Symbol {
	return FirstOfSequence(ga.first, seq)
}

// Passes returns the number of passes the FIRST and FOLLOW computations
// needed to converge.
func (ga *LLAnalysis) Passes() (int, int) {
	return ga.first.passes, ga.follow.passes
}
