package ll

import "fmt"

// SymbolKind classifies grammar symbols.
type SymbolKind int8

// Kinds of symbols. Epsilon and EndMarker are markers which never appear
// within a rule, but are members of FIRST- and FOLLOW-sets.
const (
	TerminalKind SymbolKind = iota
	NonTerminalKind
	EpsilonKind
	EndMarkerKind
)

func (k SymbolKind) String() string {
	switch k {
	case TerminalKind:
		return "terminal"
	case NonTerminalKind:
		return "non-terminal"
	case EpsilonKind:
		return "epsilon"
	case EndMarkerKind:
		return "end-marker"
	}
	return fmt.Sprintf("<kind %d>", k)
}

// Names of the marker symbols. They are reserved and may not be used as
// names for terminals or non-terminals.
const (
	EpsilonName   = "#"
	EndMarkerName = "$"
)

// Symbol is a symbol of a grammar. Terminals and non-terminals are interned
// per grammar, i.e. there is exactly one *Symbol for every name and kind.
// Clients may therefore compare symbols by pointer.
type Symbol struct {
	Name  string     // name of the symbol, as given to the grammar builder
	Value int        // serial number within its grammar, unique per kind
	kind  SymbolKind // terminal, non-terminal or marker
}

// The marker symbols are shared between all grammars.
var (
	Epsilon   = &Symbol{Name: EpsilonName, Value: -1, kind: EpsilonKind}
	EndMarker = &Symbol{Name: EndMarkerName, Value: -2, kind: EndMarkerKind}
)

func newSymbol(name string, kind SymbolKind, serial int) *Symbol {
	return &Symbol{Name: name, Value: serial, kind: kind}
}

// Kind returns the kind of a symbol.
func (A *Symbol) Kind() SymbolKind {
	return A.kind
}

// IsTerminal is true for terminal symbols. Markers are not terminals.
func (A *Symbol) IsTerminal() bool {
	return A.kind == TerminalKind
}

// IsNonTerminal is true for non-terminal symbols.
func (A *Symbol) IsNonTerminal() bool {
	return A.kind == NonTerminalKind
}

// IsEpsilon is true for the epsilon marker.
func (A *Symbol) IsEpsilon() bool {
	return A.kind == EpsilonKind
}

// IsEndMarker is true for the end-of-input marker.
func (A *Symbol) IsEndMarker() bool {
	return A.kind == EndMarkerKind
}

func (A *Symbol) String() string {
	return A.Name
}

// IsReservedName checks if a symbol name collides with one of the markers.
func IsReservedName(name string) bool {
	return name == EpsilonName || name == EndMarkerName
}
