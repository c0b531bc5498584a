package iteratable

import (
	"bytes"
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// Set is an insertion-ordered set without duplicates. The zero value is not
// usable, create sets with NewSet.
//
// A Set carries no iteration state; use Each or Values to visit its items.
type Set struct {
	items *linkedhashset.Set
}

// NewSet creates a set, optionally pre-filled with items.
func NewSet(items ...interface{}) *Set {
	S := &Set{items: linkedhashset.New()}
	for _, x := range items {
		S.items.Add(x)
	}
	return S
}

// Add inserts x into S if it is not already contained.
// Returns true if S changed.
func (S *Set) Add(x interface{}) bool {
	if S.items.Contains(x) {
		return false
	}
	S.items.Add(x)
	return true
}

// Union inserts every item of other into S. Returns true if S changed.
func (S *Set) Union(other *Set) bool {
	if other == nil || other == S {
		return false
	}
	changed := false
	for _, x := range other.items.Values() {
		if S.Add(x) {
			changed = true
		}
	}
	return changed
}

// UnionExcept inserts every item of other into S, leaving out item ex.
// Returns true if S changed.
func (S *Set) UnionExcept(other *Set, ex interface{}) bool {
	if other == nil || other == S {
		return false
	}
	changed := false
	for _, x := range other.items.Values() {
		if x == ex {
			continue
		}
		if S.Add(x) {
			changed = true
		}
	}
	return changed
}

// Remove deletes x from S. Returns true if x had been contained in S.
func (S *Set) Remove(x interface{}) bool {
	if !S.items.Contains(x) {
		return false
	}
	S.items.Remove(x)
	return true
}

// Contains checks if x is an item of S.
func (S *Set) Contains(x interface{}) bool {
	return S.items.Contains(x)
}

// Size returns the number of items in S.
func (S *Set) Size() int {
	return S.items.Size()
}

// Empty is true for sets without items.
func (S *Set) Empty() bool {
	return S.items.Empty()
}

// Values returns the items of S in order of first insertion.
func (S *Set) Values() []interface{} {
	return S.items.Values()
}

// Each calls mapper for each item of S, in order of first insertion.
func (S *Set) Each(mapper func(interface{})) {
	for _, x := range S.items.Values() {
		mapper(x)
	}
}

// Copy creates a shallow copy of S.
func (S *Set) Copy() *Set {
	return NewSet(S.items.Values()...)
}

// Equals is true if S and other contain the same items, regardless of order.
func (S *Set) Equals(other *Set) bool {
	if other == nil {
		return false
	}
	if S.Size() != other.Size() {
		return false
	}
	return S.Subset(other)
}

// Subset is true if every item of S is contained in other.
func (S *Set) Subset(other *Set) bool {
	for _, x := range S.items.Values() {
		if !other.Contains(x) {
			return false
		}
	}
	return true
}

// ---------------------------------------------------------------------------

func (S *Set) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, x := range S.items.Values() {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(fmt.Sprintf("%v", x))
	}
	b.WriteString("}")
	return b.String()
}
