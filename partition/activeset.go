package partition

import "github.com/katalvlaran/nauty/bitset"

// ActiveSet tracks which cell-start positions have not yet been used as a
// refinement splitter (spec.md §3 "Active set"). It is maintained in
// lockstep with the owning Partition by the refine package.
type ActiveSet struct {
	bits *bitset.Set
}

// NewActiveSet returns an empty ActiveSet sized for n positions.
func NewActiveSet(n int) *ActiveSet {
	return &ActiveSet{bits: bitset.NewSet(n)}
}

// Add marks position pos as an unused splitter.
func (a *ActiveSet) Add(pos int) { a.bits.Add(pos) }

// Remove clears position pos.
func (a *ActiveSet) Remove(pos int) { a.bits.Remove(pos) }

// Contains reports whether pos is currently marked.
func (a *ActiveSet) Contains(pos int) bool { return a.bits.Test(pos) }

// IsEmpty reports whether no positions remain.
func (a *ActiveSet) IsEmpty() bool { return a.bits.Size() == 0 }

// PopNext removes and returns the smallest marked position, or -1 if empty.
func (a *ActiveSet) PopNext() int {
	v := a.bits.NextElement(-1)
	if v != -1 {
		a.bits.Remove(v)
	}
	return v
}

// Clear empties the set.
func (a *ActiveSet) Clear() { a.bits.Clear() }

// Clone returns an independent copy.
func (a *ActiveSet) Clone() *ActiveSet {
	return &ActiveSet{bits: a.bits.Clone()}
}

// CopyFrom overwrites a in place from other.
func (a *ActiveSet) CopyFrom(other *ActiveSet) {
	a.bits.Copy(other.bits)
}
