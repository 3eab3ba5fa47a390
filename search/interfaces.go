package search

import (
	"github.com/katalvlaran/nauty/partition"
	"github.com/katalvlaran/nauty/refine"
)

// GraphLike is the subset of a graph store's surface the driver needs:
// membership testing for automorphism verification, relabeling for
// canonical-leaf construction, and the two comparisons the canonical
// competition of spec.md §4.4 runs on relabeled graphs.
//
// densegraph.Graph and sparsegraph.Graph both satisfy GraphLike[*Graph] for
// their own type, which is what lets Driver be written once and instantiated
// for either store.
type GraphLike[Self any] interface {
	HasEdge(v, w int) bool
	Permute(p []int) (Self, error)
	Equal(other Self) bool
	Less(other Self) bool
}

// Refiner drives an ordered partition to an equitable one and returns its
// label-independent code. refine.Dense and refine.Sparse both implement it.
type Refiner interface {
	Refine(p *partition.Partition, level int, active *partition.ActiveSet) refine.Code
}
