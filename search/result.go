package search

import "github.com/katalvlaran/nauty/permutation"

// Result is everything a completed (or aborted) traversal produced.
type Result[G GraphLike[G]] struct {
	FirstLab   []int
	CanonLab   []int
	CanonGraph G
	HasCanon   bool
	Generators []permutation.Permutation
	Orbits     *permutation.Orbits
	GroupSize  GroupSize
	Stats      Stats
	Aborted    bool
}
