package search

import "github.com/katalvlaran/nauty/permutation"

// Hooks lets a caller observe the traversal without coupling the driver to
// any particular logging or UI layer (spec.md §4.8 "Options/callbacks" — the
// driver calls these synchronously on its own goroutine, never concurrently).
// Every field is optional; a nil hook is simply skipped.
type Hooks struct {
	// OnNodeVisit fires once per search-tree node, after refinement.
	OnNodeVisit func(level int, code int)
	// OnAutomorphism fires whenever a verified automorphism is found,
	// whether or not it enlarges the known orbit partition.
	OnAutomorphism func(gen permutation.Permutation, isNewGenerator bool)
	// OnCanonicalUpdate fires whenever the canonical leaf candidate changes
	// (including the very first leaf, which seeds it).
	OnCanonicalUpdate func(lab []int)
}

func (h Hooks) nodeVisit(level int, code int) {
	if h.OnNodeVisit != nil {
		h.OnNodeVisit(level, code)
	}
}

func (h Hooks) automorphism(gen permutation.Permutation, isNew bool) {
	if h.OnAutomorphism != nil {
		h.OnAutomorphism(gen, isNew)
	}
}

func (h Hooks) canonicalUpdate(lab []int) {
	if h.OnCanonicalUpdate != nil {
		h.OnCanonicalUpdate(lab)
	}
}
