// Package nauty is the library's public surface: it wires bitset, densegraph,
// sparsegraph, partition, refine, permutation, schreier and search together
// behind the three entry points of spec.md §6 — Dense, Sparse (and their
// IsomorphicDense/IsomorphicSparse counterparts), and GenerateGroup — plus the Options and
// Result types of spec.md §4.7/§4.8.
//
// A call allocates its working arrays once and runs synchronously to
// completion on the calling goroutine (spec.md §5); there is no shared
// mutable state between calls, so concurrent callers simply run independent
// instances.
package nauty
