// Package sparsegraph implements the CSR-style adjacency store described in
// spec.md §4.2: three parallel arrays (Offsets, Degree, Edges) sharing the
// same operation set as densegraph (target_cell/refine/is_automorphism/
// apply_permutation_to_build_canonical_graph — see refine and search), so
// the driver in search can be instantiated over either store without
// virtual dispatch on the hot path.
package sparsegraph
