// Package colorreduce reduces a vertex-colored, edge-labeled graph to a
// plain directed densegraph.Graph plus an initial vertex coloring, so that
// nauty's engine (which only knows plain graphs and one ordered partition)
// can still compute automorphisms and canonical forms that respect both
// kinds of coloring (spec.md §6).
//
// Vertex colors become cells of the coloring directly. Each labeled edge
// u -ℓ-> v becomes a fresh intermediate vertex x, colored by ℓ, replacing
// the edge with u -> x and x -> v; edges sharing a label land in the same
// color cell without being merged into a single vertex, so parallel
// same-label edges between different endpoint pairs stay distinguishable.
// Reduce returns enough bookkeeping (OriginalN) to translate a canonical
// labeling or an automorphism computed on the reduced graph back to the
// caller's original vertex numbering.
package colorreduce
