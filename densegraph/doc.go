// Package densegraph implements the dense bit-row adjacency store used by
// the main refinement and search path (spec.md §4.2).
//
// A Graph holds n rows of m = bitset.WordsNeeded(n) words each; row v is the
// out-neighbor set of v. Undirected input sets both (v,w) and (w,v); a
// self-loop is legal and sets the graph's Directed flag. Refinement reads
// the adjacency rows directly and does not consult that flag.
package densegraph
