// Package refine implements equitable-partition refinement (spec.md §4.3):
// driving an ordered partition to a partition in which every vertex in a
// cell has the same number of neighbors in every other cell, while
// accumulating a 15-bit structural code that search compares across sibling
// tree paths without touching vertex identities.
//
// Refine provides a dense variant (splitter counts via bitset popcount,
// grounded on densegraph) and a sparse variant (splitter counts via
// adjacency-list walks, grounded on sparsegraph, with the level<=2
// BFS-distance-labeling shortcut of spec.md §4.3); both fold their code
// through the same update function in code.go, and each carries its own
// copy of the bucket-split step.
package refine
