// Package partition implements the ordered-partition data structure of
// spec.md §3: a permutation Lab of 0..n-1 grouped into contiguous cells, and
// a level-indexed Ptn array recording when each potential cell boundary was
// created.
//
// Ptn[i] == 0 means position i ends a permanent (root-level) cell boundary.
// Otherwise Ptn[i] stores the search level L at which the boundary at i was
// introduced; the boundary is visible — i.e. the cell actually splits there
// — at every level >= L and invisible (the two sides merge into one coarser
// cell) at any level < L. This is what lets a caller view the cells of any
// ancestor level by comparing against a smaller L, without re-walking the
// search tree: the position itself never moves, only the meaning of "is this
// a boundary" changes with L.
//
// Positions that have never been split carry the sentinel NeverSplit, a
// value guaranteed larger than any level the search can reach.
package partition
