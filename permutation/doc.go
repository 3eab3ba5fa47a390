// Package permutation implements the immutable Permutation value and the
// union-find Orbits structure of spec.md §4.5.
//
// Orbits' union-find mirrors the path-compressed, smaller-attaches-to-larger
// idiom of prim_kruskal.Kruskal's disjoint-set closures, adapted so roots
// are always the numerically smallest member of their class (spec.md's
// "orbits[v] points towards the orbit representative, always the smallest
// vertex").
package permutation
