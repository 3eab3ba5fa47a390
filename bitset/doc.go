// Package bitset implements the fixed-width, most-significant-bit-first word
// algebra that the refinement and search packages build on.
//
// A Set packs up to m*64 vertices into m uint64 words. Bit k of a word,
// counted from the most significant end, stands for vertex (wordIndex*64 + k).
// This ordering is a contract, not an implementation detail: FirstSetBit and
// NextElement must return the numerically smallest vertex in the set, and
// every caller in refine/search relies on that total order matching vertex
// numbering.
//
// All operations are allocation-free and run in O(m) words; there is no
// growable-slice path like github.com/gaissmai/bart's internal bitset — the
// width m is fixed by the graph's vertex count for the lifetime of a search.
package bitset
