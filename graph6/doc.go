// Package graph6 implements the graph6, sparse6, and digraph6 ASCII
// interchange formats of spec.md §6: bit-exact encoders and decoders for
// densegraph.Graph, used only at the system's edge (surface parsers and
// packaging are explicitly out of scope; this package is the wire format
// itself).
//
// Each format shares an `N(n)` vertex-count header: n<=62 is one byte
// (n+63); 63<=n<=258047 is byte 126 followed by three 6-bit base-64 digits
// of n; larger n is two 126 bytes followed by six such digits. Every writer
// and reader here is bit-exact with that rule, and with the optional
// `>>graph6<<`/`>>sparse6<<`/`>>digraph6<<` ASCII headers, which are
// accepted and stripped on read but never written.
package graph6
