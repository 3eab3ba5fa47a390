package densegraph

import "github.com/katalvlaran/nauty/bitset"

// HasEdge reports whether there is an edge v -> w.
//
// Complexity: O(1).
func (g *Graph) HasEdge(v, w int) bool {
	return g.Rows[v].Test(w)
}

// Degree returns the out-degree of v.
//
// Complexity: O(m).
func (g *Graph) Degree(v int) int {
	return g.Rows[v].Size()
}

// Neighbors returns the out-neighbors of v in ascending order.
//
// Complexity: O(m + deg(v)).
func (g *Graph) Neighbors(v int) []int {
	return g.Rows[v].Elements()
}

// Row returns a read-only view of v's adjacency row.
func (g *Graph) Row(v int) *bitset.Set {
	return g.Rows[v]
}

// Permute returns p(g): the graph whose edge (i,j) holds iff g has edge
// (p[i], p[j]). Equivalently, row i of the result is g's row p[i] with each
// bit w remapped to p^-1(w) — built here via the explicit inverse to keep
// the per-row cost O(m) rather than O(n) bit-by-bit translation twice.
//
// Complexity: O(n^2) worst case (each row scanned once, n rows).
func (g *Graph) Permute(p []int) (*Graph, error) {
	if len(p) != g.N {
		return nil, ErrPermutationSize
	}
	inv := make([]int, g.N)
	for i, pi := range p {
		if pi < 0 || pi >= g.N {
			return nil, ErrVertexOutOfRange
		}
		inv[pi] = i
	}
	out, err := NewGraph(g.N)
	if err != nil {
		return nil, err
	}
	out.Directed = g.Directed
	for i := 0; i < g.N; i++ {
		src := g.Rows[p[i]]
		for w := src.NextElement(-1); w != -1; w = src.NextElement(w) {
			out.Rows[i].Add(inv[w])
		}
	}
	return out, nil
}

// Equal reports bit-identical adjacency rows between g and other of the same
// size.
//
// Complexity: O(n*m).
func (g *Graph) Equal(other *Graph) bool {
	if g.N != other.N {
		return false
	}
	for v := 0; v < g.N; v++ {
		if !g.Rows[v].Equal(other.Rows[v]) {
			return false
		}
	}
	return true
}

// Less gives a total order on same-sized graphs: lexicographic comparison of
// rows (in vertex order), each row compared word-by-word as unsigned
// integers. Used to pick the canonical leaf during search (spec.md §4.4).
//
// Complexity: O(n*m) worst case.
func (g *Graph) Less(other *Graph) bool {
	for v := 0; v < g.N; v++ {
		gw := g.Rows[v].Words()
		ow := other.Rows[v].Words()
		for i := range gw {
			if gw[i] != ow[i] {
				return gw[i] < ow[i]
			}
		}
	}
	return false
}
