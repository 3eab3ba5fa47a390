package sparsegraph

import (
	"sort"

	"github.com/katalvlaran/nauty/densegraph"
)

// Graph is a CSR-style sparse adjacency store: neighbors of v occupy
// Edges[Offsets[v] : Offsets[v]+Degree[v]]. Offsets has length N+1;
// Offsets[N] == len(Edges).
type Graph struct {
	N        int
	Offsets  []uint64
	Degree   []int
	Edges    []int
	Directed bool
}

// FromEdges builds a sparse Graph over n vertices from an edge list, mirroring
// densegraph.FromEdges' directed/self-loop semantics (spec.md §3/§4.2).
func FromEdges(n int, edges []densegraph.Edge, directed bool) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	isDirected := directed
	adj := make([][]int, n)
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, sparsegraphErrorf("FromEdges", "%w: (%d,%d)", ErrVertexOutOfRange, e.From, e.To)
		}
		adj[e.From] = append(adj[e.From], e.To)
		if e.From == e.To {
			isDirected = true
		}
		if !directed && e.From != e.To {
			adj[e.To] = append(adj[e.To], e.From)
		}
	}
	g := &Graph{N: n, Directed: isDirected}
	g.Offsets = make([]uint64, n+1)
	total := 0
	for v := 0; v < n; v++ {
		total += len(adj[v])
	}
	g.Edges = make([]int, 0, total)
	g.Degree = make([]int, n)
	for v := 0; v < n; v++ {
		g.Offsets[v] = uint64(len(g.Edges))
		sort.Ints(adj[v])
		adj[v] = dedupSorted(adj[v])
		g.Degree[v] = len(adj[v])
		g.Edges = append(g.Edges, adj[v]...)
	}
	g.Offsets[n] = uint64(len(g.Edges))
	return g, nil
}

func dedupSorted(xs []int) []int {
	if len(xs) == 0 {
		return xs
	}
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}

// Neighbors returns a read-only slice view of v's sorted out-neighbors.
//
// Complexity: O(1) (slicing).
func (g *Graph) Neighbors(v int) []int {
	o := g.Offsets[v]
	return g.Edges[o : int(o)+g.Degree[v]]
}

// HasEdge reports whether there is an edge v -> w. It is off the refinement
// hot path (spec.md §4.2).
//
// Complexity: O(log deg(v)) via binary search over the sorted neighbor list.
func (g *Graph) HasEdge(v, w int) bool {
	nbrs := g.Neighbors(v)
	i := sort.SearchInts(nbrs, w)
	return i < len(nbrs) && nbrs[i] == w
}

// Permute returns p(g): edge (i,j) in the result holds iff g has edge
// (p[i], p[j]).
//
// Complexity: O(n + e log e) (rebuild + per-row sort).
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
	edges := make([]densegraph.Edge, 0, len(g.Edges))
	for i := 0; i < g.N; i++ {
		for _, w := range g.Neighbors(p[i]) {
			edges = append(edges, densegraph.Edge{From: i, To: inv[w]})
		}
	}
	return FromEdges(g.N, edges, true)
}

// Equal reports structural equality: identical degree sequence and, for
// every vertex, identical (sorted) neighbor lists.
//
// Complexity: O(n + e).
func (g *Graph) Equal(other *Graph) bool {
	if g.N != other.N || len(g.Edges) != len(other.Edges) {
		return false
	}
	for v := 0; v < g.N; v++ {
		a, b := g.Neighbors(v), other.Neighbors(v)
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
	}
	return true
}

// Less gives a total order on same-sized graphs: lexicographic comparison of
// per-vertex (degree, sorted neighbor list), vertex by vertex. Used to pick
// the canonical leaf during search (spec.md §4.4), mirroring
// densegraph.Graph.Less for the CSR representation.
//
// Complexity: O(n + e).
func (g *Graph) Less(other *Graph) bool {
	for v := 0; v < g.N; v++ {
		a, b := g.Neighbors(v), other.Neighbors(v)
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		for i := range a {
			if a[i] != b[i] {
				return a[i] < b[i]
			}
		}
	}
	return false
}
