package densegraph

import "github.com/katalvlaran/nauty/bitset"

// Edge is a single directed endpoint pair used to build a Graph.
type Edge struct {
	From, To int
}

// Graph is a dense, bit-packed adjacency store over vertices 0..N-1.
//
// Rows is a read-only-by-convention slice of per-vertex neighbor sets; callers
// on the refinement hot path index Rows[v].Words() directly rather than call
// through a method, to keep the inner loop allocation-free.
type Graph struct {
	N        int
	M        int // bitset.WordsNeeded(N)
	Rows     []*bitset.Set
	Directed bool // true if constructed with directed edges, or carries a self-loop
}

// NewGraph allocates an empty dense Graph over n vertices.
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	g := &Graph{
		N:    n,
		M:    bitset.WordsNeeded(n),
		Rows: make([]*bitset.Set, n),
	}
	for v := 0; v < n; v++ {
		g.Rows[v] = bitset.NewSet(n)
	}
	return g, nil
}

// FromEdges builds a dense Graph over n vertices from an edge list. When
// directed is false, both (u,v) and (v,u) bits are set for every edge;
// self-loops set the one bit (u,u) in either mode. A graph that was given
// directed=true, or that received any self-loop, has Directed == true
// (spec.md §3: self-loops make a graph "directed" for algorithmic purposes).
func FromEdges(n int, edges []Edge, directed bool) (*Graph, error) {
	g, err := NewGraph(n)
	if err != nil {
		return nil, err
	}
	g.Directed = directed
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, densegraphErrorf("FromEdges", "%w: (%d,%d)", ErrVertexOutOfRange, e.From, e.To)
		}
		g.Rows[e.From].Add(e.To)
		if e.From == e.To {
			g.Directed = true
		}
		if !directed && e.From != e.To {
			g.Rows[e.To].Add(e.From)
		}
	}
	return g, nil
}
