package colorreduce

import (
	"sort"

	"github.com/katalvlaran/nauty/densegraph"
)

// NoLabel marks an Edge as unlabeled: it passes through the reduction as a
// plain directed edge, with no intermediate vertex.
const NoLabel = -1

// Edge is a single directed edge of the input graph, optionally carrying an
// edge label in [0, inf); Label == NoLabel means unlabeled.
type Edge struct {
	From, To, Label int
}

// Reduced is the output of Reduce: a plain directed graph, its initial
// vertex coloring, and the vertex count of the original graph.
type Reduced struct {
	Graph     *densegraph.Graph
	Coloring  []int
	OriginalN int
}

// Reduce builds the plain directed graph and initial coloring for a graph
// of n vertices, optional per-vertex colors, and a set of (possibly
// labeled) edges, per spec.md §6.
//
// vertexColors may be nil, meaning every original vertex starts in one
// color class; otherwise it must have exactly n entries. Vertex colors and
// edge labels are each compacted to a dense, ascending id space internally,
// so callers may use arbitrary integers (including negative ones) as vertex
// colors and any non-negative integer as an edge label; a negative label
// other than NoLabel is rejected with ErrNegativeLabel.
func Reduce(n int, vertexColors []int, edges []Edge) (*Reduced, error) {
	if n < 0 {
		return nil, colorreduceErrorf("Reduce", "%w: n=%d", ErrVertexOutOfRange, n)
	}
	if vertexColors != nil && len(vertexColors) != n {
		return nil, colorreduceErrorf("Reduce", "%w: got %d, want %d", ErrColoringSizeMismatch, len(vertexColors), n)
	}
	if vertexColors == nil {
		vertexColors = make([]int, n)
	}

	numLabeled := 0
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, colorreduceErrorf("Reduce", "%w: (%d,%d)", ErrVertexOutOfRange, e.From, e.To)
		}
		if e.Label == NoLabel {
			continue
		}
		if e.Label < 0 {
			return nil, colorreduceErrorf("Reduce", "%w: %d", ErrNegativeLabel, e.Label)
		}
		numLabeled++
	}

	total := n + numLabeled
	plain := make([]densegraph.Edge, 0, len(edges)+numLabeled)
	labelOf := make([]int, 0, numLabeled) // labelOf[i] is the label of the i-th label-vertex
	nextLabelVertex := n
	for _, e := range edges {
		if e.Label == NoLabel {
			plain = append(plain, densegraph.Edge{From: e.From, To: e.To})
			continue
		}
		x := nextLabelVertex
		nextLabelVertex++
		labelOf = append(labelOf, e.Label)
		plain = append(plain, densegraph.Edge{From: e.From, To: x}, densegraph.Edge{From: x, To: e.To})
	}

	g, err := densegraph.FromEdges(total, plain, true)
	if err != nil {
		return nil, err
	}

	vertexColorID := compactIDs(vertexColors)
	base := 0
	for _, id := range vertexColorID {
		if id+1 > base {
			base = id + 1
		}
	}
	labelColorID := compactIDs(labelOf)

	coloring := make([]int, total)
	for i := 0; i < n; i++ {
		coloring[i] = vertexColorID[i]
	}
	for i, id := range labelColorID {
		coloring[n+i] = base + id
	}

	return &Reduced{Graph: g, Coloring: coloring, OriginalN: n}, nil
}

// compactIDs maps each distinct value in vals to a dense id in
// [0, len(distinct)), ids assigned in ascending value order, and returns
// the per-position id slice (same length and order as vals).
func compactIDs(vals []int) []int {
	sorted := append([]int(nil), vals...)
	sort.Ints(sorted)
	rank := make(map[int]int, len(sorted))
	next := 0
	for _, v := range sorted {
		if _, ok := rank[v]; !ok {
			rank[v] = next
			next++
		}
	}
	ids := make([]int, len(vals))
	for i, v := range vals {
		ids[i] = rank[v]
	}
	return ids
}
