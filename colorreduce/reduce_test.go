package colorreduce_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nauty/colorreduce"
	"github.com/katalvlaran/nauty/nauty"
)

func TestReduceUnlabeledEdgesPassThrough(t *testing.T) {
	require := require.New(t)
	r, err := colorreduce.Reduce(3, nil, []colorreduce.Edge{
		{From: 0, To: 1, Label: colorreduce.NoLabel},
		{From: 1, To: 2, Label: colorreduce.NoLabel},
	})
	require.NoError(err)
	require.Equal(3, r.Graph.N)
	require.True(r.Graph.HasEdge(0, 1))
	require.True(r.Graph.HasEdge(1, 2))
	require.False(r.Graph.HasEdge(0, 2))
}

func TestReduceLabeledEdgeAddsIntermediateVertex(t *testing.T) {
	require := require.New(t)
	r, err := colorreduce.Reduce(2, nil, []colorreduce.Edge{
		{From: 0, To: 1, Label: 7},
	})
	require.NoError(err)
	require.Equal(3, r.Graph.N) // original 2 + 1 label-vertex
	require.False(r.Graph.HasEdge(0, 1))
	require.True(r.Graph.HasEdge(0, 2))
	require.True(r.Graph.HasEdge(2, 1))
	require.Equal(3, r.OriginalN+1)
}

func TestReduceSameLabelSharesColorCellNotVertex(t *testing.T) {
	require := require.New(t)
	r, err := colorreduce.Reduce(4, nil, []colorreduce.Edge{
		{From: 0, To: 1, Label: 5},
		{From: 2, To: 3, Label: 5},
	})
	require.NoError(err)
	require.Equal(6, r.Graph.N) // 4 original + 2 distinct label-vertices
	require.Equal(r.Coloring[4], r.Coloring[5])
	require.NotEqual(r.Coloring[0], r.Coloring[4])
}

func TestReduceVertexColorsFormDistinctCells(t *testing.T) {
	require := require.New(t)
	r, err := colorreduce.Reduce(4, []int{9, 9, 1, 1}, nil)
	require.NoError(err)
	require.Equal(r.Coloring[0], r.Coloring[1])
	require.Equal(r.Coloring[2], r.Coloring[3])
	require.NotEqual(r.Coloring[0], r.Coloring[2])
}

func TestReduceRejectsMismatchedColoringLength(t *testing.T) {
	_, err := colorreduce.Reduce(3, []int{0, 0}, nil)
	require.ErrorIs(t, err, colorreduce.ErrColoringSizeMismatch)
}

func TestReduceRejectsOutOfRangeEdge(t *testing.T) {
	_, err := colorreduce.Reduce(2, nil, []colorreduce.Edge{{From: 0, To: 5, Label: colorreduce.NoLabel}})
	require.ErrorIs(t, err, colorreduce.ErrVertexOutOfRange)
}

// TestColoredBowtieAutomorphismsRespectColor builds two triangles sharing a
// labeled "hub" edge to a colored center vertex, where the two triangle
// vertices at each end are interchangeable with each other but not with the
// other end's pair, because the two ends hang off different edge labels,
// and checks the generators found on the reduced graph
// restrict cleanly back to the original 5 vertices.
func TestColoredBowtieAutomorphismsRespectColor(t *testing.T) {
	require := require.New(t)
	// Vertices: 0=center (color 0), 1,2 = left pair (color 1), 3,4 = right
	// pair (color 1). Edges: center--1 (label A), center--2 (label A),
	// center--3 (label B), center--4 (label B), 1--2, 3--4.
	const labelA, labelB = 0, 1
	colors := []int{0, 1, 1, 1, 1}
	edges := []colorreduce.Edge{
		{From: 0, To: 1, Label: labelA}, {From: 1, To: 0, Label: labelA},
		{From: 0, To: 2, Label: labelA}, {From: 2, To: 0, Label: labelA},
		{From: 0, To: 3, Label: labelB}, {From: 3, To: 0, Label: labelB},
		{From: 0, To: 4, Label: labelB}, {From: 4, To: 0, Label: labelB},
		{From: 1, To: 2, Label: colorreduce.NoLabel}, {From: 2, To: 1, Label: colorreduce.NoLabel},
		{From: 3, To: 4, Label: colorreduce.NoLabel}, {From: 4, To: 3, Label: colorreduce.NoLabel},
	}
	r, err := colorreduce.Reduce(5, colors, edges)
	require.NoError(err)

	res, err := nauty.Dense(nil, r.Graph, nauty.WithUserPartition(r.Coloring))
	require.NoError(err)

	for _, gen := range res.Generators {
		restricted, err := r.RestrictGenerator(gen)
		require.NoError(err)
		require.Equal(5, restricted.Len())
		// The hub (vertex 0) must be fixed: it is the only vertex of its color.
		require.Equal(0, restricted.Image(0))
	}

	order := r.OriginalCanonicalOrder(res.CanonicalLab)
	require.Len(order, 5)
}
