package graph6_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nauty/densegraph"
	"github.com/katalvlaran/nauty/graph6"
)

func petersen(t *testing.T) *densegraph.Graph {
	t.Helper()
	outer := []int{0, 1, 2, 3, 4}
	inner := []int{5, 6, 7, 8, 9}
	var edges []densegraph.Edge
	for i := 0; i < 5; i++ {
		edges = append(edges, densegraph.Edge{From: outer[i], To: outer[(i+1)%5]})
		edges = append(edges, densegraph.Edge{From: inner[i], To: inner[(i+2)%5]})
		edges = append(edges, densegraph.Edge{From: outer[i], To: inner[i]})
	}
	g, err := densegraph.FromEdges(10, edges, false)
	require.NoError(t, err)
	return g
}

func completeGraph(t *testing.T, n int) *densegraph.Graph {
	t.Helper()
	var edges []densegraph.Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, densegraph.Edge{From: i, To: j})
		}
	}
	g, err := densegraph.FromEdges(n, edges, false)
	require.NoError(t, err)
	return g
}

func emptyGraph(t *testing.T, n int) *densegraph.Graph {
	t.Helper()
	g, err := densegraph.NewGraph(n)
	require.NoError(t, err)
	return g
}

func directedCycle(t *testing.T, n int) *densegraph.Graph {
	t.Helper()
	var edges []densegraph.Edge
	for i := 0; i < n; i++ {
		edges = append(edges, densegraph.Edge{From: i, To: (i + 1) % n})
	}
	g, err := densegraph.FromEdges(n, edges, true)
	require.NoError(t, err)
	return g
}

func TestGraph6RoundTripPetersen(t *testing.T) {
	require := require.New(t)
	g := petersen(t)
	line := graph6.EncodeGraph6(g)
	got, err := graph6.DecodeGraph6(line)
	require.NoError(err)
	require.True(g.Equal(got))
}

func TestGraph6RoundTripBoundaryVertexCounts(t *testing.T) {
	for _, n := range []int{0, 1, 62, 63, 64, 100} {
		g := completeGraph(t, n)
		line := graph6.EncodeGraph6(g)
		got, err := graph6.DecodeGraph6(line)
		require.NoError(t, err)
		require.Truef(t, g.Equal(got), "n=%d", n)
	}
}

func TestGraph6RoundTripEmptyGraph(t *testing.T) {
	require := require.New(t)
	g := emptyGraph(t, 7)
	line := graph6.EncodeGraph6(g)
	got, err := graph6.DecodeGraph6(line)
	require.NoError(err)
	require.True(g.Equal(got))
}

func TestGraph6DecodeAcceptsAndStripsHeader(t *testing.T) {
	require := require.New(t)
	g := completeGraph(t, 5)
	line := append([]byte(">>graph6<<"), graph6.EncodeGraph6(g)...)
	got, err := graph6.DecodeGraph6(line)
	require.NoError(err)
	require.True(g.Equal(got))
}

func TestDigraph6RoundTripDirectedCycle(t *testing.T) {
	require := require.New(t)
	g := directedCycle(t, 6)
	line := graph6.EncodeDigraph6(g)
	got, err := graph6.DecodeDigraph6(line)
	require.NoError(err)
	require.True(g.Equal(got))
	require.True(got.Directed)
}

func TestDigraph6RoundTripBoundaryVertexCounts(t *testing.T) {
	for _, n := range []int{0, 1, 62, 63, 64} {
		g := directedCycle(t, n)
		line := graph6.EncodeDigraph6(g)
		got, err := graph6.DecodeDigraph6(line)
		require.NoError(t, err)
		require.Truef(t, g.Equal(got), "n=%d", n)
	}
}

func TestDigraph6RejectsMissingAmpersandPrefix(t *testing.T) {
	_, err := graph6.DecodeDigraph6(graph6.EncodeGraph6(completeGraph(t, 4)))
	require.ErrorIs(t, err, graph6.ErrWrongPrefix)
}

func TestSparse6RoundTripPetersen(t *testing.T) {
	require := require.New(t)
	g := petersen(t)
	line := graph6.EncodeSparse6(g)
	got, err := graph6.DecodeSparse6(line)
	require.NoError(err)
	require.True(g.Equal(got))
}

func TestSparse6RoundTripBoundaryVertexCounts(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 8, 16, 62, 63, 64, 100} {
		g := completeGraph(t, n)
		line := graph6.EncodeSparse6(g)
		got, err := graph6.DecodeSparse6(line)
		require.NoError(t, err, "n=%d", n)
		require.Truef(t, g.Equal(got), "n=%d", n)
	}
}

func TestSparse6RoundTripSparseGraph(t *testing.T) {
	require := require.New(t)
	g, err := densegraph.FromEdges(20, []densegraph.Edge{
		{From: 0, To: 19}, {From: 2, To: 5}, {From: 7, To: 7}, {From: 10, To: 11},
	}, false)
	require.NoError(err)
	line := graph6.EncodeSparse6(g)
	got, err := graph6.DecodeSparse6(line)
	require.NoError(err)
	require.True(g.Equal(got))
}

func TestSparse6RoundTripEmptyGraph(t *testing.T) {
	require := require.New(t)
	for _, n := range []int{0, 1, 4, 8} {
		g := emptyGraph(t, n)
		line := graph6.EncodeSparse6(g)
		got, err := graph6.DecodeSparse6(line)
		require.NoError(err)
		require.Truef(t, g.Equal(got), "n=%d", n)
	}
}

func TestSparse6DecodeAcceptsAndStripsHeader(t *testing.T) {
	require := require.New(t)
	g := petersen(t)
	line := append([]byte(">>sparse6<<"), graph6.EncodeSparse6(g)...)
	got, err := graph6.DecodeSparse6(line)
	require.NoError(err)
	require.True(g.Equal(got))
}
