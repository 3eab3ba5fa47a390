package nauty_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nauty/densegraph"
	"github.com/katalvlaran/nauty/nauty"
	"github.com/katalvlaran/nauty/sparsegraph"
)

func TestSparseK4HasOrderTwentyFour(t *testing.T) {
	require := require.New(t)
	var edges []densegraph.Edge
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			edges = append(edges, densegraph.Edge{From: i, To: j})
		}
	}
	g, err := sparsegraph.FromEdges(4, edges, false)
	require.NoError(err)

	r, err := nauty.Sparse(nil, g, nauty.WithCanonical())
	require.NoError(err)
	require.InDelta(24.0, r.GroupOrderMantissa*math.Pow10(r.GroupOrderExponent), 1e-6)
	require.Equal(1, r.NumOrbits)
}

func TestSparseP4MatchesDenseOrbits(t *testing.T) {
	require := require.New(t)
	edges := []densegraph.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}}
	g, err := sparsegraph.FromEdges(4, edges, false)
	require.NoError(err)

	r, err := nauty.Sparse(nil, g, nauty.WithCanonical())
	require.NoError(err)
	require.InDelta(2.0, r.GroupOrderMantissa*math.Pow10(r.GroupOrderExponent), 1e-9)
	require.Equal(2, r.NumOrbits)
}

func TestSparseWithSchreierSimsMatchesExactOrder(t *testing.T) {
	require := require.New(t)
	var edges []densegraph.Edge
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			edges = append(edges, densegraph.Edge{From: i, To: j})
		}
	}
	g, err := sparsegraph.FromEdges(4, edges, false)
	require.NoError(err)

	r, err := nauty.Sparse(nil, g, nauty.WithSchreierSims())
	require.NoError(err)
	require.NotNil(r.GroupOrderExact)
	require.Equal(int64(24), r.GroupOrderExact.Int64())
}
