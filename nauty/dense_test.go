package nauty_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nauty/densegraph"
	"github.com/katalvlaran/nauty/nauty"
)

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

func cycleGraph(t *testing.T, n int) *densegraph.Graph {
	t.Helper()
	var edges []densegraph.Edge
	for i := 0; i < n; i++ {
		edges = append(edges, densegraph.Edge{From: i, To: (i + 1) % n})
	}
	g, err := densegraph.FromEdges(n, edges, false)
	require.NoError(t, err)
	return g
}

func pathGraph(t *testing.T, n int) *densegraph.Graph {
	t.Helper()
	var edges []densegraph.Edge
	for i := 0; i < n-1; i++ {
		edges = append(edges, densegraph.Edge{From: i, To: i + 1})
	}
	g, err := densegraph.FromEdges(n, edges, false)
	require.NoError(t, err)
	return g
}

func starGraph(t *testing.T, leaves int) *densegraph.Graph {
	t.Helper()
	var edges []densegraph.Edge
	for i := 1; i <= leaves; i++ {
		edges = append(edges, densegraph.Edge{From: 0, To: i})
	}
	g, err := densegraph.FromEdges(leaves+1, edges, false)
	require.NoError(t, err)
	return g
}

func petersenGraph(t *testing.T) *densegraph.Graph {
	t.Helper()
	// Outer 5-cycle 0..4, inner 5-cycle (pentagram) 5..9, spokes i--(i+5).
	var edges []densegraph.Edge
	for i := 0; i < 5; i++ {
		edges = append(edges, densegraph.Edge{From: i, To: (i + 1) % 5})
		edges = append(edges, densegraph.Edge{From: 5 + i, To: 5 + (i+2)%5})
		edges = append(edges, densegraph.Edge{From: i, To: 5 + i})
	}
	g, err := densegraph.FromEdges(10, edges, false)
	require.NoError(t, err)
	return g
}

func completeBipartite(t *testing.T, a, b int) *densegraph.Graph {
	t.Helper()
	var edges []densegraph.Edge
	for i := 0; i < a; i++ {
		for j := 0; j < b; j++ {
			edges = append(edges, densegraph.Edge{From: i, To: a + j})
		}
	}
	g, err := densegraph.FromEdges(a+b, edges, false)
	require.NoError(t, err)
	return g
}

func TestDenseK4HasOrderTwentyFourAndOneOrbit(t *testing.T) {
	require := require.New(t)
	r, err := nauty.Dense(nil, completeGraph(t, 4), nauty.WithCanonical())
	require.NoError(err)
	require.InDelta(24.0, r.GroupOrderMantissa*math.Pow10(r.GroupOrderExponent), 1e-6)
	require.Equal(1, r.NumOrbits)
}

func TestDenseC5HasOrderTen(t *testing.T) {
	require := require.New(t)
	r, err := nauty.Dense(nil, cycleGraph(t, 5), nauty.WithCanonical())
	require.NoError(err)
	require.InDelta(10.0, r.GroupOrderMantissa*math.Pow10(r.GroupOrderExponent), 1e-6)
	require.Equal(1, r.NumOrbits)
}

func TestDenseP4HasOrderTwoAndTwoOrbits(t *testing.T) {
	require := require.New(t)
	r, err := nauty.Dense(nil, pathGraph(t, 4), nauty.WithCanonical())
	require.NoError(err)
	require.InDelta(2.0, r.GroupOrderMantissa*math.Pow10(r.GroupOrderExponent), 1e-9)
	require.Equal(2, r.NumOrbits)
	classes := r.Orbits.Classes()
	require.ElementsMatch([]int{0, 3}, classes[r.Orbits.Find(0)])
	require.ElementsMatch([]int{1, 2}, classes[r.Orbits.Find(1)])
}

func TestDensePetersenHasOrderOneTwentyAndOneOrbit(t *testing.T) {
	require := require.New(t)
	r, err := nauty.Dense(nil, petersenGraph(t), nauty.WithCanonical())
	require.NoError(err)
	require.InDelta(120.0, r.GroupOrderMantissa*math.Pow10(r.GroupOrderExponent), 1e-3)
	require.Equal(1, r.NumOrbits)
}

func TestDenseK33HasOrderSeventyTwoAndTwoOrbits(t *testing.T) {
	require := require.New(t)
	r, err := nauty.Dense(nil, completeBipartite(t, 3, 3), nauty.WithCanonical())
	require.NoError(err)
	require.InDelta(72.0, r.GroupOrderMantissa*math.Pow10(r.GroupOrderExponent), 1e-3)
	require.Equal(2, r.NumOrbits)
}

func TestDenseDirectedFourCycleHasOrderFourRotationsOnly(t *testing.T) {
	require := require.New(t)
	edges := []densegraph.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 0}}
	g, err := densegraph.FromEdges(4, edges, true)
	require.NoError(err)
	r, err := nauty.Dense(nil, g, nauty.WithCanonical())
	require.NoError(err)
	require.InDelta(4.0, r.GroupOrderMantissa*math.Pow10(r.GroupOrderExponent), 1e-9)
	require.Equal(1, r.NumOrbits)
}

func TestDenseEmptyGraphOnZeroVertices(t *testing.T) {
	require := require.New(t)
	g, err := densegraph.NewGraph(0)
	require.NoError(err)
	r, err := nauty.Dense(nil, g)
	require.NoError(err)
	require.InDelta(1.0, r.GroupOrderMantissa*math.Pow10(r.GroupOrderExponent), 1e-9)
	require.Empty(r.Generators)
}

func TestDenseSingleVertex(t *testing.T) {
	require := require.New(t)
	g, err := densegraph.NewGraph(1)
	require.NoError(err)
	r, err := nauty.Dense(nil, g)
	require.NoError(err)
	require.InDelta(1.0, r.GroupOrderMantissa*math.Pow10(r.GroupOrderExponent), 1e-9)
}

func TestDenseEdgelessGraphIsFullSymmetricGroup(t *testing.T) {
	require := require.New(t)
	g, err := densegraph.NewGraph(5)
	require.NoError(err)
	r, err := nauty.Dense(nil, g)
	require.NoError(err)
	// |S5| = 120.
	require.InDelta(120.0, r.GroupOrderMantissa*math.Pow10(r.GroupOrderExponent), 1e-3)
	require.Equal(1, r.NumOrbits)
}

func TestDenseStarFixesCenterAndPermutesLeaves(t *testing.T) {
	require := require.New(t)
	r, err := nauty.Dense(nil, starGraph(t, 4), nauty.WithCanonical())
	require.NoError(err)
	// 4! over the leaves, center fixed.
	require.InDelta(24.0, r.GroupOrderMantissa*math.Pow10(r.GroupOrderExponent), 1e-6)
	require.Equal(2, r.NumOrbits) // {center}, {leaves}
}

func TestDenseCanonicalFormIsIsomorphismInvariant(t *testing.T) {
	require := require.New(t)
	base := petersenGraph(t)
	rng := rand.New(rand.NewSource(7))

	baseResult, err := nauty.Dense(nil, base, nauty.WithCanonical())
	require.NoError(err)

	for trial := 0; trial < 10; trial++ {
		perm := rng.Perm(base.N)
		relabeled, err := base.Permute(perm)
		require.NoError(err)
		r, err := nauty.Dense(nil, relabeled, nauty.WithCanonical())
		require.NoError(err)
		require.True(r.HasCanonical)
		require.True(r.CanonicalForm.Equal(baseResult.CanonicalForm))
	}
}
