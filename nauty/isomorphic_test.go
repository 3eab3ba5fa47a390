package nauty_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nauty/densegraph"
	"github.com/katalvlaran/nauty/nauty"
)

func TestIsomorphicDenseDetectsRelabeling(t *testing.T) {
	require := require.New(t)
	g1 := petersenGraph(t)
	g2, err := g1.Permute([]int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0})
	require.NoError(err)

	iso, err := nauty.IsomorphicDense(nil, g1, g2)
	require.NoError(err)
	require.True(iso)
}

func TestIsomorphicDenseRejectsNonIsomorphicGraphs(t *testing.T) {
	require := require.New(t)
	g1 := cycleGraph(t, 5)
	g2 := pathGraph(t, 5)

	iso, err := nauty.IsomorphicDense(nil, g1, g2)
	require.NoError(err)
	require.False(iso)
}

func TestIsomorphicDenseRejectsDifferentOrder(t *testing.T) {
	require := require.New(t)
	g1, err := densegraph.NewGraph(3)
	require.NoError(err)
	g2, err := densegraph.NewGraph(4)
	require.NoError(err)

	iso, err := nauty.IsomorphicDense(nil, g1, g2)
	require.NoError(err)
	require.False(iso)
}
