package refine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nauty/densegraph"
	"github.com/katalvlaran/nauty/partition"
	"github.com/katalvlaran/nauty/refine"
)

// P4 (path on 4 vertices) splits into two degree classes under equitable
// refinement from the unit partition: {0,3} (degree 1) and {1,2} (degree 2),
// matching spec.md §8's concrete scenario 3.
func TestRefineDenseSplitsPathByDegree(t *testing.T) {
	require := require.New(t)
	g, err := densegraph.FromEdges(4, []densegraph.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}}, false)
	require.NoError(err)

	p := partition.NewUnit(4)
	active := partition.NewActiveSet(4)
	active.Add(0)

	r := refine.NewDense(g)
	_ = r.Refine(p, 0, active)

	require.Equal(2, p.CellCount(0))
	require.ElementsMatch([]int{0, 3}, p.Lab[0:2])
	require.ElementsMatch([]int{1, 2}, p.Lab[2:4])
}

// K4 is already equitable under the unit partition: every vertex has the
// same degree (3), so refinement must leave a single cell.
func TestRefineDenseK4StaysUnified(t *testing.T) {
	require := require.New(t)
	var edges []densegraph.Edge
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			edges = append(edges, densegraph.Edge{From: i, To: j})
		}
	}
	g, err := densegraph.FromEdges(4, edges, false)
	require.NoError(err)

	p := partition.NewUnit(4)
	active := partition.NewActiveSet(4)
	active.Add(0)

	r := refine.NewDense(g)
	_ = r.Refine(p, 0, active)

	require.Equal(1, p.CellCount(0))
}

// The refinement code must not depend on vertex identity: two isomorphic
// graphs under the unit partition produce the same code.
func TestRefineDenseCodeIsLabelIndependent(t *testing.T) {
	require := require.New(t)
	g1, err := densegraph.FromEdges(4, []densegraph.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}}, false)
	require.NoError(err)
	// Relabel: 0<->3, 1<->2 (an automorphism of P4), still a path.
	g2, err := densegraph.FromEdges(4, []densegraph.Edge{{From: 3, To: 2}, {From: 2, To: 1}, {From: 1, To: 0}}, false)
	require.NoError(err)

	run := func(g *densegraph.Graph) refine.Code {
		p := partition.NewUnit(4)
		active := partition.NewActiveSet(4)
		active.Add(0)
		return refine.NewDense(g).Refine(p, 0, active)
	}
	require.Equal(run(g1), run(g2))
}
