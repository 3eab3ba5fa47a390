package nauty

import (
	"context"

	"github.com/google/uuid"

	"github.com/katalvlaran/nauty/densegraph"
	"github.com/katalvlaran/nauty/partition"
	"github.com/katalvlaran/nauty/refine"
	"github.com/katalvlaran/nauty/schreier"
	"github.com/katalvlaran/nauty/search"
)

// Dense computes automorphism generators (and, with WithCanonical, a
// canonical labeling) for g using the dense bit-packed engine (spec.md §6
// "Library API"). ctx may be nil.
func Dense(ctx context.Context, g *densegraph.Graph, opts ...Option) (*Result[*densegraph.Graph], error) {
	o := resolveOptions(opts)
	initial, err := buildInitialPartition(g.N, o.userColoring)
	if err != nil {
		return nil, err
	}

	d := search.NewDriver[*densegraph.Graph](g, refine.NewDense(g), g.N, o.canonical, o.hooks, ctx)
	sr := d.Run(initial)
	res := newResult(uuid.New(), sr)

	if o.schreierSims && !sr.Aborted {
		chain, err := schreier.Build(g.N, sr.Generators, o.schreierSeed)
		if err == nil {
			res.GroupOrderExact = chain.Order()
		}
	}
	return res, nil
}

// buildInitialPartition resolves Options.userColoring (if any) into a root
// ordered partition, defaulting to the unit partition (spec.md §6 "Vertex
// colored graphs").
func buildInitialPartition(n int, coloring []int) (*partition.Partition, error) {
	if coloring == nil {
		return partition.NewUnit(n), nil
	}
	if len(coloring) != n {
		return nil, nautyErrorf("buildInitialPartition", "%w: coloring has %d entries, graph has %d vertices", ErrMalformedPartition, len(coloring), n)
	}
	p, err := partition.NewFromColoring(coloring)
	if err != nil {
		return nil, nautyErrorf("buildInitialPartition", "%w", ErrMalformedPartition)
	}
	return p, nil
}
