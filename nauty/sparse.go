package nauty

import (
	"context"

	"github.com/google/uuid"

	"github.com/katalvlaran/nauty/refine"
	"github.com/katalvlaran/nauty/schreier"
	"github.com/katalvlaran/nauty/search"
	"github.com/katalvlaran/nauty/sparsegraph"
)

// Sparse computes automorphism generators (and, with WithCanonical, a
// canonical labeling) for g using the CSR sparse engine (spec.md §6
// "Library API"). ctx may be nil.
func Sparse(ctx context.Context, g *sparsegraph.Graph, opts ...Option) (*Result[*sparsegraph.Graph], error) {
	o := resolveOptions(opts)
	initial, err := buildInitialPartition(g.N, o.userColoring)
	if err != nil {
		return nil, err
	}

	d := search.NewDriver[*sparsegraph.Graph](g, refine.NewSparse(g), g.N, o.canonical, o.hooks, ctx)
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
