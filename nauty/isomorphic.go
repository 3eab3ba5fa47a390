package nauty

import (
	"context"

	"github.com/katalvlaran/nauty/densegraph"
	"github.com/katalvlaran/nauty/sparsegraph"
)

// IsomorphicDense reports whether g1 and g2 are isomorphic, by comparing
// their canonical forms (spec.md §6 "second entry point... isomorphism
// testing", property P4). Any Options affecting canonicalization are
// forced on regardless of what the caller passed.
func IsomorphicDense(ctx context.Context, g1, g2 *densegraph.Graph, opts ...Option) (bool, error) {
	if g1.N != g2.N {
		return false, nil
	}
	opts = append(append([]Option{}, opts...), WithCanonical())
	r1, err := Dense(ctx, g1, opts...)
	if err != nil {
		return false, err
	}
	r2, err := Dense(ctx, g2, opts...)
	if err != nil {
		return false, err
	}
	return r1.HasCanonical && r2.HasCanonical && r1.CanonicalForm.Equal(r2.CanonicalForm), nil
}

// IsomorphicSparse is IsomorphicDense's CSR-store counterpart.
func IsomorphicSparse(ctx context.Context, g1, g2 *sparsegraph.Graph, opts ...Option) (bool, error) {
	if g1.N != g2.N {
		return false, nil
	}
	opts = append(append([]Option{}, opts...), WithCanonical())
	r1, err := Sparse(ctx, g1, opts...)
	if err != nil {
		return false, err
	}
	r2, err := Sparse(ctx, g2, opts...)
	if err != nil {
		return false, err
	}
	return r1.HasCanonical && r2.HasCanonical && r1.CanonicalForm.Equal(r2.CanonicalForm), nil
}
