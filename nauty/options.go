package nauty

import "github.com/katalvlaran/nauty/search"

// Defaults for Options, the single source of truth for zero-value behavior
// (spec.md §4.8).
const (
	DefaultCanonical    = false
	DefaultSchreierSims = false
	DefaultSchreierSeed = int64(1)
)

// Option mutates an Options value under construction. Constructors panic
// only on nonsensical arguments (programmer error), never on graph content.
type Option func(*Options)

// Options is the immutable configuration of a single Dense/Sparse call
// (spec.md §4.8): whether to canonicalize, an optional user-supplied initial
// coloring, whether to run Schreier–Sims to get an exact group order, and
// optional progress hooks. Directedness is a property of the graph store
// itself (densegraph.Graph/sparsegraph.Graph's Directed field), not of a
// call option — Dense/Sparse read adjacency through the store, so a directed
// store is already refined and searched correctly with no option needed.
type Options struct {
	canonical    bool
	schreierSims bool
	schreierSeed int64
	userColoring []int
	hooks        search.Hooks
}

// WithCanonical requests a canonical relabeling and canonical graph in the
// result (spec.md §4.8 "canonicalize: none / full").
func WithCanonical() Option {
	return func(o *Options) { o.canonical = true }
}

// WithUserPartition supplies the initial vertex coloring: colors[v] is v's
// color, an arbitrary comparable integer. Panics if colors is empty (use the
// unit partition instead, by simply omitting this option).
func WithUserPartition(colors []int) Option {
	if len(colors) == 0 {
		panic("nauty: WithUserPartition: colors must be non-empty")
	}
	cp := make([]int, len(colors))
	copy(cp, colors)
	return func(o *Options) { o.userColoring = cp }
}

// WithSchreierSims additionally builds a Schreier–Sims base and strong
// generating set from the discovered automorphisms, yielding an exact
// big.Int group order (spec.md §4.6/§4.8).
func WithSchreierSims() Option {
	return func(o *Options) { o.schreierSims = true }
}

// WithSeed fixes the PRNG seed used by Schreier–Sims' randomized completion
// (spec.md §5). Has no effect unless WithSchreierSims is also given.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.schreierSeed = seed }
}

// WithHooks installs the synchronous progress callbacks of search.Hooks:
// node visit, automorphism found, and canonical update. There is no
// per-level-entry callback. Hooks must never mutate engine state.
func WithHooks(hooks search.Hooks) Option {
	return func(o *Options) { o.hooks = hooks }
}

func resolveOptions(opts []Option) Options {
	o := Options{
		canonical:    DefaultCanonical,
		schreierSims: DefaultSchreierSims,
		schreierSeed: DefaultSchreierSeed,
	}
	for _, set := range opts {
		set(&o)
	}
	return o
}
