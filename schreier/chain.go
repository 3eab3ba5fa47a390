package schreier

import (
	"math/big"
	"math/rand"

	"github.com/katalvlaran/nauty/permutation"
)

// FailureBound is the number of consecutive no-new-generator sifts Expand
// requires before it stops (spec.md §4.6, fixed by §9's resolution of the
// source's observed non-determinism at lower bounds).
const FailureBound = 10

// DefaultSeed is the fixed default PRNG seed for reproducible Expand runs
// (spec.md §5).
const DefaultSeed = 1

// level is one stabilizer in the chain: a base point, the generators known
// so far to fix every earlier base point, and the point-to-representative
// transversal of the base point's orbit under those generators.
type level struct {
	base        int
	gens        []permutation.Permutation
	orbit       []int
	transversal map[int]permutation.Permutation
}

// Chain is a Schreier–Sims base and strong generating set over a domain of
// size n.
type Chain struct {
	n      int
	levels []*level
}

// NewChain returns an empty chain (the trivial group) over n points.
func NewChain(n int) (*Chain, error) {
	if n <= 0 {
		return nil, ErrEmptyDomain
	}
	return &Chain{n: n}, nil
}

// Build constructs a chain from an initial generator list, then runs Expand
// with the given seed (spec.md §4.6).
func Build(n int, gens []permutation.Permutation, seed int64) (*Chain, error) {
	c, err := NewChain(n)
	if err != nil {
		return nil, err
	}
	for _, g := range gens {
		c.siftAndMaybeAdd(g)
	}
	c.Expand(rand.New(rand.NewSource(seed)))
	return c, nil
}

// Sift walks perm down the chain, reducing it by each level's transversal
// representative. It returns the residue and the index of the first level
// at which no representative existed (== len(c.levels) if perm passed
// through the whole chain, i.e. perm in G iff the residue is identity).
//
// Complexity: O(d) chain levels times O(n) per composition.
func (c *Chain) Sift(perm permutation.Permutation) (permutation.Permutation, int) {
	cur := perm
	for k, lvl := range c.levels {
		p := cur.Image(lvl.base)
		rep, ok := lvl.transversal[p]
		if !ok {
			return cur, k
		}
		cur = rep.Inverse().Compose(cur)
	}
	return cur, len(c.levels)
}

// Member reports whether perm lies in the group generated so far.
func (c *Chain) Member(perm permutation.Permutation) bool {
	residue, _ := c.Sift(perm)
	return residue.IsIdentity()
}

// Order returns the exact group order as the product of transversal sizes
// across all levels (spec.md §4.6 "Order").
func (c *Chain) Order() *big.Int {
	order := big.NewInt(1)
	for _, lvl := range c.levels {
		order.Mul(order, big.NewInt(int64(len(lvl.orbit))))
	}
	return order
}

// siftAndMaybeAdd sifts perm; if the residue is non-identity, it is folded
// in as a new strong generator at the level where the sift stalled
// (extending the chain with a new level if needed). Returns true if a
// generator was added.
func (c *Chain) siftAndMaybeAdd(perm permutation.Permutation) bool {
	residue, levelIdx := c.Sift(perm)
	if residue.IsIdentity() {
		return false
	}
	if levelIdx == len(c.levels) {
		c.levels = append(c.levels, c.newLevel(residue))
	}
	lvl := c.levels[levelIdx]
	lvl.gens = append(lvl.gens, residue)
	c.rebuildTransversal(lvl)
	return true
}

// newLevel picks the smallest point moved by residue as the new base,
// preferring one not already used by an earlier level.
func (c *Chain) newLevel(residue permutation.Permutation) *level {
	used := make(map[int]bool, len(c.levels))
	for _, lvl := range c.levels {
		used[lvl.base] = true
	}
	base := -1
	for _, p := range residue.MovedPoints() {
		if !used[p] {
			base = p
			break
		}
	}
	if base == -1 {
		base = residue.MovedPoints()[0]
	}
	return &level{base: base}
}

// rebuildTransversal recomputes lvl's orbit and coset representatives from
// scratch via BFS under lvl.gens. Recomputing fully (rather than
// incrementally extending) keeps this simple and is only ever called off
// the search hot path (spec.md §4.6 "Sift").
//
// Complexity: O(orbit size * len(gens)).
func (c *Chain) rebuildTransversal(lvl *level) {
	lvl.transversal = map[int]permutation.Permutation{lvl.base: permutation.Identity(c.n)}
	lvl.orbit = []int{lvl.base}
	for i := 0; i < len(lvl.orbit); i++ {
		p := lvl.orbit[i]
		rep := lvl.transversal[p]
		for _, g := range lvl.gens {
			q := g.Image(p)
			if _, ok := lvl.transversal[q]; !ok {
				lvl.transversal[q] = g.Compose(rep)
				lvl.orbit = append(lvl.orbit, q)
			}
		}
	}
}

// Expand runs the randomized completion procedure of spec.md §4.6: repeated
// short random products of strong generators and Schreier-generator
// enumeration, each sifted in, until FailureBound consecutive sifts add
// nothing.
func (c *Chain) Expand(rng *rand.Rand) {
	noNew := 0
	for noNew < FailureBound {
		added := false
		if gens := c.allGenerators(); len(gens) > 0 {
			if c.siftAndMaybeAdd(randomProduct(gens, rng)) {
				added = true
			}
		}
		for _, lvl := range c.levels {
			for _, p := range lvl.orbit {
				up := lvl.transversal[p]
				for _, g := range lvl.gens {
					q := g.Image(p)
					vq, ok := lvl.transversal[q]
					if !ok {
						continue
					}
					schreierGen := vq.Inverse().Compose(g.Compose(up))
					if c.siftAndMaybeAdd(schreierGen) {
						added = true
					}
				}
			}
		}
		if added {
			noNew = 0
		} else {
			noNew++
		}
	}
}

func (c *Chain) allGenerators() []permutation.Permutation {
	var all []permutation.Permutation
	for _, lvl := range c.levels {
		all = append(all, lvl.gens...)
	}
	return all
}

// randomProduct forms a short random product (length in [1, 2*len(gens)+1])
// of the given generators and their inverses.
func randomProduct(gens []permutation.Permutation, rng *rand.Rand) permutation.Permutation {
	n := gens[0].Len()
	result := permutation.Identity(n)
	length := 1 + rng.Intn(2*len(gens)+1)
	for i := 0; i < length; i++ {
		g := gens[rng.Intn(len(gens))]
		if rng.Intn(2) == 0 {
			g = g.Inverse()
		}
		result = result.Compose(g)
	}
	return result
}
