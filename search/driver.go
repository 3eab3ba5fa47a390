package search

import (
	"context"

	"github.com/katalvlaran/nauty/partition"
	"github.com/katalvlaran/nauty/permutation"
	"github.com/katalvlaran/nauty/refine"
)

// Driver runs the backtracking search of spec.md §4.4 over a single graph
// store G (densegraph.Graph or sparsegraph.Graph), reusing one Refiner for
// every node it visits.
type Driver[G GraphLike[G]] struct {
	graph     G
	refiner   Refiner
	n         int
	canonical bool
	hooks     Hooks
	ctx       context.Context

	orbits     *permutation.Orbits
	generators []permutation.Permutation
	groupSize  GroupSize
	stats      Stats
	aborted    bool

	firstLab  []int
	firstCode []refine.Code

	canonLab   []int
	canonGraph G
	hasCanon   bool
}

// NewDriver builds a Driver for a single Dense or Sparse call. ctx may be
// nil, which is treated as context.Background (never cancellable).
func NewDriver[G GraphLike[G]](graph G, refiner Refiner, n int, canonical bool, hooks Hooks, ctx context.Context) *Driver[G] {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Driver[G]{
		graph:     graph,
		refiner:   refiner,
		n:         n,
		canonical: canonical,
		hooks:     hooks,
		ctx:       ctx,
		orbits:    permutation.NewOrbits(n),
		groupSize: NewGroupSize(),
	}
}

// Run walks the search tree rooted at the given ordered partition (already
// the caller's initial coloring or the unit partition) to completion, or
// until the context is cancelled.
func (d *Driver[G]) Run(initial *partition.Partition) *Result[G] {
	p := initial.Clone()
	active := partition.NewActiveSet(d.n)
	initial.Cells(0, func(s, e int) bool {
		if e-s > 1 {
			active.Add(s)
		}
		return true
	})
	d.explore(0, p, active, true, true, -1, -1)
	return &Result[G]{
		FirstLab:   d.firstLab,
		CanonLab:   d.canonLab,
		CanonGraph: d.canonGraph,
		HasCanon:   d.hasCanon,
		Generators: d.generators,
		Orbits:     d.orbits,
		GroupSize:  d.groupSize,
		Stats:      d.stats,
		Aborted:    d.aborted,
	}
}

// explore visits one search-tree node. onFirstPath is true exactly for the
// leftmost-descent spine that establishes first_lab/first_code. equalToFirst
// is true while every ancestor level's code (including this one) matched the
// first path's code at that level; it is trivially true along the first
// path itself. Off the first path, branchFirst and branchV are the first
// child and this branch's child of the nearest first-path ancestor.
func (d *Driver[G]) explore(level int, p *partition.Partition, active *partition.ActiveSet, onFirstPath, equalToFirst bool, branchFirst, branchV int) {
	if d.aborted {
		return
	}
	select {
	case <-d.ctx.Done():
		d.aborted = true
		return
	default:
	}

	code := d.refiner.Refine(p, level, active)
	d.stats.Nodes++
	if level > d.stats.MaxLevel {
		d.stats.MaxLevel = level
	}
	d.hooks.nodeVisit(level, int(code))

	if onFirstPath {
		if len(d.firstCode) == level {
			d.firstCode = append(d.firstCode, code)
		}
	} else if equalToFirst {
		if code != d.firstCode[level] {
			equalToFirst = false
			d.stats.EqlevFirst = level - 1
			if !d.canonical {
				d.stats.BadLeaves++
				return
			}
		}
	}

	if p.IsDiscrete(level) {
		d.handleLeaf(level, p, onFirstPath, equalToFirst)
		return
	}

	targetStart := p.FirstNonSingleton(level)
	targetEnd := p.CellEnd(targetStart, level)
	d.stats.TargetCellSizeSum += targetEnd - targetStart
	members := append([]int(nil), p.Lab[targetStart:targetEnd]...)

	snapP := p.Clone()
	snapActive := active.Clone()

	tv1 := -1
	firstChild := true
	for _, v := range members {
		// Orbit pruning is sound only on the first path: every automorphism
		// found so far fixes that node's individualized vertices. Off the
		// first path the known orbits can merge vertices that the node's own
		// stabilizer keeps apart, so every child is tried.
		if onFirstPath && !d.orbits.IsRepresentative(v) {
			continue
		}
		// Once the branch's child shares an orbit with its first-path
		// sibling, the rest of the branch is the image of a subtree already
		// searched.
		if !onFirstPath && d.orbits.Find(branchFirst) == d.orbits.Find(branchV) {
			break
		}
		if tv1 == -1 {
			tv1 = v
		}
		if err := p.CopyFrom(snapP); err != nil {
			panic(err) // same N by construction; a mismatch is a driver bug
		}
		active.CopyFrom(snapActive)
		p.Individualize(targetStart, level+1, v)
		// The individualized vertex is now a fresh singleton cell at
		// targetStart; the rest of its former cell (if still non-trivial)
		// starts at targetStart+1. Both are unused splitters the refiner
		// below this level has never seen, so they must re-enter active —
		// otherwise Refine sees an empty active set and returns Code(0)
		// without doing any work (spec.md §4.3/§4.4).
		active.Add(targetStart)
		if targetEnd-targetStart > 2 {
			active.Add(targetStart + 1)
		}
		childOnFirstPath := onFirstPath && firstChild
		childFirst, childV := branchFirst, branchV
		if onFirstPath {
			childFirst, childV = tv1, v
		}
		d.explore(level+1, p, active, childOnFirstPath, childOnFirstPath || equalToFirst, childFirst, childV)
		firstChild = false
		if d.aborted {
			break
		}
	}

	if err := p.CopyFrom(snapP); err != nil {
		panic(err)
	}
	active.CopyFrom(snapActive)

	// Group-order accumulation follows the reference (first) path only: at
	// each of its levels, the full automorphism group's orbit of that
	// level's base point, restricted to the target cell, gives one factor
	// of |Aut(G)| by the orbit-stabilizer decomposition (spec.md §4.4). Off
	// the first path this would double-count the same stabilizer index.
	if onFirstPath && tv1 != -1 && !d.aborted {
		rep := d.orbits.Find(tv1)
		count := 0
		for _, v := range members {
			if d.orbits.Find(v) == rep {
				count++
			}
		}
		d.groupSize.MultiplyBy(count)
	}
}

// handleLeaf processes a discrete partition reached at the bottom of the
// tree (spec.md §4.4 "Automorphism handling" / "Canonical competition").
func (d *Driver[G]) handleLeaf(level int, p *partition.Partition, onFirstPath, equalToFirst bool) {
	lab := p.AsPermutation(level)

	if onFirstPath {
		d.firstLab = lab
		if d.canonical {
			d.canonLab = append([]int(nil), lab...)
			if g, err := d.graph.Permute(lab); err == nil {
				d.canonGraph = g
				d.hasCanon = true
				d.stats.CanonicalUpdates++
				d.hooks.canonicalUpdate(d.canonLab)
			}
		}
		return
	}

	// A leaf whose codes match the first path but which is not an image of
	// the first leaf still competes for the canonical form below.
	if equalToFirst {
		d.stats.EqlevFirst = level
		if d.tryAutomorphism(d.firstLab, lab) {
			return
		}
	}

	if !d.canonical {
		d.stats.BadLeaves++
		return
	}

	g, err := d.graph.Permute(lab)
	if err != nil {
		d.stats.BadLeaves++
		return
	}
	switch {
	case !d.hasCanon || g.Less(d.canonGraph):
		d.canonLab = append([]int(nil), lab...)
		d.canonGraph = g
		d.hasCanon = true
		d.stats.CanonicalUpdates++
		d.stats.EqlevCanon = level
		d.hooks.canonicalUpdate(d.canonLab)
	case g.Equal(d.canonGraph):
		d.stats.EqlevCanon = level
		if !d.tryAutomorphism(d.canonLab, lab) {
			d.stats.BadLeaves++
		}
	default:
		d.stats.BadLeaves++
	}
}

// tryAutomorphism builds the permutation carrying `from` to `to` (both full
// discrete labelings of the same graph) and, if verified, folds it into the
// known generating set and orbit partition. It reports whether the
// permutation was a verified automorphism.
func (d *Driver[G]) tryAutomorphism(from, to []int) bool {
	images := make([]int, d.n)
	for i := 0; i < d.n; i++ {
		images[from[i]] = to[i]
	}
	perm, err := permutation.FromArray(images)
	if err != nil || !d.isAutomorphism(perm) {
		return false
	}
	isNew := d.orbits.JoinPermutation(perm)
	if isNew {
		d.generators = append(d.generators, perm)
	}
	d.hooks.automorphism(perm, isNew)
	return true
}

// isAutomorphism reports whether perm preserves every edge and non-edge of
// the driver's graph.
//
// Complexity: O(n^2); only ever run at a leaf, never on the refinement hot
// path.
func (d *Driver[G]) isAutomorphism(perm permutation.Permutation) bool {
	for i := 0; i < d.n; i++ {
		for j := 0; j < d.n; j++ {
			if d.graph.HasEdge(i, j) != d.graph.HasEdge(perm.Image(i), perm.Image(j)) {
				return false
			}
		}
	}
	return true
}
