package partition

import (
	"math"
	"sort"
)

// NeverSplit is the sentinel Ptn value meaning "this position has never been
// used as a cell boundary". It is larger than any level the search driver
// can reach (level is bounded by N, the vertex count).
const NeverSplit = math.MaxInt

// Partition is an ordered partition of {0..N-1}, encoded as a permutation
// Lab and a level-indexed Ptn array (spec.md §3).
type Partition struct {
	Lab []int
	Ptn []int
	N   int
}

// NewDiscrete returns the fully discrete partition Lab[i]=i, i.e. every
// position is a permanent (level-0) boundary.
func NewDiscrete(n int) *Partition {
	p := &Partition{Lab: make([]int, n), Ptn: make([]int, n), N: n}
	for i := 0; i < n; i++ {
		p.Lab[i] = i
	}
	return p
}

// NewFromColoring builds the root ordered partition for a vertex coloring:
// vertices are grouped by color, color classes ordered by ascending color
// id (a fixed total order, per spec.md §6), vertices within a class ordered
// by id for determinism. Boundaries between classes are permanent (Ptn=0);
// boundaries within a class are unset (NeverSplit) until refinement splits
// them.
func NewFromColoring(colors []int) (*Partition, error) {
	n := len(colors)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return colors[order[i]] < colors[order[j]]
	})
	p := &Partition{Lab: order, Ptn: make([]int, n), N: n}
	for i := range p.Ptn {
		p.Ptn[i] = NeverSplit
	}
	for i := 0; i < n-1; i++ {
		if colors[p.Lab[i]] != colors[p.Lab[i+1]] {
			p.Ptn[i] = 0
		}
	}
	if n > 0 {
		p.Ptn[n-1] = 0
	}
	return p, nil
}

// NewUnit returns the root ordered partition with a single cell holding all
// of 0..n-1 (the "no coloring" case).
func NewUnit(n int) *Partition {
	p := &Partition{Lab: make([]int, n), Ptn: make([]int, n), N: n}
	for i := 0; i < n; i++ {
		p.Lab[i] = i
		p.Ptn[i] = NeverSplit
	}
	if n > 0 {
		p.Ptn[n-1] = 0
	}
	return p
}

// IsBoundary reports whether position i ends a cell when viewed at level.
func (p *Partition) IsBoundary(i, level int) bool {
	return p.Ptn[i] <= level
}

// CellEnd returns the index one past the end of the cell starting at
// position start, at the given level.
//
// Complexity: O(cell size).
func (p *Partition) CellEnd(start, level int) int {
	i := start
	for i < p.N-1 && !p.IsBoundary(i, level) {
		i++
	}
	return i + 1
}

// CellStart walks backward to find the start of the cell containing
// position pos at the given level.
//
// Complexity: O(cell size).
func (p *Partition) CellStart(pos, level int) int {
	i := pos
	for i > 0 && !p.IsBoundary(i-1, level) {
		i--
	}
	return i
}

// Cells calls yield(start, end) for every cell at the given level, in
// left-to-right order, until yield returns false or the partition is
// exhausted.
//
// Complexity: O(N).
func (p *Partition) Cells(level int, yield func(start, end int) bool) {
	for i := 0; i < p.N; {
		end := p.CellEnd(i, level)
		if !yield(i, end) {
			return
		}
		i = end
	}
}

// CellCount returns the number of cells at the given level.
//
// Complexity: O(N).
func (p *Partition) CellCount(level int) int {
	k := 0
	p.Cells(level, func(_, _ int) bool { k++; return true })
	return k
}

// IsDiscrete reports whether every cell at the given level is a singleton.
//
// Complexity: O(N).
func (p *Partition) IsDiscrete(level int) bool {
	for i := 0; i < p.N-1; i++ {
		if !p.IsBoundary(i, level) {
			return false
		}
	}
	return true
}

// FirstNonSingleton returns the start position of the first cell at level
// that has more than one member, or -1 if the partition is discrete at that
// level. This is the "target cell" selection of spec.md §4.4.
func (p *Partition) FirstNonSingleton(level int) int {
	found := -1
	p.Cells(level, func(start, end int) bool {
		if end-start > 1 {
			found = start
			return false
		}
		return true
	})
	return found
}

// Clone returns a deep copy of p.
func (p *Partition) Clone() *Partition {
	c := &Partition{Lab: make([]int, p.N), Ptn: make([]int, p.N), N: p.N}
	copy(c.Lab, p.Lab)
	copy(c.Ptn, p.Ptn)
	return c
}

// CopyFrom overwrites p in place with other's contents (used to restore a
// search-driver snapshot on backtrack). Both must share the same N.
func (p *Partition) CopyFrom(other *Partition) error {
	if p.N != other.N {
		return partitionErrorf("CopyFrom", "%w: %d != %d", ErrSizeMismatch, p.N, other.N)
	}
	copy(p.Lab, other.Lab)
	copy(p.Ptn, other.Ptn)
	return nil
}

// Individualize promotes vertex v (currently a member of the cell starting
// at cellStart) to be the first element of its own singleton cell at the
// front of that cell's range, pushing the rest of the cell one position
// later. This is the tree-branching step of spec.md §4.4. The new boundary
// is recorded at the given level.
//
// Complexity: O(cell size).
func (p *Partition) Individualize(cellStart, level int, v int) {
	end := p.CellEnd(cellStart, level)
	pos := -1
	for i := cellStart; i < end; i++ {
		if p.Lab[i] == v {
			pos = i
			break
		}
	}
	// Rotate v to the front of the cell, preserving relative order of the rest.
	for i := pos; i > cellStart; i-- {
		p.Lab[i] = p.Lab[i-1]
	}
	p.Lab[cellStart] = v
	if end-cellStart > 1 {
		p.Ptn[cellStart] = level
	}
}

// AsPermutation returns Lab as a plain permutation; valid only when the
// partition is discrete at level (every cell singleton).
func (p *Partition) AsPermutation(level int) []int {
	out := make([]int, p.N)
	copy(out, p.Lab)
	return out
}
