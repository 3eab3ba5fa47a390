package refine

import (
	"sort"

	"github.com/katalvlaran/nauty/partition"
	"github.com/katalvlaran/nauty/sparsegraph"
)

// Sparse refines an ordered partition against a sparsegraph.Graph by walking
// adjacency lists rather than intersecting bit rows.
type Sparse struct {
	g       *sparsegraph.Graph
	counts  []int
	touched []int
	distBuf []int // scratch for the BFS-distance optimization
	queue   []int
}

// NewSparse allocates refinement scratch space for g.
func NewSparse(g *sparsegraph.Graph) *Sparse {
	return &Sparse{
		g:       g,
		counts:  make([]int, g.N),
		touched: make([]int, 0, g.N),
		distBuf: make([]int, g.N),
		queue:   make([]int, 0, g.N),
	}
}

// Refine mirrors Dense.Refine's contract and code-update order, but counts
// adjacency by walking neighbor lists (spec.md §4.3 step 2, sparse branch).
// At level<=2, with exactly one active singleton splitter and at most n/8
// cells, it instead runs a single BFS distance-labeling pass over the whole
// partition (spec.md §4.3 "Special sparse optimization").
func (r *Sparse) Refine(p *partition.Partition, level int, active *partition.ActiveSet) Code {
	if code, ok := r.tryDistanceOptimization(p, level, active); ok {
		return code
	}

	n := p.N
	code := Code(0)
	k := p.CellCount(level)
	hint := -1

	for !active.IsEmpty() && k < n {
		splitterStart := hint
		if splitterStart != -1 && active.Contains(splitterStart) {
			active.Remove(splitterStart)
		} else {
			splitterStart = active.PopNext()
		}
		hint = -1
		splitterEnd := p.CellEnd(splitterStart, level)

		r.resetCounts()
		for i := splitterStart; i < splitterEnd; i++ {
			v := p.Lab[i]
			for _, w := range r.g.Neighbors(v) {
				if r.counts[w] == 0 {
					r.touched = append(r.touched, w)
				}
				r.counts[w]++
			}
		}
		code = update(code, splitterStart)

		smallestNewStart, smallestNewSize := -1, n+1

		var cells [][2]int
		p.Cells(level, func(s, e int) bool { cells = append(cells, [2]int{s, e}); return true })

		for _, se := range cells {
			start, end := se[0], se[1]
			if end-start <= 1 {
				continue
			}
			c0 := r.counts[p.Lab[start]]
			uniform := true
			for i := start + 1; i < end; i++ {
				if r.counts[p.Lab[i]] != c0 {
					uniform = false
					break
				}
			}
			if uniform {
				code = update(code, c0)
				continue
			}

			origActive := active.Contains(start)

			members := append([]int(nil), p.Lab[start:end]...)
			sort.Slice(members, func(i, j int) bool { return r.counts[members[i]] < r.counts[members[j]] })
			copy(p.Lab[start:end], members)

			fragStarts := []int{start}
			prev := r.counts[members[0]]
			for i := 1; i < len(members); i++ {
				c := r.counts[members[i]]
				if c != prev {
					fragStarts = append(fragStarts, start+i)
					prev = c
				}
			}
			for fi := 0; fi < len(fragStarts)-1; fi++ {
				p.Ptn[fragStarts[fi+1]-1] = level
			}
			k += len(fragStarts) - 1

			largestIdx, largestSize := 0, 0
			for fi, fs := range fragStarts {
				fEnd := end
				if fi+1 < len(fragStarts) {
					fEnd = fragStarts[fi+1]
				}
				if sz := fEnd - fs; sz > largestSize {
					largestSize, largestIdx = sz, fi
				}
			}
			for fi, fs := range fragStarts {
				fEnd := end
				if fi+1 < len(fragStarts) {
					fEnd = fragStarts[fi+1]
				}
				if fi == largestIdx && !origActive {
					continue
				}
				active.Add(fs)
				if sz := fEnd - fs; sz < smallestNewSize {
					smallestNewSize, smallestNewStart = sz, fs
				}
			}

			prev = r.counts[members[0]]
			code = update(code, prev)
			for i := 1; i < len(members); i++ {
				if c := r.counts[members[i]]; c != prev {
					code = update(code, c)
					prev = c
				}
			}
			for _, fs := range fragStarts {
				code = update(code, fs)
			}
			code = update(code, k)
		}
		hint = smallestNewStart
	}
	return code
}

func (r *Sparse) resetCounts() {
	for _, v := range r.touched {
		r.counts[v] = 0
	}
	r.touched = r.touched[:0]
}

// tryDistanceOptimization implements spec.md §4.3's special sparse case: at
// level<=2, with exactly one active singleton and at most n/8 current
// cells, refine every non-singleton cell by BFS distance from that
// singleton's vertex in one pass, instead of popping one splitter at a
// time. Returns ok=false (and performs no mutation) when the preconditions
// do not hold, so the caller falls back to the general loop.
func (r *Sparse) tryDistanceOptimization(p *partition.Partition, level int, active *partition.ActiveSet) (Code, bool) {
	if level > 2 {
		return 0, false
	}
	n := p.N
	if n/8 < p.CellCount(level) {
		return 0, false
	}
	// Exactly one active splitter, and it must be a singleton.
	var singletonStart = -1
	count := 0
	p.Cells(level, func(s, e int) bool {
		if active.Contains(s) {
			count++
			if e-s == 1 {
				singletonStart = s
			} else {
				singletonStart = -1
			}
		}
		return true
	})
	if count != 1 || singletonStart == -1 {
		return 0, false
	}
	active.Remove(singletonStart)
	source := p.Lab[singletonStart]

	for i := range r.distBuf {
		r.distBuf[i] = -1
	}
	r.distBuf[source] = 0
	r.queue = r.queue[:0]
	r.queue = append(r.queue, source)
	for qi := 0; qi < len(r.queue); qi++ {
		v := r.queue[qi]
		for _, w := range r.g.Neighbors(v) {
			if r.distBuf[w] == -1 {
				r.distBuf[w] = r.distBuf[v] + 1
				r.queue = append(r.queue, w)
			}
		}
	}

	code := update(Code(0), singletonStart)
	k := p.CellCount(level)

	var cells [][2]int
	p.Cells(level, func(s, e int) bool { cells = append(cells, [2]int{s, e}); return true })

	for _, se := range cells {
		start, end := se[0], se[1]
		if end-start <= 1 {
			continue
		}
		members := append([]int(nil), p.Lab[start:end]...)
		sort.Slice(members, func(i, j int) bool { return r.distBuf[members[i]] < r.distBuf[members[j]] })
		copy(p.Lab[start:end], members)

		fragStarts := []int{start}
		prev := r.distBuf[members[0]]
		for i := 1; i < len(members); i++ {
			d := r.distBuf[members[i]]
			if d != prev {
				fragStarts = append(fragStarts, start+i)
				prev = d
			}
		}
		if len(fragStarts) == 1 {
			code = update(code, prev)
			continue
		}
		for fi := 0; fi < len(fragStarts)-1; fi++ {
			p.Ptn[fragStarts[fi+1]-1] = level
		}
		k += len(fragStarts) - 1
		largestIdx, largestSize := 0, 0
		for fi, fs := range fragStarts {
			fEnd := end
			if fi+1 < len(fragStarts) {
				fEnd = fragStarts[fi+1]
			}
			if sz := fEnd - fs; sz > largestSize {
				largestSize, largestIdx = sz, fi
			}
		}
		for fi, fs := range fragStarts {
			if fi == largestIdx {
				continue
			}
			active.Add(fs)
		}
		prev = r.distBuf[members[0]]
		code = update(code, prev)
		for i := 1; i < len(members); i++ {
			if d := r.distBuf[members[i]]; d != prev {
				code = update(code, d)
				prev = d
			}
		}
		for _, fs := range fragStarts {
			code = update(code, fs)
		}
		code = update(code, k)
	}
	return code, true
}
