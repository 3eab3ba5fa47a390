package refine

import (
	"sort"

	"github.com/katalvlaran/nauty/bitset"
	"github.com/katalvlaran/nauty/densegraph"
	"github.com/katalvlaran/nauty/partition"
)

// Dense refines an ordered partition against a densegraph.Graph. Its scratch
// buffers are allocated once (NewDense) and reused for every call, per
// spec.md §5's "allocated once, reused throughout" resource model.
type Dense struct {
	g        *densegraph.Graph
	splitter *bitset.Set
	counts   []int
}

// NewDense allocates refinement scratch space for g.
func NewDense(g *densegraph.Graph) *Dense {
	return &Dense{
		g:        g,
		splitter: bitset.NewSet(g.N),
		counts:   make([]int, g.N),
	}
}

// Refine drives p to an equitable partition with respect to r's graph,
// consuming active as its pool of unused splitters (spec.md §4.3).
//
// Complexity: O(n*m) worst case per splitter round.
func (r *Dense) Refine(p *partition.Partition, level int, active *partition.ActiveSet) Code {
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

		r.splitter.Clear()
		for i := splitterStart; i < splitterEnd; i++ {
			r.splitter.Add(p.Lab[i])
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
			for i := start; i < end; i++ {
				v := p.Lab[i]
				r.counts[v] = r.g.Row(v).IntersectionSize(r.splitter)
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
