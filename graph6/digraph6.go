package graph6

import (
	"github.com/katalvlaran/nauty/densegraph"
)

const digraph6Prefix = ">>digraph6<<"

// EncodeDigraph6 renders g as a single digraph6 line (leading '&', no
// trailing newline), covering the full n*n adjacency matrix row-major so
// direction is preserved.
func EncodeDigraph6(g *densegraph.Graph) []byte {
	out := append([]byte{'&'}, encodeN(nil, g.N)...)
	w := &bitWriter{}
	for i := 0; i < g.N; i++ {
		for j := 0; j < g.N; j++ {
			bit := 0
			if g.HasEdge(i, j) {
				bit = 1
			}
			w.writeBit(bit)
		}
	}
	return append(out, w.flush()...)
}

// DecodeDigraph6 parses a digraph6-encoded line into a directed
// densegraph.Graph. An optional leading ">>digraph6<<" header is accepted
// and stripped; the mandatory '&' prefix is required and consumed.
func DecodeDigraph6(src []byte) (*densegraph.Graph, error) {
	src = stripHeader(src, digraph6Prefix)
	if len(src) == 0 || src[0] != '&' {
		return nil, graph6Errorf("DecodeDigraph6", 0, ErrWrongPrefix)
	}
	src = src[1:]
	n, pos, err := decodeN(src, 0)
	if err != nil {
		return nil, graph6Errorf("DecodeDigraph6", pos+1, err)
	}
	g, err := densegraph.NewGraph(n)
	if err != nil {
		return nil, graph6Errorf("DecodeDigraph6", pos+1, err)
	}
	g.Directed = true
	r := newBitReader(src, pos)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if r.readBit() == 1 {
				g.Rows[i].Add(j)
				if i == j {
					g.Directed = true
				}
			}
		}
	}
	if r.fail {
		return nil, graph6Errorf("DecodeDigraph6", r.pos+1, ErrBadByte)
	}
	return g, nil
}
