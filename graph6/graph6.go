package graph6

import (
	"github.com/katalvlaran/nauty/densegraph"
)

const graph6Prefix = ">>graph6<<"

// EncodeGraph6 renders g as a single graph6 line (no trailing newline). g
// must be undirected: only the upper triangle (i<j) is consulted, so a
// directed g silently loses its lower-triangle edges — callers that need
// direction preserved should use EncodeDigraph6 instead.
func EncodeGraph6(g *densegraph.Graph) []byte {
	out := encodeN(nil, g.N)
	w := &bitWriter{}
	for j := 1; j < g.N; j++ {
		for i := 0; i < j; i++ {
			bit := 0
			if g.HasEdge(i, j) {
				bit = 1
			}
			w.writeBit(bit)
		}
	}
	return append(out, w.flush()...)
}

// DecodeGraph6 parses a graph6-encoded line into an undirected densegraph.Graph.
// An optional leading ">>graph6<<" header is accepted and stripped.
func DecodeGraph6(src []byte) (*densegraph.Graph, error) {
	src = stripHeader(src, graph6Prefix)
	n, pos, err := decodeN(src, 0)
	if err != nil {
		return nil, graph6Errorf("DecodeGraph6", pos, err)
	}
	g, err := densegraph.NewGraph(n)
	if err != nil {
		return nil, graph6Errorf("DecodeGraph6", pos, err)
	}
	r := newBitReader(src, pos)
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			if r.readBit() == 1 {
				g.Rows[i].Add(j)
				g.Rows[j].Add(i)
			}
		}
	}
	if r.fail {
		return nil, graph6Errorf("DecodeGraph6", r.pos, ErrBadByte)
	}
	return g, nil
}

// stripHeader removes a leading ASCII format header if present.
func stripHeader(src []byte, prefix string) []byte {
	if len(src) >= len(prefix) && string(src[:len(prefix)]) == prefix {
		return src[len(prefix):]
	}
	return src
}
