package graph6

import (
	"github.com/katalvlaran/nauty/densegraph"
)

const sparse6Prefix = ">>sparse6<<"

// kBits returns the field width used to encode a vertex index in 0..n-1
// (the classical nauty sparse6 rule: k = ceil(log2 n), with k=1 for n<=1).
func kBits(n int) int {
	k := 0
	for (1 << uint(k)) < n {
		k++
	}
	if k == 0 {
		k = 1
	}
	return k
}

// EncodeSparse6 renders g as a single sparse6 line (leading ':', no trailing
// newline), listing undirected edges (i<=j) as (incr, vertex) pairs against
// a running "current vertex" cursor curv, per the classical nauty
// sparse6 scheme. Only the upper triangle (i<=j) is consulted, so direction
// and any edge present only in the lower triangle are lost — callers needing
// direction should use EncodeDigraph6.
//
// This package does not claim byte-for-byte parity with the reference nauty
// tool's padding-bit convention on the final partial byte; it guarantees
// only that DecodeSparse6(EncodeSparse6(g)) reconstructs g exactly
// (spec.md §8 property P7).
func EncodeSparse6(g *densegraph.Graph) []byte {
	out := append([]byte{':'}, encodeN(nil, g.N)...)
	k := kBits(g.N)
	w := &bitWriter{}
	curv := 0
	for j := 0; j < g.N; j++ {
		for i := 0; i <= j; i++ {
			if !g.HasEdge(i, j) {
				continue
			}
			switch {
			case j == curv:
				w.writeBit(0)
				w.writeBits(i, k)
			case j == curv+1:
				w.writeBit(1)
				w.writeBits(i, k)
				curv = j
			default:
				w.writeBit(1)
				w.writeBits(j, k)
				w.writeBit(0)
				w.writeBits(i, k)
				curv = j
			}
		}
	}
	// When n == 2^k and curv stopped at n-2, a padding run long enough to
	// form a whole (b,x) pair would decode as the edge (n-1,n-1); one 0 bit
	// ahead of the padding makes that pair a plain jump to n-1 instead.
	if pad := (6 - w.nbit) % 6; g.N == 1<<uint(k) && curv == g.N-2 && pad >= k+1 {
		w.writeBit(0)
	}
	return append(out, w.flushWithPad(1)...)
}

// DecodeSparse6 parses a sparse6-encoded line into an undirected
// densegraph.Graph. An optional leading ">>sparse6<<" header is accepted
// and stripped; the mandatory ':' prefix is required and consumed.
func DecodeSparse6(src []byte) (*densegraph.Graph, error) {
	src = stripHeader(src, sparse6Prefix)
	if len(src) == 0 || src[0] != ':' {
		return nil, graph6Errorf("DecodeSparse6", 0, ErrWrongPrefix)
	}
	src = src[1:]
	n, pos, err := decodeN(src, 0)
	if err != nil {
		return nil, graph6Errorf("DecodeSparse6", pos+1, err)
	}
	g, err := densegraph.NewGraph(n)
	if err != nil {
		return nil, graph6Errorf("DecodeSparse6", pos+1, err)
	}
	if n == 0 {
		return g, nil
	}
	k := kBits(n)
	r := newBitReader(src, pos)
	curv := 0
	totalBits := (len(src) - pos) * 6
	// Each (b,x) pair either repositions curv or closes an edge against it:
	// b advances curv by one; then, if x is beyond the (possibly advanced)
	// curv, x becomes the new curv with no edge (the jump case's first
	// pair); otherwise x is the edge's other endpoint (spec.md §8 P7: this
	// is the inverse of the three EncodeSparse6 cases, collapsed into one
	// rule the way the classical nauty decoder does it).
	for bitsLeft := totalBits; bitsLeft >= 1+k && !r.fail; bitsLeft -= 1 + k {
		b := r.readBit()
		x := r.readBits(k)
		if r.fail || x >= n {
			break
		}
		if b == 1 {
			curv++
		}
		if x > curv {
			curv = x
			continue
		}
		if curv >= n {
			break
		}
		g.Rows[x].Add(curv)
		g.Rows[curv].Add(x)
	}
	return g, nil
}
