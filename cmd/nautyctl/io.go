package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/nauty/densegraph"
	"github.com/katalvlaran/nauty/graph6"
)

// readGraph reads the first non-empty line from path (or stdin if path is
// "-" or empty) and decodes it as graph6, sparse6, or digraph6, detected by
// its leading byte (':' sparse6, '&' digraph6, else graph6), per spec.md §6.
func readGraph(path string) (*densegraph.Graph, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		return decodeLine(line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("nautyctl: no input line to decode")
}

func decodeLine(line []byte) (*densegraph.Graph, error) {
	switch {
	case bytes.HasPrefix(line, []byte(":")):
		return graph6.DecodeSparse6(line)
	case bytes.HasPrefix(line, []byte("&")):
		return graph6.DecodeDigraph6(line)
	default:
		return graph6.DecodeGraph6(line)
	}
}
