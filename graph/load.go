// SPDX-License-Identifier: MIT

package graph

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// loadChunk bounds the up-front buffer Load reserves from the header.
const loadChunk = 1 << 12

// Load parses a graph file: N on the first line, then one distance per
// line for every pair i<j in row-major order.
func Load(r io.Reader) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	line := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++
		return strings.TrimSpace(sc.Text()), true
	}

	head, ok := next()
	if !ok {
		return nil, fmt.Errorf("%w: missing node count", ErrFormat)
	}
	n, err := strconv.Atoi(head)
	if err != nil {
		return nil, fmt.Errorf("%w: line 1: node count %q is not an integer", ErrFormat, head)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: node count must be ≥ 1, got %d", ErrFormat, n)
	}
	if n-1 > math.MaxInt/n {
		return nil, fmt.Errorf("%w: %d nodes is too large", ErrFormat, n)
	}

	// Distances are buffered first; the N×N matrix is allocated only once
	// every pair is present.
	pairs := n * (n - 1) / 2
	dists := make([]float64, 0, min(pairs, loadChunk))
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			text, ok := next()
			if !ok {
				if err := sc.Err(); err != nil {
					return nil, fmt.Errorf("%w: reading d(%d,%d): %v", ErrFormat, i, j, err)
				}
				return nil, fmt.Errorf("%w: file ends before d(%d,%d)", ErrFormat, i, j)
			}
			d, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: distance %q is not a number", ErrFormat, line, text)
			}
			dists = append(dists, d)
		}
	}

	g, err := New(n)
	if err != nil {
		return nil, err
	}
	k := 0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			d := dists[k]
			k++
			g.dist[i][j], g.dist[j][i] = d, d
			if d > 0 {
				g.edges++
			}
		}
	}
	return g, nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
