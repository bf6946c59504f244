// SPDX-License-Identifier: MIT

package maze

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// loadChunk bounds the up-front buffer a loader reserves from a header.
const loadChunk = 1 << 12

// Load parses an instance: R, C, then R×C whitespace-separated cell codes.
// Tokens after the last cell are ignored.
// Complexity: O(R×C).
func Load(r io.Reader) (*Maze, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(what string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("%w: reading %s: %v", ErrFormat, what, err)
			}
			return 0, fmt.Errorf("%w: unexpected end of input reading %s", ErrFormat, what)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q is not an integer", ErrFormat, what, sc.Text())
		}
		return v, nil
	}

	rows, err := next("row count")
	if err != nil {
		return nil, err
	}
	cols, err := next("column count")
	if err != nil {
		return nil, err
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, rows, cols)
	}

	if rows > math.MaxInt/cols {
		return nil, fmt.Errorf("%w: %dx%d grid is too large", ErrFormat, rows, cols)
	}

	// Cells are buffered first so a truncated file with a huge header
	// fails on the missing tokens instead of on the allocation.
	total := rows * cols
	kinds := make([]Kind, 0, min(total, loadChunk))
	for n := 0; n < total; n++ {
		i, j := n/cols, n%cols
		code, err := next(fmt.Sprintf("cell (%d,%d)", i, j))
		if err != nil {
			return nil, err
		}
		k, err := KindFromCode(code)
		if err != nil {
			return nil, fmt.Errorf("%w at (%d,%d)", err, i, j)
		}
		kinds = append(kinds, k)
	}

	m := newBlank(rows, cols)
	for n, k := range kinds {
		m.place(Coord{n / cols, n % cols}, k)
	}
	return m, nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
