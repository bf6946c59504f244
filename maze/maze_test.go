package maze_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/maze"
)

// mustMaze builds a maze from codes or fails the test.
func mustMaze(t *testing.T, codes [][]int) *maze.Maze {
	t.Helper()
	m, err := maze.FromCodes(codes)
	require.NoError(t, err)
	return m
}

// open5 is an obstacle-free 5×5 maze with Start (0,0) and Exit (4,4).
func open5(t *testing.T) *maze.Maze {
	return mustMaze(t, [][]int{
		{3, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 4},
	})
}

//----------------------------------------------------------------------------//
// Construction and loading
//----------------------------------------------------------------------------//

// TestFromCodes_Errors verifies that FromCodes rejects empty, ragged or badly coded inputs.
func TestFromCodes_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, maze.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, maze.ErrEmptyGrid},
		{"NonRectangular", [][]int{{0, 0}, {0}}, maze.ErrNonRectangular},
		{"UnknownCode", [][]int{{3, 2}, {0, 4}}, maze.ErrFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.FromCodes(tc.grid)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestLoad_Valid parses a small instance and checks dimensions and endpoints.
func TestLoad_Valid(t *testing.T) {
	in := "3\n4\n0 1 0 4\n0 1 0 0\n3 0 0 0\n"
	m, err := maze.Load(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())
	assert.Equal(t, maze.Coord{Row: 2, Col: 0}, m.Start())
	assert.Equal(t, maze.Coord{Row: 0, Col: 3}, m.Exit())
	k, err := m.At(maze.Coord{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, maze.Obstacle, k)
	assert.Equal(t, 2, m.ObstacleCount())
}

// TestLoad_MissingEndpoints keeps (0,0) when no 3 or 4 is present.
func TestLoad_MissingEndpoints(t *testing.T) {
	m, err := maze.Load(strings.NewReader("2 2\n0 0\n0 0\n"))
	require.NoError(t, err)
	assert.Equal(t, maze.Coord{}, m.Start())
	assert.Equal(t, maze.Coord{}, m.Exit())
}

// TestLoad_Errors covers malformed headers and truncated bodies.
func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "", maze.ErrFormat},
		{"BadRows", "x\n2\n", maze.ErrFormat},
		{"ZeroCols", "2\n0\n", maze.ErrEmptyGrid},
		{"Truncated", "2\n2\n3 0\n0\n", maze.ErrFormat},
		{"BadCell", "1\n2\n3 9\n", maze.ErrFormat},
		{"OverflowingHeader", "1099511627776\n1099511627776\n0 0", maze.ErrFormat},
		{"LargeHeaderTruncated", "100000 100000\n3 0 4\n", maze.ErrFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.Load(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestCodes_RoundTripThroughFromCodes checks Codes reproduces the input grid.
func TestCodes_RoundTripThroughFromCodes(t *testing.T) {
	codes := [][]int{{3, 1}, {0, 4}}
	m := mustMaze(t, codes)
	assert.Equal(t, codes, m.Codes())

	cp := m.Clone()
	require.NoError(t, cp.SetKind(maze.Coord{Row: 1, Col: 0}, maze.Obstacle))
	assert.Equal(t, codes, m.Codes(), "clone must not alias the original")
}

//----------------------------------------------------------------------------//
// Topology and costs
//----------------------------------------------------------------------------//

// TestNeighbors_Order checks the NW, N, NE, W, E, SW, S, SE enumeration.
func TestNeighbors_Order(t *testing.T) {
	m := open5(t)
	got := m.Neighbors(maze.Coord{Row: 2, Col: 2})
	want := []maze.Coord{
		{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3},
		{Row: 2, Col: 1}, {Row: 2, Col: 3},
		{Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3},
	}
	assert.Equal(t, want, got)

	corner := m.Neighbors(maze.Coord{Row: 0, Col: 0})
	assert.Equal(t, []maze.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}, corner)
}

// TestNeighbors_CornerCut forbids a diagonal only when both flanking cells are walls.
func TestNeighbors_CornerCut(t *testing.T) {
	both := mustMaze(t, [][]int{
		{0, 1, 0},
		{1, 3, 0},
		{0, 0, 4},
	})
	nw := maze.Coord{Row: 0, Col: 0}
	assert.NotContains(t, both.Neighbors(maze.Coord{Row: 1, Col: 1}), nw)
	assert.True(t, math.IsInf(both.MoveCost(maze.Coord{Row: 1, Col: 1}, nw), 1))

	one := mustMaze(t, [][]int{
		{0, 1, 0},
		{0, 3, 0},
		{0, 0, 4},
	})
	assert.Contains(t, one.Neighbors(maze.Coord{Row: 1, Col: 1}), nw)
	assert.Equal(t, maze.DiagonalCost, one.MoveCost(maze.Coord{Row: 1, Col: 1}, nw))
}

// TestPathCost covers trivial, diagonal and illegal paths.
func TestPathCost(t *testing.T) {
	m := open5(t)
	assert.Equal(t, 0.0, m.PathCost(nil))
	assert.Equal(t, 0.0, m.PathCost([]maze.Coord{{Row: 1, Col: 1}}))

	diag := []maze.Coord{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}
	assert.Equal(t, 28.0, m.PathCost(diag))

	mixed := []maze.Coord{{0, 0}, {0, 1}, {1, 2}}
	assert.Equal(t, 12.0, m.PathCost(mixed))

	jump := []maze.Coord{{0, 0}, {2, 2}}
	assert.True(t, math.IsInf(m.PathCost(jump), 1))
}

// TestMoveCost_Symmetric compares both directions on every adjacent passable pair.
func TestMoveCost_Symmetric(t *testing.T) {
	m := mustMaze(t, [][]int{
		{3, 0, 1, 0},
		{1, 0, 0, 1},
		{0, 1, 0, 0},
		{0, 0, 1, 4},
	})
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			a := maze.Coord{Row: r, Col: c}
			if k, _ := m.At(a); !k.Passable() {
				continue
			}
			for _, b := range m.Neighbors(a) {
				assert.Equal(t, m.MoveCost(a, b), m.MoveCost(b, a), "%v <-> %v", a, b)
			}
		}
	}
}

// TestHeuristics checks both estimates on known offsets.
func TestHeuristics(t *testing.T) {
	a, b := maze.Coord{Row: 0, Col: 0}, maze.Coord{Row: 4, Col: 4}
	assert.Equal(t, 24.0, maze.ManhattanDistance(a, b))
	assert.Equal(t, 28.0, maze.OctileDistance(a, b))

	c := maze.Coord{Row: 1, Col: 4}
	assert.Equal(t, 15.0, maze.ManhattanDistance(a, c))
	assert.Equal(t, 22.0, maze.OctileDistance(a, c))
	assert.Equal(t, 0.0, maze.OctileDistance(c, c))
}

// TestReachable separates two halves with a solid wall.
func TestReachable(t *testing.T) {
	walled := mustMaze(t, [][]int{
		{3, 1, 0},
		{0, 1, 0},
		{0, 1, 4},
	})
	assert.False(t, walled.Solvable())
	assert.True(t, walled.Reachable(maze.Coord{Row: 0, Col: 2}, walled.Exit()))
	assert.False(t, walled.Reachable(maze.Coord{Row: -1, Col: 0}, walled.Exit()))
	assert.True(t, open5(t).Solvable())
}

// TestComponents splits passable cells into regions, honouring the corner rule.
func TestComponents(t *testing.T) {
	walled := mustMaze(t, [][]int{
		{3, 1, 0},
		{0, 1, 0},
		{0, 1, 4},
	})
	c := func(r, col int) maze.Coord { return maze.Coord{Row: r, Col: col} }
	assert.Equal(t, [][]maze.Coord{
		{c(0, 0), c(1, 0), c(2, 0)},
		{c(0, 2), c(1, 2), c(2, 2)},
	}, walled.Components())

	pinched := mustMaze(t, [][]int{{3, 1}, {1, 4}})
	assert.Len(t, pinched.Components(), 2)

	comps := open5(t).Components()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 25)
}

//----------------------------------------------------------------------------//
// Relocation
//----------------------------------------------------------------------------//

// TestRelocate_Interior rejects non-border targets and leaves the grid untouched.
func TestRelocate_Interior(t *testing.T) {
	m := open5(t)
	before := m.Codes()

	assert.ErrorIs(t, m.RelocateStart(maze.Coord{Row: 2, Col: 2}), maze.ErrInvalidPosition)
	assert.ErrorIs(t, m.RelocateExit(maze.Coord{Row: 9, Col: 0}), maze.ErrInvalidPosition)
	assert.ErrorIs(t, m.RelocateBoth(maze.Coord{Row: 0, Col: 1}, maze.Coord{Row: 1, Col: 1}), maze.ErrInvalidPosition)
	assert.ErrorIs(t, m.RelocateBoth(maze.Coord{Row: 0, Col: 1}, maze.Coord{Row: 0, Col: 1}), maze.ErrInvalidPosition)
	assert.ErrorIs(t, m.RelocateStart(m.Exit()), maze.ErrInvalidPosition)

	assert.Equal(t, before, m.Codes())
	assert.Equal(t, maze.Coord{}, m.Start())
}

// TestRelocateStart_SwapsPreviousKind moves Start onto an obstacle.
func TestRelocateStart_SwapsPreviousKind(t *testing.T) {
	m := mustMaze(t, [][]int{
		{3, 0, 1},
		{0, 0, 0},
		{0, 0, 4},
	})
	require.NoError(t, m.RelocateStart(maze.Coord{Row: 0, Col: 2}))

	assert.Equal(t, maze.Coord{Row: 0, Col: 2}, m.Start())
	assert.Equal(t, [][]int{{1, 0, 3}, {0, 0, 0}, {0, 0, 4}}, m.Codes())
}

// TestRelocateExit moves Exit along the border.
func TestRelocateExit(t *testing.T) {
	m := open5(t)
	require.NoError(t, m.RelocateExit(maze.Coord{Row: 4, Col: 0}))
	assert.Equal(t, maze.Coord{Row: 4, Col: 0}, m.Exit())
	k, _ := m.At(maze.Coord{Row: 4, Col: 4})
	assert.Equal(t, maze.Free, k)
}

// TestRelocateBoth frees both vacated cells.
func TestRelocateBoth(t *testing.T) {
	m := open5(t)
	require.NoError(t, m.RelocateBoth(maze.Coord{Row: 4, Col: 4}, maze.Coord{Row: 0, Col: 0}))
	assert.Equal(t, maze.Coord{Row: 4, Col: 4}, m.Start())
	assert.Equal(t, maze.Coord{Row: 0, Col: 0}, m.Exit())

	require.NoError(t, m.RelocateBoth(maze.Coord{Row: 0, Col: 2}, maze.Coord{Row: 2, Col: 4}))
	codes := m.Codes()
	assert.Equal(t, 0, codes[4][4])
	assert.Equal(t, 0, codes[0][0])
	assert.Equal(t, 3, codes[0][2])
	assert.Equal(t, 4, codes[2][4])
}

// TestSetKind refuses endpoints and non-free/obstacle kinds.
func TestSetKind(t *testing.T) {
	m := open5(t)
	assert.ErrorIs(t, m.SetKind(m.Start(), maze.Obstacle), maze.ErrInvalidPosition)
	assert.ErrorIs(t, m.SetKind(maze.Coord{Row: 1, Col: 1}, maze.Exit), maze.ErrInvalidPosition)
	assert.ErrorIs(t, m.SetKind(maze.Coord{Row: 7, Col: 1}, maze.Free), maze.ErrOutOfRange)
	require.NoError(t, m.SetKind(maze.Coord{Row: 1, Col: 1}, maze.Obstacle))
	assert.Equal(t, 1, m.ObstacleCount())
}
