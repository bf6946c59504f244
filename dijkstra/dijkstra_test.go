package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/dijkstra"
	"github.com/katalvlaran/lvmaze/maze"
)

func detour(t *testing.T) *maze.Maze {
	t.Helper()
	m, err := maze.FromCodes([][]int{
		{3, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 4},
	})
	require.NoError(t, err)
	return m
}

// TestDijkstra_Errors validates input checks in order.
func TestDijkstra_Errors(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, maze.Coord{})
	assert.ErrorIs(t, err, dijkstra.ErrNilMaze)

	m := detour(t)
	_, err = dijkstra.Dijkstra(m, maze.Coord{}, dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

	_, err = dijkstra.Dijkstra(m, maze.Coord{Row: 5, Col: 0})
	assert.ErrorIs(t, err, dijkstra.ErrSourceRange)
	assert.ErrorIs(t, err, maze.ErrOutOfRange)
}

// TestShortestCost_Detour forces the route through the single gap at (2,0).
func TestShortestCost_Detour(t *testing.T) {
	m := detour(t)
	cost, ok, err := dijkstra.ShortestCost(m, m.Start(), m.Exit())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 34.0, cost)

	res, err := dijkstra.Dijkstra(m, m.Start())
	require.NoError(t, err)
	path, err := res.PathTo(m.Exit())
	require.NoError(t, err)
	assert.Contains(t, path, maze.Coord{Row: 2, Col: 0})
	assert.Equal(t, cost, m.PathCost(path))
	assert.False(t, res.Reached(maze.Coord{Row: 2, Col: 2}), "obstacle cells are never reached")
}

// TestShortestCost_Unreachable reports false and +Inf.
func TestShortestCost_Unreachable(t *testing.T) {
	m, err := maze.FromCodes([][]int{{3, 1, 4}})
	require.NoError(t, err)
	cost, ok, err := dijkstra.ShortestCost(m, m.Start(), m.Exit())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, math.IsInf(cost, 1))
}

// TestWithMaxDistance leaves far cells unreached.
func TestWithMaxDistance(t *testing.T) {
	m := detour(t)
	res, err := dijkstra.Dijkstra(m, m.Start(), dijkstra.WithMaxDistance(10))
	require.NoError(t, err)
	assert.True(t, res.Reached(maze.Coord{Row: 2, Col: 0}))
	assert.False(t, res.Reached(maze.Coord{Row: 3, Col: 1}))
	_, err = res.PathTo(m.Exit())
	assert.Error(t, err)
}
