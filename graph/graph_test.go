package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/graph"
)

// square is 4 nodes: 0-1 (2), 0-2 (5), 1-3 (1.5), 2-3 (4); 0-3 and 1-2 absent.
const square = "4\n2\n5\n-1\n-1\n1.5\n4\n"

// TestLoad_Square parses a file and checks queries.
func TestLoad_Square(t *testing.T) {
	g, err := graph.Load(strings.NewReader(square))
	require.NoError(t, err)

	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 4, g.EdgeCount())

	nb, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, nb)
	nb, err = g.Neighbors(3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, nb)

	w, err := g.Weight(3, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.5, w)

	ok, err := g.HasEdge(0, 3)
	require.NoError(t, err)
	assert.False(t, ok)
	_, err = g.Weight(0, 3)
	assert.ErrorIs(t, err, graph.ErrNoEdge)

	d, err := g.Distance(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
	d, err = g.Distance(1, 2)
	require.NoError(t, err)
	assert.Equal(t, graph.NoEdge, d)
}

// TestLoad_Errors covers every malformed input.
func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"Empty":      "",
		"BadCount":   "four\n",
		"ZeroNodes":  "0\n",
		"Truncated":  "3\n1\n2\n",
		"BadNumber":  "3\n1\nabc\n2\n",
		"BlankValue": "3\n1\n\n2\n",
		"HugeCount":  "4000000000\n1\n",
		"LargeTrunc": "200000\n1\n2\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := graph.Load(strings.NewReader(in))
			assert.ErrorIs(t, err, graph.ErrFormat)
		})
	}
}

// TestSingleNode accepts a one-node graph with no distance lines.
func TestSingleNode(t *testing.T) {
	g, err := graph.Load(strings.NewReader("1\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, g.Order())
	assert.Zero(t, g.EdgeCount())
}

// TestSetWeight keeps the edge count in sync.
func TestSetWeight(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.SetWeight(0, 1, 3))
	require.NoError(t, g.SetWeight(1, 0, 4))
	assert.Equal(t, 1, g.EdgeCount())
	require.NoError(t, g.SetWeight(0, 1, graph.NoEdge))
	assert.Zero(t, g.EdgeCount())

	assert.ErrorIs(t, g.SetWeight(1, 1, 2), graph.ErrOutOfRange)
	assert.ErrorIs(t, g.SetWeight(0, 3, 2), graph.ErrOutOfRange)
	_, err = g.Neighbors(-1)
	assert.ErrorIs(t, err, graph.ErrOutOfRange)
}

// TestPathCost sums edges and rejects gaps.
func TestPathCost(t *testing.T) {
	g, err := graph.Load(strings.NewReader(square))
	require.NoError(t, err)

	c, err := g.PathCost([]int{0, 1, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, 7.5, c)

	c, err = g.PathCost([]int{2})
	require.NoError(t, err)
	assert.Zero(t, c)

	_, err = g.PathCost([]int{0, 3})
	assert.ErrorIs(t, err, graph.ErrNoEdge)
}

// TestCapture copies its inputs.
func TestCapture(t *testing.T) {
	gen := []int{0, 1}
	s := graph.Capture(gen, nil)
	gen[0] = 9
	assert.Equal(t, []int{0, 1}, s.Generated)
	assert.Empty(t, s.Inspected)
}
