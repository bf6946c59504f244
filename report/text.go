// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmaze/astar"
	"github.com/katalvlaran/lvmaze/graph"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/navigate"
)

// SearchReport bundles one A* run with the grid it ran on.
type SearchReport struct {
	Instance string
	Maze     *maze.Maze
	Result   *astar.Result
	Symbols  Symbols
}

// GraphReport bundles one BFS/DFS run with the graph it ran on.
// Start, Goal and Path hold 0-based indices.
type GraphReport struct {
	Graph      *graph.Matrix
	Start      int
	Goal       int
	Algorithm  string
	Found      bool
	Path       []int
	Cost       float64
	Logs       []graph.Snapshot
	Executions int // 0 omits the line
}

// WriteMaze writes dimensions, endpoints and the bare grid.
func WriteMaze(w io.Writer, m *maze.Maze, sym Symbols) error {
	return WriteOverlay(w, m, Overlay{}, sym)
}

// WriteOverlay is WriteMaze with ov drawn over the grid.
func WriteOverlay(w io.Writer, m *maze.Maze, ov Overlay, sym Symbols) error {
	if m == nil {
		return ErrNilInput
	}
	var b strings.Builder
	writeHeader(&b, m)
	writeGrid(&b, m, ov, sym)
	return flush(w, &b)
}

// WriteSearch writes the full report of one A* run.
func WriteSearch(w io.Writer, rep SearchReport) error {
	if rep.Maze == nil || rep.Result == nil {
		return ErrNilInput
	}
	res := rep.Result
	var b strings.Builder
	if rep.Instance != "" {
		fmt.Fprintf(&b, "Instance: %s\n", rep.Instance)
	}
	fmt.Fprintf(&b, "Heuristic: %s\n", res.Heuristic)
	writeHeader(&b, rep.Maze)
	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "Generated nodes (%d): %s\n", res.Generated, joinCoords(res.GeneratedOrder, ", "))
	fmt.Fprintf(&b, "Inspected nodes (%d): %s\n", res.Inspected, joinCoords(res.InspectedOrder, ", "))
	b.WriteString(separator + "\n")
	writeGrid(&b, rep.Maze, Overlay{Path: res.Path}, rep.Symbols)
	b.WriteString(separator + "\n")
	writeOutcome(&b, "Path", res.Found, res.Path, res.Cost)
	return flush(w, &b)
}

// WriteIteration writes one navigation round against the grid m as it was
// when the round was planned. trail is the trajectory walked so far.
func WriteIteration(w io.Writer, it navigate.Iteration, m *maze.Maze, trail []maze.Coord, sym Symbols) error {
	if m == nil {
		return ErrNilInput
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Iteration %d\n", it.Index)
	fmt.Fprintf(&b, "Position: %s -> %s\n", it.From, it.Position)
	fmt.Fprintf(&b, "Start: %s\n", m.Start())
	fmt.Fprintf(&b, "Exit: %s\n", m.Exit())
	fmt.Fprintf(&b, "Obstacles: %d%%\n", m.ObstaclePercent())
	fmt.Fprintf(&b, "Generated nodes (%d): %s\n", it.Generated, joinCoords(it.GeneratedOrder, ", "))
	fmt.Fprintf(&b, "Inspected nodes (%d): %s\n", it.Inspected, joinCoords(it.InspectedOrder, ", "))
	if it.Found {
		fmt.Fprintf(&b, "Planned: %s\n", joinCoords(it.Planned, " -> "))
	} else {
		b.WriteString("Planned: no path\n")
	}
	fmt.Fprintf(&b, "Consecutive failures: %d\n", it.Failures)
	writeGrid(&b, m, Overlay{Agent: it.Position, HasAgent: true, Path: it.Planned, Trail: trail}, sym)
	b.WriteString(separator + "\n")
	return flush(w, &b)
}

// WriteSummary writes the outcome of a navigation run.
func WriteSummary(w io.Writer, res *navigate.Result) error {
	if res == nil {
		return ErrNilInput
	}
	var b strings.Builder
	if res.Success {
		b.WriteString("Result: exit reached\n")
	} else {
		fmt.Fprintf(&b, "Result: stopped (%s)\n", res.Reason)
	}
	fmt.Fprintf(&b, "Iterations: %d\n", res.Iterations)
	fmt.Fprintf(&b, "Steps: %d\n", res.Steps)
	fmt.Fprintf(&b, "Generated nodes (total): %d\n", res.Generated)
	fmt.Fprintf(&b, "Inspected nodes (total): %d\n", res.Inspected)
	fmt.Fprintf(&b, "Consecutive failures: %d\n", res.ConsecutiveFailures)
	fmt.Fprintf(&b, "Trajectory: %s\n", joinCoords(res.Trajectory, " -> "))
	fmt.Fprintf(&b, "Cost: %s\n", formatCost(res.Cost))
	return flush(w, &b)
}

// WriteGraphSearch writes a BFS/DFS report with 1-based node indices.
func WriteGraphSearch(w io.Writer, rep GraphReport) error {
	if rep.Graph == nil {
		return ErrNilInput
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Nodes: %d\n", rep.Graph.Order())
	fmt.Fprintf(&b, "Edges: %d\n", rep.Graph.EdgeCount())
	fmt.Fprintf(&b, "Origin: %d\n", rep.Start+1)
	fmt.Fprintf(&b, "Destination: %d\n", rep.Goal+1)
	fmt.Fprintf(&b, "Algorithm: %s\n", rep.Algorithm)
	if rep.Executions > 0 {
		fmt.Fprintf(&b, "Executions: %d\n", rep.Executions)
	}
	b.WriteString(separator + "\n\n")
	for i, s := range rep.Logs {
		fmt.Fprintf(&b, "Iteration %d\n", i+1)
		fmt.Fprintf(&b, "Generated nodes: %s\n", joinNodes(s.Generated, ", "))
		fmt.Fprintf(&b, "Inspected nodes: %s\n", joinNodes(s.Inspected, ", "))
		b.WriteString(separator + "\n")
	}
	b.WriteString("\n")
	if rep.Found {
		fmt.Fprintf(&b, "Path: %s\n", joinNodes(rep.Path, " - "))
		fmt.Fprintf(&b, "Cost: %.2f\n", rep.Cost)
	} else {
		b.WriteString("No path found\n")
	}
	return flush(w, &b)
}

// WriteMatrix writes the adjacency matrix with 1-based headers.
func WriteMatrix(w io.Writer, g *graph.Matrix) error {
	if g == nil {
		return ErrNilInput
	}
	n := g.Order()
	var b strings.Builder
	fmt.Fprintf(&b, "Adjacency matrix (%dx%d):\n", n, n)
	b.WriteString("    ")
	for j := 0; j < n; j++ {
		fmt.Fprintf(&b, "%8d", j+1)
	}
	b.WriteString("\n    ")
	b.WriteString(strings.Repeat("--------", n))
	b.WriteString("\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%2d |", i+1)
		for j := 0; j < n; j++ {
			d, err := g.Distance(i, j)
			if err != nil {
				return err
			}
			if d == graph.NoEdge {
				fmt.Fprintf(&b, "%8s", "INF")
			} else {
				fmt.Fprintf(&b, "%8.3f", d)
			}
		}
		b.WriteString("\n")
	}
	return flush(w, &b)
}

func writeHeader(b *strings.Builder, m *maze.Maze) {
	fmt.Fprintf(b, "Rows: %d\n", m.Rows())
	fmt.Fprintf(b, "Cols: %d\n", m.Cols())
	fmt.Fprintf(b, "Start: %s\n", m.Start())
	fmt.Fprintf(b, "Exit: %s\n", m.Exit())
}

// writeGrid prints one line per row, cells separated by a single space.
func writeGrid(b *strings.Builder, m *maze.Maze, ov Overlay, sym Symbols) {
	marks := ov.Marks(m.Rows(), m.Cols())
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			k, _ := m.At(maze.Coord{Row: r, Col: c})
			b.WriteRune(sym.Cell(k, marks[r][c]))
		}
		b.WriteByte('\n')
	}
}

func writeOutcome(b *strings.Builder, label string, found bool, path []maze.Coord, cost float64) {
	if !found {
		b.WriteString("No path found\n")
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, joinCoords(path, " -> "))
	fmt.Fprintf(b, "Cost: %s\n", formatCost(cost))
}

// formatCost prints two decimals, or "inf" for a broken trajectory.
func formatCost(c float64) string {
	if math.IsInf(c, 1) {
		return "inf"
	}
	return strconv.FormatFloat(c, 'f', 2, 64)
}

func joinCoords(cs []maze.Coord, sep string) string {
	if len(cs) == 0 {
		return "-"
	}
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, sep)
}

// joinNodes prints 0-based indices as 1-based.
func joinNodes(ns []int, sep string) string {
	if len(ns) == 0 {
		return "-"
	}
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n + 1)
	}
	return strings.Join(parts, sep)
}

func flush(w io.Writer, b *strings.Builder) error {
	_, err := io.WriteString(w, b.String())
	return err
}
