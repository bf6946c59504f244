package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/graph"
	"github.com/katalvlaran/lvmaze/rng"
)

// grid builds a w×w lattice graph with unit weights.
func grid(w int) *graph.Matrix {
	g, _ := graph.New(w * w)
	for r := 0; r < w; r++ {
		for c := 0; c < w; c++ {
			v := r*w + c
			if c+1 < w {
				_ = g.SetWeight(v, v+1, 1)
			}
			if r+1 < w {
				_ = g.SetWeight(v, v+w, 1)
			}
		}
	}
	return g
}

// BenchmarkMultistart_Lattice measures multistart BFS corner to corner.
func BenchmarkMultistart_Lattice(b *testing.B) {
	g := grid(15)
	src := rng.New(7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Multistart(g, 0, g.Order()-1, bfs.WithSource(src))
	}
}

// BenchmarkBFS_Lattice measures plain BFS on the same lattice.
func BenchmarkBFS_Lattice(b *testing.B) {
	g := grid(15)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0, g.Order()-1)
	}
}
