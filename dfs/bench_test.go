package dfs_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/dfs"
	"github.com/katalvlaran/lvmaze/graph"
)

// BenchmarkSearch_Chain measures DFS over a 200-node chain.
func BenchmarkSearch_Chain(b *testing.B) {
	const n = 200
	g, _ := graph.New(n)
	for i := 0; i+1 < n; i++ {
		_ = g.SetWeight(i, i+1, 1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Search(g, 0, n-1)
	}
}
