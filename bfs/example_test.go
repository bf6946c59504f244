package bfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/graph"
	"github.com/katalvlaran/lvmaze/rng"
)

// ExampleMultistart searches a 4-node chain; the start has a single child,
// so best and worst coincide and the first execution succeeds.
func ExampleMultistart() {
	g, _ := graph.Load(strings.NewReader("4\n1.5\n-1\n-1\n1.5\n-1\n1.5\n"))
	res, err := bfs.Multistart(g, 0, 3, bfs.WithSource(rng.New(42)))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("path:", res.Path)
	fmt.Printf("cost: %.2f\n", res.Cost)
	fmt.Println("executions:", res.Executions)

	// Output:
	// path: [0 1 2 3]
	// cost: 4.50
	// executions: 1
}
