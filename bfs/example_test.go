package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/preflow/bfs"
	"github.com/katalvlaran/preflow/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 nodes,
// node i*3+j for row i, column j).
func ExampleBFS_gridTraversal() {
	s := core.NewSpec(9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				s.AddEdge(i*3+j, i*3+j+1, 1)
			}
			if i+1 < 3 {
				s.AddEdge(i*3+j, (i+1)*3+j, 1)
			}
		}
	}
	net, _ := core.NewNetwork(s)

	res, err := bfs.BFS(net, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// [0 1 2 1 2 3 2 3 4]
}

// ExampleBFS_residualFilter walks only edges with spare capacity away from the start.
func ExampleBFS_residualFilter() {
	s := core.NewSpec(4)
	s.AddEdge(0, 1, 0) // no capacity: never traversable
	s.AddEdge(0, 2, 3)
	s.AddEdge(2, 3, 1)
	net, _ := core.NewNetwork(s)

	res, _ := bfs.BFS(net, 0, bfs.WithFilter(func(curr, _, e int) bool {
		ed, unlock := net.LockEdge(e)
		defer unlock()
		return ed.Residual(curr) > 0
	}))
	path, _ := res.PathTo(3)
	fmt.Println(res.Order, path)
	// Output:
	// [0 2 3] [0 2 3]
}
