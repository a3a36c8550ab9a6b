package core_test

import (
	"fmt"

	"github.com/katalvlaran/preflow/core"
)

// ExampleNewNetwork builds a small network and inspects the adjacency index.
func ExampleNewNetwork() {
	s := core.NewSpec(3)
	s.AddEdge(0, 1, 4)
	s.AddEdge(1, 2, 2)

	net, err := core.NewNetwork(s)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(net)
	fmt.Println("incident(1):", net.Adjacency().Incident(1))
	fmt.Println("source height:", net.Snapshot().Nodes[net.Source()].Height)
	// Output:
	// network(n=3, m=2, s=0, t=2)
	// incident(1): [0 1]
	// source height: 3
}
