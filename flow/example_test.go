package flow_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/flow"
)

// ExampleEdmondsKarp computes the flow of a four-node network with a cross link.
func ExampleEdmondsKarp() {
	s := core.NewSpec(4)
	s.AddEdge(0, 1, 10)
	s.AddEdge(0, 2, 5)
	s.AddEdge(1, 2, 3)
	s.AddEdge(1, 3, 4)
	s.AddEdge(2, 3, 9)

	f, err := flow.EdmondsKarp(context.Background(), s, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(f)
	// Output: 12
}

// ExampleDinic shows that parallel edges add up.
func ExampleDinic() {
	s := core.NewSpec(3)
	s.AddEdge(0, 1, 2)
	s.AddEdge(0, 1, 3)
	s.AddEdge(1, 2, 10)

	f, _ := flow.Dinic(context.Background(), s, &flow.Options{LevelRebuildInterval: 1})
	fmt.Println(f)
	// Output: 5
}

// ExampleFordFulkerson shows that an edge may carry flow against its listed direction.
func ExampleFordFulkerson() {
	s := core.NewSpec(3)
	s.AddEdge(1, 0, 6)
	s.AddEdge(2, 1, 4)

	f, _ := flow.FordFulkerson(context.Background(), s, nil)
	fmt.Println(f)
	// Output: 4
}
