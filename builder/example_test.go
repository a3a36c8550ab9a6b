package builder_test

import (
	"fmt"

	"github.com/katalvlaran/preflow/builder"
)

// ExampleLayered builds a two-layer network of width two between source and sink.
func ExampleLayered() {
	spec, err := builder.BuildSpec(6,
		[]builder.BuilderOption{builder.WithConstantCapacity(5)},
		builder.Layered(2, 2),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range spec.Edges {
		fmt.Printf("%d→%d:%d ", e.U, e.V, e.Capacity)
	}
	fmt.Println()
	// Output:
	// 0→1:5 0→2:5 1→3:5 1→4:5 2→3:5 2→4:5 3→5:5 4→5:5
}

// ExamplePath shows the default unit capacities.
func ExamplePath() {
	spec, _ := builder.BuildSpec(3, nil, builder.Path(3))
	fmt.Println(len(spec.Edges), spec.Edges[0], spec.Edges[1])
	// Output:
	// 2 {0 1 1} {1 2 1}
}
