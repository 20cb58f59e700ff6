package core_test

import (
	"fmt"

	"github.com/katalvlaran/unitgraph/core"
)

// ExampleGraph_WithoutVertex removes the hub of a 4-vertex star.
func ExampleGraph_WithoutVertex() {
	g := core.MustGraph(4, []core.Edge{{0, 1}, {0, 2}, {0, 3}})
	sub, orig, _ := g.WithoutVertex(0)
	fmt.Println(g, sub, orig)
	// Output: Graph(V=4, E=3) Graph(V=3, E=0) [1 2 3]
}
