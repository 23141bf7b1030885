package core_test

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/hashmap"
)

// ExampleGraph_RemoveNode shows that removing a node takes its edges with it.
func ExampleGraph_RemoveNode() {
	g := core.NewGraph(core.WithLabelHasher[string](hashmap.StringHasher))
	for _, l := range []string{"Library", "Union", "Gym"} {
		_, _ = g.InsertNode(l)
	}
	_ = g.InsertEdge("Library", "Union", 120)
	_ = g.InsertEdge("Union", "Gym", 300)

	g.RemoveNode("Union")

	fmt.Println(g.Nodes(), g.EdgeCount())
	// Output: [Library Gym] 0
}
