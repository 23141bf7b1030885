package dijkstra_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/errkind"
	"github.com/katalvlaran/campusnav/hashmap"
)

// ExampleEngine_ShortestPathData walks a three-building campus where the
// direct path is slower than the detour.
func ExampleEngine_ShortestPathData() {
	g := core.NewGraph(core.WithLabelHasher[string](hashmap.StringHasher), core.WithAutoCreate[string]())
	_ = g.InsertEdge("Library", "Gym", 600)
	_ = g.InsertEdge("Library", "Union", 120)
	_ = g.InsertEdge("Union", "Gym", 240)

	e, err := dijkstra.New(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := e.ShortestPathData("Library", "Gym")
	cost, _ := e.ShortestPathCost("Library", "Gym")
	fmt.Println(path, cost)
	// Output: [Library Union Gym] 360
}

// ExampleEngine_ShortestPathCost_noPath shows the NotFound kind on an unreachable target.
func ExampleEngine_ShortestPathCost_noPath() {
	g := core.NewGraph(core.WithAutoCreate[string]())
	_ = g.InsertEdge("A", "B", 1)

	e, _ := dijkstra.New(g)
	_, err := e.ShortestPathCost("B", "A")
	fmt.Println(errors.Is(err, dijkstra.ErrNoPath), errors.Is(err, errkind.ErrNotFound))
	// Output: true true
}
