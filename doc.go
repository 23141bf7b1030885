// Package campusnav finds the fastest walking routes between campus
// locations.
//
// The module is organised in layers, each usable on its own:
//
//	errkind/      error kinds shared by every package (errors.Is targets)
//	hashmap/      generic chained hash map with strict Put and Upsert
//	core/         directed weighted graph over an arena of integer handles
//	dijkstra/     single-pair shortest path engine over core.Graph
//	campus/       DOT loader and navigation queries
//	render/       HTML fragments for the navigation page
//	config/       YAML runtime settings
//	internal/web  HTTP front end
//	cmd/campusnav command-line entry point
//
// Quick example:
//
//	g := core.NewGraph(core.WithAutoCreate[string]())
//	_ = g.InsertEdge("Library", "Union", 120)
//	e, _ := dijkstra.New(g)
//	path, _ := e.ShortestPathData("Library", "Union")
package campusnav
