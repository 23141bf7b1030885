// Package dijkstra computes single-source, single-target shortest paths over
// a core.Graph with non-negative float64 edge weights.
//
// Overview:
//
//   - Engine.ComputeShortestPath runs Dijkstra's algorithm from start until
//     end is settled (popped from the min-heap) or the frontier is empty.
//   - ShortestPathData returns the labels along the path, start and end
//     inclusive. ShortestPathCost returns the summed weight.
//   - start == end short-circuits to ([start], 0) without a search.
//
// Working set:
//
//   - Each query owns a best-cost map and a parent map, both
//     hashmap.Map[core.NodeID, …], plus a container/heap priority queue.
//     Nothing is shared between queries or kept after one returns.
//   - The start node is bound with the strict hashmap Put. Relaxation
//     rebinds with hashmap Upsert, and only when the candidate cost is
//     strictly lower than the recorded one.
//   - Decrease-key is lazy: a cheaper entry is pushed and the stale one is
//     skipped when popped.
//
// Options:
//
//   - WithMaxDistance(d): nodes whose cost exceeds d are never settled; a
//     target beyond d yields ErrNoPath.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable.
//   - WithWorkingCapacity(n): initial bucket count of the per-query maps.
//   - WithLogger(l): debug-level query tracing via slog.
//
// Errors:
//
//   - ErrNilGraph (kind errkind.ErrInvalidArgument): New(nil).
//   - ErrNodeNotFound (kind errkind.ErrNotFound): start or end not in graph.
//   - ErrNoPath (kind errkind.ErrNotFound): end unreachable from start.
//   - ErrNegativeWeight (kind errkind.ErrInvalidArgument): a negative edge
//     weight was met during relaxation.
//
// Callers that only need "path or no path" test errors.Is(err,
// errkind.ErrNotFound); both precondition and reachability failures match.
//
// Complexity:
//
//   - Time:  O((V + E) log V), with O(1) amortized map operations.
//   - Space: O(V + E) for the maps and the lazy heap.
//
// Notes on implementation choices:
//
//   - Negative weights are not pre-scanned. The store is generic and a full
//     O(E) scan per query would dominate short campus walks; relaxation
//     reports the first negative edge it meets instead.
//   - An edge with weight ≥ InfEdgeThreshold is an impassable "wall" and is
//     skipped without being relaxed.
//   - Exploration stops once the cheapest frontier cost exceeds MaxDistance.
//   - The search stops as soon as end is popped. Nodes still on the heap
//     are never settled, so a query costs only as much as the target needs.
//   - Costs accumulate as plain float64 additions along the path, in travel
//     order. No rounding or epsilon comparison is applied.
//   - The path is resolved to labels before ComputeShortestPath returns, so
//     a Result never refers to arena handles.
//
// AI-HINT (package):
//
//   - Test errors.Is(err, errkind.ErrNotFound) for "no route"; it covers
//     both an unknown label and an unreachable target.
//   - Reuse one Engine across queries; it holds no per-query state.
//
// Thread safety:
//
//   - Queries only read the graph, so several may run on one Engine at
//     once. Mutating the graph during a query is undefined.
package dijkstra
