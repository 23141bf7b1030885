// Package core provides Graph, the in-memory store of nodes and directed,
// weighted edges that the shortest-path engine runs on.
//
// Representation:
//
//   - Nodes live in an arena and are addressed by stable NodeID handles.
//     NodeID 0 is reserved and never names a node; slots freed by
//     RemoveNode are reused by later inserts.
//   - A hashmap.Map[L, NodeID] indexes labels to handles.
//   - Each node owns its outgoing edges as a slice of (destination handle,
//     weight) pairs. Edges never hold pointers to other nodes.
//
// Contract:
//
//   - Labels are unique. InsertNode is idempotent.
//   - At most one edge exists per ordered (source, destination) pair;
//     InsertEdge on an existing pair replaces the weight.
//   - InsertEdge requires both endpoints to exist unless the graph was
//     built WithAutoCreate.
//   - RemoveNode drops every edge that touches the node, in either
//     direction.
//   - Weights are float64 and expected to be non-negative. The store does
//     not check them; dijkstra reports a negative weight when it meets one.
//
// Core methods:
//
//	InsertNode(l L) (bool, error)         // O(1) amortized
//	RemoveNode(l L) bool                  // O(V+E)
//	ContainsNode(l L) bool                // O(1)
//	Nodes() []L                           // O(V), handle order
//	InsertEdge(src, dst L, w float64) error // O(out-degree)
//	RemoveEdge(src, dst L) error          // O(out-degree)
//	Edge(src, dst L) (float64, error)     // O(out-degree)
//	ID(l L) (NodeID, bool), Label(id NodeID) (L, bool)
//	VisitOut(id NodeID, fn func(NodeID, float64) bool) error
//
// Errors:
//
//	ErrNullLabel     – zero-value label (kind errkind.ErrNullKey)
//	ErrNodeNotFound  – missing node (kind errkind.ErrNotFound)
//	ErrEdgeNotFound  – missing edge (kind errkind.ErrNotFound)
//
// Notes on implementation choices:
//
//   - RemoveNode scans every live out-list to drop incoming edges. There is
//     no reverse index; loads are rare and queries only walk out-edges.
//   - Freed slots keep their index on a free list, so NodeIDs stay dense and
//     the arena never shrinks.
//   - VisitOut hands the engine handles, not labels, so the hot loop avoids
//     hashing entirely.
//
// AI-HINT (package):
//
//   - Handles are only meaningful for the Graph that issued them, and only
//     until the node is removed. Resolve to labels before mutating.
//
// Concurrency:
//
//   - A single sync.RWMutex guards the topology. Readers (queries) may run
//     in parallel; a mutation while a query is running leaves that query's
//     result undefined, so callers serialize loads against queries.
package core
