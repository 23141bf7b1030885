// File: methods_edges.go
// Role: Edge lifecycle & queries, plus VisitOut for traversal.
// Determinism:
//   - VisitOut yields edges in insertion order; a weight replacement keeps
//     the original position.
// Concurrency:
//   - Mutations take g.mu; queries and VisitOut take g.mu.RLock.
// AI-HINT (file):
//   - InsertEdge never duplicates an ordered pair; it replaces the weight.
//   - RemoveEdge and Edge return ErrEdgeNotFound for a missing edge (no silent ignore).
//   - VisitOut must not mutate the graph from inside fn (the read lock is held).

package core

// InsertEdge adds the directed edge src→dst with weight w, or replaces the
// weight if that ordered pair already has an edge.
//
// Both endpoints must exist. With WithAutoCreate, missing endpoints are
// inserted first.
//
// Errors:
//   - ErrNodeNotFound: an endpoint is absent (and auto-create is off).
//   - ErrNullLabel: auto-create was asked to insert a zero label.
//
// Complexity: O(out-degree of src).
func (g *Graph[L]) InsertEdge(src, dst L, w float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	from, to, err := g.endpointsLocked(src, dst)
	if err != nil {
		return err
	}

	n := &g.nodes[from]
	for i := range n.out {
		if n.out[i].To == to {
			n.out[i].Weight = w
			return nil
		}
	}
	n.out = append(n.out, Edge{To: to, Weight: w})
	g.edges++

	return nil
}

// endpointsLocked resolves (or, with autoCreate, inserts) both endpoints.
func (g *Graph[L]) endpointsLocked(src, dst L) (NodeID, NodeID, error) {
	if g.autoCreate {
		from, _, err := g.insertNodeLocked(src)
		if err != nil {
			return 0, 0, err
		}
		to, _, err := g.insertNodeLocked(dst)
		if err != nil {
			return 0, 0, err
		}
		return from, to, nil
	}

	from, ok := g.index.Lookup(src)
	if !ok {
		return 0, 0, ErrNodeNotFound
	}
	to, ok := g.index.Lookup(dst)
	if !ok {
		return 0, 0, ErrNodeNotFound
	}

	return from, to, nil
}

// RemoveEdge deletes the edge src→dst.
//
// Errors:
//   - ErrEdgeNotFound: no such edge (including absent endpoints).
func (g *Graph[L]) RemoveEdge(src, dst L) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, i, ok := g.findEdgeLocked(src, dst)
	if !ok {
		return ErrEdgeNotFound
	}
	n.out = append(n.out[:i], n.out[i+1:]...)
	g.edges--

	return nil
}

// Edge returns the weight of src→dst.
//
// Errors:
//   - ErrEdgeNotFound: no such edge (including absent endpoints).
func (g *Graph[L]) Edge(src, dst L) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, i, ok := g.findEdgeLocked(src, dst)
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return n.out[i].Weight, nil
}

// ContainsEdge reports whether src→dst exists.
func (g *Graph[L]) ContainsEdge(src, dst L) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, _, ok := g.findEdgeLocked(src, dst)

	return ok
}

// findEdgeLocked locates src→dst. Caller holds g.mu (read or write).
func (g *Graph[L]) findEdgeLocked(src, dst L) (*node[L], int, bool) {
	from, ok := g.index.Lookup(src)
	if !ok {
		return nil, 0, false
	}
	to, ok := g.index.Lookup(dst)
	if !ok {
		return nil, 0, false
	}
	n := &g.nodes[from]
	for i := range n.out {
		if n.out[i].To == to {
			return n, i, true
		}
	}

	return nil, 0, false
}

// EdgeCount returns the number of directed edges.
func (g *Graph[L]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// VisitOut calls fn for every edge leaving id, stopping early when fn
// returns false. fn runs under the read lock and must not mutate g.
//
// Errors:
//   - ErrNodeNotFound: id does not name a live node.
//
// Complexity: O(out-degree), no allocation.
func (g *Graph[L]) VisitOut(id NodeID, fn func(to NodeID, weight float64) bool) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id == 0 || int(id) >= len(g.nodes) || !g.nodes[id].live {
		return ErrNodeNotFound
	}
	for _, e := range g.nodes[id].out {
		if !fn(e.To, e.Weight) {
			break
		}
	}

	return nil
}
