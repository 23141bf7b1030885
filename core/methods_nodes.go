// File: methods_nodes.go
// Role: Node lifecycle, payloads and label/handle resolution.
// Determinism:
//   - Nodes() returns labels in ascending NodeID order.
// Concurrency:
//   - Mutations take g.mu; queries take g.mu.RLock.
// AI-HINT (file):
//   - A zero-value label is rejected with ErrNullLabel before any slot is used.
//   - RemoveNode on an absent label returns false and changes nothing.
//   - ID/Label are the only bridge between labels and handles.

package core

// InsertNode adds a node for label if it is missing.
//
// Behavior highlights:
//   - Idempotent: an existing label is a no-op reporting inserted == false.
//   - Reuses a freed arena slot when one is available.
//
// Errors:
//   - ErrNullLabel: label is the zero value of L.
//
// Complexity: O(1) amortized.
func (g *Graph[L]) InsertNode(label L) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, inserted, err := g.insertNodeLocked(label)

	return inserted, err
}

// insertNodeLocked registers label and returns its handle. Caller holds g.mu.
func (g *Graph[L]) insertNodeLocked(label L) (NodeID, bool, error) {
	var zero L
	if label == zero {
		return 0, false, ErrNullLabel
	}
	if id, ok := g.index.Lookup(label); ok {
		return id, false, nil
	}

	var id NodeID
	if n := len(g.free); n > 0 {
		id = g.free[n-1]
		g.free = g.free[:n-1]
	} else {
		id = NodeID(len(g.nodes))
		g.nodes = append(g.nodes, node[L]{})
	}
	if err := g.index.Put(label, id); err != nil {
		g.free = append(g.free, id)
		return 0, false, err
	}
	g.nodes[id] = node[L]{label: label, live: true}

	return id, true, nil
}

// RemoveNode deletes the node for label together with every edge that
// leaves or enters it. It reports whether a node was removed; an absent
// label is a no-op.
//
// Complexity: O(V+E), every adjacency list is scanned for incoming edges.
func (g *Graph[L]) RemoveNode(label L) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, ok := g.index.Lookup(label)
	if !ok {
		return false
	}

	dropped := len(g.nodes[id].out)
	for i := 1; i < len(g.nodes); i++ {
		n := &g.nodes[i]
		if !n.live || NodeID(i) == id {
			continue
		}
		kept := n.out[:0]
		for _, e := range n.out {
			if e.To != id {
				kept = append(kept, e)
			}
		}
		dropped += len(n.out) - len(kept)
		n.out = kept
	}
	g.edges -= dropped

	_, _ = g.index.Remove(label) // present: Lookup succeeded under the same lock
	g.nodes[id] = node[L]{}
	g.free = append(g.free, id)

	g.logger.Debug("node removed", "label", label, "edges_dropped", dropped)

	return true
}

// ContainsNode reports whether label names a node.
func (g *Graph[L]) ContainsNode(label L) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.index.ContainsKey(label)
}

// Nodes returns every label in ascending NodeID order.
// The order carries no meaning beyond being stable between mutations.
// Complexity: O(V).
func (g *Graph[L]) Nodes() []L {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]L, 0, g.index.Len())
	for i := 1; i < len(g.nodes); i++ {
		if g.nodes[i].live {
			out = append(out, g.nodes[i].label)
		}
	}

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph[L]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.index.Len()
}

// SetPayload attaches an application value to a node. Algorithms never read it.
//
// Errors:
//   - ErrNodeNotFound: label is absent.
func (g *Graph[L]) SetPayload(label L, payload any) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, ok := g.index.Lookup(label)
	if !ok {
		return ErrNodeNotFound
	}
	g.nodes[id].payload = payload

	return nil
}

// Payload returns the value stored by SetPayload (nil if none).
//
// Errors:
//   - ErrNodeNotFound: label is absent.
func (g *Graph[L]) Payload(label L) (any, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.index.Lookup(label)
	if !ok {
		return nil, ErrNodeNotFound
	}

	return g.nodes[id].payload, nil
}

// ID resolves a label to its handle.
func (g *Graph[L]) ID(label L) (NodeID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.index.Lookup(label)
}

// Label resolves a handle to its label. Handles of removed nodes miss.
func (g *Graph[L]) Label(id NodeID) (L, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id == 0 || int(id) >= len(g.nodes) || !g.nodes[id].live {
		var zero L
		return zero, false
	}

	return g.nodes[id].label, true
}
