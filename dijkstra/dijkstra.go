// File: dijkstra.go
// Role: Engine construction, the per-query runner (seed, pop, relax) and
//       the lazy min-heap of frontier entries.
// Determinism:
//   - Costs are deterministic; the choice among equal-cost paths is not.
// AI-HINT (file):
//   - run seeds best with the strict Put; relax rebinds with Upsert only on
//     a strictly cheaper candidate.
//   - A popped entry whose cost exceeds best[id] is stale and skipped.

package dijkstra

import (
	"container/heap"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/hashmap"
)

// Engine answers shortest-path queries over one graph.
type Engine[L comparable] struct {
	g       *core.Graph[L]
	options Options
	logger  *slog.Logger
}

// New binds an Engine to g.
//
// Errors:
//   - ErrNilGraph: g is nil.
func New[L comparable](g *core.Graph[L], opts ...Option) (*Engine[L], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Engine[L]{g: g, options: cfg, logger: logger}, nil
}

// Result is the outcome of one successful search.
//
// The path is resolved to labels before the search returns, so a Result
// stays valid after the graph is mutated and its freed handles reused.
type Result[L comparable] struct {
	Start L
	End   L
	Cost  float64

	path []L
}

// Path returns the labels in travel order, both endpoints included.
// The slice is a copy; callers may modify it.
func (r *Result[L]) Path() []L {
	return slices.Clone(r.path)
}

// resolvePath walks parent links from to back to from and maps every
// handle to its label. It runs while the searched topology is intact.
// Complexity: O(path length).
func resolvePath[L comparable](g *core.Graph[L], parent *hashmap.Map[core.NodeID, core.NodeID], from, to core.NodeID, end L) []L {
	path := []L{end}
	for id := to; id != from; {
		prev, ok := parent.Lookup(id)
		if !ok {
			break // unreachable for a completed search
		}
		l, _ := g.Label(prev)
		path = append(path, l)
		id = prev
	}
	slices.Reverse(path)

	return path
}

// ComputeShortestPath runs the search from start to end.
//
// Preconditions and validation (in order):
//  1. start and end must both be nodes (ErrNodeNotFound).
//  2. start == end returns cost 0 without searching.
//
// Errors:
//   - ErrNodeNotFound, ErrNoPath, ErrNegativeWeight.
//
// Complexity:
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func (e *Engine[L]) ComputeShortestPath(start, end L) (*Result[L], error) {
	from, okStart := e.g.ID(start)
	to, okEnd := e.g.ID(end)
	if !okStart || !okEnd {
		return nil, ErrNodeNotFound
	}
	if from == to {
		return &Result[L]{Start: start, End: end, path: []L{start}}, nil
	}

	r, err := newRunner(e.g, e.options)
	if err != nil {
		return nil, err
	}
	cost, err := r.run(from, to)
	e.logger.Debug("shortest path query",
		slog.Any("start", start),
		slog.Any("end", end),
		slog.Int("settled", r.settled),
		slog.Any("error", err),
	)
	if err != nil {
		return nil, err
	}

	return &Result[L]{
		Start: start,
		End:   end,
		Cost:  cost,
		path:  resolvePath(e.g, r.parent, from, to, end),
	}, nil
}

// ShortestPathData returns the labels along the cheapest path from start
// to end, inclusive. start == end yields [start].
func (e *Engine[L]) ShortestPathData(start, end L) ([]L, error) {
	res, err := e.ComputeShortestPath(start, end)
	if err != nil {
		return nil, err
	}

	return res.Path(), nil
}

// ShortestPathCost returns the summed weight of the cheapest path from
// start to end. start == end yields 0.
func (e *Engine[L]) ShortestPathCost(start, end L) (float64, error) {
	res, err := e.ComputeShortestPath(start, end)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// runner holds the mutable state of a single query.
type runner[L comparable] struct {
	g       *core.Graph[L]
	options Options
	best    *hashmap.Map[core.NodeID, float64]     // node → best known cost
	parent  *hashmap.Map[core.NodeID, core.NodeID] // node → predecessor on that path
	pq      nodePQ
	settled int
}

func newRunner[L comparable](g *core.Graph[L], o Options) (*runner[L], error) {
	best, err := hashmap.New[core.NodeID, float64](o.WorkingCapacity)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: best-cost map: %w", err)
	}
	parent, err := hashmap.New[core.NodeID, core.NodeID](o.WorkingCapacity)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: parent map: %w", err)
	}

	return &runner[L]{g: g, options: o, best: best, parent: parent}, nil
}

// run settles nodes in cost order until to is popped.
//
// Loop termination conditions:
//   - to is popped: success, its cost is final.
//   - the popped cost exceeds MaxDistance: nothing cheaper remains, ErrNoPath.
//   - the heap empties: ErrNoPath.
func (r *runner[L]) run(from, to core.NodeID) (float64, error) {
	if err := r.best.Put(from, 0); err != nil {
		return 0, fmt.Errorf("dijkstra: seed start: %w", err)
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: from, cost: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Skip entries superseded by a later, cheaper push.
		if best, _ := r.best.Lookup(item.id); item.cost > best {
			continue
		}
		if item.cost > r.options.MaxDistance {
			break
		}
		if item.id == to {
			return item.cost, nil
		}
		r.settled++

		if err := r.relax(item); err != nil {
			return 0, err
		}
	}

	return 0, ErrNoPath
}

// relax examines every edge leaving u and records strictly cheaper costs.
func (r *runner[L]) relax(u *nodeItem) error {
	var relaxErr error
	err := r.g.VisitOut(u.id, func(v core.NodeID, w float64) bool {
		if w >= r.options.InfEdgeThreshold {
			return true
		}
		if w < 0 {
			relaxErr = fmt.Errorf("%w: weight=%g", ErrNegativeWeight, w)
			return false
		}

		candidate := u.cost + w
		if recorded, seen := r.best.Lookup(v); seen && candidate >= recorded {
			return true
		}
		if _, _, relaxErr = r.best.Upsert(v, candidate); relaxErr != nil {
			return false
		}
		if _, _, relaxErr = r.parent.Upsert(v, u.id); relaxErr != nil {
			return false
		}
		heap.Push(&r.pq, &nodeItem{id: v, cost: candidate})

		return true
	})
	if err != nil {
		return fmt.Errorf("dijkstra: failed to visit edges: %w", err)
	}

	return relaxErr
}

// nodeItem is one frontier entry: a node and the cost of the path that reached it.
type nodeItem struct {
	id   core.NodeID
	cost float64
}

// nodePQ is a min-heap of *nodeItem ordered by cost ascending. Equal costs
// pop in no particular order.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be *nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
