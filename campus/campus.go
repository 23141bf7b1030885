// Package campus loads a walking-time graph of campus locations and answers
// the navigation queries the front end needs.
//
// The graph file is a DOT digraph with one edge per line:
//
//	digraph campus {
//	    "Memorial Union" -> "Union South" [seconds=187.2];
//	}
//
// Backend depends on two small capability sets, Store and PathFinder.
// core.Graph[string] and dijkstra.Engine[string] satisfy them; New wires
// those defaults and NewWith accepts any other pair.
package campus

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/errkind"
	"github.com/katalvlaran/campusnav/hashmap"
)

// Sentinel errors for campus operations.
var (
	// ErrLocationNotFound indicates a query named a location that is not loaded.
	ErrLocationNotFound = fmt.Errorf("campus: location %w", errkind.ErrNotFound)

	// ErrNoReachableLocation indicates no other location can be reached from the start.
	ErrNoReachableLocation = fmt.Errorf("campus: no reachable destination: %w", errkind.ErrNotFound)

	// ErrMalformedLine indicates a graph file line that is not an edge statement.
	ErrMalformedLine = fmt.Errorf("campus: malformed edge line: %w", errkind.ErrInvalidArgument)
)

// Store is the graph surface the loader and queries drive.
type Store interface {
	InsertNode(label string) (bool, error)
	InsertEdge(src, dst string, w float64) error
	RemoveNode(label string) bool
	ContainsNode(label string) bool
	Nodes() []string
	Edge(src, dst string) (float64, error)
}

// PathFinder answers single-pair shortest-path queries.
type PathFinder interface {
	ShortestPathData(start, end string) ([]string, error)
	ShortestPathCost(start, end string) (float64, error)
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger attaches a structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(b *Backend) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithParallelism bounds the number of concurrent queries issued by
// LongestLocationListFrom. Values ≤ 0 select runtime.GOMAXPROCS(0).
func WithParallelism(n int) Option {
	return func(b *Backend) {
		if n > 0 {
			b.parallelism = n
		}
	}
}

// Backend combines a Store and a PathFinder.
//
// Loads and queries must not overlap: LoadGraphData rewrites the Store.
type Backend struct {
	store       Store
	finder      PathFinder
	logger      *slog.Logger
	parallelism int
}

// NewWith builds a Backend over the given capabilities.
func NewWith(store Store, finder PathFinder, opts ...Option) *Backend {
	b := &Backend{
		store:       store,
		finder:      finder,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		parallelism: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// New builds a Backend over a fresh core.Graph and a dijkstra.Engine.
// capacity sizes the graph index and the engine's working set; values ≤ 0
// fall back to hashmap.DefaultCapacity.
func New(capacity int, opts ...Option) (*Backend, error) {
	if capacity <= 0 {
		capacity = hashmap.DefaultCapacity
	}
	b := NewWith(nil, nil, opts...)

	g := core.NewGraph(
		core.WithLabelHasher[string](hashmap.StringHasher),
		core.WithInitialCapacity[string](capacity),
		core.WithLogger[string](b.logger),
	)
	engine, err := dijkstra.New(g,
		dijkstra.WithWorkingCapacity(capacity),
		dijkstra.WithLogger(b.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("campus: build engine: %w", err)
	}
	b.store, b.finder = g, engine

	return b, nil
}
