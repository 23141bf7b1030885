package dijkstra

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/campusnav/errkind"
	"github.com/katalvlaran/campusnav/hashmap"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to New.
	ErrNilGraph = fmt.Errorf("dijkstra: graph is nil: %w", errkind.ErrInvalidArgument)

	// ErrNodeNotFound indicates that start or end is not a node of the graph.
	ErrNodeNotFound = fmt.Errorf("dijkstra: start or end node not in graph: %w", errkind.ErrNotFound)

	// ErrNoPath indicates that the frontier emptied before end was reached.
	ErrNoPath = fmt.Errorf("dijkstra: no path exists between start and end: %w", errkind.ErrNotFound)

	// ErrNegativeWeight indicates that a negative edge weight was encountered.
	ErrNegativeWeight = fmt.Errorf("dijkstra: negative edge weight encountered: %w", errkind.ErrInvalidArgument)

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would make every edge, including zero-weight ones, impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrBadWorkingCapacity indicates a non-positive working-set capacity.
	ErrBadWorkingCapacity = errors.New("dijkstra: WorkingCapacity must be positive")
)

// Options configures an Engine.
//
//   - MaxDistance: nodes beyond this cost are never settled. Default +Inf.
//   - InfEdgeThreshold: edges with weight ≥ this are skipped. Default +Inf.
//   - WorkingCapacity: initial buckets of the per-query maps.
//   - Logger: query tracing; nil means discard.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
	WorkingCapacity  int
	Logger           *slog.Logger
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithMaxDistance caps the cost the search will settle.
// Panics with ErrBadMaxDistance on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as impassable.
// Panics with ErrBadInfThreshold on a zero, negative, or NaN value.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithWorkingCapacity sets the initial bucket count of the per-query
// best-cost and parent maps. Sizing it near the graph's node count avoids
// rehash passes on large graphs.
// Panics with ErrBadWorkingCapacity on n ≤ 0.
func WithWorkingCapacity(n int) Option {
	if n <= 0 {
		panic(ErrBadWorkingCapacity.Error())
	}
	return func(o *Options) {
		o.WorkingCapacity = n
	}
}

// WithLogger enables debug-level query tracing. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with no distance cap, no impassable
// threshold and the default working capacity.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		WorkingCapacity:  hashmap.DefaultCapacity,
	}
}
