package core

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/katalvlaran/campusnav/errkind"
	"github.com/katalvlaran/campusnav/hashmap"
)

// Sentinel errors for core graph operations.
var (
	// ErrNullLabel indicates a node label equal to the zero value of L.
	ErrNullLabel = fmt.Errorf("core: node label: %w", errkind.ErrNullKey)

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = fmt.Errorf("core: node %w", errkind.ErrNotFound)

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = fmt.Errorf("core: edge %w", errkind.ErrNotFound)
)

// NodeID is a stable handle to a node slot. The zero NodeID names no node.
type NodeID uint32

// Edge is one outgoing adjacency entry: destination handle and weight.
type Edge struct {
	To     NodeID
	Weight float64
}

// node is an arena slot. A slot with live == false is on the free list.
type node[L comparable] struct {
	label   L
	payload any
	out     []Edge
	live    bool
}

// GraphOption configures a Graph before creation.
type GraphOption[L comparable] func(*graphConfig[L])

type graphConfig[L comparable] struct {
	hasher     hashmap.Hasher[L]
	capacity   int
	autoCreate bool
	logger     *slog.Logger
}

// WithLabelHasher sets the hasher of the label index.
// For string labels, hashmap.StringHasher is the usual choice.
func WithLabelHasher[L comparable](h hashmap.Hasher[L]) GraphOption[L] {
	return func(c *graphConfig[L]) { c.hasher = h }
}

// WithInitialCapacity sizes the label index and the node arena.
// Values ≤ 0 are ignored.
func WithInitialCapacity[L comparable](n int) GraphOption[L] {
	return func(c *graphConfig[L]) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithAutoCreate lets InsertEdge create missing endpoints instead of
// failing with ErrNodeNotFound.
func WithAutoCreate[L comparable]() GraphOption[L] {
	return func(c *graphConfig[L]) { c.autoCreate = true }
}

// WithLogger attaches a structured logger. Only topology rewrites
// (RemoveNode) are logged, at debug level.
func WithLogger[L comparable](l *slog.Logger) GraphOption[L] {
	return func(c *graphConfig[L]) {
		if l != nil {
			c.logger = l
		}
	}
}

// Graph is the node/edge store.
//
// nodes[0] is a permanent sentinel so a NodeID indexes the arena directly.
type Graph[L comparable] struct {
	mu sync.RWMutex // guards everything below

	autoCreate bool
	logger     *slog.Logger

	nodes []node[L]               // arena, nodes[id]
	free  []NodeID                // reusable slots
	index *hashmap.Map[L, NodeID] // label → handle
	edges int                     // live edge count
}

// NewGraph creates an empty Graph.
// By default, edges require existing endpoints and the index uses
// hashmap.DefaultCapacity buckets with the maphash hasher.
// Complexity: O(capacity).
func NewGraph[L comparable](opts ...GraphOption[L]) *Graph[L] {
	cfg := graphConfig[L]{capacity: hashmap.DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var hopts []hashmap.Option[L]
	if cfg.hasher != nil {
		hopts = append(hopts, hashmap.WithHasher(cfg.hasher))
	}
	index, _ := hashmap.New[L, NodeID](cfg.capacity, hopts...) // capacity > 0 by construction

	nodes := make([]node[L], 1, cfg.capacity+1)

	return &Graph[L]{
		autoCreate: cfg.autoCreate,
		logger:     cfg.logger,
		nodes:      nodes,
		index:      index,
	}
}
