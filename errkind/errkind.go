// Package errkind declares the four error kinds shared by every campusnav
// package. Package-level sentinels (hashmap.ErrKeyNotFound,
// core.ErrNodeNotFound, dijkstra.ErrNoPath, ...) wrap exactly one of these,
// so a caller may match either the precise failure or its kind:
//
//	if errors.Is(err, errkind.ErrNotFound) {
//	    // render "no path found"
//	}
//
// All kinds describe local, recoverable conditions.
package errkind

import "errors"

var (
	// ErrInvalidArgument marks a rejected parameter (non-positive capacity,
	// nil graph, negative weight met during a search).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNullKey marks an insert with an absent (zero-value) key.
	ErrNullKey = errors.New("null key")

	// ErrDuplicateKey marks an attempt to rebind an already bound key.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound marks a missing key, node, edge, or path.
	ErrNotFound = errors.New("not found")
)
