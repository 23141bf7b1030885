package hashmap

import (
	"fmt"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/campusnav/errkind"
)

// Sentinel errors for hashmap operations. Each wraps one errkind root.
var (
	// ErrInvalidCapacity indicates New was called with capacity ≤ 0.
	ErrInvalidCapacity = fmt.Errorf("hashmap: capacity must be positive: %w", errkind.ErrInvalidArgument)

	// ErrNullKey indicates an insert with the zero value of K.
	ErrNullKey = fmt.Errorf("hashmap: %w", errkind.ErrNullKey)

	// ErrDuplicateKey indicates Put on a key that is already bound.
	ErrDuplicateKey = fmt.Errorf("hashmap: %w", errkind.ErrDuplicateKey)

	// ErrKeyNotFound indicates Get or Remove on an unbound key.
	ErrKeyNotFound = fmt.Errorf("hashmap: key %w", errkind.ErrNotFound)
)

const (
	// DefaultCapacity is the bucket count used by NewDefault.
	DefaultCapacity = 64

	// LoadFactor is the Len()/Cap() ratio at which the bucket array doubles.
	LoadFactor = 0.8
)

// Hasher maps a key to a 64-bit hash. Equal keys must hash equally.
type Hasher[K comparable] func(K) uint64

// StringHasher hashes string keys with xxhash.
func StringHasher(s string) uint64 { return xxhash.Sum64String(s) }

// comparableHasher returns a maphash-backed Hasher with a fresh seed.
func comparableHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()
	return func(k K) uint64 { return maphash.Comparable(seed, k) }
}

// Option configures a Map at construction time.
type Option[K comparable] func(*config[K])

type config[K comparable] struct {
	hasher Hasher[K]
}

// WithHasher replaces the default maphash hasher. A nil h is ignored.
func WithHasher[K comparable](h Hasher[K]) Option[K] {
	return func(c *config[K]) {
		if h != nil {
			c.hasher = h
		}
	}
}

// pair is one key/value binding in a bucket chain.
type pair[K comparable, V any] struct {
	key   K
	value V
	next  *pair[K, V]
}

// Map is a chained hash table. The zero Map is not usable; build one with
// New or NewDefault.
type Map[K comparable, V any] struct {
	buckets []*pair[K, V] // chain heads, len == Cap()
	size    int           // bound keys
	hash    Hasher[K]
}
