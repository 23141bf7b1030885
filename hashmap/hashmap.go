// File: hashmap.go
// Role: Map operations: Put/Upsert, lookups, Remove/Clear, iteration,
//       and the bucket helpers index/find/link/grow.
// AI-HINT (file):
//   - Every insert path funnels through link, which owns the growth check.
//   - find is a plain chain scan; Remove walks the chain itself to unlink.

package hashmap

// New creates an empty Map with the given bucket count.
//
// Errors:
//   - ErrInvalidCapacity: capacity ≤ 0.
//
// Complexity: O(capacity).
func New[K comparable, V any](capacity int, opts ...Option[K]) (*Map[K, V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	cfg := config[K]{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hasher == nil {
		cfg.hasher = comparableHasher[K]()
	}

	return &Map[K, V]{
		buckets: make([]*pair[K, V], capacity),
		hash:    cfg.hasher,
	}, nil
}

// NewDefault creates an empty Map with DefaultCapacity buckets.
func NewDefault[K comparable, V any](opts ...Option[K]) *Map[K, V] {
	m, _ := New[K, V](DefaultCapacity, opts...) // DefaultCapacity > 0

	return m
}

// Put binds key to value.
//
// Put never rebinds: if key is already present the Map is left untouched
// and ErrDuplicateKey is returned. A successful insert may grow the bucket
// array (see LoadFactor).
//
// Errors:
//   - ErrNullKey: key is the zero value of K.
//   - ErrDuplicateKey: key is already bound.
//
// Complexity: O(1) amortized.
func (m *Map[K, V]) Put(key K, value V) error {
	if isZero(key) {
		return ErrNullKey
	}
	idx := m.index(key)
	if m.find(idx, key) != nil {
		return ErrDuplicateKey
	}
	m.link(idx, key, value)

	return nil
}

// Upsert binds key to value, replacing any existing binding in place.
// It reports the previous value and whether one existed.
//
// Upsert exists for callers that must update a binding (for example a
// best-known cost during relaxation). General storage goes through Put.
//
// Errors:
//   - ErrNullKey: key is the zero value of K.
func (m *Map[K, V]) Upsert(key K, value V) (V, bool, error) {
	var old V
	if isZero(key) {
		return old, false, ErrNullKey
	}
	idx := m.index(key)
	if p := m.find(idx, key); p != nil {
		old, p.value = p.value, value
		return old, true, nil
	}
	m.link(idx, key, value)

	return old, false, nil
}

// ContainsKey reports whether key is bound.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.find(m.index(key), key) != nil
}

// Get returns the value bound to key.
//
// Errors:
//   - ErrKeyNotFound: key is not bound.
func (m *Map[K, V]) Get(key K) (V, error) {
	if p := m.find(m.index(key), key); p != nil {
		return p.value, nil
	}
	var zero V

	return zero, ErrKeyNotFound
}

// Lookup is the comma-ok form of Get.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	if p := m.find(m.index(key), key); p != nil {
		return p.value, true
	}
	var zero V

	return zero, false
}

// Remove unlinks key and returns the value it was bound to.
//
// Errors:
//   - ErrKeyNotFound: key is not bound.
func (m *Map[K, V]) Remove(key K) (V, error) {
	var zero V
	idx := m.index(key)
	var prev *pair[K, V]
	for p := m.buckets[idx]; p != nil; prev, p = p, p.next {
		if p.key != key {
			continue
		}
		if prev == nil {
			m.buckets[idx] = p.next
		} else {
			prev.next = p.next
		}
		m.size--

		return p.value, nil
	}

	return zero, ErrKeyNotFound
}

// Clear drops every binding. Cap() is unchanged.
func (m *Map[K, V]) Clear() {
	clear(m.buckets)
	m.size = 0
}

// Len returns the number of bound keys.
func (m *Map[K, V]) Len() int { return m.size }

// Cap returns the length of the bucket array.
func (m *Map[K, V]) Cap() int { return len(m.buckets) }

// Range calls fn for every binding until fn returns false.
// Order follows bucket layout and changes after growth. fn must not mutate m.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	for _, head := range m.buckets {
		for p := head; p != nil; p = p.next {
			if !fn(p.key, p.value) {
				return
			}
		}
	}
}

// Keys returns every bound key in Range order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	m.Range(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})

	return keys
}

// index selects the bucket for key under the current capacity.
func (m *Map[K, V]) index(key K) int {
	return int(m.hash(key) % uint64(len(m.buckets)))
}

// find scans the chain at idx for key.
func (m *Map[K, V]) find(idx int, key K) *pair[K, V] {
	for p := m.buckets[idx]; p != nil; p = p.next {
		if p.key == key {
			return p
		}
	}

	return nil
}

// link prepends a new pair to bucket idx and grows when the load factor is reached.
func (m *Map[K, V]) link(idx int, key K, value V) {
	m.buckets[idx] = &pair[K, V]{key: key, value: value, next: m.buckets[idx]}
	m.size++
	if float64(m.size)/float64(len(m.buckets)) >= LoadFactor {
		m.grow()
	}
}

// grow doubles the bucket array and relinks every pair under the new capacity.
// Pairs are moved, not copied, so no binding is dropped or duplicated.
func (m *Map[K, V]) grow() {
	old := m.buckets
	m.buckets = make([]*pair[K, V], 2*len(old))
	var next *pair[K, V]
	for _, head := range old {
		for p := head; p != nil; p = next {
			next = p.next
			idx := m.index(p.key)
			p.next = m.buckets[idx]
			m.buckets[idx] = p
		}
	}
}

func isZero[K comparable](k K) bool {
	var zero K
	return k == zero
}
