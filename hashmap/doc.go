// Package hashmap provides Map, a generic key→value container built on
// separate chaining with automatic growth.
//
// Overview:
//
//   - Each bucket holds a singly linked chain of pairs.
//   - A key lands in bucket hash(key) mod Cap(). Hashes are uint64, so the
//     index is non-negative by construction.
//   - After every successful insert, if Len()/Cap() ≥ LoadFactor (0.8), the
//     bucket array doubles and every pair is rehashed into it.
//
// Contract highlights:
//
//   - Put never overwrites. Binding an already bound key returns
//     ErrDuplicateKey, and callers rely on that signal.
//   - Upsert is the explicit rebinding primitive. The shortest-path engine
//     uses it for relaxation. Keep it away from call sites that expect
//     ErrDuplicateKey.
//   - The zero value of K is treated as "no key": Put and Upsert reject it
//     with ErrNullKey, and lookups of it simply miss.
//
// Complexity:
//
//   - Put/Upsert/Get/ContainsKey/Remove: O(1) amortized, O(chain length)
//     worst case under a poor hash distribution.
//   - Growth: one O(n) rehash pass, amortized O(1) per insert.
//   - Clear: O(Cap()).
//
// Hashing:
//
//   - The default hasher is hash/maphash.Comparable with a per-map seed, so
//     any comparable K works.
//   - StringHasher (xxhash) is a seedless, fast choice for string keys.
//   - WithHasher accepts any func(K) uint64. A constant hasher is legal, and
//     degrades every operation to a chain scan.
//
// Notes on implementation choices:
//
//   - New pairs are prepended to their chain. Insertion order inside a
//     bucket is therefore newest first, and Range/Keys follow bucket order,
//     not insertion order.
//   - Growth is checked only after a successful insert. A rejected Put
//     (null or duplicate key) never resizes the table.
//   - grow relinks the existing pair nodes into the new bucket array rather
//     than allocating fresh ones.
//   - Remove and Clear never shrink the bucket array.
//
// AI-HINT (package):
//
//   - Use Put when a second binding is a bug; use Upsert when it is an
//     update. Lookup is the comma-ok form of Get.
//
// Thread safety:
//
//   - Map is not safe for concurrent mutation. Concurrent readers are fine
//     as long as nobody writes.
package hashmap
