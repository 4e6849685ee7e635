// Package store provides the in-memory record stores backing the shelfd API.
//
// Each collection (users, posts, books) is held by its own store type as an
// ordered slice of records. Insertion order is preserved; reads never
// reorder. Stores are seeded once at startup (see LoadSeeds) and live for
// the process lifetime.
//
// Key types:
//
//   - UserStore: users collection, grows via Create
//   - PostStore: posts collection, immutable after load
//   - BookStore: books collection, shrinks via Delete
//
// Thread Safety:
//
// All stores guard their slice with a sync.RWMutex because net/http serves
// requests on parallel goroutines. Filter and lookup methods return fresh
// slices or copies and never expose internal state.
package store
