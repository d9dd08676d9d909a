// Package cmap provides a concurrent, string-keyed sharded map.
//
// Keys are distributed over sixteen shards using murmur3, each shard
// guarded by its own RWMutex:
//
//   - sharded.go: construction, Get, Count, Clear
//   - iter.go: Range, Keys and the atomic GetOrSet
//
// Usage:
//
//	m := cmap.New[*connection.Connection]()
//	existing, loaded := m.GetOrSet("default", conn)
//
// Range acquires shards one at a time, so it observes a per-shard
// consistent view only.
package cmap
