// Package substring provides a string-keyed map that can be probed by a
// length-truncated view of a longer key without allocating the substring
// up front.
//
// The map is optimized for read-heavy workloads: lookups never take a lock
// and remain safe while a single writer mutates the map concurrently. The
// write path copies the underlying table and publishes it with an atomic
// pointer swap, so readers always observe a complete table, either the one
// from before the write or the one after it.
package substring

import (
	"sync"
	"sync/atomic"
)

// Entry is a stored key/value pair. Lookups return the entry so callers
// can recover the originally stored key when probing with a truncated one.
type Entry[T any] struct {
	Key   string
	Value T
}

// Map is a copy-on-write string map. The zero value is not usable; create
// instances with New.
type Map[T any] struct {
	mu    sync.Mutex // guards writers
	table atomic.Pointer[map[string]Entry[T]]
}

// New returns an empty Map.
func New[T any]() *Map[T] {
	m := &Map[T]{}
	table := make(map[string]Entry[T])
	m.table.Store(&table)

	return m
}

// Put inserts or overwrites the value stored under key. Writers are
// serialized internally; concurrent readers are never blocked.
func (m *Map[T]) Put(key string, value T) {
	m.mu.Lock()
	defer m.mu.Unlock()

	old := *m.table.Load()
	next := make(map[string]Entry[T], len(old)+1)
	for k, v := range old {
		next[k] = v
	}
	next[key] = Entry[T]{Key: key, Value: value}

	m.table.Store(&next)
}

// Get probes the map with the first length bytes of key. It returns the
// stored entry and true when a key equal to key[:length] is present. A
// length outside [0, len(key)] never matches.
func (m *Map[T]) Get(key string, length int) (Entry[T], bool) {
	if length < 0 || length > len(key) {
		return Entry[T]{}, false
	}

	entry, ok := (*m.table.Load())[key[:length]]

	return entry, ok
}

// GetExact probes the map with the full key.
func (m *Map[T]) GetExact(key string) (Entry[T], bool) {
	return m.Get(key, len(key))
}

// Keys returns the currently stored keys in unspecified order.
func (m *Map[T]) Keys() []string {
	table := *m.table.Load()

	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}

	return keys
}

// Size returns the number of stored entries.
func (m *Map[T]) Size() int {
	return len(*m.table.Load())
}
