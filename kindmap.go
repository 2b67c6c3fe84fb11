package kind

import (
	"maps"
	"sort"
	"time"
)

// Map associates values with kinds keyed by kind identity (the top-level
// id). Reads cascade through the fallback chain, most specific first;
// writes only ever touch the top-level id. The asymmetry is intentional:
// writing targets the most specific slot while reading falls back outward.
type Map[T any, V any] struct {
	entries map[string]V
	logger  LookupLogger
}

// MapOption configures a Map at construction time.
type MapOption[T any, V any] func(*Map[T, V])

// MapWithLookupLogger attaches a logger invoked on every cascading read.
func MapWithLookupLogger[T any, V any](logger LookupLogger) MapOption[T, V] {
	return func(m *Map[T, V]) {
		if logger == nil {
			m.logger = noopLookupLogger{}
			return
		}
		m.logger = logger
	}
}

// NewMap constructs an empty Map.
func NewMap[T any, V any](opts ...MapOption[T, V]) *Map[T, V] {
	m := &Map[T, V]{entries: make(map[string]V)}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Set stores value under k's top-level id. Fallback entries are never
// written.
func (m *Map[T, V]) Set(k Kind[T], value V) {
	if m.entries == nil {
		m.entries = make(map[string]V)
	}
	m.entries[k.id] = value
}

// Get resolves the most specific value available for k, walking the
// fallback chain until an entry matches. Absence is a normal outcome, not
// an error.
func (m *Map[T, V]) Get(k Kind[T]) (V, bool) {
	start := time.Now()
	depth := 0
	for node := &k; node != nil; node = node.fallback {
		if value, ok := m.entries[node.id]; ok {
			m.log(LookupEvent{
				Kind:     k.String(),
				Resolved: node.id,
				Depth:    depth,
				Found:    true,
				Duration: time.Since(start),
			})
			return value, true
		}
		depth++
	}
	var zero V
	m.log(LookupEvent{Kind: k.String(), Duration: time.Since(start)})
	return zero, false
}

// GetDirect looks up k's top-level id only, without cascading.
func (m *Map[T, V]) GetDirect(k Kind[T]) (V, bool) {
	value, ok := m.entries[k.id]
	return value, ok
}

// Delete removes the entry stored under k's top-level id.
func (m *Map[T, V]) Delete(k Kind[T]) {
	delete(m.entries, k.id)
}

// Len returns the number of stored entries.
func (m *Map[T, V]) Len() int {
	return len(m.entries)
}

// IDs returns the stored ids sorted alphabetically.
func (m *Map[T, V]) IDs() []string {
	ids := make([]string, 0, len(m.entries))
	for id := range m.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns a shallow copy of the map with the same logger.
func (m *Map[T, V]) Clone() *Map[T, V] {
	return &Map[T, V]{
		entries: maps.Clone(m.entries),
		logger:  m.logger,
	}
}

// Merge composes the receiver over weaker tables, returning a new Map that
// keeps the receiver's entries and fills missing ids from the first weaker
// table holding them. Weaker tables are given strongest first.
func (m *Map[T, V]) Merge(weaker ...*Map[T, V]) *Map[T, V] {
	merged := NewMap[T, V]()
	merged.logger = m.logger
	for i := len(weaker) - 1; i >= 0; i-- {
		if weaker[i] == nil {
			continue
		}
		maps.Copy(merged.entries, weaker[i].entries)
	}
	maps.Copy(merged.entries, m.entries)
	return merged
}

func (m *Map[T, V]) log(event LookupEvent) {
	if m.logger == nil {
		return
	}
	m.logger.LogLookup(event)
}

// Value resolves the most specific entry for k in a plain string-keyed map,
// checking each id in k's hierarchy in order and returning the first hit.
func Value[T any, V any](k Kind[T], values map[string]V) (V, bool) {
	for node := &k; node != nil; node = node.fallback {
		if value, ok := values[node.id]; ok {
			return value, true
		}
	}
	var zero V
	return zero, false
}

// SetValue stores value under k's top-level id in a plain string-keyed
// map. Writes never touch fallback entries; only reads cascade.
func SetValue[T any, V any](k Kind[T], values map[string]V, value V) {
	values[k.id] = value
}
