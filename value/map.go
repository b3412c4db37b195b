package value

import (
	"fmt"
	"slices"
	"strings"
)

// Entry is a single key/value member of a Map.
type Entry struct {
	Key   string
	Value Value
}

// Map is a mapping from string keys to values, kept in byte-wise key order.
type Map struct {
	entries []Entry
}

func (*Map) Kind() Kind { return MapKind }
func (*Map) value()     {}

// DuplicateKeyError is returned when a map is built with a repeated key.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q", e.Key)
}

// NewMap builds a map from entries given in any order.
func NewMap(entries ...Entry) (*Map, error) {
	b := NewMapBuilder(len(entries))
	for _, e := range entries {
		if err := b.Add(e.Key, e.Value); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// MustMap is like NewMap but panics on a duplicate key. It is meant for
// literals in tests and examples.
func MustMap(entries ...Entry) *Map {
	m, err := NewMap(entries...)
	if err != nil {
		panic(err)
	}
	return m
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.entries) }

// Entries returns a copy of the entries in key order.
func (m *Map) Entries() []Entry { return slices.Clone(m.entries) }

// Keys returns the keys in order.
func (m *Map) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	i, ok := slices.BinarySearchFunc(m.entries, key, func(e Entry, k string) int {
		return Compare(e.Key, k)
	})
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

// Compare orders map keys by their bytes.
func Compare(a, b string) int {
	return strings.Compare(a, b)
}

// MapBuilder accumulates map entries, rejecting duplicates as they are added.
// The zero value is ready to use.
type MapBuilder struct {
	entries []Entry
	seen    map[string]struct{}
}

// NewMapBuilder returns a builder with room for n entries.
func NewMapBuilder(n int) *MapBuilder {
	return &MapBuilder{
		entries: make([]Entry, 0, n),
		seen:    make(map[string]struct{}, n),
	}
}

// Add appends an entry. A repeated key yields a *DuplicateKeyError and leaves
// the builder unchanged.
func (b *MapBuilder) Add(key string, v Value) error {
	if b.seen == nil {
		b.seen = make(map[string]struct{})
	}
	if _, dup := b.seen[key]; dup {
		return &DuplicateKeyError{Key: key}
	}
	b.seen[key] = struct{}{}
	b.entries = append(b.entries, Entry{Key: key, Value: v})
	return nil
}

// Build returns the sorted map. The builder must not be used afterwards.
func (b *MapBuilder) Build() *Map {
	entries := b.entries
	b.entries = nil
	b.seen = nil
	slices.SortFunc(entries, func(x, y Entry) int {
		return Compare(x.Key, y.Key)
	})
	return &Map{entries: entries}
}
