package dict

// Dict is a mutable mapping from string keys to values of a single declared
// type V.
//
// Each key maps to at most one value and Put overwrites. Iteration order is
// unspecified — it is the order of the underlying Go map — and callers must
// not rely on it.
//
// A Dict instance is owned by a single logical caller at a time; it is not
// safe for concurrent mutation from multiple goroutines without external
// synchronisation.
//
// # Creating a dict
//
//	d := dict.New[int]()
//	d := dict.FromMap(map[string]int{"a": 1, "b": 2})
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so the
// typed form of ToSlice is a package-level function:
//
//	// Method-based (returns []any):
//	d.ToSlice(func(k string, v int) any { return k })
//
//	// Package-level (returns []string, fully typed):
//	dict.ToSlice(d, func(k string, v int) string { return k })
type Dict[V any] struct {
	entries map[string]V
}

// New creates an empty Dict of value type V.
func New[V any]() *Dict[V] {
	return &Dict[V]{entries: make(map[string]V)}
}

// FromMap creates a Dict holding a copy of m's entries.
func FromMap[V any](m map[string]V) *Dict[V] {
	entries := make(map[string]V, len(m))
	for k, v := range m {
		entries[k] = v
	}
	return &Dict[V]{entries: entries}
}

// Clear removes all entries.
func (d *Dict[V]) Clear() {
	d.entries = make(map[string]V)
}

// Has reports whether an entry for key exists. It distinguishes an absent
// key from a key stored with the zero value.
func (d *Dict[V]) Has(key string) bool {
	_, ok := d.entries[key]
	return ok
}

// Get returns the value stored under key together with a presence flag.
// Returns the zero value and false when no entry exists — never errors.
func (d *Dict[V]) Get(key string) (V, bool) {
	v, ok := d.entries[key]
	return v, ok
}

// Put inserts or overwrites the entry for key.
func (d *Dict[V]) Put(key string, value V) {
	if d.entries == nil {
		d.entries = make(map[string]V)
	}
	d.entries[key] = value
}

// Remove deletes the entry for key if present, returning true.
// Returns false without mutating when the key is absent.
func (d *Dict[V]) Remove(key string) bool {
	if _, ok := d.entries[key]; !ok {
		return false
	}
	delete(d.entries, key)
	return true
}

// Len returns the number of entries.
func (d *Dict[V]) Len() int { return len(d.entries) }

// Keys returns the keys in unspecified order.
func (d *Dict[V]) Keys() []string {
	keys := make([]string, 0, len(d.entries))
	for k := range d.entries {
		keys = append(keys, k)
	}
	return keys
}

// Each calls fn(key, value) for every entry, in unspecified order.
func (d *Dict[V]) Each(fn func(string, V)) {
	for k, v := range d.entries {
		fn(k, v)
	}
}

// ToSlice produces one result per entry by applying fn(key, value), in
// unspecified order.
//
// For a type-safe result slice, use the package-level [ToSlice] function.
func (d *Dict[V]) ToSlice(fn func(string, V) any) []any {
	out := make([]any, 0, len(d.entries))
	for k, v := range d.entries {
		out = append(out, fn(k, v))
	}
	return out
}
