package seq

// ─────────────────────────────────────────────────────────────────────────────
// Bounded slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take returns a copy of the first count elements of items.
// Returns an empty slice when count < 1; a count past the end of items
// returns whatever is available. Never errors.
func Take[T any](items []T, count int) []T {
	if count < 1 {
		return []T{}
	}
	if count > len(items) {
		count = len(items)
	}
	out := make([]T, count)
	copy(out, items[:count])
	return out
}

// Drop returns a copy of items with the first count elements skipped.
// The guard is identical to [Take]: count < 1 returns an empty slice, not
// the whole input. A count past the end returns an empty slice.
func Drop[T any](items []T, count int) []T {
	if count < 1 || count >= len(items) {
		return []T{}
	}
	out := make([]T, len(items)-count)
	copy(out, items[count:])
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & traversal
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element satisfying fn, scanning in order.
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, fn func(T) bool) (T, bool) {
	for _, item := range items {
		if fn(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// EachWhile visits elements in order, invoking fn on each, and stops
// immediately after the first element for which fn returns false. That
// element's fn call has already run when the walk terminates; a fn that
// always returns true visits every element.
func EachWhile[T any](items []T, fn func(T) bool) {
	for _, item := range items {
		if !fn(item) {
			return
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Partition splits items into two slices: those satisfying fn and those that
// do not. Every element is tested exactly once and relative order is
// preserved within each half.
func Partition[T any](items []T, fn func(T) bool) (matched, unmatched []T) {
	matched = make([]T, 0)
	unmatched = make([]T, 0)
	for _, item := range items {
		if fn(item) {
			matched = append(matched, item)
		} else {
			unmatched = append(unmatched, item)
		}
	}
	return matched, unmatched
}

// Windowed splits items into consecutive chunks of exactly size elements;
// the final chunk holds the remainder and may be smaller. An exact multiple
// of size produces no trailing empty chunk. An empty input yields a single
// empty chunk. Returns an empty result when size < 1. Chunks are copies,
// never aliases of items.
func Windowed[T any](items []T, size int) [][]T {
	if size < 1 {
		return [][]T{}
	}
	if len(items) == 0 {
		return [][]T{{}}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Remove deletes the first element of *items equal to value, shifting the
// remainder down in place. Returns true iff an element was removed; on a
// miss the slice is left untouched.
func Remove[T comparable](items *[]T, value T) bool {
	s := *items
	for i, item := range s {
		if item == value {
			*items = append(s[:i], s[i+1:]...)
			return true
		}
	}
	return false
}
