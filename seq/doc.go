// Package seq provides standalone, framework-agnostic helper functions for
// ordered Go slices: bounded take/drop, predicate search, early-exit
// traversal, binary partition, fixed-size windowing, and in-place value
// removal.
//
// # Design
//
// All helpers are generic (Go 1.18+) and operate on plain []T values — no
// wrapper type required:
//
//	head := seq.Take([]int{1, 2, 3, 4, 5}, 2)          // → [1 2]
//	rest := seq.Drop([]int{1, 2, 3, 4, 5}, 2)          // → [3 4 5]
//	wins := seq.Windowed([]int{1, 2, 3, 4, 5}, 2)      // → [[1 2] [3 4] [5]]
//	even, odd := seq.Partition(ns, func(n int) bool { return n%2 == 0 })
//
// Every function but [Remove] is pure: inputs are never mutated, and
// returned slices are fresh copies rather than aliases of the input.
//
// # Guard clauses over errors
//
// Boundary conditions return safe defaults instead of errors: an invalid
// count yields an empty slice, a no-match search yields the zero value with
// a false flag. Note that Take and Drop share one guard — Drop(s, 0) is
// the empty slice, not s.
package seq
