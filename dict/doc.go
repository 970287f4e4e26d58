// Package dict provides a generic string-keyed mapping type with explicit
// presence semantics.
//
// The central type is [Dict][V], a thin owner of a native Go map. Unlike a
// bare map, a Dict never conflates "absent" with "present with the zero
// value": [Dict.Has] and the ok flag of [Dict.Get] make the distinction
// explicit, and [Dict.Remove] reports whether anything was actually deleted.
//
//	d := dict.New[int]()
//	d.Put("retries", 0)
//	d.Has("retries")        // → true (zero value, but present)
//	v, ok := d.Get("nope")  // → 0, false
//	d.Remove("retries")     // → true
//
// Iteration order over entries is unspecified. Missing keys, repeated
// removals, and Clear on an empty dict are all well-defined no-ops rather
// than errors.
package dict
