package dict

// This file contains package-level generic functions for operations that
// introduce a new type parameter, which Go does not allow on methods.

// ToSlice produces one R per entry of d by applying fn(key, value).
// Entry order is unspecified; callers comparing results should compare as
// sets, not positionally.
//
//	labels := dict.ToSlice(d, func(k string, v int) string {
//	    return fmt.Sprintf("%s=%d", k, v)
//	})
func ToSlice[V, R any](d *Dict[V], fn func(string, V) R) []R {
	out := make([]R, 0, len(d.entries))
	for k, v := range d.entries {
		out = append(out, fn(k, v))
	}
	return out
}
