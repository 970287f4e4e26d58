// Package bind provides a read/write accessor pair bound to an externally
// owned target.
package bind

// Value couples a zero-argument read behavior with a one-argument write
// behavior, both closing over a target the Value does not own.
//
// Value is a pure accessor indirection: Get and Set invoke the bound
// functions verbatim, add no validation, and propagate whatever the
// underlying target does — including panicking — unchanged.
type Value[T any] struct {
	get func() T
	set func(T)
}

// New binds get and set into a Value. The caller is responsible for the
// lifetime of whatever the two functions close over.
func New[T any](get func() T, set func(T)) *Value[T] {
	return &Value[T]{get: get, set: set}
}

// Get invokes the bound read behavior and returns its result.
func (v *Value[T]) Get() T { return v.get() }

// Set invokes the bound write behavior with value.
func (v *Value[T]) Set(value T) { v.set(value) }
