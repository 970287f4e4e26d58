// Package pair provides a generic two-slot value holder.
package pair

import "fmt"

// Pair holds two values of possibly different types. It is immutable by
// convention: construct it with its final values and read First/Second
// structurally. No relationship between the two values is enforced.
type Pair[A, B any] struct {
	First  A
	Second B
}

// New creates a Pair from its two values.
func New[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
