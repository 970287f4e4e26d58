package str

import "strings"

// Accumulator builds a string from fragments appended in order.
//
// Unlike strings.Builder it keeps its fragments, so [Accumulator.String]
// is a pure, repeatable materialisation: calling it any number of times —
// with appends in between — always reflects exactly the fragments appended
// so far.
//
// An Accumulator is owned by a single logical caller at a time; it is not
// safe for concurrent use without external synchronisation. The zero value
// is ready to use.
type Accumulator struct {
	fragments []string
}

// NewAccumulator creates an Accumulator pre-loaded with fragments.
func NewAccumulator(fragments ...string) *Accumulator {
	dst := make([]string, len(fragments))
	copy(dst, fragments)
	return &Accumulator{fragments: dst}
}

// Append adds fragment to the end and returns the accumulator for chaining.
func (a *Accumulator) Append(fragment string) *Accumulator {
	a.fragments = append(a.fragments, fragment)
	return a
}

// Len returns the number of appended fragments.
func (a *Accumulator) Len() int { return len(a.fragments) }

// String returns the concatenation of all fragments in append order.
// It implements [fmt.Stringer] and has no side effects.
func (a *Accumulator) String() string {
	return strings.Join(a.fragments, "")
}
