// Package str provides small string helpers with guard-clause semantics —
// literal substring tests, safe bounded repetition, delimiter splitting
// that drops the empty-input artifact — and [Accumulator], a fragment-based
// string builder whose materialisation is repeatable.
package str
