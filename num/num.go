// Package num provides numeric checks and formatting helpers with
// guard-clause semantics: boundary inputs yield safe defaults, never errors.
package num

import (
	"math"
	"strconv"
	"strings"
)

// IsInt reports whether v is a finite value whose floor equals itself.
// NaN and ±Inf yield false.
func IsInt(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return math.Floor(v) == v
}

// Pad returns the decimal representation of n, left-padded with '0' until
// its length is at least minDigits. A representation already that long is
// returned unchanged — no truncation, and no panic from a negative pad
// count. The pad applies to the full representation, sign included.
func Pad(n int, minDigits int) string {
	s := strconv.Itoa(n)
	if len(s) >= minDigits {
		return s
	}
	return strings.Repeat("0", minDigits-len(s)) + s
}
