package str

import "strings"

// Repeat returns s concatenated into exactly count copies.
// Returns the empty string when count <= 0 — never panics, unlike
// strings.Repeat on a negative count.
func Repeat(s string, count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat(s, count)
}

// Contains reports whether needle occurs in s. Literal and case-sensitive;
// an empty needle is always contained.
func Contains(s, needle string) bool {
	return strings.Contains(s, needle)
}

// StartsWith reports whether s begins with prefix. Literal and
// case-sensitive; an empty prefix always matches.
func StartsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// EndsWith reports whether s ends with suffix. Literal and case-sensitive;
// an empty suffix always matches.
func EndsWith(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// SplitPopulated splits s on the literal delimiter delim.
// An empty s returns an empty slice rather than []string{""}; any other
// input returns every fragment, including interior empty ones:
//
//	str.SplitPopulated("", ",")     // → []
//	str.SplitPopulated("a,,b", ",") // → ["a" "" "b"]
func SplitPopulated(s, delim string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, delim)
}
