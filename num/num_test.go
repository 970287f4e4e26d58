package num_test

import (
	"math"
	"testing"

	"github.com/toolbelt-go/toolbelt/num"
)

func TestIsInt(t *testing.T) {
	cases := []struct {
		v    float64
		want bool
	}{
		{0, true},
		{7, true},
		{-3, true},
		{2.5, false},
		{-0.1, false},
		{1e15, true},
		{math.NaN(), false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
	}
	for _, c := range cases {
		if got := num.IsInt(c.v); got != c.want {
			t.Fatalf("IsInt(%v) = %v; want %v", c.v, got, c.want)
		}
	}
}

func TestPad(t *testing.T) {
	cases := []struct {
		n         int
		minDigits int
		want      string
	}{
		{7, 3, "007"},
		{1234, 2, "1234"}, // no truncation
		{0, 4, "0000"},
		{42, 2, "42"},
		{5, 0, "5"},
		{5, -3, "5"}, // negative pad count is a no-op, never a panic
	}
	for _, c := range cases {
		if got := num.Pad(c.n, c.minDigits); got != c.want {
			t.Fatalf("Pad(%d, %d) = %q; want %q", c.n, c.minDigits, got, c.want)
		}
	}
}

func TestPadNegativeValue(t *testing.T) {
	// The pad applies to the full representation, sign included.
	if got := num.Pad(-7, 4); got != "00-7" {
		t.Fatalf("Pad(-7, 4) = %q; want %q", got, "00-7")
	}
}
