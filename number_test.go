package svgpath

import (
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	trim := WriteOptions{RemoveLeadingZero: true}
	tests := []struct {
		in   float64
		opts WriteOptions
		want string
	}{
		{0, WriteOptions{}, "0"},
		{math.Copysign(0, -1), WriteOptions{}, "0"},
		{1, WriteOptions{}, "1"},
		{-1, WriteOptions{}, "-1"},
		{1234567, WriteOptions{}, "1234567"},
		{1e21, WriteOptions{}, "1000000000000000000000"},
		{0.5, WriteOptions{}, "0.5"},
		{-0.25, WriteOptions{}, "-0.25"},
		{0.1 + 0.2, WriteOptions{}, "0.3"},
		{29.999999999999996, WriteOptions{}, "30"},
		{0.49999999999999994, WriteOptions{}, "0.5"},
		{1e-12, WriteOptions{}, "0"},
		{-1e-12, WriteOptions{}, "0"},
		{123.456, WriteOptions{}, "123.456"},
		{0.5, trim, ".5"},
		{-0.1, trim, "-.1"},
		{1.5, trim, "1.5"},
		{-10.5, trim, "-10.5"},
		{0, trim, "0"},
		{-1e-12, trim, "0"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in, tt.opts); got != tt.want {
			t.Errorf("FormatNumber(%v, %+v) = %q, want %q", tt.in, tt.opts, got, tt.want)
		}
	}
}

func TestAppendNumber(t *testing.T) {
	buf := []byte("x=")
	buf = AppendNumber(buf, -0.75, WriteOptions{RemoveLeadingZero: true})
	diff(t, "x=-.75", string(buf))

	// The leading zero of a number isn't confused with bytes before it.
	buf = []byte("0")
	buf = AppendNumber(buf, 0.5, WriteOptions{RemoveLeadingZero: true})
	diff(t, "0.5", string(buf))
}

func TestFuzzyEqual(t *testing.T) {
	next := func(v float64, n int) float64 {
		for range n {
			v = math.Nextafter(v, math.Inf(1))
		}
		return v
	}

	tests := []struct {
		a, b float64
		want bool
	}{
		{1, 1, true},
		{0, math.Copysign(0, -1), true},
		{0.1 + 0.2, 0.3, true},
		{1, next(1, 4), true},
		{1, next(1, 5), false},
		{1, -1, false},
		{1e-300, -1e-300, false},
		{1, 1.0001, false},
	}
	for _, tt := range tests {
		if got := FuzzyEqual(tt.a, tt.b); got != tt.want {
			t.Errorf("FuzzyEqual(%v, %v) = %t, want %t", tt.a, tt.b, got, tt.want)
		}
		if got := FuzzyEqual(tt.b, tt.a); got != tt.want {
			t.Errorf("FuzzyEqual(%v, %v) = %t, want %t", tt.b, tt.a, got, tt.want)
		}
	}

	if !FuzzyZero(math.Copysign(0, -1)) {
		t.Error("negative zero isn't fuzzy-zero")
	}
	if FuzzyZero(1e-300) {
		t.Error("1e-300 is fuzzy-zero")
	}
}
