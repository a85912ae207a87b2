package svgpath

import (
	"math"
	"strconv"
)

// maxULPs is the distance, in units in the last place, within which two
// floats are considered equal by FuzzyEqual.
const maxULPs = 4

// FuzzyEqual reports whether a and b are equal or at most 4 representable
// float64 values apart. Values of different sign are never fuzzy-equal, except
// for positive and negative zero.
func FuzzyEqual(a, b float64) bool {
	if a == b {
		return true
	}
	if math.Signbit(a) != math.Signbit(b) {
		return false
	}
	d := int64(math.Float64bits(a)) - int64(math.Float64bits(b))
	return d >= -maxULPs && d <= maxULPs
}

// FuzzyZero reports whether v is fuzzy-equal to zero.
func FuzzyZero(v float64) bool {
	return FuzzyEqual(v, 0)
}

// AppendNumber appends the textual representation of v to buf and returns the
// extended buffer.
//
// Integral values are written without a fractional part. Other values are
// rounded to 11 decimal places first, so that values such as
// 29.999999999999996 are written as 30. If opts.RemoveLeadingZero is set, the
// zero in front of the decimal point of values in (-1, 1) is omitted.
func AppendNumber(buf []byte, v float64, opts WriteOptions) []byte {
	_, frac := math.Modf(v)
	if FuzzyZero(frac) {
		if v == 0 {
			// Avoid writing negative zero.
			return append(buf, '0')
		}
		return strconv.AppendFloat(buf, v, 'f', 0, 64)
	}

	r := math.Round(v*1e11) / 1e11
	if math.IsInf(r, 0) || math.IsNaN(r) {
		r = v
	}
	if r == 0 {
		// Drop the sign of negative zero.
		r = 0
	}
	start := len(buf)
	buf = strconv.AppendFloat(buf, r, 'f', -1, 64)
	if opts.RemoveLeadingZero {
		buf = removeLeadingZero(buf, start)
	}
	return buf
}

// FormatNumber returns the textual representation of v, as written by
// AppendNumber.
func FormatNumber(v float64, opts WriteOptions) string {
	return string(AppendNumber(nil, v, opts))
}

// removeLeadingZero rewrites a number starting at buf[start] from "0.x" to
// ".x" and from "-0.x" to "-.x".
func removeLeadingZero(buf []byte, start int) []byte {
	num := buf[start:]
	zero := -1
	switch {
	case len(num) > 2 && num[0] == '0' && num[1] == '.':
		zero = start
	case len(num) > 3 && num[0] == '-' && num[1] == '0' && num[2] == '.':
		zero = start + 1
	}
	if zero == -1 {
		return buf
	}
	copy(buf[zero:], buf[zero+1:])
	return buf[:len(buf)-1]
}
