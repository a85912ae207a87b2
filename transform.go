package svgpath

import "math"

// AppendTransform appends aff to buf as the value of an SVG transform
// attribute, such as "matrix(1 0 0 1 20 30)". With
// opts.SimplifyTransformMatrices, transforms that are a pure translation,
// scale or rotation are written as translate(), scale() or rotate() instead.
// The arguments of matrix() and translate() are separated by
// opts.ListSeparator.
func AppendTransform(buf []byte, aff Affine, opts WriteOptions) []byte {
	if !opts.SimplifyTransformMatrices {
		return appendMatrix(buf, aff, opts)
	}

	switch {
	case isTranslate(aff):
		buf = append(buf, "translate("...)
		buf = AppendNumber(buf, aff.N4, opts)
		if !FuzzyZero(aff.N5) {
			buf = opts.ListSeparator.appendTo(buf)
			buf = AppendNumber(buf, aff.N5, opts)
		}
		return append(buf, ')')
	case isScale(aff):
		buf = append(buf, "scale("...)
		buf = AppendNumber(buf, aff.N0, opts)
		if !FuzzyEqual(aff.N0, aff.N3) {
			buf = opts.ListSeparator.appendTo(buf)
			buf = AppendNumber(buf, aff.N3, opts)
		}
		return append(buf, ')')
	case !hasTranslate(aff):
		a := rotation(aff)
		sx, sy := scaleFactors(aff)
		skx, sky := skewAngles(aff)
		if nearlyEqual(a, skx) && nearlyEqual(a, sky) && nearlyEqual(sx, 1) && nearlyEqual(sy, 1) {
			buf = append(buf, "rotate("...)
			buf = AppendNumber(buf, a, opts)
			return append(buf, ')')
		}
	}
	return appendMatrix(buf, aff, opts)
}

// FormatTransform returns aff as written by AppendTransform.
func FormatTransform(aff Affine, opts WriteOptions) string {
	return string(AppendTransform(nil, aff, opts))
}

func appendMatrix(buf []byte, aff Affine, opts WriteOptions) []byte {
	buf = append(buf, "matrix("...)
	for i, v := range aff.Coefficients() {
		if i > 0 {
			buf = opts.ListSeparator.appendTo(buf)
		}
		buf = AppendNumber(buf, v, opts)
	}
	return append(buf, ')')
}

func isTranslate(aff Affine) bool {
	return FuzzyEqual(aff.N0, 1) && FuzzyZero(aff.N1) &&
		FuzzyZero(aff.N2) && FuzzyEqual(aff.N3, 1) &&
		hasTranslate(aff)
}

func isScale(aff Affine) bool {
	return (!FuzzyEqual(aff.N0, 1) || !FuzzyEqual(aff.N3, 1)) &&
		FuzzyZero(aff.N1) && FuzzyZero(aff.N2) &&
		!hasTranslate(aff)
}

func hasTranslate(aff Affine) bool {
	return !FuzzyZero(aff.N4) || !FuzzyZero(aff.N5)
}

// rotation returns the rotation angle of aff in degrees.
func rotation(aff Affine) float64 {
	a := math.Atan(-aff.N1/aff.N0) * 180 / math.Pi
	if aff.N1 != aff.N2 {
		a = -a
	}
	return a
}

func scaleFactors(aff Affine) (sx, sy float64) {
	return math.Hypot(aff.N0, aff.N2), math.Hypot(aff.N1, aff.N3)
}

// skewAngles returns the skew angles of aff in degrees.
func skewAngles(aff Affine) (skx, sky float64) {
	const deg = 180 / math.Pi
	return deg*math.Atan2(aff.N3, aff.N2) - 90, deg * math.Atan2(aff.N1, aff.N0)
}

// nearlyEqual compares the results of the trigonometric decomposition in
// AppendTransform, which can differ by more than a few ULPs depending on how
// they were computed.
func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*max(1, math.Abs(a), math.Abs(b))
}
