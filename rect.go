package svgpath

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle, spanning from (X0, Y0) to (X1, Y1).
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect{(%g, %g), (%g, %g)}", r.X0, r.Y0, r.X1, r.Y1)
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Area returns the area of the rectangle. It is negative if exactly one of the
// width and height is negative.
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
//
// Results are valid only if width and height are non-negative.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate expands a rectangle by a constant amount in both directions.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

// Translate returns r moved by v.
func (r Rect) Translate(v Vec2) Rect {
	return Rect{
		X0: r.X0 + v.X,
		Y0: r.Y0 + v.Y,
		X1: r.X1 + v.X,
		Y1: r.Y1 + v.Y,
	}
}

// ContainedRectWithAspectRatio returns the largest possible rectangle that is
// fully contained in this rectangle, with the given aspect ratio.
//
// The aspect ratio is specified fractionally, as height / width.
//
// The resulting rectangle will be centered if it is smaller than the input
// rectangle.
func (r Rect) ContainedRectWithAspectRatio(aspectRatio float64) Rect {
	width, height := r.Width(), r.Height()
	rAspect := height / width

	if math.Abs(rAspect-aspectRatio) < 1e-9 {
		return r
	} else if math.Abs(rAspect) < math.Abs(aspectRatio) {
		// shrink x to fit
		newWidth := height / aspectRatio
		gap := (width - newWidth) * 0.5
		return Rect{r.X0 + gap, r.Y0, r.X1 - gap, r.Y1}
	} else {
		// shrink y to fit
		newHeight := width * aspectRatio
		gap := (height - newHeight) * 0.5
		return Rect{r.X0, r.Y0 + gap, r.X1, r.Y1 - gap}
	}
}

// Fit returns the transform that maps r onto the largest rectangle with the
// same aspect ratio that fits into dst, centered in dst. Degenerate
// rectangles of zero width or height are scaled uniformly along their other
// axis; if both are zero, Fit only translates r's center onto dst's.
func (r Rect) Fit(dst Rect) Affine {
	r, dst = r.Abs(), dst.Abs()
	w, h := r.Width(), r.Height()
	switch {
	case w == 0 && h == 0:
		return Translate(dst.Center().Sub(r.Center()))
	case w == 0:
		s := dst.Height() / h
		return Translate(Vec2(dst.Center())).Mul(Scale(s, s)).Mul(Translate(Vec2(r.Center()).Negate()))
	case h == 0:
		s := dst.Width() / w
		return Translate(Vec2(dst.Center())).Mul(Scale(s, s)).Mul(Translate(Vec2(r.Center()).Negate()))
	}
	target := dst.ContainedRectWithAspectRatio(h / w)
	return MapUnitSquare(target).Mul(MapUnitSquare(r).Invert())
}
