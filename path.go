package svgpath

import (
	"iter"
	"slices"
)

// Path is a sequence of path data segments.
//
// A path obtained from ParsePath always starts with a MoveTo. Paths built by
// other means aren't checked.
type Path []Segment

// Segments returns an iterator over the path's segments.
func (p Path) Segments() iter.Seq[Segment] { return slices.Values(p) }

// Clone returns a copy of the path that doesn't share storage with p.
func (p Path) Clone() Path { return slices.Clone(p) }

// Push appends a segment to the path.
func (p *Path) Push(seg Segment) {
	*p = append(*p, seg)
}

// MoveTo appends an absolute MoveTo segment.
func (p *Path) MoveTo(x, y float64) { p.Push(MoveTo(true, x, y)) }

// RelMoveTo appends a relative MoveTo segment.
func (p *Path) RelMoveTo(dx, dy float64) { p.Push(MoveTo(false, dx, dy)) }

func (p *Path) LineTo(x, y float64) { p.Push(LineTo(true, x, y)) }
func (p *Path) RelLineTo(dx, dy float64) { p.Push(LineTo(false, dx, dy)) }

func (p *Path) HorizontalLineTo(x float64) { p.Push(HorizontalLineTo(true, x)) }
func (p *Path) RelHorizontalLineTo(dx float64) { p.Push(HorizontalLineTo(false, dx)) }

func (p *Path) VerticalLineTo(y float64) { p.Push(VerticalLineTo(true, y)) }
func (p *Path) RelVerticalLineTo(dy float64) { p.Push(VerticalLineTo(false, dy)) }

func (p *Path) CurveTo(x1, y1, x2, y2, x, y float64) {
	p.Push(CurveTo(true, x1, y1, x2, y2, x, y))
}

func (p *Path) RelCurveTo(dx1, dy1, dx2, dy2, dx, dy float64) {
	p.Push(CurveTo(false, dx1, dy1, dx2, dy2, dx, dy))
}

func (p *Path) SmoothCurveTo(x2, y2, x, y float64) {
	p.Push(SmoothCurveTo(true, x2, y2, x, y))
}

func (p *Path) RelSmoothCurveTo(dx2, dy2, dx, dy float64) {
	p.Push(SmoothCurveTo(false, dx2, dy2, dx, dy))
}

func (p *Path) Quadratic(x1, y1, x, y float64) {
	p.Push(Quadratic(true, x1, y1, x, y))
}

func (p *Path) RelQuadratic(dx1, dy1, dx, dy float64) {
	p.Push(Quadratic(false, dx1, dy1, dx, dy))
}

func (p *Path) SmoothQuadratic(x, y float64) { p.Push(SmoothQuadratic(true, x, y)) }
func (p *Path) RelSmoothQuadratic(dx, dy float64) { p.Push(SmoothQuadratic(false, dx, dy)) }

// ArcTo appends an absolute EllipticalArc segment. xAxisRotation is in
// degrees.
func (p *Path) ArcTo(rx, ry, xAxisRotation float64, largeArc, sweep bool, x, y float64) {
	p.Push(EllipticalArc(true, rx, ry, xAxisRotation, largeArc, sweep, x, y))
}

// RelArcTo appends a relative EllipticalArc segment.
func (p *Path) RelArcTo(rx, ry, xAxisRotation float64, largeArc, sweep bool, dx, dy float64) {
	p.Push(EllipticalArc(false, rx, ry, xAxisRotation, largeArc, sweep, dx, dy))
}

func (p *Path) ClosePath() { p.Push(ClosePath(true)) }
func (p *Path) RelClosePath() { p.Push(ClosePath(false)) }

// FuzzyEqual reports whether both paths have the same length and pairwise
// fuzzy-equal segments.
func (p Path) FuzzyEqual(o Path) bool {
	return slices.EqualFunc(p, o, Segment.FuzzyEqual)
}
