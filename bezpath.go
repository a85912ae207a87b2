package svgpath

import (
	"fmt"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic bezier using the current location and the two points.
	QuadToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is an element of a Bézier path. Unlike a Segment, it always
// uses absolute coordinates, and its kinds are limited to what a renderer
// needs.
//
// A valid path has a MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case QuadToKind:
		kind = "QuadTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveToElement(el.P0.Transform(aff))
	case LineToKind:
		return LineToElement(el.P0.Transform(aff))
	case QuadToKind:
		return QuadToElement(el.P0.Transform(aff), el.P1.Transform(aff))
	case CubicToKind:
		return CubicToElement(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePathElement()
	default:
		return PathElement{}
	}
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func MoveToElement(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineToElement(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadToElement(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicToElement(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePathElement() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// BezPath is a path made of absolute lines, quadratic and cubic Béziers. It is
// the outline of a Path, with smooth curves and arcs resolved.
//
// Conceptually, a BezPath contains zero or more subpaths. Each subpath
// always begins with a MoveTo, then has zero or more LineTo, QuadTo,
// and CubicTo elements, and optionally ends with a ClosePath.
type BezPath []PathElement

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Transform returns a new path with an affine transformation applied to it.
func (p BezPath) Transform(aff Affine) BezPath {
	return slices.Collect(Transform(p.Elements(), aff))
}

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

func (p *BezPath) MoveTo(pt Point)          { p.Push(MoveToElement(pt)) }
func (p *BezPath) LineTo(pt Point)          { p.Push(LineToElement(pt)) }
func (p *BezPath) QuadTo(p1, p2 Point)      { p.Push(QuadToElement(p1, p2)) }
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicToElement(p1, p2, p3)) }
func (p *BezPath) ClosePath()               { p.Push(ClosePathElement()) }

// ControlBox returns a rectangle that conservatively encloses the path. It
// uses control points directly rather than computing tight bounds for curve
// elements. The control box of an empty path is the zero Rect.
func (p BezPath) ControlBox() Rect {
	first := true
	var cbox Rect
	addPt := func(pt Point) {
		if first {
			first = false
			cbox = NewRectFromPoints(pt, pt)
		} else {
			cbox = cbox.UnionPoint(pt)
		}
	}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind, LineToKind:
			addPt(el.P0)
		case QuadToKind:
			addPt(el.P0)
			addPt(el.P1)
		case CubicToKind:
			addPt(el.P0)
			addPt(el.P1)
			addPt(el.P2)
		case ClosePathKind:
		}
	}
	return cbox
}

// Path converts the outline back to path data, using absolute MoveTo, LineTo,
// Quadratic, CurveTo and ClosePath segments.
func (p BezPath) Path() Path {
	out := make(Path, 0, len(p))
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			out.MoveTo(el.P0.X, el.P0.Y)
		case LineToKind:
			out.LineTo(el.P0.X, el.P0.Y)
		case QuadToKind:
			out.Quadratic(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y)
		case CubicToKind:
			out.CurveTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case ClosePathKind:
			out.ClosePath()
		default:
			panic("unreachable")
		}
	}
	return out
}

// ReverseSubpaths returns a new path with the winding direction of all
// subpaths reversed.
func (p BezPath) ReverseSubpaths() BezPath {
	elements := p
	startIdx := 1
	startPt := Point{}
	reversed := BezPath(make([]PathElement, 0, len(elements)))
	// Pending move is used to capture degenerate subpaths that should
	// remain in the reversed output.
	pendingMove := false
	for ix, el := range elements {
		switch el.Kind {
		case MoveToKind:
			if pendingMove {
				reversed.MoveTo(startPt)
			}
			if startIdx < ix {
				reverseSubpath(startPt, elements[startIdx:ix], &reversed)
			}
			pendingMove = true
			startPt = el.P0
			startIdx = ix + 1
		case ClosePathKind:
			if startIdx <= ix {
				reverseSubpath(startPt, elements[startIdx:ix], &reversed)
			}
			reversed.ClosePath()
			startIdx = ix + 1
			pendingMove = false
		default:
			pendingMove = false
		}
	}
	if startIdx < len(elements) {
		reverseSubpath(startPt, elements[startIdx:], &reversed)
	} else if pendingMove {
		reversed.MoveTo(startPt)
	}
	return reversed
}

// reverseSubpath appends the reversal of els, which starts at startPt, to
// reversed. els must not contain MoveTo or ClosePath elements.
func reverseSubpath(startPt Point, els []PathElement, reversed *BezPath) {
	endPt := startPt
	if len(els) > 0 {
		endPt, _ = els[len(els)-1].EndPoint()
	}
	reversed.MoveTo(endPt)
	for ix := len(els) - 1; ix >= 0; ix-- {
		el := &els[ix]

		endPt := startPt
		if ix > 0 {
			endPt, _ = els[ix-1].EndPoint()
		}
		switch el.Kind {
		case LineToKind:
			reversed.LineTo(endPt)
		case QuadToKind:
			reversed.QuadTo(el.P0, endPt)
		case CubicToKind:
			reversed.CubicTo(el.P1, el.P0, endPt)
		default:
			panic("reverseSubpath expects MoveTo and ClosePath to be removed")
		}
	}
}

// PathElements returns the outline of the path as Bézier path elements in
// absolute coordinates. Horizontal and vertical lines become LineTo elements,
// the implied control points of smooth curves are resolved, and arcs are
// approximated by cubic Béziers within tolerance. A subpath that continues
// after a ClosePath without a MoveTo gets an explicit MoveTo to the start of
// the closed subpath.
//
// An arc whose end point equals the current point is dropped, and an arc with
// a zero radius becomes a line.
func (p Path) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		abs := p.Clone()
		abs.ToAbsolute()

		var (
			cur, start Point
			// The second control point of the previous cubic, for S.
			cubicCtrl option[Point]
			// The control point of the previous quadratic, for T.
			quadCtrl option[Point]
			closed   bool
		)
		for _, seg := range abs {
			if closed && seg.cmd != MoveToCmd {
				if !yield(MoveToElement(start)) {
					return
				}
			}
			closed = false

			end := Pt(seg.X, seg.Y)
			var el option[PathElement]
			nextCubic, nextQuad := option[Point]{}, option[Point]{}
			switch seg.cmd {
			case MoveToCmd:
				start = end
				el = some(MoveToElement(end))
			case LineToCmd:
				el = some(LineToElement(end))
			case HorizontalLineToCmd:
				end = Pt(seg.X, cur.Y)
				el = some(LineToElement(end))
			case VerticalLineToCmd:
				end = Pt(cur.X, seg.Y)
				el = some(LineToElement(end))
			case CurveToCmd:
				c2 := Pt(seg.X2, seg.Y2)
				nextCubic.set(c2)
				el = some(CubicToElement(Pt(seg.X1, seg.Y1), c2, end))
			case SmoothCurveToCmd:
				c1 := cur
				if c, ok := cubicCtrl.get(); ok {
					c1 = c.Reflect(cur)
				}
				c2 := Pt(seg.X2, seg.Y2)
				nextCubic.set(c2)
				el = some(CubicToElement(c1, c2, end))
			case QuadraticCmd:
				c1 := Pt(seg.X1, seg.Y1)
				nextQuad.set(c1)
				el = some(QuadToElement(c1, end))
			case SmoothQuadraticCmd:
				c1 := cur
				if c, ok := quadCtrl.get(); ok {
					c1 = c.Reflect(cur)
				}
				nextQuad.set(c1)
				el = some(QuadToElement(c1, end))
			case EllipticalArcCmd:
				if end == cur {
					break
				}
				arc, ok := arcFromEndpoints(cur, end, Vec(seg.Rx, seg.Ry), seg.XAxisRotation, seg.LargeArc, seg.Sweep)
				if !ok {
					el = some(LineToElement(end))
					break
				}
				for c := range arc.cubics(tolerance) {
					if !yield(c) {
						return
					}
				}
			case ClosePathCmd:
				end = start
				closed = true
				el = some(ClosePathElement())
			default:
				panic("unreachable")
			}

			if e, ok := el.get(); ok && !yield(e) {
				return
			}
			cur = end
			cubicCtrl, quadCtrl = nextCubic, nextQuad
		}
	}
}

// Outline collects PathElements into a BezPath.
func (p Path) Outline(tolerance float64) BezPath {
	return slices.Collect(p.PathElements(tolerance))
}
