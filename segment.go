package svgpath

import (
	"fmt"
)

// Command is the kind of a path segment.
type Command int

const (
	MoveToCmd Command = iota + 1
	LineToCmd
	HorizontalLineToCmd
	VerticalLineToCmd
	// A cubic Bézier with two control points.
	CurveToCmd
	// A cubic Bézier whose first control point is the reflection of the
	// previous segment's second control point.
	SmoothCurveToCmd
	// A quadratic Bézier.
	QuadraticCmd
	// A quadratic Bézier whose control point is the reflection of the
	// previous segment's control point.
	SmoothQuadraticCmd
	EllipticalArcCmd
	ClosePathCmd
)

func (cmd Command) String() string {
	switch cmd {
	case MoveToCmd:
		return "MoveTo"
	case LineToCmd:
		return "LineTo"
	case HorizontalLineToCmd:
		return "HorizontalLineTo"
	case VerticalLineToCmd:
		return "VerticalLineTo"
	case CurveToCmd:
		return "CurveTo"
	case SmoothCurveToCmd:
		return "SmoothCurveTo"
	case QuadraticCmd:
		return "Quadratic"
	case SmoothQuadraticCmd:
		return "SmoothQuadratic"
	case EllipticalArcCmd:
		return "EllipticalArc"
	case ClosePathCmd:
		return "ClosePath"
	default:
		return fmt.Sprintf("Command(%d)", int(cmd))
	}
}

// Letter returns the command's letter in path data, upper case for absolute
// and lower case for relative coordinates.
func (cmd Command) Letter(abs bool) byte {
	var c byte
	switch cmd {
	case MoveToCmd:
		c = 'm'
	case LineToCmd:
		c = 'l'
	case HorizontalLineToCmd:
		c = 'h'
	case VerticalLineToCmd:
		c = 'v'
	case CurveToCmd:
		c = 'c'
	case SmoothCurveToCmd:
		c = 's'
	case QuadraticCmd:
		c = 'q'
	case SmoothQuadraticCmd:
		c = 't'
	case EllipticalArcCmd:
		c = 'a'
	case ClosePathCmd:
		c = 'z'
	default:
		panic("unreachable")
	}
	if abs {
		c -= 'a' - 'A'
	}
	return c
}

// commandFromLetter returns the command and absoluteness for a path data
// letter. ok is false if c isn't a command letter.
func commandFromLetter(c byte) (cmd Command, abs bool, ok bool) {
	abs = c >= 'A' && c <= 'Z'
	switch c | 0x20 {
	case 'm':
		cmd = MoveToCmd
	case 'l':
		cmd = LineToCmd
	case 'h':
		cmd = HorizontalLineToCmd
	case 'v':
		cmd = VerticalLineToCmd
	case 'c':
		cmd = CurveToCmd
	case 's':
		cmd = SmoothCurveToCmd
	case 'q':
		cmd = QuadraticCmd
	case 't':
		cmd = SmoothQuadraticCmd
	case 'a':
		cmd = EllipticalArcCmd
	case 'z':
		cmd = ClosePathCmd
	default:
		return 0, false, false
	}
	return cmd, abs, true
}

func isCommandLetter(c byte) bool {
	_, _, ok := commandFromLetter(c)
	return ok
}

// Segment is a single path data command. It acts as a tagged union over all
// ten commands; which fields are meaningful depends on the command:
//
//   - MoveTo, LineTo, SmoothQuadratic: X, Y
//   - HorizontalLineTo: X
//   - VerticalLineTo: Y
//   - CurveTo: X1, Y1, X2, Y2, X, Y
//   - SmoothCurveTo: X2, Y2, X, Y
//   - Quadratic: X1, Y1, X, Y
//   - EllipticalArc: Rx, Ry, XAxisRotation, LargeArc, Sweep, X, Y
//   - ClosePath: none
//
// The command is fixed when the segment is constructed. Abs and the
// coordinates may be changed freely.
type Segment struct {
	// We don't use an interface per command so that segments can be modified
	// in place and paths don't need to allocate per segment.

	cmd Command

	// Abs reports whether the coordinates are absolute. For ClosePath it only
	// selects between 'Z' and 'z'.
	Abs bool

	X1, Y1 float64
	X2, Y2 float64
	X, Y   float64

	Rx, Ry float64
	// The rotation of the arc's x axis, in degrees.
	XAxisRotation float64
	LargeArc      bool
	Sweep         bool
}

func MoveTo(abs bool, x, y float64) Segment {
	return Segment{cmd: MoveToCmd, Abs: abs, X: x, Y: y}
}

func LineTo(abs bool, x, y float64) Segment {
	return Segment{cmd: LineToCmd, Abs: abs, X: x, Y: y}
}

func HorizontalLineTo(abs bool, x float64) Segment {
	return Segment{cmd: HorizontalLineToCmd, Abs: abs, X: x}
}

func VerticalLineTo(abs bool, y float64) Segment {
	return Segment{cmd: VerticalLineToCmd, Abs: abs, Y: y}
}

func CurveTo(abs bool, x1, y1, x2, y2, x, y float64) Segment {
	return Segment{cmd: CurveToCmd, Abs: abs, X1: x1, Y1: y1, X2: x2, Y2: y2, X: x, Y: y}
}

func SmoothCurveTo(abs bool, x2, y2, x, y float64) Segment {
	return Segment{cmd: SmoothCurveToCmd, Abs: abs, X2: x2, Y2: y2, X: x, Y: y}
}

func Quadratic(abs bool, x1, y1, x, y float64) Segment {
	return Segment{cmd: QuadraticCmd, Abs: abs, X1: x1, Y1: y1, X: x, Y: y}
}

func SmoothQuadratic(abs bool, x, y float64) Segment {
	return Segment{cmd: SmoothQuadraticCmd, Abs: abs, X: x, Y: y}
}

// EllipticalArc returns an arc segment. xAxisRotation is in degrees.
func EllipticalArc(abs bool, rx, ry, xAxisRotation float64, largeArc, sweep bool, x, y float64) Segment {
	return Segment{
		cmd:           EllipticalArcCmd,
		Abs:           abs,
		Rx:            rx,
		Ry:            ry,
		XAxisRotation: xAxisRotation,
		LargeArc:      largeArc,
		Sweep:         sweep,
		X:             x,
		Y:             y,
	}
}

func ClosePath(abs bool) Segment {
	return Segment{cmd: ClosePathCmd, Abs: abs}
}

// Command returns the segment's command. It is zero for the zero Segment.
func (seg Segment) Command() Command { return seg.cmd }

func (seg Segment) IsAbsolute() bool { return seg.Abs }
func (seg Segment) IsRelative() bool { return !seg.Abs }

// EndX returns the x coordinate of the segment's end point, if the segment has
// one. VerticalLineTo and ClosePath don't.
func (seg Segment) EndX() (float64, bool) {
	switch seg.cmd {
	case VerticalLineToCmd, ClosePathCmd:
		return 0, false
	default:
		return seg.X, true
	}
}

// EndY returns the y coordinate of the segment's end point, if the segment has
// one. HorizontalLineTo and ClosePath don't.
func (seg Segment) EndY() (float64, bool) {
	switch seg.cmd {
	case HorizontalLineToCmd, ClosePathCmd:
		return 0, false
	default:
		return seg.Y, true
	}
}

// Translate returns the segment with v added to all of its points. Arc radii
// and rotation are not points and stay the same.
func (seg Segment) Translate(v Vec2) Segment {
	switch seg.cmd {
	case MoveToCmd, LineToCmd, SmoothQuadraticCmd, EllipticalArcCmd:
		seg.X += v.X
		seg.Y += v.Y
	case HorizontalLineToCmd:
		seg.X += v.X
	case VerticalLineToCmd:
		seg.Y += v.Y
	case CurveToCmd:
		seg.X1 += v.X
		seg.Y1 += v.Y
		seg.X2 += v.X
		seg.Y2 += v.Y
		seg.X += v.X
		seg.Y += v.Y
	case SmoothCurveToCmd:
		seg.X2 += v.X
		seg.Y2 += v.Y
		seg.X += v.X
		seg.Y += v.Y
	case QuadraticCmd:
		seg.X1 += v.X
		seg.Y1 += v.Y
		seg.X += v.X
		seg.Y += v.Y
	case ClosePathCmd:
	default:
		panic("unreachable")
	}
	return seg
}

// coords returns the numbers written for the segment, in path data order.
// Arcs return only their radii and rotation; the flags and end point are
// written separately.
func (seg Segment) coords() ([6]float64, int) {
	switch seg.cmd {
	case MoveToCmd, LineToCmd, SmoothQuadraticCmd:
		return [6]float64{seg.X, seg.Y}, 2
	case HorizontalLineToCmd:
		return [6]float64{seg.X}, 1
	case VerticalLineToCmd:
		return [6]float64{seg.Y}, 1
	case CurveToCmd:
		return [6]float64{seg.X1, seg.Y1, seg.X2, seg.Y2, seg.X, seg.Y}, 6
	case SmoothCurveToCmd:
		return [6]float64{seg.X2, seg.Y2, seg.X, seg.Y}, 4
	case QuadraticCmd:
		return [6]float64{seg.X1, seg.Y1, seg.X, seg.Y}, 4
	case EllipticalArcCmd:
		return [6]float64{seg.Rx, seg.Ry, seg.XAxisRotation}, 3
	case ClosePathCmd:
		return [6]float64{}, 0
	default:
		panic("unreachable")
	}
}

// FuzzyEqual reports whether seg and o have the same command, absoluteness
// and flags, and fuzzy-equal coordinates.
func (seg Segment) FuzzyEqual(o Segment) bool {
	if seg.cmd != o.cmd || seg.Abs != o.Abs {
		return false
	}
	if seg.cmd == EllipticalArcCmd {
		if seg.LargeArc != o.LargeArc || seg.Sweep != o.Sweep ||
			!FuzzyEqual(seg.X, o.X) || !FuzzyEqual(seg.Y, o.Y) {
			return false
		}
	}
	a, n := seg.coords()
	b, _ := o.coords()
	for i := range n {
		if !FuzzyEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// String returns the segment in path data notation, using the default write
// options.
func (seg Segment) String() string {
	if seg.cmd == 0 {
		return "InvalidSegment"
	}
	return Path{seg}.String()
}
