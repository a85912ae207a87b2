package svgpath

import (
	"math"
	"testing"
)

func outline(t *testing.T, s string) BezPath {
	t.Helper()
	p, err := ParsePath(s)
	if err != nil {
		t.Fatalf("couldn't parse %q: %s", s, err)
	}
	return p.Outline(0.1)
}

func TestOutlineLines(t *testing.T) {
	got := outline(t, "M 10 20 H 30 V 40 h -10 Z l 5 5")
	want := BezPath{
		MoveToElement(Pt(10, 20)),
		LineToElement(Pt(30, 20)),
		LineToElement(Pt(30, 40)),
		LineToElement(Pt(20, 40)),
		ClosePathElement(),
		MoveToElement(Pt(10, 20)),
		LineToElement(Pt(15, 25)),
	}
	diff(t, want, got)
}

func TestOutlineClosePathFollowedByMoveTo(t *testing.T) {
	got := outline(t, "M 0 0 L 10 0 z m 5 5 l 1 1")
	want := BezPath{
		MoveToElement(Pt(0, 0)),
		LineToElement(Pt(10, 0)),
		ClosePathElement(),
		MoveToElement(Pt(5, 5)),
		LineToElement(Pt(6, 6)),
	}
	diff(t, want, got)
}

func TestOutlineSmoothCubic(t *testing.T) {
	got := outline(t, "M 0 0 C 10 0 20 10 20 20 s 10 20 20 20")
	want := BezPath{
		MoveToElement(Pt(0, 0)),
		CubicToElement(Pt(10, 0), Pt(20, 10), Pt(20, 20)),
		CubicToElement(Pt(20, 30), Pt(30, 40), Pt(40, 40)),
	}
	diff(t, want, got)
}

func TestOutlineSmoothCubicWithoutPreviousCubic(t *testing.T) {
	got := outline(t, "M 0 0 L 10 0 S 20 10 20 20")
	want := BezPath{
		MoveToElement(Pt(0, 0)),
		LineToElement(Pt(10, 0)),
		CubicToElement(Pt(10, 0), Pt(20, 10), Pt(20, 20)),
	}
	diff(t, want, got)
}

func TestOutlineSmoothQuadratic(t *testing.T) {
	got := outline(t, "M 0 0 Q 10 10 20 0 T 40 0 T 60 0")
	want := BezPath{
		MoveToElement(Pt(0, 0)),
		QuadToElement(Pt(10, 10), Pt(20, 0)),
		QuadToElement(Pt(30, -10), Pt(40, 0)),
		QuadToElement(Pt(50, 10), Pt(60, 0)),
	}
	diff(t, want, got)
}

func TestOutlineSmoothQuadraticAfterCubic(t *testing.T) {
	// The control point of a cubic isn't reflected by T.
	got := outline(t, "M 0 0 C 0 10 10 10 10 0 T 20 0")
	want := BezPath{
		MoveToElement(Pt(0, 0)),
		CubicToElement(Pt(0, 10), Pt(10, 10), Pt(10, 0)),
		QuadToElement(Pt(10, 0), Pt(20, 0)),
	}
	diff(t, want, got)
}

func TestOutlineDegenerateArcs(t *testing.T) {
	got := outline(t, "M 0 0 A 0 5 0 0 1 10 10 A 5 5 0 0 1 10 10 L 20 20")
	want := BezPath{
		MoveToElement(Pt(0, 0)),
		LineToElement(Pt(10, 10)),
		LineToElement(Pt(20, 20)),
	}
	diff(t, want, got)
}

func TestOutlineArc(t *testing.T) {
	const epsilon = 1e-9
	got := outline(t, "M 0 0 A 10 10 0 0 1 20 0")
	if len(got) != 3 {
		t.Fatalf("got %d elements, want 3: %v", len(got), got)
	}
	for _, el := range got[1:] {
		if el.Kind != CubicToKind {
			t.Fatalf("got %s, want a cubic", el)
		}
	}
	// Positive sweep runs through negative y, which is up in SVG.
	assertNear(t, got[1].P2, Pt(10, -10), epsilon)
	assertNear(t, got[2].P2, Pt(20, 0), epsilon)
}

func TestArcFromEndpointsScalesRadii(t *testing.T) {
	// The radii are too small to reach; they get scaled up to a half circle.
	arc, ok := arcFromEndpoints(Pt(0, 0), Pt(20, 0), Vec(1, 1), 0, false, true)
	if !ok {
		t.Fatal("got a straight line")
	}
	assertNear(t, Point(arc.Radii), Pt(10, 10), 1e-9)
	assertNear(t, arc.Center, Pt(10, 0), 1e-9)
	if math.Abs(arc.SweepAngle-math.Pi) > 1e-9 {
		t.Errorf("got sweep angle %v, want π", arc.SweepAngle)
	}
}

func TestArcFromEndpointsLargeArc(t *testing.T) {
	arc, ok := arcFromEndpoints(Pt(0, 0), Pt(10, 10), Vec(10, 10), 0, true, false)
	if !ok {
		t.Fatal("got a straight line")
	}
	if math.Abs(arc.SweepAngle) <= math.Pi {
		t.Errorf("got sweep angle %v, want a large arc", arc.SweepAngle)
	}
	if arc.SweepAngle > 0 {
		t.Errorf("got sweep angle %v, want a negative sweep", arc.SweepAngle)
	}
	assertNear(t, arc.Center, Pt(0, 10), 1e-9)
}

func TestBezPathToPath(t *testing.T) {
	p := outline(t, "m 0 0 h 10 q 5 5 10 0 c 1 1 2 2 3 3 z").Path()
	diff(t, "M 0 0 L 10 0 Q 15 5 20 0 C 21 1 22 2 23 3 Z", p.String())
}

func TestBezPathTransform(t *testing.T) {
	p := outline(t, "M 0 0 L 10 0 Q 10 10 0 10 Z").Transform(Translate(Vec(1, 2)))
	want := BezPath{
		MoveToElement(Pt(1, 2)),
		LineToElement(Pt(11, 2)),
		QuadToElement(Pt(11, 12), Pt(1, 12)),
		ClosePathElement(),
	}
	diff(t, want, p)
}

func TestControlBox(t *testing.T) {
	// a sort of map ping looking thing drawn with a single cubic
	// cbox is wildly different than tight box
	var p BezPath
	p.MoveTo(Pt(200, 300))
	p.CubicTo(Pt(50, 50), Pt(350, 50), Pt(200, 300))
	diff(t, Rect{50, 50, 350, 300}, p.ControlBox())

	diff(t, Rect{}, BezPath{}.ControlBox())
}

func TestReverseUnclosed(t *testing.T) {
	reverseHelper(
		t,
		[]PathElement{
			MoveToElement(Pt(10, 10)),
			QuadToElement(Pt(40, 40), Pt(60, 10)),
			LineToElement(Pt(100, 10)),
			CubicToElement(Pt(125, 10), Pt(150, 50), Pt(125, 60)),
		},
		[]PathElement{
			MoveToElement(Pt(125, 60)),
			CubicToElement(Pt(150, 50), Pt(125, 10), Pt(100, 10)),
			LineToElement(Pt(60, 10)),
			QuadToElement(Pt(40, 40), Pt(10, 10)),
		},
	)
}

func TestReverseClosedTriangle(t *testing.T) {
	reverseHelper(
		t,
		[]PathElement{
			MoveToElement(Pt(100, 100)),
			LineToElement(Pt(150, 200)),
			LineToElement(Pt(50, 200)),
			ClosePathElement(),
		},
		[]PathElement{
			MoveToElement(Pt(50, 200)),
			LineToElement(Pt(150, 200)),
			LineToElement(Pt(100, 100)),
			ClosePathElement(),
		},
	)
}

func TestReverseMultipleMoves(t *testing.T) {
	reverseHelper(
		t,
		[]PathElement{
			MoveToElement(Pt(2.0, 2.0)),
			MoveToElement(Pt(3.0, 3.0)),
			ClosePathElement(),
			MoveToElement(Pt(4.0, 4.0)),
		},
		[]PathElement{
			MoveToElement(Pt(2.0, 2.0)),
			MoveToElement(Pt(3.0, 3.0)),
			ClosePathElement(),
			MoveToElement(Pt(4.0, 4.0)),
		},
	)
}

func TestReverseEmpty(t *testing.T) {
	reverseHelper(t, []PathElement{}, []PathElement{})
}

func reverseHelper(t *testing.T, contour, want []PathElement) {
	t.Helper()

	var got []PathElement = BezPath(contour).ReverseSubpaths()
	diff(t, want, got)
}
