package svgpath

import (
	"iter"
	"math"
)

// Arc is an elliptical arc in center parameterization.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	// Rotation of the ellipse's x axis, in radians.
	XRotation float64
}

// arcFromEndpoints converts an arc in the endpoint parameterization used by
// path data into center parameterization, following the conversion in
// appendix F.6.5 of SVG 1.1. xRotation is in degrees. Radii that are too
// small to reach to are scaled up. It reports false if the arc is drawn as a
// straight line instead, which is the case when either radius is zero.
// Callers must not pass an arc whose end point equals from.
func arcFromEndpoints(from, to Point, radii Vec2, xRotation float64, large, sweep bool) (Arc, bool) {
	rx, ry := math.Abs(radii.X), math.Abs(radii.Y)
	if rx <= 1e-5 || ry <= 1e-5 {
		return Arc{}, false
	}

	phi := math.Mod(xRotation*math.Pi/180, 2*math.Pi)
	sinPhi, cosPhi := math.Sincos(phi)
	hd := Vec((from.X-to.X)*0.5, (from.Y-to.Y)*0.5)
	hs := Vec((from.X+to.X)*0.5, (from.Y+to.Y)*0.5)

	// F.6.5.1
	p := Vec(cosPhi*hd.X+sinPhi*hd.Y, -sinPhi*hd.X+cosPhi*hd.Y)

	// F.6.6
	if rf := p.X*p.X/(rx*rx) + p.Y*p.Y/(ry*ry); rf > 1 {
		s := math.Sqrt(rf)
		rx *= s
		ry *= s
	}

	// F.6.5.2
	rxry := rx * ry
	rxpy := rx * p.Y
	rypx := ry * p.X
	sumSq := rxpy*rxpy + rypx*rypx
	sign := 1.0
	if large == sweep {
		sign = -1
	}
	coe := sign * math.Sqrt(math.Abs((rxry*rxry-sumSq)/sumSq))
	tc := Vec(coe*rxpy/ry, -coe*rypx/rx)

	// F.6.5.3
	center := Pt(cosPhi*tc.X-sinPhi*tc.Y+hs.X, sinPhi*tc.X+cosPhi*tc.Y+hs.Y)

	startV := Vec((p.X-tc.X)/rx, (p.Y-tc.Y)/ry)
	endV := Vec((-p.X-tc.X)/rx, (-p.Y-tc.Y)/ry)
	start := startV.Angle()
	sweepAngle := math.Mod(endV.Angle()-start, 2*math.Pi)
	if sweep && sweepAngle < 0 {
		sweepAngle += 2 * math.Pi
	} else if !sweep && sweepAngle > 0 {
		sweepAngle -= 2 * math.Pi
	}

	return Arc{
		Center:     center,
		Radii:      Vec(rx, ry),
		StartAngle: start,
		SweepAngle: sweepAngle,
		XRotation:  phi,
	}, true
}

func (a Arc) cubics(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		scaledError := max(a.Radii.X, a.Radii.Y) / tolerance
		// Number of subdivisions per ellipse based on error tolerance.
		// Note: this may slightly underestimate the error for quadrants.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := math.Ceil(nError * math.Abs(a.SweepAngle) * (1.0 / (2.0 * math.Pi)))
		angleStep := a.SweepAngle / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle)
		angle0 := a.StartAngle
		p0 := sampleEllipse(a.Radii, a.XRotation, angle0)

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Add(sampleEllipse(a.Radii, a.XRotation, angle0+math.Pi/2).Mul(armLen))
			p3 := sampleEllipse(a.Radii, a.XRotation, angle1)
			p2 := p3.Sub(sampleEllipse(a.Radii, a.XRotation, angle1+math.Pi/2).Mul(armLen))

			angle0 = angle1
			p0 = p3

			if !yield(CubicToElement(
				a.Center.Translate(p1),
				a.Center.Translate(p2),
				a.Center.Translate(p3),
			)) {
				break
			}
		}
	}
}

// sampleEllipse returns the point at angle on the ellipse with the given
// radii, rotated by xRotation, relative to the ellipse's center.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	u := radii.X * cos
	v := radii.Y * sin
	return rotatePt(Vec2{u, v}, xRotation)
}

// rotatePt rotates pt about the origin by angle radians.
func rotatePt(pt Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.X*sin + pt.Y*cos,
	}
}
