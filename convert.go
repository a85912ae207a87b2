package svgpath

// ToAbsolute rewrites all segments of the path to use absolute coordinates,
// without changing the geometry. It modifies p in place. Converting a path
// that is already absolute does nothing.
func (p Path) ToAbsolute() {
	var (
		// The current point.
		cur Point
		// The start of the current subpath.
		start Point
		prev  = MoveToCmd
	)
	for i := range p {
		seg := &p[i]
		if seg.cmd == ClosePathCmd {
			cur = start
			seg.Abs = true
			prev = ClosePathCmd
			continue
		}

		if !seg.Abs {
			*seg = seg.Translate(Vec2(relativeOrigin(*seg, prev, cur, start)))
			seg.Abs = true
		}
		cur = endPoint(cur, *seg)
		if seg.cmd == MoveToCmd {
			start = cur
		}
		prev = seg.cmd
	}
}

// ToRelative rewrites all segments of the path to use relative coordinates,
// without changing the geometry. It modifies p in place. Converting a path
// that is already relative does nothing.
func (p Path) ToRelative() {
	var (
		cur   Point
		start Point
		prev  = MoveToCmd
	)
	for i := range p {
		seg := &p[i]
		if seg.cmd == ClosePathCmd {
			cur = start
			seg.Abs = false
			prev = ClosePathCmd
			continue
		}

		origin := relativeOrigin(*seg, prev, cur, start)
		// The new current point has to be computed before the segment is
		// rewritten.
		if seg.Abs {
			cur = endPoint(cur, *seg)
		} else {
			cur = endPoint(cur, seg.Translate(Vec2(origin)))
		}
		if seg.cmd == MoveToCmd {
			start = cur
		}

		if seg.Abs {
			*seg = seg.Translate(Vec2(origin).Negate())
			seg.Abs = false
		}
		prev = seg.cmd
	}
}

// relativeOrigin returns the point that the relative coordinates of seg are
// based on. This is the current point, except for a MoveTo that directly
// follows a ClosePath, which is relative to the start of the closed subpath.
func relativeOrigin(seg Segment, prev Command, cur, start Point) Point {
	if seg.cmd == MoveToCmd && prev == ClosePathCmd {
		return start
	}
	return cur
}

// endPoint returns the point reached by drawing the absolute segment seg from
// cur.
func endPoint(cur Point, seg Segment) Point {
	switch seg.cmd {
	case HorizontalLineToCmd:
		return Point{seg.X, cur.Y}
	case VerticalLineToCmd:
		return Point{cur.X, seg.Y}
	case ClosePathCmd:
		panic("unreachable")
	default:
		return Point{seg.X, seg.Y}
	}
}
