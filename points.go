package svgpath

// Points is a list of coordinate pairs, as used by the points attribute of
// polyline and polygon elements.
type Points []Point

// ParsePoints parses a list of coordinate pairs. Parsing stops silently at the
// first malformed number and at a trailing number without a partner; the
// pairs read up to that point are returned.
func ParsePoints(text string) Points {
	var pts Points
	cur := NewCursor(text)
	for {
		cur.SkipSpaces()
		if cur.AtEnd() {
			return pts
		}
		x, err := cur.ParseListNumber()
		if err != nil {
			return pts
		}
		y, err := cur.ParseListNumber()
		if err != nil {
			return pts
		}
		pts = append(pts, Pt(x, y))
	}
}

// AppendPoints appends the points to buf. Both the coordinates of a point and
// consecutive points are separated by opts.ListSeparator.
func AppendPoints(buf []byte, pts Points, opts WriteOptions) []byte {
	for i, pt := range pts {
		if i > 0 {
			buf = opts.ListSeparator.appendTo(buf)
		}
		buf = AppendNumber(buf, pt.X, opts)
		buf = opts.ListSeparator.appendTo(buf)
		buf = AppendNumber(buf, pt.Y, opts)
	}
	return buf
}

func (pts Points) Format(opts WriteOptions) string {
	return string(AppendPoints(nil, pts, opts))
}

func (pts Points) String() string {
	return pts.Format(DefaultWriteOptions)
}
