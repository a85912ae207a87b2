package svgpath

import (
	"io"
	"iter"
)

// PathParser is a pull parser for SVG path data. Each call to Next returns the
// next segment.
//
// Coordinate pairs that follow a segment without a command letter repeat that
// segment's command, except after a MoveTo, where they are LineTo segments of
// the same absoluteness as the MoveTo.
//
// The first error stops the parser: all further calls to Next return io.EOF.
type PathParser struct {
	cur Cursor
	// The letter of the last parsed command. For implicit LineTo segments,
	// this is the letter of the MoveTo that started them.
	prevCmd option[byte]
}

// NewPathParser returns a parser for the path data in text.
func NewPathParser(text string) *PathParser {
	return &PathParser{cur: NewCursor(text)}
}

// NewPathParserBytes is like NewPathParser but reads from a byte slice, which
// must not be modified while the parser is in use.
func NewPathParserBytes(text []byte) *PathParser {
	return &PathParser{cur: NewCursorBytes(text)}
}

// Next returns the next segment. It returns io.EOF when there are no more
// segments, and an *Error for malformed data.
func (p *PathParser) Next() (Segment, error) {
	p.cur.SkipSpaces()
	if p.cur.AtEnd() {
		return Segment{}, io.EOF
	}
	seg, err := p.next()
	if err != nil {
		p.cur.JumpToEnd()
		return Segment{}, err
	}
	return seg, nil
}

// All returns an iterator over the remaining segments. If parsing fails, the
// final pair holds the error.
func (p *PathParser) All() iter.Seq2[Segment, error] {
	return func(yield func(Segment, error) bool) {
		for {
			seg, err := p.Next()
			if err == io.EOF {
				return
			}
			if !yield(seg, err) || err != nil {
				return
			}
		}
	}
}

func (p *PathParser) next() (Segment, error) {
	c := &p.cur
	start := c.Pos()
	first := c.CurrByteUnchecked()
	prev, hasPrev := p.prevCmd.get()

	// Path data has to start with a MoveTo.
	if !hasPrev && first != 'M' && first != 'm' {
		return Segment{}, errAt(UnexpectedData, c.CalcCharPosAt(start))
	}

	var letter byte
	implicitLineTo := false
	switch {
	case isCommandLetter(first):
		letter = first
		c.Advance(1)
	case isNumberStart(first) && hasPrev:
		switch prev {
		case 'Z', 'z':
			return Segment{}, errAt(UnexpectedData, c.CalcCharPosAt(start))
		case 'M':
			letter = 'L'
			implicitLineTo = true
		case 'm':
			letter = 'l'
			implicitLineTo = true
		default:
			letter = prev
		}
	default:
		return Segment{}, errAt(UnexpectedData, c.CalcCharPosAt(start))
	}

	cmd, abs, _ := commandFromLetter(letter)
	seg := Segment{cmd: cmd, Abs: abs}
	var err error
	switch cmd {
	case MoveToCmd, LineToCmd, SmoothQuadraticCmd:
		err = p.numbers(&seg.X, &seg.Y)
	case HorizontalLineToCmd:
		err = p.numbers(&seg.X)
	case VerticalLineToCmd:
		err = p.numbers(&seg.Y)
	case CurveToCmd:
		err = p.numbers(&seg.X1, &seg.Y1, &seg.X2, &seg.Y2, &seg.X, &seg.Y)
	case SmoothCurveToCmd:
		err = p.numbers(&seg.X2, &seg.Y2, &seg.X, &seg.Y)
	case QuadraticCmd:
		err = p.numbers(&seg.X1, &seg.Y1, &seg.X, &seg.Y)
	case EllipticalArcCmd:
		if err = p.numbers(&seg.Rx, &seg.Ry, &seg.XAxisRotation); err != nil {
			break
		}
		if seg.LargeArc, err = p.flag(); err != nil {
			break
		}
		if seg.Sweep, err = p.flag(); err != nil {
			break
		}
		err = p.numbers(&seg.X, &seg.Y)
	case ClosePathCmd:
	default:
		panic("unreachable")
	}
	if err != nil {
		return Segment{}, err
	}

	if implicitLineTo {
		p.prevCmd.set(prev)
	} else {
		p.prevCmd.set(letter)
	}
	return seg, nil
}

func (p *PathParser) numbers(dst ...*float64) error {
	for _, d := range dst {
		v, err := p.cur.ParseListNumber()
		if err != nil {
			return err
		}
		*d = v
	}
	return nil
}

// flag parses an arc flag. Flags are a single '0' or '1' and need no separator
// from what follows, as in "A 10 10 0 0110 20".
func (p *PathParser) flag() (bool, error) {
	c := &p.cur
	c.SkipSpaces()
	b, err := c.CurrByte()
	if err != nil {
		return false, err
	}
	if b != '0' && b != '1' {
		return false, errAt(UnexpectedData, c.CalcCharPos())
	}
	c.Advance(1)
	if c.IsCurrByteEq(',') {
		c.Advance(1)
	}
	c.SkipSpaces()
	return b == '1', nil
}

// ParsePath parses path data. On malformed data it returns the segments that
// were parsed before the error, together with the error.
func ParsePath(text string) (Path, error) {
	var path Path
	for seg, err := range NewPathParser(text).All() {
		if err != nil {
			return path, err
		}
		path = append(path, seg)
	}
	return path, nil
}
