package svgpath

import (
	"bytes"
	"io"
	"slices"
)

// AppendPath appends the path data of p to buf and returns the extended
// buffer.
func AppendPath(buf []byte, p Path, opts WriteOptions) []byte {
	if len(p) == 0 {
		return buf
	}
	w := pathWriter{buf: buf, opts: opts}
	for _, seg := range p {
		explicit := w.command(seg)
		w.segment(seg, explicit)
	}
	if !opts.UseCompactPathNotation {
		// Every token was followed by a space.
		w.buf = w.buf[:len(w.buf)-1]
	}
	return w.buf
}

// WritePath writes the path data of p to w.
func WritePath(w io.Writer, p Path, opts WriteOptions) error {
	_, err := w.Write(AppendPath(nil, p, opts))
	return err
}

// Format returns the path data of p.
func (p Path) Format(opts WriteOptions) string {
	return string(AppendPath(nil, p, opts))
}

// String returns the path data of p, using DefaultWriteOptions.
func (p Path) String() string {
	return p.Format(DefaultWriteOptions)
}

type writtenCommand struct {
	cmd Command
	abs bool
	// Whether the command was a LineTo that was written without a letter,
	// following a MoveTo.
	implicit bool
}

type pathWriter struct {
	buf  []byte
	opts WriteOptions
	prev option[writtenCommand]
	// Whether the last written number contained a decimal point.
	prevHasDot bool
}

// command writes the letter of seg's command, unless the options allow
// omitting it. It reports whether the letter was written.
func (w *pathWriter) command(seg Segment) bool {
	write := true
	prev, hasPrev := w.prev.get()
	if w.opts.RemoveDuplicatedPathCommands && hasPrev &&
		prev.cmd != MoveToCmd && prev.cmd == seg.cmd && prev.abs == seg.Abs {
		write = false
	}

	implicit := false
	if w.opts.UseImplicitLineToCommands && hasPrev &&
		seg.cmd == LineToCmd && prev.abs == seg.Abs &&
		(prev.implicit || prev.cmd == MoveToCmd) {
		implicit = true
		write = false
	}

	w.prev.set(writtenCommand{cmd: seg.cmd, abs: seg.Abs, implicit: implicit})
	if !write {
		return false
	}

	w.buf = append(w.buf, seg.cmd.Letter(seg.Abs))
	if seg.cmd != ClosePathCmd && !w.opts.UseCompactPathNotation {
		w.buf = append(w.buf, ' ')
	}
	return true
}

func (w *pathWriter) segment(seg Segment, explicit bool) {
	coords, n := seg.coords()
	switch seg.cmd {
	case EllipticalArcCmd:
		w.numbers(coords[:n], explicit)
		if w.opts.UseCompactPathNotation {
			// Flags can't be merged into the preceding number.
			w.buf = append(w.buf, ' ')
		}
		w.flag(seg.LargeArc)
		w.flag(seg.Sweep)
		w.prevHasDot = false
		// The end point follows the flags, which act like a command letter.
		w.numbers([]float64{seg.X, seg.Y}, true)
	case ClosePathCmd:
		if !w.opts.UseCompactPathNotation {
			w.buf = append(w.buf, ' ')
		}
	default:
		w.numbers(coords[:n], explicit)
	}
}

func (w *pathWriter) flag(f bool) {
	if f {
		w.buf = append(w.buf, '1')
	} else {
		w.buf = append(w.buf, '0')
	}
	if !w.opts.JoinArcToFlags {
		w.buf = append(w.buf, ' ')
	}
}

// numbers writes a segment's numbers. explicit reports whether the first
// number directly follows a command letter.
func (w *pathWriter) numbers(nums []float64, explicit bool) {
	if !w.opts.UseCompactPathNotation {
		for _, v := range nums {
			w.buf = AppendNumber(w.buf, v, w.opts)
			w.buf = append(w.buf, ' ')
		}
		return
	}

	for i, v := range nums {
		start := len(w.buf)
		w.buf = AppendNumber(w.buf, v, w.opts)
		first := i == 0 && explicit

		// A separator is needed where the number would otherwise merge with
		// the previous one: "1" followed by ".5", or any two numbers starting
		// with a digit. Signs and a second decimal point end a number on
		// their own.
		var space bool
		switch c := w.buf[start]; {
		case c == '.' && !w.prevHasDot:
			space = !first
		case first:
			space = false
		default:
			space = isDigit(c)
		}

		w.prevHasDot = bytes.IndexByte(w.buf[start:], '.') != -1
		if space {
			w.buf = slices.Insert(w.buf, start, ' ')
		}
	}
}
