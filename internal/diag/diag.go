// Package diag prints parse errors together with the offending line of input
// and a caret under the failing character.
package diag

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/muesli/termenv"
	"github.com/rivo/uniseg"

	"honnef.co/go/svgpath"
)

type Printer struct {
	out *termenv.Output
}

// NewPrinter returns a printer writing to w. Colors are used if w is a
// terminal that supports them, unless opts say otherwise.
func NewPrinter(w io.Writer, opts ...termenv.OutputOption) *Printer {
	return &Printer{out: termenv.NewOutput(w, opts...)}
}

// Print reports err, which occurred while parsing src. name identifies the
// input. Errors without a position are reported at the end of src.
//
//	name:1:14: invalid number at position 14
//	  M 10 20 L 30 x
//	               ^
func (p *Printer) Print(name, src string, err error) {
	var perr *svgpath.Error
	if !errors.As(err, &perr) {
		fmt.Fprintf(p.out, "%s: %s\n", name, p.bold(err.Error()))
		return
	}

	loc := Locate(src, perr.Pos)
	fmt.Fprintf(p.out, "%s:%d:%d: %s\n", name, loc.Line, loc.Column, p.bold(err.Error()))
	fmt.Fprintf(p.out, "  %s\n", loc.Text)
	fmt.Fprintf(p.out, "  %s%s\n", strings.Repeat(" ", loc.Width), p.caret())
}

func (p *Printer) bold(s string) string {
	return p.out.String(s).Bold().String()
}

func (p *Printer) caret() string {
	return p.out.String("^").Foreground(p.out.Color("1")).Bold().String()
}

// Location is a position in multi-line input.
type Location struct {
	// 1-based line and column, in characters.
	Line, Column int
	// The line containing the position, with tabs replaced by spaces.
	Text string
	// The display width of Text up to the position.
	Width int
}

// Locate finds the 1-based character position pos in src. A position of zero
// or past the end refers to the end of src.
func Locate(src string, pos int) Location {
	off := len(src)
	if pos > 0 {
		n := 1
		for i := range src {
			if n == pos {
				off = i
				break
			}
			n++
		}
	}

	start := strings.LastIndexByte(src[:off], '\n') + 1
	end := strings.IndexByte(src[off:], '\n')
	if end == -1 {
		end = len(src)
	} else {
		end += off
	}
	untab := func(s string) string { return strings.ReplaceAll(s, "\t", " ") }
	before := untab(strings.TrimSuffix(src[start:off], "\r"))
	return Location{
		Line:   strings.Count(src[:off], "\n") + 1,
		Column: utf8.RuneCountInString(src[start:off]) + 1,
		Text:   untab(strings.TrimSuffix(src[start:end], "\r")),
		Width:  uniseg.StringWidth(before),
	}
}
