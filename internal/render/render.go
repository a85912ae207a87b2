// Package render rasterizes path outlines into images.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"honnef.co/go/svgpath"
)

type Options struct {
	Width, Height int
	Fill          color.Color
	// Use the even-odd fill rule instead of nonzero.
	EvenOdd bool
	// Margin between the path and the image border, in pixels.
	Padding   float64
	Tolerance float64
}

// ParseColor parses a #rgb or #rrggbb color.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if len(s) == 4 && s[0] == '#' {
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid color %q", s)
	}
	return c, nil
}

// Render fills the outline of p, scaled to fit the image while keeping its
// aspect ratio.
func Render(p svgpath.Path, opts Options) (*image.RGBA, error) {
	if opts.Width < 1 || opts.Height < 1 {
		return nil, errors.Errorf("invalid image size %dx%d", opts.Width, opts.Height)
	}
	outline := p.Outline(opts.Tolerance)
	if len(outline) == 0 {
		return nil, errors.New("path is empty")
	}

	dst := svgpath.Rect{
		X0: opts.Padding,
		Y0: opts.Padding,
		X1: float64(opts.Width) - opts.Padding,
		Y1: float64(opts.Height) - opts.Padding,
	}
	outline = outline.Transform(outline.ControlBox().Fit(dst))

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	scanner := rasterx.NewScannerGV(opts.Width, opts.Height, img, img.Bounds())
	filler := rasterx.NewFiller(opts.Width, opts.Height, scanner)
	filler.SetWinding(!opts.EvenOdd)
	fill := opts.Fill
	if fill == nil {
		fill = color.Black
	}
	filler.SetColor(fill)
	Fill(filler, outline)
	filler.Draw()
	return img, nil
}

// Adder is the part of a rasterx path sink that Fill uses.
type Adder interface {
	Start(a fixed.Point26_6)
	Line(b fixed.Point26_6)
	QuadBezier(b, c fixed.Point26_6)
	CubeBezier(b, c, d fixed.Point26_6)
	Stop(closeLoop bool)
}

// Fill feeds the elements of outline to a. Every subpath is closed.
func Fill(a Adder, outline svgpath.BezPath) {
	open := false
	for _, el := range outline {
		switch el.Kind {
		case svgpath.MoveToKind:
			if open {
				a.Stop(true)
			}
			a.Start(toFixed(el.P0))
			open = true
		case svgpath.LineToKind:
			a.Line(toFixed(el.P0))
		case svgpath.QuadToKind:
			a.QuadBezier(toFixed(el.P0), toFixed(el.P1))
		case svgpath.CubicToKind:
			a.CubeBezier(toFixed(el.P0), toFixed(el.P1), toFixed(el.P2))
		case svgpath.ClosePathKind:
			if open {
				a.Stop(true)
			}
			open = false
		default:
			panic("unreachable")
		}
	}
	if open {
		a.Stop(true)
	}
}

func toFixed(pt svgpath.Point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(pt.X * 64),
		Y: fixed.Int26_6(pt.Y * 64),
	}
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return errors.Wrap(png.Encode(w, img), "couldn't encode PNG")
}
