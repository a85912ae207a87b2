package cli

import (
	"fmt"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"honnef.co/go/svgpath"
	"honnef.co/go/svgpath/internal/diag"
	"honnef.co/go/svgpath/internal/logging"
	"honnef.co/go/svgpath/internal/render"
)

func (a *app) fmtCommand() *cobra.Command {
	var (
		exprs    []string
		abs, rel bool
		wf       writeFlags
	)
	cmd := &cobra.Command{
		Use:   "fmt [FILE...]",
		Short: "Rewrite path data",
		Long: `Rewrite path data with the configured formatting, one line per input.

If an input is malformed, the segments before the error are still written
and the exit code is 1.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if abs && rel {
				return usageError(errors.New("--abs and --rel are mutually exclusive"))
			}
			opts := a.writeOptions(cmd.Flags(), &wf)
			return a.run(cmd, args, exprs, func(in input) (string, error) {
				p, err := svgpath.ParsePath(in.data)
				switch {
				case abs:
					p.ToAbsolute()
				case rel:
					p.ToRelative()
				}
				return p.Format(opts), err
			})
		},
	}
	fs := cmd.Flags()
	fs.StringArrayVarP(&exprs, "expr", "e", nil, "read path `data` from the command line")
	fs.BoolVar(&abs, "abs", false, "convert to absolute coordinates")
	fs.BoolVar(&rel, "rel", false, "convert to relative coordinates")
	wf.registerNumber(fs)
	wf.registerPath(fs)
	return cmd
}

func (a *app) bboxCommand() *cobra.Command {
	var (
		exprs []string
		wf    writeFlags
	)
	cmd := &cobra.Command{
		Use:   "bbox [FILE...]",
		Short: "Print the control box of paths as x0 y0 x1 y1",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.writeOptions(cmd.Flags(), &wf)
			return a.run(cmd, args, exprs, func(in input) (string, error) {
				p, err := svgpath.ParsePath(in.data)
				outline := p.Outline(a.cfg.Render.Tolerance)
				if len(outline) == 0 {
					return "", err
				}
				box := outline.ControlBox()
				return svgpath.NumberList{box.X0, box.Y0, box.X1, box.Y1}.Format(opts), err
			})
		},
	}
	fs := cmd.Flags()
	fs.StringArrayVarP(&exprs, "expr", "e", nil, "read path `data` from the command line")
	wf.registerNumber(fs)
	wf.registerList(fs)
	return cmd
}

func (a *app) transformCommand() *cobra.Command {
	var (
		exprs     []string
		scale     string
		translate string
		rotate    float64
		attr      bool
		reverse   bool
		wf        writeFlags
	)
	cmd := &cobra.Command{
		Use:   "transform [FILE...]",
		Short: "Apply an affine transform to paths",
		Long: `Apply an affine transform to paths and print the outline of the result.
The path is scaled first, then rotated, then translated. Arcs and smooth
curves are converted to cubic Béziers.

With --attr, print the transform as the value of a transform attribute
instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			aff, err := parseAffine(scale, translate, rotate)
			if err != nil {
				return usageError(err)
			}
			opts := a.writeOptions(cmd.Flags(), &wf)
			if attr {
				fmt.Fprintln(a.streams.Out, svgpath.FormatTransform(aff, opts))
				return nil
			}
			return a.run(cmd, args, exprs, func(in input) (string, error) {
				p, err := svgpath.ParsePath(in.data)
				outline := p.Outline(a.cfg.Render.Tolerance).Transform(aff)
				if reverse {
					outline = outline.ReverseSubpaths()
				}
				return outline.Path().Format(opts), err
			})
		},
	}
	fs := cmd.Flags()
	fs.StringArrayVarP(&exprs, "expr", "e", nil, "read path `data` from the command line")
	fs.StringVar(&scale, "scale", "", "scale by `s[,s]`")
	fs.StringVar(&translate, "translate", "", "translate by `x,y`")
	fs.Float64Var(&rotate, "rotate", 0, "rotate clockwise by `degrees`")
	fs.BoolVar(&attr, "attr", false, "print the transform attribute instead of transforming paths")
	fs.BoolVar(&reverse, "reverse", false, "reverse the direction of every subpath")
	wf.registerNumber(fs)
	wf.registerPath(fs)
	wf.registerList(fs)
	wf.registerTransform(fs)
	return cmd
}

// parseAffine builds the transform that scales, then rotates, then
// translates.
func parseAffine(scale, translate string, rotate float64) (svgpath.Affine, error) {
	sx, sy := 1.0, 1.0
	if scale != "" {
		l, err := svgpath.ParseNumberList(scale)
		if err != nil {
			return svgpath.Affine{}, errors.Wrap(err, "invalid --scale")
		}
		switch len(l) {
		case 1:
			sx, sy = l[0], l[0]
		case 2:
			sx, sy = l[0], l[1]
		default:
			return svgpath.Affine{}, errors.Errorf("invalid --scale %q, want one or two numbers", scale)
		}
	}
	var t svgpath.Vec2
	if translate != "" {
		l, err := svgpath.ParseNumberList(translate)
		if err != nil {
			return svgpath.Affine{}, errors.Wrap(err, "invalid --translate")
		}
		if len(l) != 2 {
			return svgpath.Affine{}, errors.Errorf("invalid --translate %q, want two numbers", translate)
		}
		t = svgpath.Vec(l[0], l[1])
	}
	return svgpath.Translate(t).
		Mul(svgpath.Rotate(rotate * math.Pi / 180)).
		Mul(svgpath.Scale(sx, sy)), nil
}

func (a *app) renderCommand() *cobra.Command {
	var (
		exprs   []string
		width   int
		height  int
		fill    string
		evenOdd bool
		padding float64
		out     string
	)
	cmd := &cobra.Command{
		Use:   "render --out FILE.png [FILE]",
		Short: "Rasterize a path into a PNG image",
		Args:  maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return usageError(errors.New("--out is required"))
			}
			cfg := a.cfg.Render
			fs := cmd.Flags()
			if fs.Changed("width") {
				cfg.Width = width
			}
			if fs.Changed("height") {
				cfg.Height = height
			}
			if fs.Changed("fill") {
				cfg.Fill = fill
			}
			if fs.Changed("even-odd") {
				cfg.EvenOdd = evenOdd
			}
			if fs.Changed("padding") {
				cfg.Padding = padding
			}
			fillColor, err := render.ParseColor(cfg.Fill)
			if err != nil {
				return usageError(err)
			}

			inputs, err := a.readInputs(cmd, args, exprs)
			if err != nil {
				return err
			}
			if len(inputs) != 1 {
				return usageError(errors.Errorf("render takes a single input, got %d", len(inputs)))
			}
			in := inputs[0]
			p, err := svgpath.ParsePath(in.data)
			if err != nil {
				diag.NewPrinter(a.streams.Err).Print(in.name, in.data, err)
				return &ExitError{Code: 1, Message: "malformed input"}
			}

			img, err := render.Render(p, render.Options{
				Width:     cfg.Width,
				Height:    cfg.Height,
				Fill:      fillColor,
				EvenOdd:   cfg.EvenOdd,
				Padding:   cfg.Padding,
				Tolerance: cfg.Tolerance,
			})
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return errors.Wrap(err, "couldn't create image")
			}
			if err := render.WritePNG(f, img); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return errors.Wrap(err, "couldn't write image")
			}
			logging.FromContext(cmd.Context()).Info("wrote image", "file", out, "width", cfg.Width, "height", cfg.Height)
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringArrayVarP(&exprs, "expr", "e", nil, "read path `data` from the command line")
	fs.IntVar(&width, "width", 0, "image width in pixels")
	fs.IntVar(&height, "height", 0, "image height in pixels")
	fs.StringVar(&fill, "fill", "", "fill `color` as #rgb or #rrggbb")
	fs.BoolVar(&evenOdd, "even-odd", false, "use the even-odd fill rule")
	fs.Float64Var(&padding, "padding", 0, "margin around the path in pixels")
	fs.StringVarP(&out, "out", "o", "", "write the image to `file`")
	return cmd
}

func (a *app) listCommand() *cobra.Command {
	var (
		exprs  []string
		points bool
		wf     writeFlags
	)
	cmd := &cobra.Command{
		Use:   "list [FILE...]",
		Short: "Rewrite number or point lists",
		Long: `Rewrite lists of numbers, such as stroke-dasharray values, with the
configured separator. With --points, read coordinate pairs as used by the
points attribute of polygons; a trailing unpaired number is dropped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.writeOptions(cmd.Flags(), &wf)
			return a.run(cmd, args, exprs, func(in input) (string, error) {
				if points {
					return svgpath.ParsePoints(in.data).Format(opts), nil
				}
				l, err := svgpath.ParseNumberList(in.data)
				return l.Format(opts), err
			})
		},
	}
	fs := cmd.Flags()
	fs.StringArrayVarP(&exprs, "expr", "e", nil, "read the list `data` from the command line")
	fs.BoolVar(&points, "points", false, "read coordinate pairs")
	wf.registerNumber(fs)
	wf.registerList(fs)
	return cmd
}
