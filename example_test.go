package svgpath_test

import (
	"errors"
	"fmt"

	"honnef.co/go/svgpath"
)

func ExampleParsePath() {
	p, err := svgpath.ParsePath("M10,20 L 30.5 40 z")
	if err != nil {
		panic(err)
	}
	for _, seg := range p {
		fmt.Println(seg.Command(), seg.IsAbsolute())
	}
	fmt.Println(p)

	// Output:
	// MoveTo true
	// LineTo true
	// ClosePath false
	// M 10 20 L 30.5 40 z
}

func ExampleParsePath_error() {
	p, err := svgpath.ParsePath("M 10 20 L 30 x")
	fmt.Println(p)
	fmt.Println(err)
	fmt.Println(errors.Is(err, svgpath.ErrInvalidNumber))

	// Output:
	// M 10 20
	// invalid number at position 14
	// true
}

func ExamplePath_Format() {
	p, _ := svgpath.ParsePath("M 10 20 L 30 40 L 50 60 Z")
	fmt.Println(p.Format(svgpath.WriteOptions{
		UseCompactPathNotation:    true,
		UseImplicitLineToCommands: true,
	}))

	// Output:
	// M10 20 30 40 50 60Z
}

func ExamplePath_ToRelative() {
	p, _ := svgpath.ParsePath("M 10 20 L 30 40 H 50")
	p.ToRelative()
	fmt.Println(p)

	// Output:
	// m 10 20 l 20 20 h 20
}

func ExamplePathParser() {
	p := svgpath.NewPathParser("M 10 20 30 40")
	for seg, err := range p.All() {
		if err != nil {
			panic(err)
		}
		fmt.Println(seg)
	}

	// Output:
	// M 10 20
	// L 30 40
}

func ExampleFormatTransform() {
	opts := svgpath.WriteOptions{SimplifyTransformMatrices: true}
	fmt.Println(svgpath.FormatTransform(svgpath.Translate(svgpath.Vec(20, 30)), opts))
	fmt.Println(svgpath.FormatTransform(svgpath.Scale(2, 2), opts))
	fmt.Println(svgpath.FormatTransform(svgpath.Scale(2, 3), svgpath.WriteOptions{}))

	// Output:
	// translate(20 30)
	// scale(2)
	// matrix(2 0 0 3 0 0)
}
