// Package svgpath parses, converts and writes SVG path data, the mini-language
// of the d attribute of path elements.
//
// # Parsing
//
// [PathParser] is a pull parser that turns path data into [Segment] values,
// one per call to [PathParser.Next]. [ParsePath] collects the segments into a
// [Path]. Path data is parsed the way browsers do: on malformed input, the
// segments read so far are kept and an [*Error] describes where parsing
// stopped. Error positions count characters, not bytes, starting at 1.
//
// Repeated coordinates without a command letter repeat the previous command,
// so "M 10 20 30 40" is a MoveTo followed by an implicit LineTo. Arc flags
// need no separator, so "A 5 5 0 1110 20" is valid.
//
// The tokenizer is built on [Cursor], a byte-level reader that is also used
// for the number lists and point lists of other attributes ([ParseNumberList],
// [ParsePoints]).
//
// # Segments and paths
//
// A [Segment] is one command of path data together with its numbers. Its
// [Command] selects which fields are meaningful, and IsAbsolute reports
// whether the numbers are coordinates or offsets from the current point.
// [Path.ToAbsolute] and [Path.ToRelative] convert a whole path between the
// two without changing its geometry.
//
// # Writing
//
// [AppendPath], [WritePath] and [Path.Format] serialize a path according to
// [WriteOptions]. The options can shorten the output considerably: compact
// notation drops every separator the grammar doesn't need, duplicated and
// implicit command letters can be omitted, and numbers such as 0.5 can be
// written as .5. Numbers are written with up to 11 decimal places, so that
// results of floating point arithmetic such as 29.999999999999996 come out as
// 30. Transforms are written with [AppendTransform].
//
// # Outlines
//
// For drawing, [Path.PathElements] resolves a path into a [BezPath] made of
// absolute lines and quadratic and cubic Béziers, approximating elliptical
// arcs with cubic Béziers. The geometry types [Point], [Vec2], [Rect] and
// [Affine] support measuring and transforming outlines.
package svgpath
