package svgpath

import (
	"io"
	"iter"
)

// NumberList is a list of numbers, as used by attributes such as
// stroke-dasharray or the values of feColorMatrix.
type NumberList []float64

// NumberListParser is a pull parser for number lists. Numbers are separated by
// whitespace, a comma, or both.
type NumberListParser struct {
	cur Cursor
}

func NewNumberListParser(text string) *NumberListParser {
	return &NumberListParser{cur: NewCursor(text)}
}

// Next returns the next number, or io.EOF if the list is exhausted. After an
// error, Next returns io.EOF.
func (p *NumberListParser) Next() (float64, error) {
	p.cur.SkipSpaces()
	if p.cur.AtEnd() {
		return 0, io.EOF
	}
	v, err := p.cur.ParseListNumber()
	if err != nil {
		p.cur.JumpToEnd()
		return 0, err
	}
	return v, nil
}

// All returns an iterator over the remaining numbers. If parsing fails, the
// final pair holds the error.
func (p *NumberListParser) All() iter.Seq2[float64, error] {
	return func(yield func(float64, error) bool) {
		for {
			v, err := p.Next()
			if err == io.EOF {
				return
			}
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// ParseNumberList parses a list of numbers. Unlike ParsePath, it returns no
// numbers on malformed input.
func ParseNumberList(text string) (NumberList, error) {
	var list NumberList
	for v, err := range NewNumberListParser(text).All() {
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

// AppendNumberList appends the list to buf, separating numbers with
// opts.ListSeparator.
func AppendNumberList(buf []byte, list NumberList, opts WriteOptions) []byte {
	for i, v := range list {
		if i > 0 {
			buf = opts.ListSeparator.appendTo(buf)
		}
		buf = AppendNumber(buf, v, opts)
	}
	return buf
}

func (list NumberList) Format(opts WriteOptions) string {
	return string(AppendNumberList(nil, list, opts))
}

func (list NumberList) String() string {
	return list.Format(DefaultWriteOptions)
}
