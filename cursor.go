package svgpath

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	tdstrconv "github.com/tdewolff/parse/v2/strconv"
)

// Cursor is a forward-only reading position over a byte slice. It is the
// building block of all parsers in this package.
//
// Cursor is a small value; copying it forks the reading position.
type Cursor struct {
	text []byte
	pos  int
}

// NewCursor returns a cursor at the start of text.
func NewCursor(text string) Cursor {
	return Cursor{text: []byte(text)}
}

// NewCursorBytes returns a cursor at the start of text. The cursor doesn't
// copy text, which must not be modified while the cursor is in use.
func NewCursorBytes(text []byte) Cursor {
	return Cursor{text: text}
}

// Pos returns the current byte offset.
func (c Cursor) Pos() int { return c.pos }

// AtEnd reports whether the cursor has consumed all of its text.
func (c Cursor) AtEnd() bool { return c.pos >= len(c.text) }

// JumpToEnd moves the cursor past the last byte.
func (c *Cursor) JumpToEnd() { c.pos = len(c.text) }

// CalcCharPos returns the 1-based character position of the cursor.
func (c Cursor) CalcCharPos() int { return c.CalcCharPosAt(c.pos) }

// CalcCharPosAt returns the 1-based character position of the byte offset
// bytePos. It scans the text from the start and is meant for error reporting
// only.
func (c Cursor) CalcCharPosAt(bytePos int) int {
	pos := 1
	for i := 0; i < len(c.text) && i < bytePos; {
		_, size := utf8.DecodeRune(c.text[i:])
		i += size
		pos++
	}
	return pos
}

// CurrByte returns the byte at the cursor.
func (c Cursor) CurrByte() (byte, error) {
	if c.AtEnd() {
		return 0, errEndOfStream()
	}
	return c.CurrByteUnchecked(), nil
}

// CurrByteUnchecked returns the byte at the cursor. The caller must have
// checked that the cursor is not at the end.
func (c Cursor) CurrByteUnchecked() byte { return c.text[c.pos] }

// IsCurrByteEq reports whether the byte at the cursor is b. It returns false
// at the end of the text.
func (c Cursor) IsCurrByteEq(b byte) bool {
	return !c.AtEnd() && c.CurrByteUnchecked() == b
}

// GetCurrByte returns the byte at the cursor and whether there was one.
func (c Cursor) GetCurrByte() (byte, bool) {
	if c.AtEnd() {
		return 0, false
	}
	return c.CurrByteUnchecked(), true
}

// NextByte returns the byte after the one at the cursor.
func (c Cursor) NextByte() (byte, error) {
	if c.pos+1 >= len(c.text) {
		return 0, errEndOfStream()
	}
	return c.text[c.pos+1], nil
}

// CurrChar decodes the character at the cursor.
func (c Cursor) CurrChar() (rune, error) {
	if c.AtEnd() {
		return 0, errEndOfStream()
	}
	r, _ := utf8.DecodeRune(c.text[c.pos:])
	return r, nil
}

// Advance moves the cursor forward by n bytes. It panics if fewer than n bytes
// remain.
func (c *Cursor) Advance(n int) {
	if n < 0 || c.pos+n > len(c.text) {
		panic("svgpath: cursor advanced past end of text")
	}
	c.pos += n
}

func (c *Cursor) SkipSpaces() {
	for !c.AtEnd() && isSpace(c.CurrByteUnchecked()) {
		c.pos++
	}
}

// StartsWith reports whether the remaining text starts with prefix.
func (c Cursor) StartsWith(prefix string) bool {
	return bytes.HasPrefix(c.text[c.pos:], []byte(prefix))
}

func (c Cursor) StartsWithSpace() bool {
	return !c.AtEnd() && isSpace(c.CurrByteUnchecked())
}

// ConsumeByte advances past b, or fails with InvalidChar if the byte at the
// cursor is something else.
func (c *Cursor) ConsumeByte(b byte) error {
	curr, err := c.CurrByte()
	if err != nil {
		return err
	}
	if curr != b {
		return &Error{
			Kind:     InvalidChar,
			Pos:      c.CalcCharPos(),
			Actual:   string(rune(curr)),
			Expected: []string{string(rune(b))},
		}
	}
	c.pos++
	return nil
}

// SkipString advances past s, or fails with InvalidString if the remaining
// text doesn't start with it.
func (c *Cursor) SkipString(s string) error {
	if c.AtEnd() {
		return errEndOfStream()
	}
	if !c.StartsWith(s) {
		// Report as many characters as the expected string has.
		rest := c.text[c.pos:]
		n := 0
		for i := 0; i < utf8.RuneCountInString(s) && n < len(rest); i++ {
			_, size := utf8.DecodeRune(rest[n:])
			n += size
		}
		return &Error{
			Kind:     InvalidString,
			Pos:      c.CalcCharPos(),
			Actual:   string(rest[:n]),
			Expected: []string{s},
		}
	}
	c.pos += len(s)
	return nil
}

// SkipBytes advances while pred returns true.
func (c *Cursor) SkipBytes(pred func(byte) bool) {
	for !c.AtEnd() && pred(c.CurrByteUnchecked()) {
		c.pos++
	}
}

// ConsumeBytes advances while pred returns true and returns the skipped text.
func (c *Cursor) ConsumeBytes(pred func(byte) bool) string {
	start := c.pos
	c.SkipBytes(pred)
	return c.SliceBack(start)
}

// ConsumeIdent consumes a run of ASCII letters, digits, '-' and '_'.
func (c *Cursor) ConsumeIdent() string {
	return c.ConsumeBytes(isIdentChar)
}

func (c *Cursor) SkipDigits() {
	c.SkipBytes(isDigit)
}

// SliceBack returns the text between the byte offset start and the cursor.
func (c Cursor) SliceBack(start int) string {
	return string(c.text[start:c.pos])
}

// SliceTail returns the remaining text.
func (c Cursor) SliceTail() string {
	return string(c.text[c.pos:])
}

// ParseNumber skips leading spaces and reads a number: an optional sign, a
// mantissa that starts with a digit or a decimal point, and an optional
// exponent. An 'e' that isn't followed by an exponent is not consumed, which
// makes "1em" and "1ex" read as 1.
func (c *Cursor) ParseNumber() (float64, error) {
	c.SkipSpaces()
	start := c.pos
	if c.AtEnd() {
		return 0, errAt(InvalidNumber, c.CalcCharPosAt(start))
	}
	// Only the length is taken from the scanner. Its value is inexact for
	// long mantissas with large exponents.
	_, n := tdstrconv.ParseFloat(c.text[c.pos:])
	if n == 0 {
		return 0, errAt(InvalidNumber, c.CalcCharPosAt(start))
	}
	f, err := strconv.ParseFloat(string(c.text[c.pos:c.pos+n]), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, errAt(InvalidNumber, c.CalcCharPosAt(start))
	}
	c.pos += n
	return f, nil
}

// ParseListNumber reads a number followed by optional spaces and at most one
// comma.
func (c *Cursor) ParseListNumber() (float64, error) {
	if c.AtEnd() {
		return 0, errEndOfStream()
	}
	f, err := c.ParseNumber()
	if err != nil {
		return 0, err
	}
	c.skipListSeparator()
	return f, nil
}

// ParseInteger skips leading spaces and reads an optionally signed decimal
// integer that fits in 32 bits.
func (c *Cursor) ParseInteger() (int32, error) {
	c.SkipSpaces()
	start := c.pos
	if c.AtEnd() {
		return 0, errAt(InvalidNumber, c.CalcCharPosAt(start))
	}
	if isSign(c.CurrByteUnchecked()) {
		c.pos++
	}
	if b, ok := c.GetCurrByte(); !ok || !isDigit(b) {
		return 0, errAt(InvalidNumber, c.CalcCharPosAt(start))
	}
	c.SkipDigits()

	s := c.SliceBack(start)
	neg := s[0] == '-'
	digits := strings.TrimLeft(s, "+-")
	var n int64
	for i := 0; i < len(digits); i++ {
		n = n*10 + int64(digits[i]-'0')
		if n > math.MaxInt32+1 {
			return 0, errAt(InvalidNumber, c.CalcCharPosAt(start))
		}
	}
	if neg {
		n = -n
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, errAt(InvalidNumber, c.CalcCharPosAt(start))
	}
	return int32(n), nil
}

// ParseListInteger reads an integer followed by optional spaces and at most
// one comma.
func (c *Cursor) ParseListInteger() (int32, error) {
	if c.AtEnd() {
		return 0, errEndOfStream()
	}
	n, err := c.ParseInteger()
	if err != nil {
		return 0, err
	}
	c.skipListSeparator()
	return n, nil
}

func (c *Cursor) skipListSeparator() {
	c.SkipSpaces()
	if c.IsCurrByteEq(',') {
		c.pos++
		c.SkipSpaces()
	}
}
