package svgpath

import (
	"errors"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		rest string
	}{
		{"0", 0, ""},
		{"1", 1, ""},
		{"-1", -1, ""},
		{"+1", 1, ""},
		{"  1", 1, ""},
		{"1.5", 1.5, ""},
		{".5", 0.5, ""},
		{"-.5", -0.5, ""},
		{"1e2", 100, ""},
		{"1E2", 100, ""},
		{"1e+2", 100, ""},
		{"1e-2", 0.01, ""},
		{"-1.5e1", -15, ""},
		{"1e", 1, "e"},
		{"1em", 1, "em"},
		{"1ex", 1, "ex"},
		{"10-20", 10, "-20"},
		{"5.5.3", 5.5, ".3"},
		{"12 34", 12, " 34"},
		{"1,2", 1, ",2"},
		{"1234567890123e25", 1.234567890123e37, ""},
		{"7.755616655388907e+43", 7.755616655388907e+43, ""},
		{"-1.0138124485520921e+52 1", -1.0138124485520921e+52, " 1"},
	}
	for _, tt := range tests {
		c := NewCursor(tt.in)
		got, err := c.ParseNumber()
		if err != nil {
			t.Errorf("%q: unexpected error: %s", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %v, want %v", tt.in, got, tt.want)
		}
		if rest := c.SliceTail(); rest != tt.rest {
			t.Errorf("%q: got rest %q, want %q", tt.in, rest, tt.rest)
		}
	}
}

func TestParseNumberErrors(t *testing.T) {
	tests := []struct {
		in  string
		pos int
	}{
		{"", 1},
		{"q", 1},
		{"-", 1},
		{"+.", 1},
		{".", 1},
		{"  x", 3},
		{"1e400", 1},
		{"ü", 1},
	}
	for _, tt := range tests {
		c := NewCursor(tt.in)
		_, err := c.ParseNumber()
		if want := (&Error{Kind: InvalidNumber, Pos: tt.pos}); !errors.Is(err, want) {
			t.Errorf("%q: got error %v, want %v", tt.in, err, want)
		}
	}
}

func TestParseListNumber(t *testing.T) {
	c := NewCursor("10, 20 ,30 40,\t50")
	var got []float64
	for !c.AtEnd() {
		v, err := c.ParseListNumber()
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		got = append(got, v)
	}
	diff(t, []float64{10, 20, 30, 40, 50}, got)

	if _, err := c.ParseListNumber(); !errors.Is(err, ErrUnexpectedEndOfStream) {
		t.Errorf("got error %v, want %v", err, ErrUnexpectedEndOfStream)
	}

	// Only a single comma is a separator.
	c = NewCursor("1,,2")
	if _, err := c.ParseListNumber(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := c.ParseListNumber(); !errors.Is(err, &Error{Kind: InvalidNumber, Pos: 3}) {
		t.Errorf("got error %v, want an invalid number at position 3", err)
	}
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		in   string
		want int32
	}{
		{"0", 0},
		{"42", 42},
		{"-42", -42},
		{"+7", 7},
		{" 12px", 12},
		{"2147483647", 2147483647},
		{"-2147483648", -2147483648},
	}
	for _, tt := range tests {
		c := NewCursor(tt.in)
		got, err := c.ParseInteger()
		if err != nil {
			t.Errorf("%q: unexpected error: %s", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %d, want %d", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"", "x", "-", "+-1", "2147483648", "-2147483649", "99999999999999999999"} {
		c := NewCursor(in)
		if _, err := c.ParseInteger(); !errors.Is(err, ErrInvalidNumber) {
			t.Errorf("%q: got error %v, want %v", in, err, ErrInvalidNumber)
		}
	}

	c := NewCursor("1, 2 3")
	var got []int32
	for !c.AtEnd() {
		n, err := c.ParseListInteger()
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		got = append(got, n)
	}
	diff(t, []int32{1, 2, 3}, got)
}

func TestCharPos(t *testing.T) {
	c := NewCursor("üä x")
	if pos := c.CalcCharPos(); pos != 1 {
		t.Errorf("got position %d at start, want 1", pos)
	}
	// Two 2-byte characters and a space.
	c.Advance(5)
	if b, _ := c.CurrByte(); b != 'x' {
		t.Fatalf("got byte %q, want 'x'", b)
	}
	if pos := c.CalcCharPos(); pos != 4 {
		t.Errorf("got position %d, want 4", pos)
	}
	if pos := c.CalcCharPosAt(2); pos != 2 {
		t.Errorf("got position %d for byte 2, want 2", pos)
	}

	_, err := c.ParseNumber()
	diff(t, "invalid number at position 4", err.Error())
}

func TestCursorBytes(t *testing.T) {
	c := NewCursor("abü")
	if b, err := c.NextByte(); err != nil || b != 'b' {
		t.Errorf("got next byte %q, %v, want 'b'", b, err)
	}
	if !c.IsCurrByteEq('a') || c.IsCurrByteEq('b') {
		t.Error("IsCurrByteEq compared the wrong byte")
	}
	c.Advance(2)
	if r, err := c.CurrChar(); err != nil || r != 'ü' {
		t.Errorf("got char %q, %v, want 'ü'", r, err)
	}
	c.JumpToEnd()
	if !c.AtEnd() {
		t.Error("not at end after JumpToEnd")
	}
	if _, err := c.CurrByte(); !errors.Is(err, ErrUnexpectedEndOfStream) {
		t.Errorf("got error %v, want %v", err, ErrUnexpectedEndOfStream)
	}
	if _, err := c.CurrChar(); !errors.Is(err, ErrUnexpectedEndOfStream) {
		t.Errorf("got error %v, want %v", err, ErrUnexpectedEndOfStream)
	}
	if _, ok := c.GetCurrByte(); ok {
		t.Error("got a byte at end")
	}
}

func TestEndOfStreamErrorsAreDistinct(t *testing.T) {
	c := NewCursor("")
	_, err := c.CurrByte()
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("got error %T, want *Error", err)
	}
	perr.Pos = 7
	if ErrUnexpectedEndOfStream.Pos != 0 {
		t.Errorf("modifying a returned error changed the sentinel to position %d", ErrUnexpectedEndOfStream.Pos)
	}
	for _, fn := range []func() error{
		func() error { _, err := c.NextByte(); return err },
		func() error { _, err := c.CurrChar(); return err },
		func() error { return c.SkipString("x") },
		func() error { _, err := c.ParseListNumber(); return err },
		func() error { _, err := c.ParseListInteger(); return err },
	} {
		err := fn()
		if err == error(ErrUnexpectedEndOfStream) {
			t.Error("got the shared sentinel")
		}
		if !errors.Is(err, ErrUnexpectedEndOfStream) {
			t.Errorf("got error %v, want %v", err, ErrUnexpectedEndOfStream)
		}
	}
}

func TestCursorAdvancePastEnd(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("advancing past the end didn't panic")
		}
	}()
	c := NewCursor("ab")
	c.Advance(3)
}

func TestConsumeByte(t *testing.T) {
	c := NewCursor("(x")
	if err := c.ConsumeByte('('); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	err := c.ConsumeByte(')')
	if !errors.Is(err, ErrInvalidChar) {
		t.Fatalf("got error %v, want %v", err, ErrInvalidChar)
	}
	diff(t, "expected ')' not 'x' at position 2", err.Error())
	// The cursor doesn't move on failure.
	diff(t, 1, c.Pos())
}

func TestSkipString(t *testing.T) {
	c := NewCursor("matrix(rotate")
	if err := c.SkipString("matrix"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := c.ConsumeByte('('); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	err := c.SkipString("scale")
	if !errors.Is(err, ErrInvalidString) {
		t.Fatalf("got error %v, want %v", err, ErrInvalidString)
	}
	diff(t, "expected 'scale' not 'rotat' at position 8", err.Error())

	c.JumpToEnd()
	if err := c.SkipString("x"); !errors.Is(err, ErrUnexpectedEndOfStream) {
		t.Errorf("got error %v, want %v", err, ErrUnexpectedEndOfStream)
	}
}

func TestConsumeIdent(t *testing.T) {
	c := NewCursor("  stroke-width_2: 5")
	c.SkipSpaces()
	diff(t, "stroke-width_2", c.ConsumeIdent())
	diff(t, ": 5", c.SliceTail())
	start := c.Pos()
	c.Advance(1)
	if !c.StartsWithSpace() || !c.StartsWith(" 5") {
		t.Errorf("unexpected tail %q", c.SliceTail())
	}
	diff(t, ":", c.SliceBack(start))
	c.SkipSpaces()
	diff(t, "5", c.ConsumeBytes(isDigit))
	if !c.AtEnd() {
		t.Error("not at end")
	}
}
