package svgpath

import (
	"errors"
	"testing"
)

func TestParseNumberList(t *testing.T) {
	tests := []struct {
		in   string
		want NumberList
		err  error
	}{
		{"", nil, nil},
		{"  ", nil, nil},
		{"1", NumberList{1}, nil},
		{"1 2,3 , 4\n5", NumberList{1, 2, 3, 4, 5}, nil},
		{"-1-2.5.5", NumberList{-1, -2.5, 0.5}, nil},
		{"1234567890123e25,7.755616655388907e+43", NumberList{1.234567890123e37, 7.755616655388907e+43}, nil},
		{"1 x", nil, &Error{Kind: InvalidNumber, Pos: 3}},
		{"1,,2", nil, &Error{Kind: InvalidNumber, Pos: 3}},
	}
	for _, tt := range tests {
		got, err := ParseNumberList(tt.in)
		diff(t, tt.want, got)
		switch {
		case tt.err == nil && err != nil:
			t.Errorf("%q: unexpected error: %s", tt.in, err)
		case tt.err != nil && !errors.Is(err, tt.err):
			t.Errorf("%q: got error %v, want %v", tt.in, err, tt.err)
		}
	}
}

func TestNumberListParser(t *testing.T) {
	p := NewNumberListParser("1 2 x 3")
	var got []float64
	var errs []error
	for v, err := range p.All() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		got = append(got, v)
	}
	diff(t, []float64{1, 2}, got)
	if len(errs) != 1 || !errors.Is(errs[0], ErrInvalidNumber) {
		t.Errorf("got errors %v, want a single %v", errs, ErrInvalidNumber)
	}
}

func TestFormatNumberList(t *testing.T) {
	list := NumberList{1, 0.5, -2}
	diff(t, "1 0.5 -2", list.String())
	diff(t, "1,0.5,-2", list.Format(WriteOptions{ListSeparator: CommaSeparator}))
	diff(t, "1, .5, -2", list.Format(WriteOptions{ListSeparator: CommaSpaceSeparator, RemoveLeadingZero: true}))
	diff(t, "", NumberList{}.String())
}

func TestListSeparatorText(t *testing.T) {
	for _, sep := range []ListSeparator{SpaceSeparator, CommaSeparator, CommaSpaceSeparator} {
		text, err := sep.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got ListSeparator
		if err := got.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if got != sep {
			t.Errorf("%s read back as %s", sep, got)
		}
	}

	var sep ListSeparator
	if err := sep.UnmarshalText([]byte("semicolon")); err == nil {
		t.Error("accepted an unknown separator")
	}
	if _, err := ListSeparator(42).MarshalText(); err == nil {
		t.Error("marshaled an unknown separator")
	}
}
