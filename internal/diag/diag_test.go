package diag

import (
	"bytes"
	"errors"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/svgpath"
)

func TestLocate(t *testing.T) {
	tests := []struct {
		name string
		src  string
		pos  int
		want Location
	}{
		{"start", "M 0 0", 1, Location{Line: 1, Column: 1, Text: "M 0 0", Width: 0}},
		{"single line", "M 10 20 L 30 x", 14, Location{Line: 1, Column: 14, Text: "M 10 20 L 30 x", Width: 13}},
		{"second line", "M 10 20\nL 30 x\nZ", 14, Location{Line: 2, Column: 6, Text: "L 30 x", Width: 5}},
		{"tabs", "M\t1\tx", 5, Location{Line: 1, Column: 5, Text: "M 1 x", Width: 4}},
		{"wide characters", "M 全角 x", 6, Location{Line: 1, Column: 6, Text: "M 全角 x", Width: 7}},
		{"end", "M 10", 0, Location{Line: 1, Column: 5, Text: "M 10", Width: 4}},
		{"past end", "M 10\n", 99, Location{Line: 2, Column: 1, Text: "", Width: 0}},
		{"CRLF", "M 0 0\r\nq", 8, Location{Line: 2, Column: 1, Text: "q", Width: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Locate(tt.src, tt.pos))
		})
	}
}

func TestPrint(t *testing.T) {
	src := "M 10 20 L 30 x"
	_, err := svgpath.ParsePath(src)
	require.Error(t, err)

	var buf bytes.Buffer
	NewPrinter(&buf, termenv.WithProfile(termenv.Ascii)).Print("in.txt", src, err)
	want := "in.txt:1:14: invalid number at position 14\n" +
		"  M 10 20 L 30 x\n" +
		"               ^\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintEndOfStream(t *testing.T) {
	src := "M 10 20 L 30"
	_, err := svgpath.ParsePath(src)
	require.ErrorIs(t, err, svgpath.ErrUnexpectedEndOfStream)

	var buf bytes.Buffer
	NewPrinter(&buf, termenv.WithProfile(termenv.Ascii)).Print("-", src, err)
	want := "-:1:13: unexpected end of stream\n" +
		"  M 10 20 L 30\n" +
		"              ^\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintOtherError(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, termenv.WithProfile(termenv.Ascii)).Print("x", "", errors.New("boom"))
	assert.Equal(t, "x: boom\n", buf.String())
}

func TestPrintColor(t *testing.T) {
	_, err := svgpath.ParsePath("q")
	require.Error(t, err)

	var buf bytes.Buffer
	NewPrinter(&buf, termenv.WithProfile(termenv.ANSI)).Print("in", "q", err)
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "unexpected data at position 1")
}
