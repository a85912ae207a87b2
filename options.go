package svgpath

import "fmt"

// ListSeparator selects what is written between the items of a list.
type ListSeparator int

const (
	// "1 2 3"
	SpaceSeparator ListSeparator = iota
	// "1,2,3"
	CommaSeparator
	// "1, 2, 3"
	CommaSpaceSeparator
)

func (sep ListSeparator) String() string {
	switch sep {
	case SpaceSeparator:
		return "space"
	case CommaSeparator:
		return "comma"
	case CommaSpaceSeparator:
		return "comma-space"
	default:
		return fmt.Sprintf("ListSeparator(%d)", int(sep))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (sep ListSeparator) MarshalText() ([]byte, error) {
	switch sep {
	case SpaceSeparator, CommaSeparator, CommaSpaceSeparator:
		return []byte(sep.String()), nil
	default:
		return nil, fmt.Errorf("invalid list separator %d", int(sep))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the names
// returned by String.
func (sep *ListSeparator) UnmarshalText(text []byte) error {
	switch string(text) {
	case "space":
		*sep = SpaceSeparator
	case "comma":
		*sep = CommaSeparator
	case "comma-space":
		*sep = CommaSpaceSeparator
	default:
		return fmt.Errorf("invalid list separator %q, want one of space, comma, comma-space", text)
	}
	return nil
}

func (sep ListSeparator) appendTo(buf []byte) []byte {
	switch sep {
	case CommaSeparator:
		return append(buf, ',')
	case CommaSpaceSeparator:
		return append(buf, ',', ' ')
	default:
		return append(buf, ' ')
	}
}

// WriteOptions controls how values are serialized. The zero value writes
// plain, uncompressed output and is the same as DefaultWriteOptions.
type WriteOptions struct {
	// Shorten #rrggbb colors to #rgb where possible. Path data is not
	// affected.
	TrimHexColors bool

	// Write "0.5" as ".5" and "-0.5" as "-.5".
	RemoveLeadingZero bool

	// Omit separators in path data wherever the result still parses the
	// same, as in "M10-20L30 40" instead of "M 10 -20 L 30 40".
	UseCompactPathNotation bool

	// Write the large-arc and sweep flags of arcs without a separator between
	// them. Only has an effect when path data is written.
	JoinArcToFlags bool

	// Omit command letters that repeat the previous command, as in
	// "M 10 20 L 30 40 50 60" instead of "M 10 20 L 30 40 L 50 60". MoveTo
	// letters are never omitted.
	RemoveDuplicatedPathCommands bool

	// Omit LineTo letters directly after a MoveTo of the same absoluteness,
	// as in "M 10 20 30 40" instead of "M 10 20 L 30 40".
	UseImplicitLineToCommands bool

	// Write transforms as translate, scale or rotate instead of matrix when
	// possible.
	SimplifyTransformMatrices bool

	// The separator between the items of number and point lists.
	ListSeparator ListSeparator
}

// DefaultWriteOptions are the options used by String methods.
var DefaultWriteOptions = WriteOptions{}
