package svgpath

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isSpace reports whether c is XML whitespace.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isIdentChar(c byte) bool {
	return isDigit(c) || isLetter(c) || c == '-' || c == '_'
}

func isSign(c byte) bool {
	return c == '+' || c == '-'
}

// isNumberStart reports whether c can begin a number.
func isNumberStart(c byte) bool {
	return isDigit(c) || c == '.' || isSign(c)
}
