/*
File    : lox-mix/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "strconv"

// parseFloat converts a scanned number lexeme to its float64 value.
// The lexer only ever calls this with text matching [0-9]+(\.[0-9]+)?,
// so the parse cannot fail.
func parseFloat(text string) float64 {
	v, _ := strconv.ParseFloat(text, 64)
	return v
}

// isDigit reports whether c is an ASCII decimal digit ('0'..'9').
// Lox numbers are ASCII-only, so byte comparison is enough — no need
// for unicode.IsDigit's wider rune classification here.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha reports whether c can start or continue an identifier:
// ASCII letters and underscore.
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// isAlphaNumeric reports whether c can continue an identifier once
// started: letters, digits, or underscore.
func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// isWhitespace reports whether c is a space, tab, carriage return, or
// newline. The scanner does not call it: scanToken matches these bytes
// directly in its switch (counting lines on '\n').
func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}
