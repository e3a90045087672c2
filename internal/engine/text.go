package engine

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first letter and lower-cases the rest ("mr-mime" -> "Mr-mime").
// Battle text and winner names use this form.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
