package codefmt

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LowerInitial lower-cases only the first character of s.
//
// e.g., LowerInitial("InProgress") => "inProgress"
func LowerInitial(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Lower(language.Und).String(string(r)) + s[size:]
}
