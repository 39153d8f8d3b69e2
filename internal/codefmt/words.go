package codefmt

import "strings"

// SplitWords splits an identifier into words. Boundaries are:
//   - an uppercase letter after a lowercase letter: "getID" -> "get" + "ID"
//   - an uppercase letter before a lowercase letter: "HTTPServer" -> "HTTP" + "Server"
//   - around underscores: "STATUS_ACTIVE" -> "STATUS" + "_" + "ACTIVE"
//   - between letters and digits: "file2name" -> "file" + "2" + "name"
func SplitWords(s string) []string {
	var words []string
	start := 0
	for i := 1; i < len(s); i++ {
		var next byte
		if i+1 < len(s) {
			next = s[i+1]
		}
		if isWordBoundary(s[i-1], s[i], next) {
			words = append(words, s[start:i])
			start = i
		}
	}
	if start < len(s) {
		words = append(words, s[start:])
	}
	return words
}

func isWordBoundary(prev, curr, next byte) bool {
	switch {
	case isLower(prev) && isUpper(curr):
		return true
	case isUpper(curr) && isLower(next):
		return true
	case (prev == '_') != (curr == '_'):
		return true
	case isLetter(prev) && isDigit(curr), isDigit(prev) && isLetter(curr):
		return true
	}
	return false
}

func isLower(c byte) bool  { return 'a' <= c && c <= 'z' }
func isUpper(c byte) bool  { return 'A' <= c && c <= 'Z' }
func isLetter(c byte) bool { return isLower(c) || isUpper(c) }
func isDigit(c byte) bool  { return '0' <= c && c <= '9' }

// TrimCommonWordPrefix removes the words shared by the beginning of all names.
// At least one word of each name is left. Fewer than two names are returned
// as is.
//
//	TrimCommonWordPrefix([]string{"StatusActive", "StatusGone"}) => ["Active", "Gone"]
func TrimCommonWordPrefix(names []string) []string {
	trimmed := make([]string, len(names))
	copy(trimmed, names)
	if len(names) < 2 {
		return trimmed
	}

	// n is the maximum number of words to trim.
	split := make([][]string, len(names))
	for i, name := range names {
		split[i] = SplitWords(name)
	}
	n := len(split[0]) - 1
	for _, words := range split[1:] {
		n = min(n, len(words)-1)
	}

	common := 0
	for ; common < n; common++ {
		w := split[0][common]
		same := true
		for _, words := range split[1:] {
			if words[common] != w {
				same = false
				break
			}
		}
		if !same {
			break
		}
	}

	for i, words := range split {
		trimmed[i] = strings.Join(words[common:], "")
	}
	return trimmed
}
