package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeName lowercases and removes all whitespace so that names like
// "Chennai Super Kings" and "chennai superkings" compare equal.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	return whitespaceRegex.ReplaceAllString(name, "")
}

// ContainsAny reports whether the normalized form of `s` contains any of the
// (already normalized) needles.
func ContainsAny(s string, needles []string) bool {
	s = NormalizeName(s)
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// Before returns the text before the first occurrence of sep, or the whole
// string when sep does not occur.
func Before(s, sep string) string {
	before, _, _ := strings.Cut(s, sep)
	return before
}

// Nth returns the n-th (0-based) piece of s split around sep, the bool is
// false when there are not enough pieces.
func Nth(s, sep string, n int) (string, bool) {
	parts := strings.Split(s, sep)
	if n >= len(parts) {
		return "", false
	}
	return parts[n], true
}
