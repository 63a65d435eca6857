package pybat

import (
	"strings"
	"unicode"
)

// IsAlpha reports whether s is nonempty and every rune is a letter or
// a decimal digit. Digits count as alphabetic; translated sources were
// written against that reading of isalpha, so it is preserved.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsDigit reports whether s is nonempty and every character is one of
// '0' through '9'.
func IsDigit(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsAlphaRune is IsAlpha for a single character, for call sites that
// iterate a string by rune.
func IsAlphaRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsDigitRune is IsDigit for a single character.
func IsDigitRune(r rune) bool {
	return '0' <= r && r <= '9'
}

// Strip returns s with leading and trailing whitespace removed.
func Strip(s string) string {
	return strings.TrimSpace(s)
}

// RStrip returns s with trailing whitespace removed.
func RStrip(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// Find returns the index of the first occurrence of needle in s, or -1
// when there is none.
func Find(s, needle string) int {
	return strings.Index(s, needle)
}

// StartsWith reports whether s begins with prefix.
func StartsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}
