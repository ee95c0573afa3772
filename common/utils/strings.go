package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Trim removes control symbols and spaces around the string
func Trim(str string) string {
	return strings.TrimFunc(str, func(c rune) bool {
		return unicode.IsControl(c) || unicode.IsSpace(c)
	})
}

// Shorten cuts str to at most n runes, for logging payloads
func Shorten(str string, n int) string {
	if utf8.RuneCountInString(str) <= n {
		return str
	}

	runes := []rune(str)
	return string(runes[:n]) + "..."
}
