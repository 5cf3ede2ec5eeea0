package utils

import (
	"strings"
	"unicode"
)

// DefaultMaxQueryLength caps user supplied words before lookup.
const DefaultMaxQueryLength = 24

// Sanitize lowercases and trims a user supplied word and cuts it to at most
// maxLen runes. A maxLen below one means DefaultMaxQueryLength.
func Sanitize(s string, maxLen int) string {
	if maxLen < 1 {
		maxLen = DefaultMaxQueryLength
	}
	s = strings.ToLower(strings.TrimSpace(s))
	runes := []rune(s)
	if len(runes) > maxLen {
		s = string(runes[:maxLen])
	}
	return s
}

// IsSeparator checks if a rune is a separator character
func IsSeparator(r rune) bool {
	return r == ' ' || r == '_' || r == '-' || r == '.' || r == '/' || r == '\''
}

// IsOnlyNumbers checks if a string consists entirely of numeric digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ContainsSpecialChars reports runes that are neither letters, digits nor
// separators.
func ContainsSpecialChars(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !IsSeparator(r) {
			return true
		}
	}
	return false
}

// IsValidInput rejects empty, numeric, symbol laden and repetitive ("aaaa")
// input before it reaches the lexicon.
func IsValidInput(s string) bool {
	if len(s) == 0 {
		return false
	}
	if IsOnlyNumbers(s) {
		return false
	}
	if ContainsSpecialChars(s) {
		return false
	}
	if IsRepetitive(s) {
		return false
	}
	return true
}

// IsRepetitive reports strings of three or more copies of one rune.
func IsRepetitive(s string) bool {
	runes := []rune(s)
	if len(runes) <= 2 {
		return false
	}
	for _, r := range runes[1:] {
		if r != runes[0] {
			return false
		}
	}
	return true
}
