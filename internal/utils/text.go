package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TitleCase capitalises the first letter of every whitespace separated word
// and lower-cases the rest. Runs of whitespace collapse to a single space.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
	}
	return strings.Join(words, " ")
}

// Slugify lower-cases s and joins its alphanumeric runs with dashes
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}

// IsStateCode reports whether s is a two letter state abbreviation
func IsStateCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
