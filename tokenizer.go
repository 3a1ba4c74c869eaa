package msgsearch

import (
	"strings"
	"unicode"
)

// Tokenize turns raw text into its normalized token sequence: the text is
// lower-cased, then split on runs of non-alphanumeric runes, discarding empty
// fragments. Identical input always yields the identical sequence.
//
// "Sophia Al-Farsi" → ["sophia", "al", "farsi"]. An empty or punctuation-only
// string yields an empty sequence.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
