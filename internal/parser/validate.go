package parser

import "unicode/utf8"

// Length bounds for flashcard fields, applied before sanitization.
// Sanitization may shorten further but does not re-validate.
const (
	MaxFrontLen = 500
	MaxBackLen  = 1000

	// minFieldLen is the exclusive content-length floor for both fields.
	minFieldLen = 5
)

// validPair reports whether a candidate pair satisfies the shape constraints:
// front length in (5, 500] and back length in (5, 1000], counted in runes.
func validPair(front, back string) bool {
	f := utf8.RuneCountInString(front)
	b := utf8.RuneCountInString(back)
	return f > minFieldLen && f <= MaxFrontLen && b > minFieldLen && b <= MaxBackLen
}
