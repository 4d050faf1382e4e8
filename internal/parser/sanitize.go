package parser

import (
	"html"
	"strings"
)

// truncationMarker is appended whenever Sanitize cuts text at maxLength.
const truncationMarker = "..."

// residualChars strips markup-significant characters that escaping may not
// fully neutralize.
var residualChars = strings.NewReplacer("<", "", ">", "", `"`, "", "'", "")

// Sanitize normalizes arbitrary text for safe storage and display: it trims
// surrounding whitespace, escapes markup so the result renders as plain text,
// strips residual special characters, and truncates to maxLength runes with a
// marker. Empty input yields empty output; Sanitize never fails.
func Sanitize(text string, maxLength int) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	text = html.EscapeString(text)
	text = residualChars.Replace(text)

	if runes := []rune(text); len(runes) > maxLength {
		text = string(runes[:maxLength]) + truncationMarker
	}
	return text
}
