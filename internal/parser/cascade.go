// Package parser extracts structured flashcards from free-form model
// completions. Completion format is not contractually guaranteed, so parsing
// runs as a cascade of fallback strategies that trades strict schema
// validation for graceful degradation: JSON array extraction first, then
// structured Q/A lines, then sentence pairing, and finally a single
// diagnostic card so the caller always receives a non-empty result.
package parser

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Card is one candidate flashcard produced by the cascade.
type Card struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Parse extracts an ordered list of flashcards from raw completion text.
// Strategies are tried in strict priority order and the first one yielding at
// least one card wins; cards from different strategies are never mixed.
// Parse never fails and never returns an empty slice: on total extraction
// failure it returns a single diagnostic card describing the failure,
// labeled with sourceLabel (typically the uploaded filename).
func Parse(raw, sourceLabel string) []Card {
	if cards := parseJSONArray(raw); len(cards) > 0 {
		return cards
	}
	if cards := parseStructuredLines(raw); len(cards) > 0 {
		return cards
	}
	if cards := pairSentences(raw); len(cards) > 0 {
		return cards
	}
	return []Card{diagnostic(sourceLabel, describeFailure(raw))}
}

// parseJSONArray locates the first '[' and the last ']' in the text and
// parses the inclusive substring as a JSON array of {front, back} objects.
// Malformed or structurally invalid elements are skipped, not fatal.
func parseJSONArray(raw string) []Card {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end <= start {
		return nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw[start:end+1]), &elems); err != nil {
		return nil
	}

	var cards []Card
	for _, elem := range elems {
		var obj map[string]any
		if err := json.Unmarshal(elem, &obj); err != nil {
			continue
		}
		fv, okFront := obj["front"]
		bv, okBack := obj["back"]
		if !okFront || !okBack {
			continue
		}

		front := strings.TrimSpace(coerceString(fv))
		back := strings.TrimSpace(coerceString(bv))
		if !validPair(front, back) {
			continue
		}

		cards = append(cards, Card{
			Front: Sanitize(front, MaxFrontLen),
			Back:  Sanitize(back, MaxBackLen),
		})
	}
	return cards
}

// coerceString renders a decoded JSON value as text.
func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

var (
	frontPrefixes = []string{"Q:", "Question:", "Front:"}
	backPrefixes  = []string{"A:", "Answer:", "Back:"}
)

// lineCard accumulates one flashcard across structured Q/A lines.
// A front-prefixed line opens a new card and flushes the previous one if it
// is complete; a back-prefixed line completes the currently open card.
type lineCard struct {
	front    string
	back     string
	hasFront bool
	hasBack  bool
}

// parseStructuredLines scans for Q:/Question:/Front: and A:/Answer:/Back:
// prefixed lines. Only the remainder of the line after the first colon
// becomes field content. The trailing open card is flushed after the scan.
func parseStructuredLines(raw string) []Card {
	var cards []Card
	var cur lineCard

	flush := func() {
		if !cur.hasFront || !cur.hasBack {
			return
		}
		front := strings.TrimSpace(cur.front)
		back := strings.TrimSpace(cur.back)
		if utf8.RuneCountInString(front) > minFieldLen && utf8.RuneCountInString(back) > minFieldLen {
			cards = append(cards, Card{
				Front: Sanitize(front, MaxFrontLen),
				Back:  Sanitize(back, MaxBackLen),
			})
		}
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case hasAnyPrefix(line, frontPrefixes):
			flush()
			cur = lineCard{front: afterColon(line), hasFront: true}
		case hasAnyPrefix(line, backPrefixes):
			if cur.hasFront {
				cur.back = afterColon(line)
				cur.hasBack = true
			}
		}
	}
	flush()

	return cards
}

func hasAnyPrefix(line string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

func afterColon(line string) string {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// pairSentences is the last content-bearing fallback: collapse the text to a
// single line, split on periods, keep segments longer than 20 runes, and pair
// consecutive segments as question stem and answer, up to 5 pairs. A pair is
// kept only if both members exceed 10 runes.
func pairSentences(raw string) []Card {
	collapsed := strings.ReplaceAll(raw, "\n", " ")

	var segments []string
	for _, s := range strings.Split(collapsed, ".") {
		s = strings.TrimSpace(s)
		if utf8.RuneCountInString(s) > 20 {
			segments = append(segments, s)
		}
	}
	if len(segments) < 2 {
		return nil
	}

	limit := len(segments) - 1
	if limit > 10 {
		limit = 10
	}

	var cards []Card
	for i := 0; i < limit; i += 2 {
		front := segments[i]
		back := segments[i+1]
		if utf8.RuneCountInString(front) > 10 && utf8.RuneCountInString(back) > 10 {
			cards = append(cards, Card{
				Front: Sanitize(fmt.Sprintf("What can you tell me about: %s?", front), MaxFrontLen),
				Back:  Sanitize(back, MaxBackLen),
			})
		}
	}
	return cards
}

// diagnostic builds the single card returned when no strategy extracts
// anything. It cannot fail, which keeps the cascade total.
func diagnostic(sourceLabel, detail string) Card {
	if runes := []rune(detail); len(runes) > 200 {
		detail = string(runes[:200])
	}
	return Card{
		Front: fmt.Sprintf("Error processing %s", sourceLabel),
		Back:  fmt.Sprintf("The document was uploaded but could not be processed into flashcards. Error: %s", detail),
	}
}

func describeFailure(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "response text is empty"
	}
	return "could not extract any valid flashcards from the response"
}
