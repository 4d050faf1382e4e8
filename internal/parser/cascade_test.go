package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_JSONArray(t *testing.T) {
	raw := `Here are the flashcards:
[
  {"front": "What is the capital of France?", "back": "Paris is the capital"},
  {"front": "Define osmosis in biology", "back": "Passive movement of water across a membrane"}
]
Hope these help!`

	cards := Parse(raw, "notes.pdf")

	require.Len(t, cards, 2)
	assert.Equal(t, "What is the capital of France?", cards[0].Front)
	assert.Equal(t, "Paris is the capital", cards[0].Back)
	assert.Equal(t, "Define osmosis in biology", cards[1].Front)
	assert.Equal(t, "Passive movement of water across a membrane", cards[1].Back)
}

func TestParse_JSONArrayPreservesOrder(t *testing.T) {
	var elems []string
	for i := 0; i < 8; i++ {
		elems = append(elems, fmt.Sprintf(`{"front": "question number %d", "back": "answer number %d"}`, i, i))
	}
	raw := "[" + strings.Join(elems, ",") + "]"

	cards := Parse(raw, "doc.txt")

	require.Len(t, cards, 8)
	for i, c := range cards {
		assert.Equal(t, fmt.Sprintf("question number %d", i), c.Front)
		assert.Equal(t, fmt.Sprintf("answer number %d", i), c.Back)
	}
}

func TestParse_JSONArraySkipsInvalidElements(t *testing.T) {
	raw := `[
  "just a string",
  {"front": "only a front field here"},
  {"front": "a valid question here", "back": "with a valid answer here"},
  {"front": "xx", "back": "too short front above"}
]`

	cards := Parse(raw, "doc.txt")

	require.Len(t, cards, 1)
	assert.Equal(t, "a valid question here", cards[0].Front)
}

func TestParse_JSONFieldsTooShortFallsThrough(t *testing.T) {
	// Both fields at or under the 5-rune floor must be rejected, so the
	// cascade ends up at the diagnostic tier.
	raw := `[{"front":"What is 2+2?","back":"Four"}]`

	cards := Parse(raw, "math.txt")

	require.Len(t, cards, 1)
	assert.Equal(t, "Error processing math.txt", cards[0].Front)
}

func TestParse_JSONCoercesNonStringFields(t *testing.T) {
	raw := `[{"front": "How many meters in a kilometer?", "back": 1000.5555}]`

	cards := Parse(raw, "doc.txt")

	require.Len(t, cards, 1)
	assert.Equal(t, "1000.5555", cards[0].Back)
}

func TestParse_JSONOverlongFieldRejected(t *testing.T) {
	raw := fmt.Sprintf(`[{"front": %q, "back": "a perfectly fine answer"}]`, strings.Repeat("x", 501))

	cards := parseJSONArray(raw)

	assert.Empty(t, cards)
}

func TestParse_StructuredLines(t *testing.T) {
	raw := "Q: What is the capital of France?\nA: Paris, obviously\nQ: Define osmosis\nA: Passive movement of water across a membrane"

	cards := Parse(raw, "bio.txt")

	require.Len(t, cards, 2)
	assert.Equal(t, "What is the capital of France?", cards[0].Front)
	assert.Equal(t, "Paris, obviously", cards[0].Back)
	assert.Equal(t, "Define osmosis", cards[1].Front)
	assert.Equal(t, "Passive movement of water across a membrane", cards[1].Back)
}

func TestParse_StructuredLinesAlternatePrefixes(t *testing.T) {
	raw := "Front: Newton's second law of motion\nBack: Force equals mass times acceleration\nQuestion: What is entropy about?\nAnswer: A measure of disorder in a system"

	cards := parseStructuredLines(raw)

	require.Len(t, cards, 2)
	assert.Equal(t, "Newton&#39;s second law of motion", cards[0].Front)
	assert.Equal(t, "A measure of disorder in a system", cards[1].Back)
}

func TestParse_StructuredLinesTrailingCardFlushed(t *testing.T) {
	raw := "Q: What is a mitochondrion?\nA: The powerhouse of the cell"

	cards := parseStructuredLines(raw)

	require.Len(t, cards, 1)
	assert.Equal(t, "What is a mitochondrion?", cards[0].Front)
}

func TestParse_StructuredLinesAnswerWithoutQuestionIgnored(t *testing.T) {
	raw := "A: An answer with no front before it\nQ: A real question comes here\nA: And its real answer here"

	cards := parseStructuredLines(raw)

	require.Len(t, cards, 1)
	assert.Equal(t, "A real question comes here", cards[0].Front)
}

func TestParse_StructuredLinesIncompleteCardDropped(t *testing.T) {
	raw := "Q: An abandoned question with no answer\nQ: The followup question here\nA: The only actual answer here"

	cards := parseStructuredLines(raw)

	require.Len(t, cards, 1)
	assert.Equal(t, "The followup question here", cards[0].Front)
}

func TestParse_SentencePairing(t *testing.T) {
	raw := "Photosynthesis converts light energy into chemical energy. " +
		"Chlorophyll absorbs mostly red and blue wavelengths of light. " +
		"Cellular respiration releases the stored chemical energy. " +
		"Mitochondria carry out respiration in eukaryotic cells."

	cards := Parse(raw, "bio.txt")

	require.Len(t, cards, 2)
	assert.True(t, strings.HasPrefix(cards[0].Front, "What can you tell me about:"))
	assert.Contains(t, cards[0].Front, "Photosynthesis converts light energy")
	assert.Contains(t, cards[0].Back, "Chlorophyll absorbs")
}

func TestParse_SentencePairingCapsAtFivePairs(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&b, "This is qualifying sentence number %d with padding. ", i)
	}

	cards := pairSentences(b.String())

	assert.Len(t, cards, 5)
}

func TestParse_SentencePairingTooFewSegments(t *testing.T) {
	assert.Empty(t, pairSentences("One single long qualifying sentence about nothing."))
	assert.Empty(t, pairSentences("short. bits. only."))
}

func TestParse_EmptyInputYieldsDiagnostic(t *testing.T) {
	cards := Parse("", "syllabus.pdf")

	require.Len(t, cards, 1)
	assert.Equal(t, "Error processing syllabus.pdf", cards[0].Front)
	assert.Contains(t, cards[0].Back, "could not be processed into flashcards")
	assert.Contains(t, cards[0].Back, "response text is empty")
}

func TestParse_NeverReturnsEmpty(t *testing.T) {
	inputs := []string{
		"",
		"   \n\t ",
		"garbage",
		"[]",
		"[{]",
		"{\"front\": \"not an array\"}",
		"Q: no answer ever arrives",
		strings.Repeat(".", 100),
	}
	for _, in := range inputs {
		cards := Parse(in, "doc.txt")
		assert.NotEmpty(t, cards, "input %q", in)
	}
}

func TestParse_StrategiesDoNotMix(t *testing.T) {
	// A valid JSON array wins even when Q/A lines follow it.
	raw := `[{"front": "A question from the JSON tier", "back": "An answer from the JSON tier"}]
Q: A question from the line tier
A: An answer from the line tier`

	cards := Parse(raw, "doc.txt")

	require.Len(t, cards, 1)
	assert.Equal(t, "A question from the JSON tier", cards[0].Front)
}

func TestParse_DiagnosticDetailTruncated(t *testing.T) {
	card := diagnostic("doc.txt", strings.Repeat("e", 500))
	assert.LessOrEqual(t, len(card.Back), len("The document was uploaded but could not be processed into flashcards. Error: ")+200)
}

func TestValidPair(t *testing.T) {
	tests := []struct {
		name  string
		front string
		back  string
		want  bool
	}{
		{"both valid", "a valid front", "a valid back", true},
		{"front at floor", "12345", "a valid back", false},
		{"back at floor", "a valid front", "12345", false},
		{"front over cap", strings.Repeat("f", 501), "a valid back", false},
		{"back over cap", "a valid front", strings.Repeat("b", 1001), false},
		{"front exactly at cap", strings.Repeat("f", 500), "a valid back", true},
		{"back exactly at cap", "a valid front", strings.Repeat("b", 1000), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validPair(tt.front, tt.back))
		})
	}
}
