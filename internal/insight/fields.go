package insight

import (
	"regexp"
	"strings"

	"flarecast/internal/policy"
	"flarecast/internal/sanitize"
)

// fieldStep is one provider in a field's resolution chain. A false
// return means the field is unusable at this step and the caller's
// fallback applies.
type fieldStep func(string) (string, bool)

// resolveField folds a raw field value through an ordered chain of
// providers (trim, sanitize, app-reference filter) and substitutes
// fallback the moment any step discards the value or leaves it empty.
func resolveField(raw, fallback string) string {
	steps := []fieldStep{
		func(s string) (string, bool) { return strings.TrimSpace(s), true },
		func(s string) (string, bool) { return sanitize.Sanitize(s), true },
		policy.FilterAppReference,
	}

	text := raw
	for _, step := range steps {
		next, ok := step(text)
		if !ok || strings.TrimSpace(next) == "" {
			return fallback
		}
		text = next
	}
	return text
}

var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]?`)

// splitSentences breaks text on sentence-terminating punctuation,
// keeping the terminator attached. Whitespace-only pieces are dropped.
func splitSentences(text string) []string {
	var sentences []string
	for _, piece := range sentencePattern.FindAllString(text, -1) {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			sentences = append(sentences, piece)
		}
	}
	return sentences
}

// firstSentence reduces text to exactly one sentence, re-terminated
// with a period when the source terminator is missing.
func firstSentence(text string) string {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return ""
	}
	s := sentences[0]
	if !strings.HasSuffix(s, ".") && !strings.HasSuffix(s, "!") && !strings.HasSuffix(s, "?") {
		s += "."
	}
	return s
}

var punctuationPattern = regexp.MustCompile(`[^\w\s']`)

// stripPunctuation normalizes text for the comfort-tip / sign-off
// comparison, which must not be fooled by trailing periods or commas.
func stripPunctuation(text string) string {
	return strings.TrimSpace(punctuationPattern.ReplaceAllString(text, ""))
}
