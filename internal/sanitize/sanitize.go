// Package sanitize strips forbidden tokens and markup from insight text.
//
// Sanitize is total and idempotent: it never fails, and running it a
// second time never changes the result. Upstream text is generated and
// occasionally arrives with markdown emphasis, line-break markup,
// technical readings ("1013 hPa", "around 85%"), or advisory phrasing
// that content policy does not allow on an insight card.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	lineBreakMarkup = regexp.MustCompile(`(?i)<br\s*/?>`)
	emphasisMarkers = regexp.MustCompile(`[*_]+`)
	bulletMarkers   = regexp.MustCompile(`(?m)^\s*[-•·–—]\s*`)

	// A numeric reading plus its technical unit, together with a leading
	// connective ("at 1013 hPa", "around 85%"). The connective is only
	// consumed when a numeral follows; dangling connectives with no
	// numeral at all are the template-repair package's problem.
	numericUnit = regexp.MustCompile(`(?i)(?:\b(?:at|around|near)\s+)?-?\d+(?:\.\d+)?\s*(?:°\s*[cf]?|degrees?(?:\s+(?:celsius|fahrenheit|[cf]\b))?|%|percent\b|hpa\b|kpa\b|mbar\b|mb\b|mmhg\b|inhg\b)`)

	extraWhitespace = regexp.MustCompile(`\s+`)
	spaceBeforeStop = regexp.MustCompile(`\s+([,.;:!?])`)
)

// forbiddenTerms is the fixed vocabulary of technical jargon and
// directive phrasing that never reaches the user, whatever the rest of
// the sentence says.
var forbiddenTerms = []string{
	"low-pressure system",
	"high-pressure system",
	"pressure system",
	"pressure gradient",
	"frontal system",
	"barometric",
	"isobar",
	"millibars",
	"millibar",
	"dew point",
	"you should",
	"you must",
	"be sure to",
	"make sure to",
	"try to",
	"it is recommended",
	"it's recommended",
}

// forbiddenTermPatterns are the case-insensitive matchers for
// forbiddenTerms. Matching case-insensitively on the original string
// keeps removal offsets honest even when case folding changes a rune's
// byte length (lowercasing a string can grow or shrink it).
var forbiddenTermPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(forbiddenTerms))
	for i, term := range forbiddenTerms {
		patterns[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
	}
	return patterns
}()

// maxPasses bounds the fixed-point loop. Each pass only removes text,
// so the loop terminates long before the bound in practice.
const maxPasses = 4

// Sanitize strips markup, numeric technical readings, and forbidden
// vocabulary from text, collapsing the remaining whitespace. The result
// may be empty; it is never an error.
func Sanitize(text string) string {
	// A removal can uncover a new match ("you <br> should" only reads
	// "you should" once the markup is gone), so run passes to a fixed
	// point to keep Sanitize idempotent.
	out := text
	for i := 0; i < maxPasses; i++ {
		next := pass(out)
		if next == out {
			break
		}
		out = next
	}
	return out
}

func pass(text string) string {
	t := lineBreakMarkup.ReplaceAllString(text, " ")
	t = bulletMarkers.ReplaceAllString(t, "")
	t = emphasisMarkers.ReplaceAllString(t, "")
	t = numericUnit.ReplaceAllString(t, "")

	for _, pattern := range forbiddenTermPatterns {
		t = pattern.ReplaceAllString(t, "")
	}

	t = extraWhitespace.ReplaceAllString(t, " ")
	t = spaceBeforeStop.ReplaceAllString(t, "$1")
	return strings.TrimSpace(t)
}
