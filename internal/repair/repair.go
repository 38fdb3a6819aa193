// Package repair recovers weekly summaries left broken by a partially
// failed upstream template: range phrases with no bounds, "steady at"
// with nothing following, empty placeholder tokens. The repaired text
// is never visibly broken, whatever the upstream generator did.
package repair

import (
	"regexp"
	"strings"
)

// MinLength is the cutoff below which cleaned text is considered too
// damaged to show and a canned sentence is used instead. A contractual
// constant; the formatter can override it from configuration.
const MinLength = 10

var (
	emptyPlaceholders = regexp.MustCompile(`\{\{?\s*\}\}?|\[\s*\]|\(\s*\)|\bnull\b|\bundefined\b|\bNaN\b`)

	// A clause whose tail is a bare connective with nothing interpolated
	// after it ("steady at ,", "around to .", "and humidity around.").
	// Clauses with real content after the connective do not match
	// because the connective must run straight into a delimiter.
	danglingClause = regexp.MustCompile(`(?i)[^,.;]*\b(?:at|around|near|about|to|from|between|and|up to|down to)\s*(,|\.|;|$)`)

	strayPunctuation = regexp.MustCompile(`\s*[,;]\s*(?:[,;]\s*)+`)
	orphanedLeading  = regexp.MustCompile(`^\s*[,.;]+\s*`)
	doubledPeriods   = regexp.MustCompile(`\.\s*(?:[.,;]\s*)+`)
	extraWhitespace  = regexp.MustCompile(`\s+`)
)

// canned fallback sentences, selected by scanning the original text for
// qualitative keywords. Each is one policy-safe sentence.
const (
	steadyFallback  = "Expect a steady week with conditions staying close to what your body is used to."
	coolerFallback  = "A cooler stretch is ahead, so give stiff muscles a little extra time to warm up."
	warmerFallback  = "A warmer stretch is ahead, which often helps ease tension through the week."
	neutralFallback = "Conditions look fairly consistent this week with no sharp swings expected."
)

// RepairTemplate repairs text with the default MinLength cutoff.
func RepairTemplate(text string) string {
	return RepairTemplateWith(text, MinLength)
}

// RepairTemplateWith removes dangling template fragments from text.
// When less than minLength characters survive the cleanup, one of four
// canned sentences is returned, keyed off qualitative keywords in the
// original text; otherwise the cleaned text is returned, re-terminated
// with a period if needed.
func RepairTemplateWith(text string, minLength int) string {
	cleaned := emptyPlaceholders.ReplaceAllString(text, "")
	cleaned = danglingClause.ReplaceAllString(cleaned, "$1")
	cleaned = strayPunctuation.ReplaceAllString(cleaned, ", ")
	cleaned = orphanedLeading.ReplaceAllString(cleaned, "")
	cleaned = doubledPeriods.ReplaceAllString(cleaned, ". ")
	cleaned = extraWhitespace.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.Trim(cleaned, ",; ")

	if len(cleaned) < minLength {
		return fallbackFor(text)
	}

	if !strings.HasSuffix(cleaned, ".") && !strings.HasSuffix(cleaned, "!") && !strings.HasSuffix(cleaned, "?") {
		cleaned += "."
	}
	return cleaned
}

// fallbackFor scans the original (unrepaired) text: the broken fragment
// still carries the qualitative words the template meant to use.
func fallbackFor(original string) string {
	lower := strings.ToLower(original)
	switch {
	case strings.Contains(lower, "steady") || strings.Contains(lower, "stable"):
		return steadyFallback
	case strings.Contains(lower, "cool") || strings.Contains(lower, "cold") || strings.Contains(lower, "chill"):
		return coolerFallback
	case strings.Contains(lower, "warm") || strings.Contains(lower, "hot") || strings.Contains(lower, "heat"):
		return warmerFallback
	default:
		return neutralFallback
	}
}

// Fallbacks returns the four canned sentences, in selection order.
// Exposed so formatter tests can assert membership without copying the
// literals.
func Fallbacks() []string {
	return []string{steadyFallback, coolerFallback, warmerFallback, neutralFallback}
}
