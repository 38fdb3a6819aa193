// Package similarity decides whether two text fragments are near-duplicates.
//
// The daily formatter uses it to stop a "why" explanation from merely
// restating the summary, and to stop a sign-off from duplicating a
// comfort tip.
package similarity

import (
	"regexp"
	"strings"
)

// Thresholds holds the near-duplicate cutoffs. The defaults are
// contractual constants carried over from the original content rules;
// they are exposed as configuration rather than hard-coded so they can
// be recalibrated without touching the engine.
type Thresholds struct {
	Containment float64 // shorter/longer length ratio for substring matches
	Jaccard     float64 // word-set overlap cutoff
}

// DefaultThresholds returns the contractual cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Containment: 0.8,
		Jaccard:     0.7,
	}
}

var wordPattern = regexp.MustCompile(`[a-zA-Z']+`)

// AreSimilar reports whether a and b are near-duplicates under the
// default thresholds. It is symmetric and total.
func AreSimilar(a, b string) bool {
	return AreSimilarWith(a, b, DefaultThresholds())
}

// AreSimilarWith is AreSimilar with explicit thresholds.
//
// Three checks, any one of which makes the pair similar:
//  1. case-insensitive, whitespace-trimmed exact match
//  2. the shorter normalized string is contained in the longer one and
//     the length ratio exceeds the containment threshold
//  3. Jaccard overlap of the word sets (words longer than 2 chars)
//     exceeds the Jaccard threshold
func AreSimilarWith(a, b string, th Thresholds) bool {
	na := normalize(a)
	nb := normalize(b)

	if na == nb {
		return true
	}
	if na == "" || nb == "" {
		return false
	}

	shorter, longer := na, nb
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if strings.Contains(longer, shorter) {
		ratio := float64(len(shorter)) / float64(len(longer))
		if ratio > th.Containment {
			return true
		}
	}

	return jaccard(wordSet(na), wordSet(nb)) > th.Jaccard
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range wordPattern.FindAllString(s, -1) {
		if len(w) > 2 {
			set[w] = true
		}
	}
	return set
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	intersection := 0
	for w := range a {
		if b[w] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
