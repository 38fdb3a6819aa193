package insight

import (
	"flarecast/internal/core"
	"flarecast/internal/policy"
	"flarecast/internal/similarity"
)

// genericWhy is the last-resort explanation when no catalog sentence is
// both non-vague and distinct from the summary.
const genericWhy = "Weather changes can make the body feel more effortful or tiring."

// GenerateDistinctWhy produces a "why" explanation guaranteed not to
// restate summary. It walks the factor's body-sensation catalog and
// returns the first sentence that passes both the vague-language check
// and the similarity check; selection is deterministic so the same
// summary always gets the same why.
func GenerateDistinctWhy(summary string, factor core.WeatherFactor, th similarity.Thresholds) string {
	for _, sentence := range policy.Catalog(factor) {
		if policy.ContainsVagueLanguage(sentence) {
			continue
		}
		if similarity.AreSimilarWith(summary, sentence, th) {
			continue
		}
		return sentence
	}
	return genericWhy
}
