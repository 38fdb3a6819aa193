// Package policy enforces the content rules for insight text: the
// vague-language rule ("weather never feels; only the body feels") and
// the app-reference rule (no app-usage nudges inside weather content).
package policy

import (
	"math/rand"
	"strings"

	"flarecast/internal/core"
)

// vaguePhrases attribute a feeling to the weather instead of the body,
// or gesture at an unspecified effect. Membership is checked on
// lower-cased text.
var vaguePhrases = []string{
	"weather feels",
	"weather may feel",
	"conditions feel",
	"conditions may feel",
	"pressure feels",
	"humidity feels",
	"temperature feels",
	"air feels",
	"the day feels",
	"may feel different",
	"might feel different",
	"feel different",
	"feels gentle",
	"feel gentle",
	"feels calm",
	"feels mild",
	"feels steady",
	"keeps things steady",
	"keeps things gentle",
	"keeps things calm",
	"can affect",
	"may affect",
	"can impact",
	"may impact",
}

// lighterContexts are the body words that make "lighter" specific
// enough to keep.
var lighterContexts = []string{"muscles", "joints", "tightness"}

// ContainsVagueLanguage reports whether text violates the vague-language
// rule. "Lighter" is allowed only alongside a concrete body word.
func ContainsVagueLanguage(text string) bool {
	lower := strings.ToLower(text)

	if strings.Contains(lower, "lighter") {
		grounded := false
		for _, ctx := range lighterContexts {
			if strings.Contains(lower, ctx) {
				grounded = true
				break
			}
		}
		if !grounded {
			return true
		}
	}

	for _, phrase := range vaguePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// sensationCatalog holds the replacement sentences per weather factor.
// Every sentence is built from the approved body-sensation vocabulary
// (sluggish, draining, tiring, stiff, tense, sensitive, effortful,
// ease tension, loosen tightness) and must never itself trigger
// ContainsVagueLanguage; TestCatalogNeverVague pins that invariant.
var sensationCatalog = map[core.WeatherFactor][]string{
	core.FactorPressure: {
		"Falling pressure can leave the body sluggish and joints stiff.",
		"Pressure swings often make muscles tense and the day more effortful.",
		"A pressure dip may leave you tiring sooner than usual.",
	},
	core.FactorHumidity: {
		"High humidity can be draining and make movement effortful.",
		"Damp air often leaves muscles sluggish and joints stiff.",
		"Humid stretches can be tiring for a weather-sensitive body.",
	},
	core.FactorTemperature: {
		"A cold snap can stiffen muscles and leave joints sensitive.",
		"Temperature swings are tiring and can leave the body tense.",
		"Warmth helps ease tension and loosen tightness in stiff muscles.",
	},
	core.FactorWind: {
		"Gusty wind can be draining and leave the shoulders tense.",
		"A windy day is often tiring for sensitive joints.",
		"Strong wind can make time outside more effortful and the body sluggish.",
	},
}

// Catalog returns the body-sensation sentences for factor. Unknown
// factors fall back to the pressure catalog.
func Catalog(factor core.WeatherFactor) []string {
	if sentences, ok := sensationCatalog[factor]; ok {
		return sentences
	}
	return sensationCatalog[core.FactorPressure]
}

// RewriteVague replaces vague text with a concrete body-sensation
// sentence for factor, selected with rng so callers control
// determinism. A nil rng selects the first catalog entry.
func RewriteVague(text string, factor core.WeatherFactor, rng *rand.Rand) string {
	sentences := Catalog(factor)
	if rng == nil {
		return sentences[0]
	}
	return sentences[rng.Intn(len(sentences))]
}
