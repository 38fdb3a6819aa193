// Package classify assigns a weather factor and a risk level to insight
// text using first-match keyword scans. No scoring, no NLP: the scans
// run in a fixed priority order and ties go to the first listed
// category, which keeps the result deterministic for any input.
package classify

import (
	"strings"

	"flarecast/internal/core"
)

// factorKeywords is scanned in priority order: pressure, humidity,
// temperature, wind. The first factor with any keyword hit wins.
var factorKeywords = []struct {
	factor   core.WeatherFactor
	keywords []string
}{
	{core.FactorPressure, []string{"pressure", "front", "storm"}},
	{core.FactorHumidity, []string{"humid", "damp", "moisture", "muggy"}},
	{core.FactorTemperature, []string{"temperature", "warm", "heat", "cold", "cool", "chill"}},
	{core.FactorWind, []string{"wind", "gust", "breez"}},
}

// WeatherFactor returns the dominant weather factor of text. Defaults
// to pressure when nothing matches, since pressure is the factor most
// weather-sensitive symptoms track.
func WeatherFactor(text string) core.WeatherFactor {
	lower := strings.ToLower(text)
	for _, fk := range factorKeywords {
		for _, kw := range fk.keywords {
			if strings.Contains(lower, kw) {
				return fk.factor
			}
		}
	}
	return core.FactorPressure
}

var elevatedMarkers = []string{
	"moderate",
	"high",
	"rising",
	"shift",
	"storm",
	"front",
	"stiff",
	"tiring",
	"draining",
	"heavy",
	"sluggish",
	"tense",
	"sensitive",
	"effortful",
	"watch for",
}

var calmWords = []string{"steady", "calm", "stable"}

var calmContexts = []string{"pattern", "conditions", "trend", "pressure"}

// Risk classifies a weekday detail as low or elevated.
//
// Explicit low markers win outright; after that any elevated marker
// forces elevated. "Gentle and mild" with no markers at all reads as
// low. Text that still carries embedded weather detail (dash-joined
// clauses or an explicit humidity/temperature/pressure mention)
// defaults to elevated; everything else defaults to low.
func Risk(detail string) core.RiskLevel {
	lower := strings.ToLower(detail)

	if strings.Contains(lower, "low flare risk") {
		return core.RiskLow
	}
	if containsAny(lower, calmWords) && containsAny(lower, calmContexts) {
		return core.RiskLow
	}

	if containsAny(lower, elevatedMarkers) {
		return core.RiskElevated
	}

	if strings.Contains(lower, "gentle") && strings.Contains(lower, "mild") {
		return core.RiskLow
	}

	if hasEmbeddedWeatherDetail(lower) {
		return core.RiskElevated
	}
	return core.RiskLow
}

func hasEmbeddedWeatherDetail(lower string) bool {
	if strings.Contains(lower, " - ") || strings.Contains(lower, "–") || strings.Contains(lower, "—") {
		return true
	}
	return strings.Contains(lower, "humidity") ||
		strings.Contains(lower, "temperature") ||
		strings.Contains(lower, "pressure")
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
