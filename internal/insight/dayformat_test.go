package insight

import (
	"testing"

	"flarecast/internal/core"
	"flarecast/internal/policy"
	"flarecast/internal/similarity"
)

func TestFormatDayDetail(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"calm detail collapses", "Stable pressure keeps things calm", "low flare risk"},
		{"elevated detail kept", "Rising humidity may cause stiff joints", "Rising humidity may cause stiff joints"},
		{"leading bullet stripped", "- Rising humidity may cause stiff joints", "Rising humidity may cause stiff joints"},
		{"empty detail is low risk", "", "low flare risk"},
		{"technical reading stripped", "Storm pressure at 990 hPa expected", "Storm pressure expected"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatDayDetail(tc.input)
			if got != tc.expected {
				t.Errorf("FormatDayDetail(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestGenerateDistinctWhy(t *testing.T) {
	th := similarity.DefaultThresholds()

	why := GenerateDistinctWhy("Pressure drops today.", core.FactorPressure, th)
	if similarity.AreSimilarWith("Pressure drops today.", why, th) {
		t.Errorf("generated why restates the summary: %q", why)
	}
	if policy.ContainsVagueLanguage(why) {
		t.Errorf("generated why is vague: %q", why)
	}

	// When every catalog sentence is too close to the summary, the
	// generic fallback applies.
	catalog := policy.Catalog(core.FactorWind)
	got := GenerateDistinctWhy(catalog[0], core.FactorWind, similarity.Thresholds{Containment: 0, Jaccard: -1})
	if got != genericWhy {
		t.Errorf("expected the generic fallback, got %q", got)
	}
}
