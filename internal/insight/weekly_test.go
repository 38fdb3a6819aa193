package insight

import (
	"strings"
	"testing"
	"time"

	"flarecast/internal/repair"
)

// 2025-06-04 is a Wednesday, so entries run Thu..Wed.
var refDate = time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC)

func TestFormatWeeklyAlwaysSevenDays(t *testing.T) {
	f := NewWeeklyFormatter(DefaultFormatterOptions())

	testCases := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"malformed JSON", `{"weekly_summary": "A calm`},
		{"three entry list", `{"weekly_summary": "A steady week.", "daily_breakdown": [{"label": "Thu", "insight": "calm pattern"}, {"label": "Fri", "insight": "Rising humidity"}, {"label": "Sat", "insight": "steady trend"}]}`},
		{"ten entry list", `{"daily_breakdown": [{"label": "a", "insight": "x"}, {"label": "b", "insight": "x"}, {"label": "c", "insight": "x"}, {"label": "d", "insight": "x"}, {"label": "e", "insight": "x"}, {"label": "f", "insight": "x"}, {"label": "g", "insight": "x"}, {"label": "h", "insight": "x"}, {"label": "i", "insight": "x"}, {"label": "j", "insight": "x"}]}`},
		{"day map", `{"weekly_summary": "Mild week.", "daily_breakdown": {"Mon": "Stable pressure keeps things calm", "Fri": "Rising humidity may cause stiff joints"}}`},
		{"legacy paragraph", "A settled week overall. Thursday brings humid air. Saturday turns windy."},
		{"legacy multi-line", "A steady stretch ahead.\nThu — Stable pressure keeps things calm\nFri — Rising humidity may cause stiff joints"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := f.Format(tc.raw, refDate)
			if len(got.Days) != 7 {
				t.Fatalf("expected 7 days, got %d", len(got.Days))
			}
			if strings.TrimSpace(got.Summary) == "" {
				t.Error("weekly summary must not be empty")
			}
			if strings.Count(got.Summary, ".")+strings.Count(got.Summary, "!")+strings.Count(got.Summary, "?") != 1 {
				t.Errorf("weekly summary must be exactly one sentence: %q", got.Summary)
			}
			expectedLabels := []string{"Thu", "Fri", "Sat", "Sun", "Mon", "Tue", "Wed"}
			for i, day := range got.Days {
				if day.Label != expectedLabels[i] {
					t.Errorf("day %d label = %q, expected %q", i, day.Label, expectedLabels[i])
				}
				if strings.TrimSpace(day.Detail) == "" {
					t.Errorf("day %d has empty detail", i)
				}
			}
		})
	}
}

func TestFormatWeeklyBrokenTemplateSummary(t *testing.T) {
	f := NewWeeklyFormatter(DefaultFormatterOptions())

	raw := `{"weekly_summary": "Stable temperatures around to , steady at , and humidity around."}`
	got := f.Format(raw, refDate)

	found := false
	for _, canned := range repair.Fallbacks() {
		if got.Summary == canned {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("broken summary should repair to a canned sentence, got %q", got.Summary)
	}
}

func TestFormatWeeklyDayDetails(t *testing.T) {
	f := NewWeeklyFormatter(DefaultFormatterOptions())

	raw := `{"weekly_summary": "A mixed week for symptoms.", "daily_breakdown": [{"label": "Thu", "insight": "Stable pressure keeps things calm"}, {"label": "Fri", "insight": "Rising humidity may cause stiff joints"}]}`
	got := f.Format(raw, refDate)

	if got.Days[0].Detail != "low flare risk" {
		t.Errorf("calm detail should collapse to the low-risk literal, got %q", got.Days[0].Detail)
	}
	if got.Days[1].Detail != "Rising humidity may cause stiff joints" {
		t.Errorf("elevated detail should keep its text, got %q", got.Days[1].Detail)
	}
}

func TestFormatWeeklyDayMapLookup(t *testing.T) {
	f := NewWeeklyFormatter(DefaultFormatterOptions())

	raw := `{"daily_breakdown": {"monday": "Rising humidity may cause stiff joints", "FRI": "Stable pressure keeps things calm"}}`
	got := f.Format(raw, refDate)

	byLabel := make(map[string]string)
	for _, day := range got.Days {
		byLabel[day.Label] = day.Detail
	}
	if byLabel["Mon"] != "Rising humidity may cause stiff joints" {
		t.Errorf("map key 'monday' should land on Mon, got %q", byLabel["Mon"])
	}
	if byLabel["Fri"] != "low flare risk" {
		t.Errorf("map key 'FRI' should land on Fri as low risk, got %q", byLabel["Fri"])
	}
}

func TestFormatWeeklyLegacyMultiLine(t *testing.T) {
	f := NewWeeklyFormatter(DefaultFormatterOptions())

	raw := "Humidity climbs through the weekend\nFri — Rising humidity may cause stiff joints\nSat - steady trend through the day"
	got := f.Format(raw, refDate)

	if got.Summary != "Humidity climbs through the weekend." {
		t.Errorf("summary should be the first line re-terminated, got %q", got.Summary)
	}

	byLabel := make(map[string]string)
	for _, day := range got.Days {
		byLabel[day.Label] = day.Detail
	}
	if byLabel["Fri"] != "Rising humidity may cause stiff joints" {
		t.Errorf("Fri detail wrong: %q", byLabel["Fri"])
	}
	if byLabel["Sat"] != "low flare risk" {
		t.Errorf("Sat detail should collapse to low risk, got %q", byLabel["Sat"])
	}
}

func TestFormatWeeklyLegacyParagraphMentions(t *testing.T) {
	f := NewWeeklyFormatter(DefaultFormatterOptions())

	raw := "A changeable week ahead for your joints. Expect humid spells on Friday. Saturday looks windy and tiring."
	got := f.Format(raw, refDate)

	if got.Summary != "A changeable week ahead for your joints." {
		t.Errorf("paragraph summary wrong: %q", got.Summary)
	}

	byLabel := make(map[string]string)
	for _, day := range got.Days {
		byLabel[day.Label] = day.Detail
	}
	if byLabel["Fri"] != factorDayPhrases["humidity"] {
		t.Errorf("Friday mention should pick the humidity phrase, got %q", byLabel["Fri"])
	}
	if byLabel["Sat"] != factorDayPhrases["wind"] {
		t.Errorf("Saturday mention should pick the wind phrase, got %q", byLabel["Sat"])
	}
}
