package insight

import (
	"strings"
	"testing"

	"flarecast/internal/policy"
	"flarecast/internal/similarity"
)

func TestFormatDailyEmptyPayload(t *testing.T) {
	f := NewDailyFormatter(DefaultFormatterOptions())

	for _, raw := range []string{"", "   ", "\n\t"} {
		got := f.Format(raw)
		if got != DefaultDailyMessage() {
			t.Errorf("Format(%q) = %q, expected the default daily message", raw, got)
		}
	}

	if strings.TrimSpace(DefaultDailyMessage()) == "" {
		t.Fatal("default daily message must not be empty")
	}
	if !strings.Contains(DefaultDailyMessage(), "Why: ") {
		t.Error("default daily message must carry a why line")
	}
}

func TestFormatDailyStructured(t *testing.T) {
	f := NewDailyFormatter(DefaultFormatterOptions())

	raw := `{"summary": "Pressure drops this afternoon.", "why": "Falling pressure often makes joints stiff.", "comfort_tip": "Plan lighter tasks for the evening and rest your joints.", "sign_off": "Take it slow tonight."}`
	got := f.Format(raw)

	lines := strings.Split(got, "\n\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 logical lines, got %d: %q", len(lines), got)
	}
	if lines[0] != "Pressure drops this afternoon." {
		t.Errorf("unexpected summary line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Why: ") {
		t.Errorf("second line must be the why line: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Comfort tip: ") {
		t.Errorf("third line must be the comfort tip: %q", lines[2])
	}
}

// The duplicated-fields payload from the content rules: the why must be
// regenerated away from the summary and the sign-off dropped as a
// duplicate of the comfort tip.
func TestFormatDailyDeduplicates(t *testing.T) {
	f := NewDailyFormatter(DefaultFormatterOptions())

	raw := `{"summary": "Pressure drops today.", "why": "Pressure drops today.", "comfort_tip": "Rest when needed.", "sign_off": "Rest when needed."}`
	got := f.Format(raw)

	lines := strings.Split(got, "\n\n")
	summary := lines[0]
	why := strings.TrimPrefix(lines[1], "Why: ")

	if similarity.AreSimilar(summary, why) {
		t.Errorf("why %q is still similar to summary %q", why, summary)
	}
	if strings.Count(got, "Rest when needed.") != 1 {
		t.Errorf("duplicate sign-off should be omitted, got %q", got)
	}
	if !strings.Contains(got, "Comfort tip: Rest when needed.") {
		t.Errorf("comfort tip should survive deduplication, got %q", got)
	}
}

func TestFormatDailyWhyNeverVague(t *testing.T) {
	f := NewDailyFormatter(DefaultFormatterOptions())

	vagueInputs := []string{
		`{"summary": "Humidity builds today.", "why": "Conditions feel gentle this morning."}`,
		`{"summary": "A warm day ahead.", "why": "The weather feels different and may impact you."}`,
		`{"summary": "Wind picks up later.", "why": "High pressure keeps things steady."}`,
	}

	for _, raw := range vagueInputs {
		got := f.Format(raw)
		lines := strings.Split(got, "\n\n")
		why := strings.TrimPrefix(lines[1], "Why: ")
		if policy.ContainsVagueLanguage(why) {
			t.Errorf("why is still vague for %q: %q", raw, why)
		}
		if similarity.AreSimilar(lines[0], why) {
			t.Errorf("why restates summary for %q: %q", raw, why)
		}
	}
}

func TestFormatDailyLegacyText(t *testing.T) {
	f := NewDailyFormatter(DefaultFormatterOptions())

	raw := "Pressure dips after lunch. Joints can stiffen when pressure falls. Keep your hands warm."
	got := f.Format(raw)

	lines := strings.Split(got, "\n\n")
	if lines[0] != "Pressure dips after lunch." {
		t.Errorf("legacy summary should be the first sentence, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Why: ") {
		t.Errorf("legacy why line missing: %q", lines[1])
	}
	if len(lines) < 3 || !strings.HasPrefix(lines[2], "Comfort tip: ") {
		t.Errorf("legacy comfort tip missing: %q", got)
	}
}

func TestFormatDailyAppReferenceFallsBack(t *testing.T) {
	f := NewDailyFormatter(DefaultFormatterOptions())

	raw := `{"summary": "Take one minute to log your symptoms in the app.", "why": "Damp air can leave muscles sluggish."}`
	got := f.Format(raw)

	lines := strings.Split(got, "\n\n")
	if lines[0] != defaultDailySummary {
		t.Errorf("filtered summary should fall back to the default, got %q", lines[0])
	}
}

func TestFormatDailyMalformedJSON(t *testing.T) {
	f := NewDailyFormatter(DefaultFormatterOptions())

	got := f.Format(`{"summary": "Pressure drops`)
	if strings.TrimSpace(got) == "" {
		t.Fatal("malformed payload must still produce output")
	}
	if !strings.Contains(got, "Why: ") {
		t.Errorf("malformed payload output missing why line: %q", got)
	}
}
