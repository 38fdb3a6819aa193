package repair

import (
	"strings"
	"testing"
)

func TestRepairTemplate(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "healthy text gets a terminating period",
			input:    "A mild week overall with slow warming through the weekend",
			expected: "A mild week overall with slow warming through the weekend.",
		},
		{
			name:     "healthy text with period unchanged",
			input:    "Humidity eases midweek and stays settled.",
			expected: "Humidity eases midweek and stays settled.",
		},
		{
			name:     "broken range template collapses to steady fallback",
			input:    "Stable temperatures around to , steady at , and humidity around.",
			expected: steadyFallback,
		},
		{
			name:     "broken template with cool keyword",
			input:    "Cool mornings near , rising to .",
			expected: coolerFallback,
		},
		{
			name:     "broken template with warm keyword",
			input:    "Warm spells between and , peaking around .",
			expected: warmerFallback,
		},
		{
			name:     "broken template with no qualitative keyword",
			input:    "Readings from to , holding at .",
			expected: neutralFallback,
		},
		{
			name:     "empty placeholder tokens",
			input:    "{} null undefined",
			expected: neutralFallback,
		},
		{
			name:     "empty input",
			input:    "",
			expected: neutralFallback,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := RepairTemplate(tc.input)
			if got != tc.expected {
				t.Errorf("RepairTemplate(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestRepairTemplateNeverBroken(t *testing.T) {
	inputs := []string{
		"",
		"at , around , near .",
		"Stable temperatures around to , steady at , and humidity around.",
		"{}",
		"steady at",
	}

	for _, input := range inputs {
		got := RepairTemplate(input)
		if strings.TrimSpace(got) == "" {
			t.Errorf("RepairTemplate(%q) returned empty output", input)
		}
		if !strings.HasSuffix(got, ".") {
			t.Errorf("RepairTemplate(%q) = %q, missing sentence terminator", input, got)
		}
	}
}

func TestFallbacksAreSingleSentences(t *testing.T) {
	for _, s := range Fallbacks() {
		if !strings.HasSuffix(s, ".") {
			t.Errorf("fallback %q does not end in a period", s)
		}
		if strings.Count(s, ".") != 1 {
			t.Errorf("fallback %q is not exactly one sentence", s)
		}
	}
}
