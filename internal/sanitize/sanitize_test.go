package sanitize

import (
	"testing"
	"unicode/utf8"
)

func TestSanitize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text passes through",
			input:    "Rising humidity may cause stiff joints.",
			expected: "Rising humidity may cause stiff joints.",
		},
		{
			name:     "line break markup",
			input:    "Pressure is falling.<br>Joints may ache.<br />Rest up.",
			expected: "Pressure is falling. Joints may ache. Rest up.",
		},
		{
			name:     "emphasis and bullet markers",
			input:    "- **Humidity** is _rising_ today",
			expected: "Humidity is rising today",
		},
		{
			name:     "numeric value with pressure unit",
			input:    "Pressure drops to 1005 hPa this evening.",
			expected: "Pressure drops to this evening.",
		},
		{
			name:     "numeric value with connective and percent",
			input:    "Humidity sits around 85% all day.",
			expected: "Humidity sits all day.",
		},
		{
			name:     "temperature degree marks",
			input:    "Highs near 72°F with a light breeze.",
			expected: "Highs with a light breeze.",
		},
		{
			name:     "forbidden jargon removed",
			input:    "A low-pressure system brings barometric swings.",
			expected: "A brings swings.",
		},
		{
			name:     "directive phrasing removed",
			input:    "You should rest and try to stay warm.",
			expected: "rest and stay warm.",
		},
		{
			name:     "markup hiding a forbidden phrase",
			input:    "you <br> should take it easy",
			expected: "take it easy",
		},
		{
			// Lowercasing Ⱥ grows it from 2 bytes to 3, so removal
			// offsets computed on a lowercased copy would not line up.
			name:     "forbidden phrase after width-growing runes",
			input:    "ȺȺȺȺȺȺȺȺȺȺ you should rest",
			expected: "ȺȺȺȺȺȺȺȺȺȺ rest",
		},
		{
			// Lowercasing İ shrinks it from 2 bytes to 1.
			name:     "forbidden phrase after width-shrinking runes",
			input:    "İİ you should rest",
			expected: "İİ rest",
		},
		{
			name:     "whitespace collapsed and trimmed",
			input:    "  Calm   day    ahead.  ",
			expected: "Calm day ahead.",
		},
		{
			name:     "fully stripped input yields empty string",
			input:    "**  ** <br>",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Sanitize(tc.input)
			if got != tc.expected {
				t.Errorf("Sanitize(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Pressure drops to 1005 hPa this evening.",
		"you <br> should take it easy",
		"- **Humidity** around 85% feels heavy",
		"A low-pressure system brings barometric swings near 30 mbar.",
		"Plain sentence with no markup at all.",
		"ȺȺȺȺȺȺȺȺȺȺ you should rest",
		"İİ you should rest",
	}

	for _, input := range inputs {
		once := Sanitize(input)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: first %q, second %q", input, once, twice)
		}
		if !utf8.ValidString(once) {
			t.Errorf("Sanitize(%q) produced invalid UTF-8: %q", input, once)
		}
	}
}
