package insight

import (
	"strings"
	"time"

	"flarecast/internal/classify"
	"flarecast/internal/core"
	"flarecast/internal/repair"
	"flarecast/internal/similarity"
)

// defaultWeeklySummary is the fixed fallback when no usable weekly
// summary survives the pipeline.
const defaultWeeklySummary = "Here is how the week ahead may treat your symptoms."

// defaultDayRotation pads days the payload never covered. Entries are
// run through FormatDayDetail like any other detail, so calm phrases
// still collapse to the low-risk literal.
var defaultDayRotation = []string{
	"steady conditions",
	"mild pressure shifts possible",
	"humidity edging up",
	"calm and settled pattern",
	"temperatures easing",
	"breezy spells possible",
	"quiet weather expected",
}

// factorDayPhrases map a mentioned weekday's sentence to a fixed
// weather-pattern phrase in the legacy single-paragraph state.
var factorDayPhrases = map[core.WeatherFactor]string{
	core.FactorPressure:    "pressure swings possible",
	core.FactorHumidity:    "humidity on the rise",
	core.FactorTemperature: "temperature shifts likely",
	core.FactorWind:        "breezy and tiring spells",
}

// WeeklyFormatter builds the weekly insight: one summary sentence and
// exactly seven weekday entries.
type WeeklyFormatter struct {
	opts FormatterOptions
}

// NewWeeklyFormatter creates a weekly formatter with the given options.
func NewWeeklyFormatter(opts FormatterOptions) *WeeklyFormatter {
	if opts.Thresholds == (similarity.Thresholds{}) {
		opts.Thresholds = similarity.DefaultThresholds()
	}
	if opts.RepairMinLength <= 0 {
		opts.RepairMinLength = repair.MinLength
	}
	return &WeeklyFormatter{opts: opts}
}

// Format turns a raw weekly payload into a weekly insight. Whatever
// the payload shape (structured list, structured map, legacy
// multi-line, legacy paragraph, or garbage), the result has a
// one-sentence summary and seven entries labeled with the next seven
// weekdays after referenceDate.
func (f *WeeklyFormatter) Format(raw string, referenceDate time.Time) core.WeeklyInsight {
	labels := core.WeekdayLabels(referenceDate)
	payload := DecodeWeekly(raw)

	var summary string
	details := make(map[string]string, 7)

	switch {
	case payload.Kind == KindStructured && payload.DayList != nil:
		summary = f.resolveSummary(payload.Summary)
		for i, item := range payload.DayList {
			if i >= 7 {
				break
			}
			details[labels[i]] = item.Insight
		}
	case payload.Kind == KindStructured:
		summary = f.resolveSummary(payload.Summary)
		for label, text := range payload.DayMap {
			details[label] = text
		}
	case strings.Contains(strings.TrimSpace(payload.Legacy), "\n"):
		summary, details = f.parseMultiLine(payload.Legacy)
	default:
		summary, details = f.parseParagraph(payload.Legacy, labels)
	}

	days := make([]core.WeekdayEntry, 7)
	for i, label := range labels {
		detail := resolveField(details[label], "")
		if detail == "" {
			detail = defaultDayRotation[i%len(defaultDayRotation)]
		}
		days[i] = core.WeekdayEntry{Label: label, Detail: FormatDayDetail(detail)}
	}

	return core.WeeklyInsight{Summary: summary, Days: days}
}

// resolveSummary runs the weekly summary through sanitize, the
// app-reference filter, and template repair, then reduces it to
// exactly one sentence.
func (f *WeeklyFormatter) resolveSummary(raw string) string {
	text := resolveField(raw, "")
	if text == "" {
		return defaultWeeklySummary
	}
	text = repair.RepairTemplateWith(text, f.opts.RepairMinLength)
	if s := firstSentence(text); s != "" {
		return s
	}
	return defaultWeeklySummary
}

// parseMultiLine handles the legacy multi-line state: the first line is
// the summary, the rest are "Label — detail" pairs.
func (f *WeeklyFormatter) parseMultiLine(legacy string) (string, map[string]string) {
	details := make(map[string]string)
	summary := ""

	for _, line := range strings.Split(legacy, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if summary == "" {
			summary = f.resolveSummary(line)
			continue
		}
		label, detail, ok := splitDayLine(line)
		if ok {
			details[normalizeDayKey(label)] = detail
		}
	}

	if summary == "" {
		summary = defaultWeeklySummary
	}
	return summary, details
}

// splitDayLine splits "Mon — pressure dips early" into its label and
// detail. Em-dash is the canonical separator; en-dash and a spaced
// hyphen also appear in legacy output.
func splitDayLine(line string) (string, string, bool) {
	for _, sep := range []string{"—", "–", " - "} {
		if idx := strings.Index(line, sep); idx > 0 {
			label := strings.TrimSpace(line[:idx])
			detail := strings.TrimSpace(line[idx+len(sep):])
			if label != "" && detail != "" {
				return label, detail, true
			}
		}
	}
	return "", "", false
}

// parseParagraph handles the legacy single-paragraph state: the first
// sentence is the summary, and the remaining sentences are mined for
// weekday mentions to pick each day's weather-pattern phrase.
func (f *WeeklyFormatter) parseParagraph(legacy string, labels []string) (string, map[string]string) {
	sentences := splitSentences(legacy)
	details := make(map[string]string)

	summary := defaultWeeklySummary
	if len(sentences) > 0 {
		summary = f.resolveSummary(sentences[0])
	}

	rest := sentences
	if len(rest) > 0 {
		rest = rest[1:]
	}
	for _, label := range labels {
		dayName := strings.ToLower(fullWeekdayName(label))
		for _, sentence := range rest {
			if strings.Contains(strings.ToLower(sentence), dayName) {
				factor := classify.WeatherFactor(sentence)
				details[label] = factorDayPhrases[factor]
				break
			}
		}
	}
	return summary, details
}

func fullWeekdayName(label string) string {
	names := map[string]string{
		"Mon": "Monday", "Tue": "Tuesday", "Wed": "Wednesday",
		"Thu": "Thursday", "Fri": "Friday", "Sat": "Saturday", "Sun": "Sunday",
	}
	if name, ok := names[label]; ok {
		return name
	}
	return label
}
