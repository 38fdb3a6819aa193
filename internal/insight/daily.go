package insight

import (
	"strings"

	"flarecast/internal/classify"
	"flarecast/internal/policy"
	"flarecast/internal/similarity"
)

// Fixed defaults for fields the payload failed to provide usable text
// for. Pre-approved: they pass every policy check by construction.
const (
	defaultDailySummary = "Today's weather looks manageable for your symptoms."
	defaultComfortTip   = "Keep up your usual routine and stay hydrated."
	defaultSignOff      = "Be kind to your body today."
)

// DailyFormatter builds the daily insight message.
type DailyFormatter struct {
	opts FormatterOptions
}

// NewDailyFormatter creates a daily formatter with the given options.
func NewDailyFormatter(opts FormatterOptions) *DailyFormatter {
	if opts.Thresholds == (similarity.Thresholds{}) {
		opts.Thresholds = similarity.DefaultThresholds()
	}
	return &DailyFormatter{opts: opts}
}

// DefaultDailyMessage is the fixed, well-formed message returned for an
// empty or absent payload.
func DefaultDailyMessage() string {
	return assembleDaily(
		defaultDailySummary,
		"No major pressure, humidity, or temperature swings are expected, so flare risk stays low.",
		defaultComfortTip,
		"",
	)
}

// Format turns a raw daily payload (structured JSON or legacy free
// text) into the final daily insight message. It never returns an
// empty string and never propagates a failure.
func (f *DailyFormatter) Format(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return DefaultDailyMessage()
	}

	payload := DecodeDaily(raw)

	var rawSummary, rawWhy, rawTip, rawSignOff string
	if payload.Kind == KindStructured {
		rawSummary = payload.Summary
		rawWhy = payload.Why
		rawTip = payload.ComfortTip
		rawSignOff = payload.SignOff
	} else {
		sentences := splitSentences(payload.Legacy)
		rawSummary = sentenceAt(sentences, 0)
		rawWhy = sentenceAt(sentences, 1)
		rawTip = sentenceAt(sentences, 2)
		rawSignOff = sentenceAt(sentences, 3)
	}

	summary := resolveField(rawSummary, defaultDailySummary)
	factor := classify.WeatherFactor(summary)

	// The why field is mandatory: an unusable upstream why is
	// regenerated from the summary's factor.
	why := resolveField(rawWhy, "")
	if why == "" {
		why = GenerateDistinctWhy(summary, factor, f.opts.Thresholds)
	}
	if policy.ContainsVagueLanguage(why) {
		why = policy.RewriteVague(why, factor, f.opts.Rand)
	}
	if similarity.AreSimilarWith(summary, why, f.opts.Thresholds) {
		why = GenerateDistinctWhy(summary, factor, f.opts.Thresholds)
	}
	// A rewrite can reintroduce banned phrasing; check once more.
	if policy.ContainsVagueLanguage(why) {
		why = policy.RewriteVague(why, factor, f.opts.Rand)
	}

	// Comfort tip and sign-off are optional: an empty upstream field
	// omits the line, a present-but-filtered one gets the default.
	tip := ""
	if strings.TrimSpace(rawTip) != "" {
		tip = resolveField(rawTip, defaultComfortTip)
	}
	signOff := ""
	if strings.TrimSpace(rawSignOff) != "" {
		signOff = resolveField(rawSignOff, defaultSignOff)
	}

	tip, signOff = dedupeTipSignOff(tip, signOff, f.opts.Thresholds)

	if signOff != "" && strings.EqualFold(strings.TrimSpace(signOff), strings.TrimSpace(summary)) {
		signOff = ""
	}

	return assembleDaily(summary, why, tip, signOff)
}

// dedupeTipSignOff keeps the comfort tip and sign-off from repeating
// each other. A sign-off that restates the tip is dropped; a tip that
// merely embeds the sign-off has the duplicate substring stripped.
func dedupeTipSignOff(tip, signOff string, th similarity.Thresholds) (string, string) {
	if tip == "" || signOff == "" {
		return tip, signOff
	}

	if similarity.AreSimilarWith(stripPunctuation(tip), stripPunctuation(signOff), th) {
		return tip, ""
	}

	if strings.Contains(tip, signOff) {
		stripped := strings.TrimSpace(strings.ReplaceAll(tip, signOff, ""))
		stripped = strings.Trim(stripped, ",;: ")
		if stripped != "" {
			return stripped, signOff
		}
		// Stripping emptied the tip, so it was nothing but the
		// sign-off; keep the tip line and drop the sign-off.
		return tip, ""
	}

	return tip, signOff
}

// assembleDaily joins the logical lines in fixed order, each separated
// by exactly one blank line.
func assembleDaily(summary, why, tip, signOff string) string {
	lines := []string{summary, "Why: " + why}
	if tip != "" {
		lines = append(lines, "Comfort tip: "+tip)
	}
	if signOff != "" {
		lines = append(lines, signOff)
	}
	return strings.TrimSpace(strings.Join(lines, "\n\n"))
}

func sentenceAt(sentences []string, i int) string {
	if i < len(sentences) {
		return sentences[i]
	}
	return ""
}
