package insight

import (
	"flarecast/internal/classify"
	"flarecast/internal/core"
	"flarecast/internal/sanitize"
)

// lowRiskDetail is the fixed literal shown for a low-risk weekday.
const lowRiskDetail = "low flare risk"

// FormatDayDetail formats one weekday detail line. Low-risk days
// collapse to the fixed "low flare risk" literal; elevated days keep
// their sanitized descriptive text. Weekly detail lines are
// intentionally less strict than the daily "why" field, so no vague
// rewriting happens here.
func FormatDayDetail(text string) string {
	cleaned := sanitize.Sanitize(text)
	if classify.Risk(cleaned) == core.RiskLow {
		return lowRiskDetail
	}
	return cleaned
}
