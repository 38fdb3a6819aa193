package insight

import (
	"encoding/json"
	"strings"
)

// Kind tags how a raw payload parsed. The tag is decided once at the
// top of each formatter instead of scattering type checks through the
// pipeline.
type Kind int

const (
	// KindStructured means the payload parsed as an object with at
	// least a recognizable field shape.
	KindStructured Kind = iota
	// KindLegacy means the payload is an opaque free-text string.
	KindLegacy
)

// DayItem is one entry of a structured weekly breakdown list.
type DayItem struct {
	Label   string
	Insight string
}

// DailyPayload is the decoded form of a raw daily payload. All fields
// are best-effort: absent or wrong-typed upstream fields decode to
// empty strings rather than errors.
type DailyPayload struct {
	Kind       Kind
	Summary    string
	Why        string
	ComfortTip string
	SignOff    string
	Legacy     string
}

// WeeklyPayload is the decoded form of a raw weekly payload. Exactly
// one of DayList and DayMap is populated for structured payloads,
// depending on the upstream breakdown shape.
type WeeklyPayload struct {
	Kind    Kind
	Summary string
	DayList []DayItem
	DayMap  map[string]string
	Legacy  string
}

// DecodeDaily parses raw into a tagged daily payload. Anything that is
// not a JSON object is legacy text.
func DecodeDaily(raw string) DailyPayload {
	obj, legacy, structured := decodeObject(raw)
	if !structured {
		return DailyPayload{Kind: KindLegacy, Legacy: legacy}
	}
	return DailyPayload{
		Kind:       KindStructured,
		Summary:    stringField(obj, "summary"),
		Why:        stringField(obj, "why"),
		ComfortTip: stringField(obj, "comfort_tip"),
		SignOff:    stringField(obj, "sign_off"),
	}
}

// DecodeWeekly parses raw into a tagged weekly payload. A structured
// breakdown may be an ordered list of {label, insight} objects or a
// mapping from weekday abbreviation to text.
func DecodeWeekly(raw string) WeeklyPayload {
	obj, legacy, structured := decodeObject(raw)
	if !structured {
		return WeeklyPayload{Kind: KindLegacy, Legacy: legacy}
	}

	payload := WeeklyPayload{
		Kind:    KindStructured,
		Summary: stringField(obj, "weekly_summary"),
	}

	switch breakdown := obj["daily_breakdown"].(type) {
	case []interface{}:
		for _, item := range breakdown {
			entry, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			payload.DayList = append(payload.DayList, DayItem{
				Label:   stringField(entry, "label"),
				Insight: stringField(entry, "insight"),
			})
		}
	case map[string]interface{}:
		payload.DayMap = make(map[string]string, len(breakdown))
		for label, value := range breakdown {
			if text, ok := value.(string); ok {
				payload.DayMap[normalizeDayKey(label)] = text
			}
		}
	}
	return payload
}

// decodeObject tries to parse raw as JSON. A JSON object is structured;
// a JSON string unwraps to legacy text; everything else (including
// malformed JSON) is legacy text as-is.
func decodeObject(raw string) (map[string]interface{}, string, bool) {
	trimmed := strings.TrimSpace(raw)

	var parsed interface{}
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		return nil, trimmed, false
	}
	switch v := parsed.(type) {
	case map[string]interface{}:
		return v, "", true
	case string:
		return nil, strings.TrimSpace(v), false
	default:
		return nil, trimmed, false
	}
}

func stringField(obj map[string]interface{}, key string) string {
	if value, ok := obj[key].(string); ok {
		return strings.TrimSpace(value)
	}
	return ""
}

// normalizeDayKey reduces a weekday key ("monday", "Mon", "MONDAY") to
// the canonical three-letter label used for lookups.
func normalizeDayKey(label string) string {
	label = strings.TrimSpace(label)
	if len(label) < 3 {
		return strings.Title(strings.ToLower(label))
	}
	return strings.Title(strings.ToLower(label[:3]))
}
