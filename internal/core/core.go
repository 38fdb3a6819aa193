// Package core contains the shared domain types for the insight pipeline.
package core

import "time"

// WeatherFactor is the single dominant weather variable a sentence is about.
type WeatherFactor string

const (
	FactorPressure    WeatherFactor = "pressure"
	FactorHumidity    WeatherFactor = "humidity"
	FactorTemperature WeatherFactor = "temperature"
	FactorWind        WeatherFactor = "wind"
)

// RiskLevel decides whether a weekday detail collapses to the fixed
// "low flare risk" literal or keeps its descriptive text.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskElevated RiskLevel = "elevated"
)

// WeekdayEntry is one of the seven structured day summaries in the
// weekly insight.
type WeekdayEntry struct {
	Label  string `json:"label"`
	Detail string `json:"detail"`
}

// WeeklyInsight is the formatted weekly output: a one-sentence summary
// and exactly seven weekday entries ordered starting from tomorrow.
type WeeklyInsight struct {
	Summary string         `json:"summary"`
	Days    []WeekdayEntry `json:"days"`
}

// WeekdayLabels returns the short names of the next seven weekdays
// starting the day after referenceDate. Labels depend only on the
// reference date, never on payload content.
func WeekdayLabels(referenceDate time.Time) []string {
	labels := make([]string, 7)
	for i := 0; i < 7; i++ {
		labels[i] = referenceDate.AddDate(0, 0, i+1).Weekday().String()[:3]
	}
	return labels
}

// InsightRecord is a cached formatted insight, keyed by the content
// hash of the raw payload plus the reference date used to format it.
type InsightRecord struct {
	ID            string
	Kind          string // "daily" or "weekly"
	PayloadHash   string
	ReferenceDate string // YYYY-MM-DD, empty for daily
	Content       string // formatted daily text, or weekly summary
	DaysJSON      string // serialized weekday entries, weekly only
	DateGenerated time.Time
}
