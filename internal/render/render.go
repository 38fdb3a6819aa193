// Package render turns formatted insights into display artifacts: a
// lipgloss card for the terminal and a markdown file for export. It
// renders what the pipeline produced verbatim; all content policy has
// already been applied upstream.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"flarecast/internal/core"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			Width(64)

	titleStyle = lipgloss.NewStyle().Bold(true)

	labelStyle = lipgloss.NewStyle().Bold(true).Width(5)
)

// DailyCard renders the daily insight message as a terminal card.
func DailyCard(insight string, date time.Time) string {
	title := titleStyle.Render("Daily insight — " + date.Format("Mon, Jan 2"))
	return cardStyle.Render(title + "\n\n" + insight)
}

// WeeklyCard renders the weekly insight as a terminal card with one
// line per weekday.
func WeeklyCard(weekly core.WeeklyInsight) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Week ahead"))
	b.WriteString("\n\n")
	b.WriteString(weekly.Summary)
	b.WriteString("\n\n")
	for _, day := range weekly.Days {
		b.WriteString(labelStyle.Render(day.Label))
		b.WriteString(" ")
		b.WriteString(day.Detail)
		b.WriteString("\n")
	}
	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// DailyMarkdown builds the markdown export for a daily insight.
func DailyMarkdown(insight string, date time.Time) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("# Daily Insight - %s\n\n", date.Format("2006-01-02")))
	b.WriteString(insight)
	b.WriteString("\n")
	return b.String()
}

// WeeklyMarkdown builds the markdown export for a weekly insight.
func WeeklyMarkdown(weekly core.WeeklyInsight, date time.Time) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("# Weekly Insight - %s\n\n", date.Format("2006-01-02")))
	b.WriteString(weekly.Summary)
	b.WriteString("\n\n")
	for _, day := range weekly.Days {
		b.WriteString(fmt.Sprintf("- **%s** — %s\n", day.Label, day.Detail))
	}
	return b.String()
}

// WriteInsightFile writes content to outputDir as
// insight_<kind>_<date>.md and returns the file path.
func WriteInsightFile(content, outputDir, kind string, date time.Time) (string, error) {
	if outputDir == "" {
		outputDir = "insights"
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	filename := fmt.Sprintf("insight_%s_%s.md", kind, date.Format("2006-01-02"))
	filePath := filepath.Join(outputDir, filename)

	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write insight file %s: %w", filePath, err)
	}
	return filePath, nil
}
