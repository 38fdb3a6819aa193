package handlers

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"flarecast/internal/config"
	"flarecast/internal/core"
	"flarecast/internal/ingest"
	"flarecast/internal/insight"
	"flarecast/internal/logger"
	"flarecast/internal/render"
	"flarecast/internal/store"

	"github.com/spf13/cobra"
)

// NewWeeklyCmd creates the weekly insight formatting command
func NewWeeklyCmd() *cobra.Command {
	weeklyCmd := &cobra.Command{
		Use:   "weekly",
		Short: "Format a raw weekly insight payload into a seven-day outlook",
		Long: `Format a raw weekly insight payload into a structured outlook.

The payload is read from a file or stdin and may be structured JSON
with a day breakdown (list or weekday-keyed map), a multi-line legacy
text, or a plain paragraph. The result always covers exactly seven
days labeled from the day after the reference date; days the payload
does not cover are filled with rotating defaults.

Examples:
  # Format a payload for the week starting after today
  flarecast weekly -f payload.json

  # Anchor the seven-day window to an explicit date
  flarecast weekly -f payload.json --date 2025-06-04

  # Save the outlook as markdown
  flarecast weekly -f payload.json --format markdown`,
		Run: weeklyRunFunc,
	}

	// Add flags
	weeklyCmd.Flags().StringP("file", "f", "", "Payload file to read (default: stdin)")
	weeklyCmd.Flags().String("format", "terminal", "Output format: terminal, json, markdown")
	weeklyCmd.Flags().String("date", "", "Reference date in YYYY-MM-DD format (default: today)")
	weeklyCmd.Flags().Bool("no-cache", false, "Skip the insight cache")

	return weeklyCmd
}

func weeklyRunFunc(cmd *cobra.Command, args []string) {
	file, _ := cmd.Flags().GetString("file")
	format, _ := cmd.Flags().GetString("format")
	dateStr, _ := cmd.Flags().GetString("date")
	noCache, _ := cmd.Flags().GetBool("no-cache")

	date, err := resolveDate(dateStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	refDate := date.Format("2006-01-02")

	payload, err := ingest.ReadPayload(file, os.Stdin)
	if err != nil {
		logger.Error("Failed to read weekly payload", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cacheStore := openCacheStore(noCache)
	if cacheStore != nil {
		defer cacheStore.Close()
	}

	hash := store.PayloadHash(payload)
	if cacheStore != nil {
		cached, err := cacheStore.GetCachedInsight("weekly", hash, refDate)
		if err == nil && cached != nil {
			if weekly, ok := weeklyFromRecord(cached); ok {
				logger.Info("Using cached weekly insight", "hash", hash, "reference_date", refDate)
				emitWeekly(weekly, date, format)
				return
			}
		}
	}

	formatter := insight.NewWeeklyFormatter(formatterOptions())
	weekly := formatter.Format(payload, date)

	if cacheStore != nil {
		if record, ok := weeklyToRecord(weekly, hash, refDate); ok {
			if err := cacheStore.CacheInsight(record); err != nil {
				logger.Error("Failed to cache weekly insight", err)
				// Continue without caching rather than failing
			}
		}
	}

	emitWeekly(weekly, date, format)
}

func emitWeekly(weekly core.WeeklyInsight, date time.Time, format string) {
	switch format {
	case "json":
		out, err := json.MarshalIndent(weekly, "", "  ")
		if err != nil {
			logger.Error("Failed to encode weekly insight", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	case "markdown":
		md := render.WeeklyMarkdown(weekly, date)
		path, err := render.WriteInsightFile(md, config.GetOutputDirectory(), "weekly", date)
		if err != nil {
			logger.Error("Failed to write weekly insight file", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Weekly insight written to %s\n", path)
	default:
		fmt.Println(render.WeeklyCard(weekly))
	}
}

func weeklyToRecord(weekly core.WeeklyInsight, hash, refDate string) (core.InsightRecord, bool) {
	days, err := json.Marshal(weekly.Days)
	if err != nil {
		logger.Error("Failed to serialize weekly days", err)
		return core.InsightRecord{}, false
	}
	return core.InsightRecord{
		Kind:          "weekly",
		PayloadHash:   hash,
		ReferenceDate: refDate,
		Content:       weekly.Summary,
		DaysJSON:      string(days),
	}, true
}

func weeklyFromRecord(record *core.InsightRecord) (core.WeeklyInsight, bool) {
	var days []core.WeekdayEntry
	if err := json.Unmarshal([]byte(record.DaysJSON), &days); err != nil || len(days) != 7 {
		return core.WeeklyInsight{}, false
	}
	return core.WeeklyInsight{Summary: record.Content, Days: days}, true
}
