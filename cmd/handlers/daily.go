package handlers

import (
	"fmt"
	"math/rand"
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

// NewDailyCmd creates the daily insight formatting command
func NewDailyCmd() *cobra.Command {
	dailyCmd := &cobra.Command{
		Use:   "daily",
		Short: "Format a raw daily insight payload into a delivery-ready message",
		Long: `Format a raw daily insight payload into a clean notification message.

The payload is read from a file or stdin and may be structured JSON
({"summary": ..., "why": ..., "comfort_tip": ..., "sign_off": ...}),
a JSON-wrapped string, or free text. The pipeline sanitizes markup and
raw numbers, filters app self-references, rewrites vague explanations,
and deduplicates near-identical lines. It always produces a message.

Examples:
  # Format a payload file
  flarecast daily -f payload.json

  # Pipe a payload through stdin
  cat payload.json | flarecast daily

  # Save the formatted message as markdown
  flarecast daily -f payload.json --format markdown`,
		Run: dailyRunFunc,
	}

	// Add flags
	dailyCmd.Flags().StringP("file", "f", "", "Payload file to read (default: stdin)")
	dailyCmd.Flags().String("format", "terminal", "Output format: terminal, markdown")
	dailyCmd.Flags().String("date", "", "Insight date in YYYY-MM-DD format (default: today)")
	dailyCmd.Flags().Bool("no-cache", false, "Skip the insight cache")

	return dailyCmd
}

func dailyRunFunc(cmd *cobra.Command, args []string) {
	file, _ := cmd.Flags().GetString("file")
	format, _ := cmd.Flags().GetString("format")
	dateStr, _ := cmd.Flags().GetString("date")
	noCache, _ := cmd.Flags().GetBool("no-cache")

	date, err := resolveDate(dateStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	payload, err := ingest.ReadPayload(file, os.Stdin)
	if err != nil {
		logger.Error("Failed to read daily payload", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cacheStore := openCacheStore(noCache)
	if cacheStore != nil {
		defer cacheStore.Close()
	}

	hash := store.PayloadHash(payload)
	if cacheStore != nil {
		cached, err := cacheStore.GetCachedInsight("daily", hash, "")
		if err == nil && cached != nil {
			logger.Info("Using cached daily insight", "hash", hash)
			emitDaily(cached.Content, date, format)
			return
		}
	}

	formatter := insight.NewDailyFormatter(formatterOptions())
	message := formatter.Format(payload)

	if cacheStore != nil {
		record := core.InsightRecord{
			Kind:        "daily",
			PayloadHash: hash,
			Content:     message,
		}
		if err := cacheStore.CacheInsight(record); err != nil {
			logger.Error("Failed to cache daily insight", err)
			// Continue without caching rather than failing
		}
	}

	emitDaily(message, date, format)
}

func emitDaily(message string, date time.Time, format string) {
	switch format {
	case "markdown":
		md := render.DailyMarkdown(message, date)
		path, err := render.WriteInsightFile(md, config.GetOutputDirectory(), "daily", date)
		if err != nil {
			logger.Error("Failed to write daily insight file", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Daily insight written to %s\n", path)
	default:
		fmt.Println(render.DailyCard(message, date))
	}
}

// resolveDate parses a YYYY-MM-DD flag value, defaulting to today.
func resolveDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Now(), nil
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", dateStr, err)
	}
	return date, nil
}

// openCacheStore returns the insight cache, or nil when caching is
// disabled or unavailable. A cache failure is never fatal.
func openCacheStore(noCache bool) *store.Store {
	if noCache || !config.GetCache().Enabled {
		return nil
	}
	cacheStore, err := store.NewStore(config.GetCacheDirectory())
	if err != nil {
		logger.Error("Failed to initialize insight cache", err)
		return nil
	}
	return cacheStore
}

// formatterOptions builds pipeline options from configuration.
func formatterOptions() insight.FormatterOptions {
	pipeline := config.GetPipeline()
	opts := insight.DefaultFormatterOptions()
	if pipeline.SimilarityContainment > 0 {
		opts.Thresholds.Containment = pipeline.SimilarityContainment
	}
	if pipeline.SimilarityJaccard > 0 {
		opts.Thresholds.Jaccard = pipeline.SimilarityJaccard
	}
	if pipeline.RepairMinLength > 0 {
		opts.RepairMinLength = pipeline.RepairMinLength
	}
	if pipeline.RandomRewrites {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return opts
}
