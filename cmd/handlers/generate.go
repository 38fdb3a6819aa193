package handlers

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"flarecast/internal/config"
	"flarecast/internal/ingest"
	"flarecast/internal/insight"
	"flarecast/internal/llm"
	"flarecast/internal/logger"
	"flarecast/internal/render"

	"github.com/spf13/cobra"
)

// NewGenerateCmd creates the end-to-end generation command
func NewGenerateCmd() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate [daily|weekly]",
		Short: "Generate an insight payload with AI and format it",
		Long: `Generate an insight payload from weather conditions and run it
through the formatting pipeline in one step.

The conditions text is read from a file or stdin, sent to the
configured Gemini model, and the model's payload is then sanitized and
formatted exactly as a pre-generated payload would be.

Examples:
  # Generate and format a daily insight from a conditions file
  flarecast generate daily -f conditions.txt

  # Generate a weekly outlook anchored to a date
  flarecast generate weekly -f outlook.txt --date 2025-06-04

  # Inspect the raw model payload before formatting
  flarecast generate daily -f conditions.txt --raw`,
		Args: cobra.ExactArgs(1),
		Run:  generateRunFunc,
	}

	// Add flags
	generateCmd.Flags().StringP("file", "f", "", "Conditions file to read (default: stdin)")
	generateCmd.Flags().String("date", "", "Reference date in YYYY-MM-DD format (default: today)")
	generateCmd.Flags().Bool("raw", false, "Print the raw model payload before the formatted insight")

	return generateCmd
}

func generateRunFunc(cmd *cobra.Command, args []string) {
	kind := strings.ToLower(args[0])
	if kind != "daily" && kind != "weekly" {
		fmt.Fprintf(os.Stderr, "Error: Invalid insight kind '%s'. Valid kinds: daily, weekly\n", kind)
		os.Exit(1)
	}

	file, _ := cmd.Flags().GetString("file")
	dateStr, _ := cmd.Flags().GetString("date")
	raw, _ := cmd.Flags().GetBool("raw")

	date, err := resolveDate(dateStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	conditions, err := ingest.ReadPayload(file, os.Stdin)
	if err != nil {
		logger.Error("Failed to read conditions", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if conditions == "" {
		fmt.Fprintln(os.Stderr, "Error: No conditions text provided")
		os.Exit(1)
	}

	llmClient, err := llm.NewClient(config.GetGeminiModel())
	if err != nil {
		logger.Error("Failed to initialize LLM client", err)
		fmt.Fprintf(os.Stderr, "Error: Failed to initialize AI client: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	logger.Info("Generating insight payload", "kind", kind, "model", config.GetGeminiModel())

	var payload string
	if kind == "daily" {
		payload, err = llmClient.GenerateDailyPayload(ctx, conditions)
	} else {
		payload, err = llmClient.GenerateWeeklyPayload(ctx, conditions)
	}
	if err != nil {
		logger.Error("Failed to generate insight payload", err, "kind", kind)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if raw {
		fmt.Printf("--- Raw payload ---\n%s\n--- Formatted ---\n", payload)
	}

	opts := formatterOptions()
	if kind == "daily" {
		message := insight.NewDailyFormatter(opts).Format(payload)
		fmt.Println(render.DailyCard(message, date))
		return
	}
	weekly := insight.NewWeeklyFormatter(opts).Format(payload, date)
	fmt.Println(render.WeeklyCard(weekly))
}
