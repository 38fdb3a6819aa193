package handlers

import (
	"fmt"
	"os"

	"flarecast/internal/ingest"
	"flarecast/internal/insight"
	"flarecast/internal/logger"
	"flarecast/internal/tui"

	"github.com/spf13/cobra"
)

// NewTUICmd creates the interactive weekly outlook browser command
func NewTUICmd() *cobra.Command {
	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse a formatted weekly outlook interactively",
		Long: `Open an interactive terminal view of a weekly outlook.

The payload is read from a file, run through the formatting pipeline,
and shown as a navigable seven-day list with per-day detail. Stdin is
reserved for the interactive session, so the file flag is required.

Examples:
  flarecast tui -f payload.json
  flarecast tui -f payload.json --date 2025-06-04`,
		Run: tuiRunFunc,
	}

	// Add flags
	tuiCmd.Flags().StringP("file", "f", "", "Payload file to read (required)")
	_ = tuiCmd.MarkFlagRequired("file")
	tuiCmd.Flags().String("date", "", "Reference date in YYYY-MM-DD format (default: today)")

	return tuiCmd
}

func tuiRunFunc(cmd *cobra.Command, args []string) {
	file, _ := cmd.Flags().GetString("file")
	dateStr, _ := cmd.Flags().GetString("date")

	date, err := resolveDate(dateStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	payload, err := ingest.ReadPayload(file, os.Stdin)
	if err != nil {
		logger.Error("Failed to read weekly payload", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	weekly := insight.NewWeeklyFormatter(formatterOptions()).Format(payload, date)
	tui.StartTUI(weekly)
}
