package handlers

import (
	"fmt"
	"os"

	"flarecast/internal/config"
	"flarecast/internal/logger"
	"flarecast/internal/store"

	"github.com/spf13/cobra"
)

// NewCacheCmd creates the cache management command
func NewCacheCmd() *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the formatted insight cache",
		Long:  `Inspect and clear the SQLite cache of formatted daily and weekly insights.`,
	}

	// Add subcommands
	cacheCmd.AddCommand(newCacheStatsCmd())
	cacheCmd.AddCommand(newCacheClearCmd())

	return cacheCmd
}

func newCacheStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show cache statistics and storage information",
		Run: func(cmd *cobra.Command, args []string) {
			if err := runCacheStats(); err != nil {
				logger.Error("Failed to get cache stats", err)
				os.Exit(1)
			}
		},
	}
}

func newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached insights",
		Run: func(cmd *cobra.Command, args []string) {
			if err := runCacheClear(); err != nil {
				logger.Error("Failed to clear cache", err)
				os.Exit(1)
			}
		},
	}
}

func runCacheStats() error {
	cacheStore, err := store.NewStore(config.GetCacheDirectory())
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer cacheStore.Close()

	stats, err := cacheStore.GetCacheStats()
	if err != nil {
		return fmt.Errorf("failed to read cache stats: %w", err)
	}

	fmt.Printf("Insight cache: %s\n", stats.DatabasePath)
	fmt.Printf("  Cached insights: %d\n", stats.InsightCount)
	fmt.Printf("  Database size:   %d bytes\n", stats.DatabaseSize)
	return nil
}

func runCacheClear() error {
	cacheStore, err := store.NewStore(config.GetCacheDirectory())
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer cacheStore.Close()

	if err := cacheStore.ClearCache(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	fmt.Println("Insight cache cleared")
	return nil
}
