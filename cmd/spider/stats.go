package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-spider/internal/platform/tui"
	"github.com/vovakirdan/tui-spider/internal/storage"
)

var (
	flagStatsRecent     int
	flagStatsDifficulty string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show win and score statistics",
	Long: `Display per-variant aggregates and recent results from the
database.

Examples:
  spider stats
  spider stats --recent 20
  spider stats --recent 10 --difficulty 4-suit`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsRecent, "recent", 10, "Number of recent results to show (0 = none)")
	statsCmd.Flags().StringVar(&flagStatsDifficulty, "difficulty", "", "Filter recent results by variant (1-suit, 2-suit, 4-suit)")
}

func runStats(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.Paths.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'spider play' to record the first result!")
		return
	}

	fmt.Println("By variant")
	fmt.Println(tui.RenderStatsTable(stats))

	if flagStatsRecent > 0 {
		results, recentErr := store.RecentResults(flagStatsDifficulty, flagStatsRecent)
		if recentErr != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving recent results: %v\n", recentErr)
			os.Exit(1)
		}
		if len(results) > 0 {
			fmt.Println()
			fmt.Println("Recent games")
			fmt.Println(tui.RenderRecentTable(results))
		}
	}
}
