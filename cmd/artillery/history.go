package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-artillery/internal/platform/tui"
	"github.com/vovakirdan/tui-artillery/internal/registry"
	"github.com/vovakirdan/tui-artillery/internal/storage"
)

var (
	flagHistoryVariant string
	flagHistoryLimit   int
	flagHistoryBrowse  bool
	flagHistoryClear   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished rounds",
	Long: `Display recently finished rounds and the number of wins per colour.

Examples:
  artillery history
  artillery history --variant duel --limit 5
  artillery history --browse
  artillery history --variant artillery --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryVariant, "variant", "", "Only show rounds of this variant")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of rounds to show")
	historyCmd.Flags().BoolVar(&flagHistoryBrowse, "browse", false, "Browse the history interactively")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete recorded rounds")
}

func runHistory(_ *cobra.Command, _ []string) {
	variant := flagHistoryVariant

	// Check if variant exists
	if variant != "" && !registry.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'artillery list' to see available variants.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRounds(variant); err != nil {
			fatal("%v", err)
		}
		fmt.Println("History cleared.")
		return
	}

	if flagHistoryBrowse {
		rt := runtimeConfig()
		if _, err := tui.RunHistory(store, rt.ScreenW, rt.ScreenH); err != nil {
			fatal("%v", err)
		}
		return
	}

	rounds, err := store.RecentRounds(variant, flagHistoryLimit)
	if err != nil {
		fatal("retrieving rounds: %v", err)
	}

	title := "all variants"
	if variant != "" {
		title = variant
	}
	fmt.Printf("Recent rounds - %s\n", title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'artillery play artillery' or run 'artillery sim --save' to record some.")
		return
	}

	// Print header
	fmt.Printf("  %-10s  %-10s  %-6s  %-5s  %-7s  %s\n", "Variant", "Winner", "Seats", "Shots", "Ticks", "Date")
	fmt.Printf("  %-10s  %-10s  %-6s  %-5s  %-7s  %s\n", "-------", "------", "-----", "-----", "-----", "----")
	for _, row := range tui.RoundRows(rounds) {
		fmt.Printf("  %-10s  %-10s  %-6s  %-5s  %-7s  %s\n", row[0], row[1], row[2], row[3], row[4], row[5])
	}

	tally, err := store.WinTally(variant)
	if err == nil && len(tally) > 0 {
		fmt.Println()
		fmt.Printf("Wins: %s\n", tui.TallyLine(tally))
	}

	if variant != "" {
		stats, err := store.GetVariantStats(variant)
		if err == nil && stats.Rounds > 0 {
			fmt.Printf("Rounds: %d  no survivors: %d  avg shots: %.1f  last played: %s\n",
				stats.Rounds, stats.NoWinner, stats.AvgShots, stats.LastPlayed.Format("2006-01-02 15:04"))
		}
	}
}
