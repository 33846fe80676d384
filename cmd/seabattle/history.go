package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-seabattle/internal/platform/tui"
	"github.com/vovakirdan/tui-seabattle/internal/storage"
)

var (
	flagHistoryVariant string
	flagHistoryLimit   int
	flagInteractive    bool
	flagClear          bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded matches",
	Long: `Display recent matches and aggregated statistics.

Without --variant all variants are listed together.
--interactive opens a browsable table (tab switches variant).
--clear deletes the recorded matches of --variant.

Examples:
  seabattle history
  seabattle history --variant standard --limit 20
  seabattle history --interactive
  seabattle history --variant quick --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryVariant, "variant", "", "Only show this variant")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of matches to show")
	historyCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse history in a table")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete matches of --variant")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if flagHistoryVariant == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear needs --variant")
			os.Exit(1)
		}
		n, err := store.ClearMatches(flagHistoryVariant)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted %d %s matches.\n", n, flagHistoryVariant)
		return
	}

	if flagInteractive {
		rt := runtimeConfig()
		if err := tui.RunHistory(store, flagHistoryVariant, rt.ScreenW, rt.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	matches, err := store.RecentMatches(flagHistoryVariant, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	title := "all variants"
	if flagHistoryVariant != "" {
		title = flagHistoryVariant
	}
	fmt.Printf("Match History - %s\n", title)
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'seabattle play' to record the first one!")
		return
	}

	fmt.Printf("  %-8s  %-9s  %-6s  %-5s  %-8s  %s\n", "Match", "Variant", "Result", "Turns", "Accuracy", "Date")
	fmt.Printf("  %-8s  %-9s  %-6s  %-5s  %-8s  %s\n", "-----", "-------", "------", "-----", "--------", "----")

	for _, m := range matches {
		result := "lost"
		if m.HumanWon() {
			result = "won"
		}
		fmt.Printf("  %-8s  %-9s  %-6s  %-5d  %-8s  %s\n",
			m.MatchID.String()[:8],
			m.Variant,
			result,
			m.Turns,
			fmt.Sprintf("%.0f%%", m.Accuracy()*100),
			m.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	if stats, err := store.Stats(flagHistoryVariant); err == nil {
		fmt.Println(tui.StatsLine(stats))
	}
}
