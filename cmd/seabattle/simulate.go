package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-seabattle/internal/battle"
	"github.com/vovakirdan/tui-seabattle/internal/session"
)

var flagGames int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let two computers play each other",
	Long: `Play matches between two random computer players without a terminal
interface and print win counts and turn statistics. Matches are not
recorded. With --seed the whole run is reproducible.

Examples:
  seabattle simulate
  seabattle simulate --games 1000 --preset standard --seed 7`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagGames, "games", 100, "Number of matches to play")
}

// simResult aggregates simulated matches.
type simResult struct {
	games      int
	firstWins  int
	totalTurns int
	minTurns   int
	maxTurns   int
}

func (r *simResult) add(winner battle.Side, turns int) {
	r.games++
	if winner == battle.SideHuman {
		r.firstWins++
	}
	r.totalTurns += turns
	if r.minTurns == 0 || turns < r.minTurns {
		r.minTurns = turns
	}
	r.maxTurns = max(r.maxTurns, turns)
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagGames < 1 {
		fmt.Fprintln(os.Stderr, "Error: --games must be at least 1")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Seeds for every match derive from --seed
	var seeds *rand.Rand
	if flagSeed != 0 {
		seeds = rand.New(rand.NewSource(flagSeed))
	}

	var res simResult
	for i := range flagGames {
		var seed int64
		if seeds != nil {
			seed = seeds.Int63() | 1
		}

		s, err := session.New(ctx, session.Options{Config: cfg, Seed: seed, Logger: logger})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: match %d: %v\n", i+1, err)
			os.Exit(1)
		}
		winner, err := s.Run(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: match %d: %v\n", i+1, err)
			os.Exit(1)
		}
		res.add(winner, s.Match().Turns())
	}

	fmt.Printf("Simulated %d %s matches on %dx%d\n", res.games, cfg.Variant, cfg.Board.Size, cfg.Board.Size)
	fmt.Println()
	fmt.Printf("  First player wins:   %d (%.1f%%)\n", res.firstWins, 100*float64(res.firstWins)/float64(res.games))
	fmt.Printf("  Second player wins:  %d\n", res.games-res.firstWins)
	fmt.Printf("  Average turns:       %.1f\n", float64(res.totalTurns)/float64(res.games))
	fmt.Printf("  Shortest / longest:  %d / %d\n", res.minTurns, res.maxTurns)
}
