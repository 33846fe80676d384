package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-seabattle/internal/platform/console"
	"github.com/vovakirdan/tui-seabattle/internal/platform/tui"
	"github.com/vovakirdan/tui-seabattle/internal/session"
	"github.com/vovakirdan/tui-seabattle/internal/storage"
)

var (
	flagTUI    bool
	flagNoSave bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match against the computer",
	Long: `Start a match against the computer.

Console mode (default):
  Type targets as "column row", e.g. "3 5". Columns and rows start at 1.
  Ctrl+D or Ctrl+C leaves the match.

TUI mode (--tui):
  Arrows/hjkl  - Move the cursor on the enemy board
  Enter/Space  - Fire
  R            - New match (after game over)
  Q/Ctrl+C     - Quit

Examples:
  seabattle play
  seabattle play --tui
  seabattle play --preset quick --seed 42
  seabattle play --config ./my-seabattle.yaml --no-save`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagTUI, "tui", false, "Use the full-screen interface")
	playCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the match")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	rt := runtimeConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Open match storage
	var saver session.Saver
	var store *storage.Store
	if !flagNoSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open match database", "error", err)
			// Continue without storage - the match still works
		} else {
			saver = store
		}
	}

	opts := session.Options{
		Config: cfg,
		Seed:   rt.Seed,
		Pace:   true,
		Logger: logger,
	}

	var runErr error
	if flagTUI {
		runErr = tui.Run(ctx, opts, saver)
	} else {
		_, runErr = console.Play(ctx, console.Options{
			In:      os.Stdin,
			Out:     os.Stdout,
			Session: opts,
			Saver:   saver,
			Width:   rt.ScreenW,
		})
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	switch {
	case runErr == nil:
	case errors.Is(runErr, io.EOF), errors.Is(runErr, context.Canceled), errors.Is(runErr, tea.ErrProgramKilled):
		fmt.Println("Match abandoned.")
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
