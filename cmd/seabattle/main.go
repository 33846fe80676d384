// seabattle is a terminal sea-battle game against a computer opponent.
//
// Usage:
//
//	seabattle play              - Play a match on the console
//	seabattle play --tui        - Play a match with cursor targeting
//	seabattle history           - Show recent matches and statistics
//	seabattle variants          - List board presets
//	seabattle simulate          - Let two computers play each other
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set database path (default: ~/.seabattle/matches.db)
//	--config <path>      - Use a custom config YAML
//	--preset <name>      - Board preset: classic, standard, quick
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-seabattle/internal/config"
	"github.com/vovakirdan/tui-seabattle/internal/core"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPreset   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "seabattle",
	Short: "Sea Battle - sink the computer's fleet in your terminal",
	Long: `Sea Battle is the classic grid game: both fleets are placed at random,
ships never touch, and you take turns firing at the enemy board.
A hit or a sunk ship earns another shot, a miss passes the turn.

Available commands:
  play      - Play a match (console or --tui)
  history   - Show recorded matches
  variants  - List board presets
  simulate  - Let two computers play each other

Examples:
  seabattle play
  seabattle play --tui --preset standard
  seabattle history --interactive
  seabattle simulate --games 100 --seed 7`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.seabattle/matches.db", "Path to match database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Board preset: classic, standard, quick")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger builds the process logger from --log-level.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "seabattle",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig reads the config file and applies --preset.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, flagPreset); err != nil {
		return cfg, err
	}
	return cfg, config.Validate(cfg)
}

// runtimeConfig captures the terminal size and seed.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
