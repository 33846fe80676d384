package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-seabattle/internal/config"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List board presets",
	Long:  `Shows the board presets that can be selected with --preset.`,
	Args:  cobra.NoArgs,
	Run:   runVariants,
}

func runVariants(cmd *cobra.Command, args []string) {
	fmt.Println("Available presets:")
	fmt.Println()

	fmt.Printf("  %-9s  %-6s  %-5s  %s\n", "Preset", "Board", "Ships", "Fleet")
	fmt.Printf("  %-9s  %-6s  %-5s  %s\n", "------", "-----", "-----", "-----")

	for _, name := range config.Presets() {
		cfg := config.DefaultConfig()
		if err := config.ApplyPreset(&cfg, name); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		board := fmt.Sprintf("%dx%d", cfg.Board.Size, cfg.Board.Size)
		fmt.Printf("  %-9s  %-6s  %-5d  %v\n", name, board, len(cfg.Fleet), cfg.Fleet)
	}

	fmt.Println()
	fmt.Println("Run 'seabattle play --preset <name>' to play one.")
}
