package config

import (
	_ "embed"
	"slices"
	"time"

	"github.com/vovakirdan/tui-seabattle/internal/battle"
)

//go:embed defaults/seabattle.yaml
var defaultSeabattleYAML []byte

// Preset names.
const (
	PresetClassic  = "classic"
	PresetStandard = "standard"
	PresetQuick    = "quick"
)

// DefaultConfig returns the built-in classic configuration.
func DefaultConfig() Config {
	return Config{
		Variant: PresetClassic,
		Board:   BoardConfig{Size: 6},
		Fleet:   battle.ClassicFleet(),
		Placement: PlacementConfig{
			MaxAttempts: battle.DefaultMaxAttempts,
			MaxRestarts: 1000,
		},
		Opponent: OpponentConfig{
			MinDelay: 500 * time.Millisecond,
			MaxDelay: 1500 * time.Millisecond,
		},
	}
}

type preset struct {
	size  int
	fleet func() []int
}

var presets = map[string]preset{
	PresetClassic:  {size: 6, fleet: battle.ClassicFleet},
	PresetStandard: {size: 10, fleet: battle.StandardFleet},
	PresetQuick:    {size: 4, fleet: func() []int { return []int{2, 1, 1} }},
}

// Presets returns the known preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
