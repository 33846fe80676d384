// Package config provides YAML-based match configuration loading and
// named presets for seabattle.
package config

import (
	"time"

	"github.com/vovakirdan/tui-seabattle/internal/battle"
)

// Config contains everything needed to set up a match.
type Config struct {
	Variant   string          `yaml:"variant"`
	Board     BoardConfig     `yaml:"board"`
	Fleet     []int           `yaml:"fleet"`
	Placement PlacementConfig `yaml:"placement"`
	Opponent  OpponentConfig  `yaml:"opponent"`
}

// BoardConfig defines the board dimensions.
type BoardConfig struct {
	Size int `yaml:"size"`
}

// PlacementConfig bounds the random fleet generator.
type PlacementConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
	MaxRestarts int `yaml:"max_restarts"` // 0 = unlimited
}

// OpponentConfig controls computer pacing in interactive play.
type OpponentConfig struct {
	MinDelay time.Duration `yaml:"min_delay"`
	MaxDelay time.Duration `yaml:"max_delay"`
}

// Generator returns a placement generator for this configuration.
func (c Config) Generator() battle.Generator {
	return battle.Generator{
		Size:        c.Board.Size,
		Fleet:       append([]int(nil), c.Fleet...),
		MaxAttempts: c.Placement.MaxAttempts,
		MaxRestarts: c.Placement.MaxRestarts,
	}
}

// FleetArea returns the number of cells the fleet occupies.
func (c Config) FleetArea() int {
	area := 0
	for _, n := range c.Fleet {
		area += n
	}
	return area
}
