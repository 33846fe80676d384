package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-seabattle/internal/battle"
)

// MaxBoardSize keeps row labels and column headers readable.
const MaxBoardSize = 26

// Config errors.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrUnknownPreset = errors.New("unknown preset")
)

const configFile = "seabattle.yaml"

// Load loads the match configuration.
// Search order: customPath -> ~/.seabattle/configs/seabattle.yaml -> ./configs/seabattle.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSeabattleYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ApplyPreset replaces the board size and fleet with a named preset and
// records the preset as the match variant. An empty name is a no-op.
func ApplyPreset(cfg *Config, name string) error {
	if name == "" {
		return nil
	}
	p, ok := presets[name]
	if !ok {
		return fmt.Errorf("%w: %q (known: %v)", ErrUnknownPreset, name, Presets())
	}
	cfg.Variant = name
	cfg.Board.Size = p.size
	cfg.Fleet = p.fleet()
	return nil
}

// Validate checks that a match can be set up from cfg.
func Validate(cfg Config) error {
	if cfg.Board.Size < 1 || cfg.Board.Size > MaxBoardSize {
		return fmt.Errorf("%w: board size %d outside 1..%d", ErrInvalidConfig, cfg.Board.Size, MaxBoardSize)
	}
	if len(cfg.Fleet) == 0 {
		return fmt.Errorf("%w: empty fleet", ErrInvalidConfig)
	}
	for _, n := range cfg.Fleet {
		if n < battle.MinShipLength || n > battle.MaxShipLength {
			return fmt.Errorf("%w: ship length %d outside %d..%d",
				ErrInvalidConfig, n, battle.MinShipLength, battle.MaxShipLength)
		}
	}
	if area := cfg.FleetArea(); area > cfg.Board.Size*cfg.Board.Size {
		return fmt.Errorf("%w: fleet needs %d cells, board has %d",
			ErrInvalidConfig, area, cfg.Board.Size*cfg.Board.Size)
	}
	if cfg.Placement.MaxAttempts <= 0 {
		return fmt.Errorf("%w: max_attempts must be positive", ErrInvalidConfig)
	}
	if cfg.Placement.MaxRestarts < 0 {
		return fmt.Errorf("%w: max_restarts must not be negative", ErrInvalidConfig)
	}
	if cfg.Opponent.MinDelay < 0 || cfg.Opponent.MinDelay > cfg.Opponent.MaxDelay {
		return fmt.Errorf("%w: opponent delay range %s..%s",
			ErrInvalidConfig, cfg.Opponent.MinDelay, cfg.Opponent.MaxDelay)
	}
	return nil
}

// userConfigPath returns the path to a config file in the user's config directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".seabattle", "configs", filename)
}
