// Package config provides YAML-based configuration loading for the game
// engine and the autopilot.
package config

import (
	"time"

	"github.com/vovakirdan/blockpilot/internal/pilot"
)

// TetrisConfig contains all configuration for the Tetris engine.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Gravity GravityConfig `yaml:"gravity"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the playfield dimensions. Fixed for the lifetime of a
// game.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines how fast pieces fall.
type GravityConfig struct {
	FallMs int `yaml:"fall_ms"` // Base gravity period
	StepMs int `yaml:"step_ms"` // Reduction per level (marathon mode)
	MinMs  int `yaml:"min_ms"`  // Gravity period floor
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	SoftDrop      int   `yaml:"soft_drop"`       // Per soft-dropped row
	HardDrop      int   `yaml:"hard_drop"`       // Per hard-dropped row
	LineClears    []int `yaml:"line_clears"`     // Indexed by rows cleared at once
	LinesPerLevel int   `yaml:"lines_per_level"` // Level advances every N lines
}

// LineClear returns the base award for clearing n rows at once.
func (s ScoringConfig) LineClear(n int) int {
	if n <= 0 || len(s.LineClears) == 0 {
		return 0
	}
	if n >= len(s.LineClears) {
		n = len(s.LineClears) - 1
	}
	return s.LineClears[n]
}

// PilotConfig contains all configuration for the autopilot.
type PilotConfig struct {
	IntervalMs int           `yaml:"interval_ms"` // Pause between pilot actions
	Weights    pilot.Weights `yaml:"weights"`
}

// ToPilot converts the file representation into the pilot's own config.
func (p PilotConfig) ToPilot() pilot.Config {
	return pilot.Config{
		Weights:  p.Weights,
		Interval: time.Duration(p.IntervalMs) * time.Millisecond,
	}
}
