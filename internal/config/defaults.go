package config

import (
	_ "embed"

	"github.com/vovakirdan/blockpilot/internal/pilot"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/pilot.yaml
var defaultPilotYAML []byte

// DefaultTetrisConfig returns the default Tetris engine configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Gravity: GravityConfig{
			FallMs: 800,
			StepMs: 60,
			MinMs:  100,
		},
		Scoring: ScoringConfig{
			SoftDrop:      1,
			HardDrop:      2,
			LineClears:    []int{0, 100, 300, 500, 800},
			LinesPerLevel: 10,
		},
	}
}

// DefaultPilotConfig returns the default autopilot configuration. The
// weights are tuned values and are kept exactly as shipped.
func DefaultPilotConfig() PilotConfig {
	return PilotConfig{
		IntervalMs: 200,
		Weights:    pilot.DefaultWeights(),
	}
}
