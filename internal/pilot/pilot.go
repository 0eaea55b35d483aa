package pilot

import (
	"fmt"
	"time"

	"github.com/vovakirdan/blockpilot/internal/core"
	"github.com/vovakirdan/blockpilot/internal/registry"
)

// DefaultInterval is the pause between pilot actions. One discrete action per
// interval keeps the piece's motion visible and lets a human interrupt
// between actions.
const DefaultInterval = 200 * time.Millisecond

// Config is the explicit pilot configuration, passed in at construction
// rather than read from ambient state.
type Config struct {
	Weights  Weights
	Interval time.Duration
}

// DefaultPilotConfig returns the shipping pilot configuration.
func DefaultPilotConfig() Config {
	return Config{
		Weights:  DefaultWeights(),
		Interval: DefaultInterval,
	}
}

// Move identifies the single discrete action a tick performed.
type Move int

const (
	MoveNone Move = iota // preconditions unmet or no legal placement
	MoveRotate
	MoveLeft
	MoveRight
	MoveDrop
)

// String returns a human-readable name for the move.
func (m Move) String() string {
	switch m {
	case MoveNone:
		return "None"
	case MoveRotate:
		return "Rotate"
	case MoveLeft:
		return "Left"
	case MoveRight:
		return "Right"
	case MoveDrop:
		return "Drop"
	default:
		return "Unknown"
	}
}

// Pilot steers the active piece of a Machine toward the best placement found
// by Search, one action per tick. It holds at most one Target at a time; the
// target is computed lazily on the first tick that needs it and discarded
// when the piece is dropped or the engine reports a piece boundary.
type Pilot struct {
	machine  Machine
	weights  Weights
	interval time.Duration
	enabled  bool
	target   *Target
}

// New creates a pilot for the given machine and subscribes to its lifecycle
// events so stale targets never survive across piece boundaries.
func New(m Machine, cfg Config) *Pilot {
	p := &Pilot{
		machine:  m,
		weights:  cfg.Weights,
		interval: cfg.Interval,
	}
	if p.interval <= 0 {
		p.interval = DefaultInterval
	}
	m.Subscribe(func(Event) {
		p.target = nil
	})
	return p
}

// ForGame creates a pilot for a registry game. Games that do not implement
// the Machine contract cannot be piloted; asking for one is a configuration
// error, reported rather than silently ignored.
func ForGame(g registry.Game, cfg Config) (*Pilot, error) {
	m, ok := g.(Machine)
	if !ok {
		return nil, fmt.Errorf("pilot: game %q does not support autonomous control", g.ID())
	}
	return New(m, cfg), nil
}

// Enable turns autonomous control on.
func (p *Pilot) Enable() {
	p.enabled = true
}

// Disable turns autonomous control off. The current target is kept; it is
// still discarded on the next piece boundary.
func (p *Pilot) Disable() {
	p.enabled = false
}

// Enabled reports whether autonomous control is on.
func (p *Pilot) Enabled() bool {
	return p.enabled
}

// Toggle flips autonomous control and reports the new state.
func (p *Pilot) Toggle() bool {
	p.enabled = !p.enabled
	return p.enabled
}

// Interval returns the configured pause between pilot actions.
func (p *Pilot) Interval() time.Duration {
	return p.interval
}

// IntervalTicks converts the pilot interval into a number of platform ticks
// at the given tick rate, never less than one.
func (p *Pilot) IntervalTicks(tickRate int) int {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	ticks := int(p.interval * time.Duration(tickRate) / time.Second)
	return core.Max(1, ticks)
}

// Target returns the current target, if one is held.
func (p *Pilot) Target() (Target, bool) {
	if p.target == nil {
		return Target{}, false
	}
	return *p.target, true
}

// HasTarget reports whether a target is held for the active piece.
func (p *Pilot) HasTarget() bool {
	return p.target != nil
}

// Tick performs at most one discrete action. Ticking while the pilot is
// disabled, the game is paused, or no game is running is a silent no-op;
// that is the expected steady state, not an error.
func (p *Pilot) Tick() Move {
	if !p.enabled {
		return MoveNone
	}
	return p.step()
}

// Step performs one action regardless of the enabled flag, for manual
// stepping and debugging. Pause and game-over preconditions still apply.
func (p *Pilot) Step() Move {
	return p.step()
}

func (p *Pilot) step() Move {
	m := p.machine
	if !m.Running() || m.Paused() {
		return MoveNone
	}

	if p.target == nil {
		t := Search(m, p.weights)
		p.target = &t
	}
	if !p.target.Valid() {
		// No legal placement exists for this piece. Keep the sentinel so the
		// search is not retried; the next piece boundary clears it.
		return MoveNone
	}

	switch {
	case m.PieceRotation() != p.target.Rotation:
		m.Rotate()
		return MoveRotate
	case m.PieceColumn() < p.target.Column:
		m.MoveRight()
		return MoveRight
	case m.PieceColumn() > p.target.Column:
		m.MoveLeft()
		return MoveLeft
	default:
		m.HardDrop()
		p.target = nil
		return MoveDrop
	}
}
