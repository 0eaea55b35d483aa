package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockpilot/internal/core"
	"github.com/vovakirdan/blockpilot/internal/pilot"
)

// manualGame is playable by hand but offers no machine contract, so the
// autopilot can never attach to it.
type manualGame struct{}

func (manualGame) ID() string                           { return "manual" }
func (manualGame) Title() string                        { return "Manual" }
func (manualGame) Reset(core.RuntimeConfig)             {}
func (manualGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (manualGame) Render(*core.Screen)                  {}
func (manualGame) State() core.GameState                { return core.GameState{} }

// pilotedGame additionally satisfies the machine contract with no-op moves.
type pilotedGame struct {
	manualGame
}

func (*pilotedGame) Width() int                  { return 10 }
func (*pilotedGame) Height() int                 { return 20 }
func (*pilotedGame) Filled(x, y int) bool        { return false }
func (*pilotedGame) PieceRotations() int         { return 1 }
func (*pilotedGame) PieceColumn() int            { return 3 }
func (*pilotedGame) PieceRotation() int          { return 0 }
func (*pilotedGame) Running() bool               { return false }
func (*pilotedGame) Paused() bool                { return false }
func (*pilotedGame) MoveLeft()                   {}
func (*pilotedGame) MoveRight()                  {}
func (*pilotedGame) Rotate()                     {}
func (*pilotedGame) HardDrop()                   {}
func (*pilotedGame) Sandbox() pilot.Sandbox      { return nil }
func (*pilotedGame) Subscribe(func(pilot.Event)) {}

func TestNewModelRejectsAutoStartWithoutPilot(t *testing.T) {
	_, err := NewModel(manualGame{}, nil, core.DefaultConfig(), pilot.DefaultPilotConfig(), true)
	if err == nil {
		t.Fatal("auto-start on a game without autopilot support should fail")
	}
	if !strings.Contains(err.Error(), "autonomous control") {
		t.Errorf("error = %v, want the pilot attach error", err)
	}
}

func TestNewModelAutoStartEnablesPilot(t *testing.T) {
	m, err := NewModel(&pilotedGame{}, nil, core.DefaultConfig(), pilot.DefaultPilotConfig(), true)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	if m.pilot == nil || !m.pilot.Enabled() {
		t.Error("auto-start did not enable the pilot")
	}
}

func TestPilotToggleOnUnpilotableGameShowsStatus(t *testing.T) {
	m, err := NewModel(manualGame{}, nil, core.DefaultConfig(), pilot.DefaultPilotConfig(), false)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	if m.pilot != nil {
		t.Fatal("manual game should have no pilot")
	}

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	next, _ = next.(Model).handleTick()
	m = next.(Model)

	if !strings.Contains(m.statusMsg, "autopilot unavailable") {
		t.Errorf("statusMsg = %q, want an autopilot unavailable notice", m.statusMsg)
	}
}
