package pilot

import (
	"math"
	"testing"

	"github.com/vovakirdan/blockpilot/internal/core"
	"github.com/vovakirdan/blockpilot/internal/registry"
)

// fakeMachine drives the pilot with a one-cell piece on a small board.
// legal, when set, restricts which (col, rot) placements Place accepts.
type fakeMachine struct {
	w, h      int
	cells     map[core.Point]bool
	rotations int
	col, rot  int
	running   bool
	paused    bool
	legal     func(col, rot int) bool
	observers []func(Event)

	sandboxes int // Sandbox() call count, for re-search assertions
	drops     int
}

func newFakeMachine(w, h int) *fakeMachine {
	return &fakeMachine{
		w:         w,
		h:         h,
		cells:     make(map[core.Point]bool),
		rotations: 1,
		running:   true,
	}
}

func (m *fakeMachine) Width() int           { return m.w }
func (m *fakeMachine) Height() int          { return m.h }
func (m *fakeMachine) Filled(x, y int) bool { return m.cells[core.Point{X: x, Y: y}] }
func (m *fakeMachine) PieceRotations() int  { return m.rotations }
func (m *fakeMachine) PieceColumn() int     { return m.col }
func (m *fakeMachine) PieceRotation() int   { return m.rot }
func (m *fakeMachine) Running() bool        { return m.running }
func (m *fakeMachine) Paused() bool         { return m.paused }
func (m *fakeMachine) MoveLeft()            { m.col-- }
func (m *fakeMachine) MoveRight()           { m.col++ }
func (m *fakeMachine) Rotate()              { m.rot = (m.rot + 1) % m.rotations }
func (m *fakeMachine) Subscribe(fn func(Event)) {
	m.observers = append(m.observers, fn)
}

func (m *fakeMachine) HardDrop() {
	m.drops++
	// The engine spawns the next piece after a drop.
	m.emit(EventPieceSpawned)
}

func (m *fakeMachine) emit(e Event) {
	for _, fn := range m.observers {
		fn(e)
	}
}

func (m *fakeMachine) Sandbox() Sandbox {
	m.sandboxes++
	cells := make(map[core.Point]bool, len(m.cells))
	for p := range m.cells {
		cells[p] = true
	}
	return &fakeSandbox{m: m, cells: cells, col: -100}
}

// fakeSandbox simulates dropping the one-cell piece in a column.
type fakeSandbox struct {
	m     *fakeMachine
	cells map[core.Point]bool
	col   int
}

func (s *fakeSandbox) Width() int           { return s.m.w }
func (s *fakeSandbox) Height() int          { return s.m.h }
func (s *fakeSandbox) Filled(x, y int) bool { return s.cells[core.Point{X: x, Y: y}] }

func (s *fakeSandbox) Place(col, rot int) bool {
	if col < 0 || col >= s.m.w {
		return false
	}
	if s.m.legal != nil && !s.m.legal(col, rot) {
		return false
	}
	s.col = col
	return true
}

func (s *fakeSandbox) Drop() {
	y := s.m.h - 1
	for y > 0 && s.cells[core.Point{X: s.col, Y: y}] {
		y--
	}
	s.cells[core.Point{X: s.col, Y: y}] = true
}

func TestSearchTieBreakPrefersCenter(t *testing.T) {
	// A one-cell piece on an empty 10-wide board scores identically in every
	// column, so the tie-break must pick the column closest to width/2.
	m := newFakeMachine(10, 20)

	target := Search(m, DefaultWeights())

	if !target.Valid() {
		t.Fatal("Search() returned no valid target on an empty board")
	}
	if target.Column != 5 {
		t.Errorf("Search() column = %d, expected the most central column 5", target.Column)
	}
}

func TestSearchExhaustionYieldsSentinel(t *testing.T) {
	m := newFakeMachine(10, 20)
	m.legal = func(int, int) bool { return false }

	target := Search(m, DefaultWeights())

	if target.Valid() {
		t.Fatal("Search() should report no legal placement")
	}
	if !math.IsInf(target.Score, 1) {
		t.Errorf("Search() sentinel score = %v, expected +Inf", target.Score)
	}
}

func TestSearchDoesNotTouchLiveState(t *testing.T) {
	m := newFakeMachine(10, 20)
	m.cells[core.Point{X: 0, Y: 19}] = true
	m.col, m.rot = 4, 0

	Search(m, DefaultWeights())

	if len(m.cells) != 1 || !m.cells[core.Point{X: 0, Y: 19}] {
		t.Error("Search() modified the live grid")
	}
	if m.col != 4 || m.rot != 0 {
		t.Error("Search() moved the live piece")
	}
	if m.drops != 0 {
		t.Error("Search() dropped the live piece")
	}
}

func TestPilotOneActionPerTick(t *testing.T) {
	// The only legal placement is (7, 2); the piece starts at column 4,
	// rotation 0, with 4 distinct orientations. Reaching the target takes
	// 2 rotations, 3 right shifts, and 1 drop: exactly 6 ticks.
	m := newFakeMachine(10, 20)
	m.rotations = 4
	m.col = 4
	m.legal = func(col, rot int) bool { return col == 7 && rot == 2 }

	p := New(m, DefaultPilotConfig())
	p.Enable()

	expected := []Move{MoveRotate, MoveRotate, MoveRight, MoveRight, MoveRight, MoveDrop}
	for i, want := range expected {
		if got := p.Tick(); got != want {
			t.Fatalf("tick %d = %v, expected %v", i+1, got, want)
		}
	}

	if m.drops != 1 {
		t.Errorf("Expected exactly 1 drop, got %d", m.drops)
	}
	if p.HasTarget() {
		t.Error("Target should be cleared after the drop")
	}
}

func TestPilotPreconditionsAreSilentNoOps(t *testing.T) {
	m := newFakeMachine(10, 20)

	p := New(m, DefaultPilotConfig())

	// Disabled
	if got := p.Tick(); got != MoveNone {
		t.Errorf("Tick() while disabled = %v, expected MoveNone", got)
	}
	if m.sandboxes != 0 {
		t.Error("Tick() while disabled should not search")
	}

	// Paused
	p.Enable()
	m.paused = true
	if got := p.Tick(); got != MoveNone {
		t.Errorf("Tick() while paused = %v, expected MoveNone", got)
	}

	// Not running
	m.paused = false
	m.running = false
	if got := p.Tick(); got != MoveNone {
		t.Errorf("Tick() with no game = %v, expected MoveNone", got)
	}
	if m.sandboxes != 0 {
		t.Error("Tick() with unmet preconditions should not search")
	}
}

func TestPilotSearchExhaustionIsNotRetried(t *testing.T) {
	m := newFakeMachine(10, 20)
	m.legal = func(int, int) bool { return false }

	p := New(m, DefaultPilotConfig())
	p.Enable()

	if got := p.Tick(); got != MoveNone {
		t.Errorf("Tick() = %v, expected MoveNone when no placement exists", got)
	}
	searched := m.sandboxes

	// Subsequent ticks keep the sentinel instead of searching again.
	p.Tick()
	p.Tick()
	if m.sandboxes != searched {
		t.Error("Exhausted search should not be retried mid-piece")
	}

	// A piece boundary clears the sentinel and allows a fresh search.
	m.emit(EventPieceSpawned)
	p.Tick()
	if m.sandboxes == searched {
		t.Error("Piece boundary should trigger a fresh search")
	}
}

func TestPilotDiscardsTargetOnPieceEvents(t *testing.T) {
	m := newFakeMachine(10, 20)
	m.col = 0 // Far from center so the first tick shifts rather than drops

	p := New(m, DefaultPilotConfig())
	p.Enable()

	p.Tick()
	if !p.HasTarget() {
		t.Fatal("Expected a target after the first tick")
	}

	m.emit(EventPieceSpawned)
	if p.HasTarget() {
		t.Error("EventPieceSpawned should discard the target")
	}

	p.Tick()
	if !p.HasTarget() {
		t.Fatal("Expected a recomputed target")
	}

	m.emit(EventGameStarted)
	if p.HasTarget() {
		t.Error("EventGameStarted should discard the target")
	}
}

func TestPilotManualStepIgnoresEnabledFlag(t *testing.T) {
	m := newFakeMachine(10, 20)
	m.col = 0

	p := New(m, DefaultPilotConfig())

	if p.Enabled() {
		t.Fatal("Pilot should start disabled")
	}
	if got := p.Step(); got == MoveNone {
		t.Errorf("Step() = %v, expected a real action while disabled", got)
	}

	// Pause still blocks manual stepping
	m.paused = true
	if got := p.Step(); got != MoveNone {
		t.Errorf("Step() while paused = %v, expected MoveNone", got)
	}
}

// stubGame is a registry game with no Machine contract.
type stubGame struct{}

func (stubGame) ID() string                           { return "stub" }
func (stubGame) Title() string                        { return "Stub" }
func (stubGame) Reset(core.RuntimeConfig)             {}
func (stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen)                  {}
func (stubGame) State() core.GameState                { return core.GameState{} }

func TestForGameRejectsUnpilotableGames(t *testing.T) {
	var g registry.Game = stubGame{}
	if _, err := ForGame(g, DefaultPilotConfig()); err == nil {
		t.Error("ForGame() should reject a game without the Machine contract")
	}
}

func TestIntervalTicks(t *testing.T) {
	p := New(newFakeMachine(10, 20), DefaultPilotConfig())

	if got := p.IntervalTicks(60); got != 12 {
		t.Errorf("IntervalTicks(60) = %d, expected 12 for a 200ms interval", got)
	}
	// Never less than one tick
	if got := p.IntervalTicks(1); got != 1 {
		t.Errorf("IntervalTicks(1) = %d, expected 1", got)
	}
}
