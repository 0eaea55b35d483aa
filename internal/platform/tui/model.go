package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockpilot/internal/core"
	"github.com/vovakirdan/blockpilot/internal/pilot"
	"github.com/vovakirdan/blockpilot/internal/registry"
	"github.com/vovakirdan/blockpilot/internal/storage"
)

// hudAware is implemented by games that can show an autopilot marker.
type hudAware interface {
	SetAutopilotHUD(on bool)
}

// Model is the Bubble Tea model for running a game session, with the
// autopilot attached when the game supports it.
type Model struct {
	game       registry.Game
	pilot      *pilot.Pilot // nil when the game cannot be piloted
	pilotErr   error        // Why the pilot is nil, shown when the toggle is pressed
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	pilotTicks int // Ticks since the pilot last acted
	startedAt  time.Time
	quitting   bool
	runSaved   bool // Whether the finished game has been recorded

	statusMsg   string // Transient message on the bottom screen row
	statusUntil time.Time
}

// NewModel creates a new Bubble Tea model for the given game. If the game
// satisfies the pilot's machine contract, the autopilot is wired up;
// autoStart enables it from the first tick. Requesting autoStart for a game
// that cannot be piloted is a configuration error and fails the session.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, pcfg pilot.Config, autoStart bool) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		startedAt:  time.Now(),
	}

	p, err := pilot.ForGame(game, pcfg)
	if err != nil {
		if autoStart {
			return Model{}, err
		}
		// Playable by hand; remember why 'a' will be refused.
		m.pilotErr = err
		return m, nil
	}

	m.pilot = p
	if autoStart {
		p.Enable()
		m.syncHUD()
	}

	return m, nil
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	// Map key to action
	switch msg.String() {
	case "left", "h":
		m.inputFrame.Set(core.ActionLeft)
	case "right", "l":
		m.inputFrame.Set(core.ActionRight)
	case "up", "k", "x":
		m.inputFrame.Set(core.ActionRotate)
	case "down", "j":
		m.inputFrame.Set(core.ActionSoftDrop)
	case " ":
		m.inputFrame.Set(core.ActionHardDrop)
	case "a":
		m.inputFrame.Set(core.ActionAutoplay)
	case ".":
		m.inputFrame.Set(core.ActionPilotStep)
	case "p", "esc":
		m.inputFrame.Set(core.ActionPause)
	case "r":
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Reinitialize game with new dimensions if needed
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks. Pilot toggles and manual pilot steps
// are consumed here, before the game sees the frame; the pilot acts on the
// machine directly, so its moves never pass through the input frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.startedAt = time.Now()
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if m.pilot == nil {
		if m.inputFrame.Has(core.ActionAutoplay) || m.inputFrame.Has(core.ActionPilotStep) {
			m.setStatus(fmt.Sprintf("autopilot unavailable: %v", m.pilotErr))
		}
	} else {
		if m.inputFrame.Has(core.ActionAutoplay) {
			m.pilot.Toggle()
			m.pilotTicks = 0
			m.syncHUD()
		}
		if m.inputFrame.Has(core.ActionPilotStep) && !m.pilot.Enabled() {
			m.pilot.Step()
		}
		if m.pilot.Enabled() {
			m.pilotTicks++
			if m.pilotTicks >= m.pilot.IntervalTicks(m.config.TickRate) {
				m.pilotTicks = 0
				m.pilot.Tick()
			}
		}
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record the finished game (once)
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// setStatus shows a message on the bottom screen row for a few seconds.
func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusUntil = time.Now().Add(3 * time.Second)
}

// syncHUD propagates the autopilot state into the game's HUD, if it shows one.
func (m *Model) syncHUD() {
	if h, ok := m.game.(hudAware); ok {
		h.SetAutopilotHUD(m.pilot != nil && m.pilot.Enabled())
	}
}

// saveRun persists the score and run record for a finished game.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}

	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}

	//nolint:errcheck // Best-effort save
	m.store.SaveRun(storage.RunRecord{
		GameID:    m.game.ID(),
		Score:     m.gameState.Score,
		Lines:     m.gameState.Lines,
		Pieces:    m.gameState.Pieces,
		Autopilot: m.pilot != nil && m.pilot.Enabled(),
		Duration:  int(time.Since(m.startedAt).Seconds()),
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".blockpilot", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.statusMsg != "" && time.Now().Before(m.statusUntil) {
		m.screen.DrawText(0, m.screen.Height()-1, m.statusMsg)
	}
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, pcfg pilot.Config, autoStart bool) error {
	model, err := NewModel(game, store, cfg, pcfg, autoStart)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
