package tetris

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/blockpilot/internal/config"
	"github.com/vovakirdan/blockpilot/internal/core"
	"github.com/vovakirdan/blockpilot/internal/pilot"
	"github.com/vovakirdan/blockpilot/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeMarathon Mode = "marathon" // gravity speeds up with level
	ModeZen      Mode = "zen"      // fixed gravity, no pressure
)

const spawnColumn = 3

// Game implements falling-block Tetris. It satisfies both the registry.Game
// interface for the platform and the pilot.Machine contract for autonomous
// control.
type Game struct {
	mode Mode
	cfg  config.TetrisConfig
	rng  *rand.Rand
	tick uint64

	board *Board

	// Active piece state
	x, y     int
	rot      int
	current  Kind
	next     Kind
	bag      []Kind

	score  int
	lines  int
	pieces int
	level  int

	fallEvery  int // Gravity period in ticks
	fallTicker int
	tickRate   int

	started  bool
	gameOver bool
	paused   bool
	tooSmall bool
	autoHUD  bool // Autopilot indicator for the HUD

	observers []func(pilot.Event)

	// Screen layout
	screenW    int
	screenH    int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int
}

// Package-level variables for config (like the other game packages).
var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new marathon mode Tetris game.
func New() *Game {
	return &Game{mode: ModeMarathon}
}

// NewZen creates a new zen mode Tetris game.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_zen", func() registry.Game {
		return NewZen()
	})
}

// Compile-time check: the pilot can drive this engine.
var _ pilot.Machine = (*Game)(nil)

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "tetris_zen"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Tetris (Zen)"
	}
	return "Tetris"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadTetris(configPath)
	if err != nil {
		loaded = config.DefaultTetrisConfig()
	}
	g.cfg = loaded

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.lines = 0
	g.pieces = 0
	g.level = 0
	g.gameOver = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.hudHeight = 2

	g.board = NewBoard(g.cfg.Board.Width, g.cfg.Board.Height)
	g.bag = nil
	g.updateGravity()
	g.layout()

	g.current = g.popBag()
	g.next = g.popBag()
	g.spawn()

	g.started = true
	g.emit(pilot.EventGameStarted)
}

// layout centers the playfield on screen and flags undersized terminals.
// The board is framed by a one-cell border, with the HUD above it.
func (g *Game) layout() {
	requiredW := g.board.Width() + 2
	requiredH := g.board.Height() + g.hudHeight + 2
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.mapOffsetX = (g.screenW - g.board.Width()) / 2
	g.mapOffsetY = g.hudHeight + 1
}

// updateGravity recomputes the gravity period from config, level, and mode.
func (g *Game) updateGravity() {
	ms := g.cfg.Gravity.FallMs
	if g.mode == ModeMarathon {
		ms -= g.level * g.cfg.Gravity.StepMs
		if ms < g.cfg.Gravity.MinMs {
			ms = g.cfg.Gravity.MinMs
		}
	}
	g.fallEvery = core.Max(1, ms*g.tickRate/1000)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch {
	case input.Has(core.ActionLeft):
		g.MoveLeft()
	case input.Has(core.ActionRight):
		g.MoveRight()
	case input.Has(core.ActionRotate):
		g.Rotate()
	case input.Has(core.ActionSoftDrop):
		g.softDrop()
	case input.Has(core.ActionHardDrop):
		g.HardDrop()
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Gravity
	g.fallTicker++
	if g.fallTicker >= g.fallEvery {
		g.fallTicker = 0
		if !g.collides(g.x, g.y+1, g.rot) {
			g.y++
		} else {
			g.lockAndSpawn()
		}
	}

	return core.StepResult{State: g.State()}
}

// MoveLeft shifts the active piece one column left if the move is legal.
func (g *Game) MoveLeft() {
	if g.gameOver || g.paused {
		return
	}
	if !g.collides(g.x-1, g.y, g.rot) {
		g.x--
	}
}

// MoveRight shifts the active piece one column right if the move is legal.
func (g *Game) MoveRight() {
	if g.gameOver || g.paused {
		return
	}
	if !g.collides(g.x+1, g.y, g.rot) {
		g.x++
	}
}

// Rotate turns the active piece to its next orientation. If the rotated
// piece would collide it tries a one or two column sideways nudge first,
// then gives up and keeps the current orientation.
func (g *Game) Rotate() {
	if g.gameOver || g.paused {
		return
	}
	newRot := (g.rot + 1) % g.current.Rotations()
	if !g.collides(g.x, g.y, newRot) {
		g.rot = newRot
		return
	}
	for _, dx := range []int{-1, 1, -2, 2} {
		if !g.collides(g.x+dx, g.y, newRot) {
			g.x += dx
			g.rot = newRot
			return
		}
	}
}

// softDrop moves the piece down one row, awarding the configured bonus.
func (g *Game) softDrop() {
	if !g.collides(g.x, g.y+1, g.rot) {
		g.y++
		g.score += g.cfg.Scoring.SoftDrop
	}
}

// HardDrop moves the active piece straight down to its resting position and
// locks it.
func (g *Game) HardDrop() {
	if g.gameOver || g.paused {
		return
	}
	distance := 0
	for !g.collides(g.x, g.y+1, g.rot) {
		g.y++
		distance++
	}
	g.score += distance * g.cfg.Scoring.HardDrop
	g.lockAndSpawn()
}

// lockAndSpawn settles the active piece, clears rows, and spawns the next.
func (g *Game) lockAndSpawn() {
	g.board.lock(g.current, g.x, g.y, g.rot)
	g.pieces++

	if cleared := g.board.ClearFullRows(); cleared > 0 {
		g.score += g.cfg.Scoring.LineClear(cleared) * (g.level + 1)
		g.lines += cleared
		g.level = g.lines / g.cfg.Scoring.LinesPerLevel
		g.updateGravity()
	}

	g.current = g.next
	g.next = g.popBag()
	g.spawn()
}

// spawn resets the active piece to the spawn position. A blocked spawn ends
// the game.
func (g *Game) spawn() {
	g.x = spawnColumn
	g.y = 0
	g.rot = 0
	g.fallTicker = 0
	if g.collides(g.x, g.y, g.rot) {
		g.gameOver = true
		return
	}
	g.emit(pilot.EventPieceSpawned)
}

// collides reports whether the active piece at (x, y, rot) would overlap a
// settled cell or leave the board.
func (g *Game) collides(x, y, rot int) bool {
	return collides(g.board, g.current, x, y, rot)
}

// collides reports whether the given piece placement overlaps settled cells
// or falls outside the board.
func collides(b *Board, kind Kind, x, y, rot int) bool {
	for _, p := range kind.cells(rot) {
		bx, by := x+p.X, y+p.Y
		if !b.inside(bx, by) {
			return true
		}
		if b.Filled(bx, by) {
			return true
		}
	}
	return false
}

// popBag draws the next piece from the seven-bag randomizer.
func (g *Game) popBag() Kind {
	if len(g.bag) == 0 {
		g.bag = []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}
		g.rng.Shuffle(len(g.bag), func(i, j int) {
			g.bag[i], g.bag[j] = g.bag[j], g.bag[i]
		})
	}
	kind := g.bag[0]
	g.bag = g.bag[1:]
	return kind
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    g.lines,
		Pieces:   g.pieces,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// SetAutopilotHUD controls the autopilot marker in the HUD. Display only;
// the pilot itself lives in the platform layer.
func (g *Game) SetAutopilotHUD(on bool) {
	g.autoHUD = on
}

// --- pilot.Machine ---

// Width returns the playfield width in cells.
func (g *Game) Width() int {
	return g.board.Width()
}

// Height returns the playfield height in cells.
func (g *Game) Height() int {
	return g.board.Height()
}

// Filled reports whether the settled cell at (x, y) is occupied. The active
// piece is not part of the settled grid.
func (g *Game) Filled(x, y int) bool {
	return g.board.Filled(x, y)
}

// PieceRotations returns the distinct orientation count of the active piece.
func (g *Game) PieceRotations() int {
	return g.current.Rotations()
}

// PieceColumn returns the active piece's current column.
func (g *Game) PieceColumn() int {
	return g.x
}

// PieceRotation returns the active piece's current rotation index.
func (g *Game) PieceRotation() int {
	return g.rot
}

// Running reports whether a game is in progress.
func (g *Game) Running() bool {
	return g.started && !g.gameOver
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Sandbox returns a disposable copy of the board plus the active piece for
// drop simulation. The live game is unaffected by anything done to it.
func (g *Game) Sandbox() pilot.Sandbox {
	return &Sandbox{
		board: g.board.Clone(),
		kind:  g.current,
	}
}

// Subscribe registers an observer for lifecycle events.
func (g *Game) Subscribe(fn func(pilot.Event)) {
	g.observers = append(g.observers, fn)
}

// emit notifies all observers.
func (g *Game) emit(e pilot.Event) {
	for _, fn := range g.observers {
		fn(e)
	}
}

// --- Debug helper ---

// DebugState returns a compact string representation of the game state.
func (g *Game) DebugState() string {
	return fmt.Sprintf("tick=%d score=%d lines=%d piece=%s (%d,%d) rot=%d over=%v paused=%v",
		g.tick, g.score, g.lines, g.current, g.x, g.y, g.rot, g.gameOver, g.paused)
}
