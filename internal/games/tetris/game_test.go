package tetris

import (
	"testing"

	"github.com/vovakirdan/blockpilot/internal/core"
	"github.com/vovakirdan/blockpilot/internal/pilot"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     12345,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots.
	g1 := New()
	g1.Reset(testConfig())

	g2 := New()
	g2.Reset(testConfig())

	input := core.NewInputFrame()
	for i := 0; i < 500; i++ {
		input.Clear()
		if i%37 == 0 {
			input.Set(core.ActionLeft)
		}
		if i%53 == 0 {
			input.Set(core.ActionRotate)
		}
		if i%97 == 0 {
			input.Set(core.ActionHardDrop)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if snap1 != snap2 {
		t.Errorf("Snapshots diverged:\n%+v\n%+v", snap1, snap2)
	}
}

func TestGravityMovesPieceDown(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	startY := g.y
	input := core.NewInputFrame()
	// Default gravity is 800ms; at 60 ticks/sec that is 48 ticks per row.
	for i := 0; i < g.fallEvery; i++ {
		g.Step(input)
	}

	if g.y != startY+1 {
		t.Errorf("After one gravity period, y = %d, expected %d", g.y, startY+1)
	}
}

func TestWallsBlockMovement(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Push the piece far past the left wall
	for i := 0; i < g.board.Width()+4; i++ {
		g.MoveLeft()
	}
	for _, p := range g.current.cells(g.rot) {
		if g.x+p.X < 0 {
			t.Fatalf("Piece cell left the board at column %d", g.x+p.X)
		}
	}

	// And past the right wall
	for i := 0; i < 2*g.board.Width(); i++ {
		g.MoveRight()
	}
	for _, p := range g.current.cells(g.rot) {
		if g.x+p.X >= g.board.Width() {
			t.Fatalf("Piece cell left the board at column %d", g.x+p.X)
		}
	}
}

func TestHardDropLocksAndSpawns(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	kind := g.current
	next := g.next

	g.HardDrop()

	if g.pieces != 1 {
		t.Errorf("pieces = %d, expected 1 after hard drop", g.pieces)
	}
	if g.current != next {
		t.Errorf("current = %v, expected the previous next piece %v", g.current, next)
	}
	if g.y != 0 || g.x != spawnColumn {
		t.Errorf("New piece should spawn at (%d, 0), got (%d, %d)", spawnColumn, g.x, g.y)
	}

	// The dropped piece's cells must be settled on the board
	settled := 0
	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			if k, ok := g.board.KindAt(x, y); ok && k == kind {
				settled++
			}
		}
	}
	if settled != 4 {
		t.Errorf("Expected 4 settled cells of kind %v, found %d", kind, settled)
	}
}

func TestLineClearScoring(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Bottom row full except column 5; drop a vertical I into the gap.
	fillRow(g.board, 19, 5)
	g.current = KindI
	g.rot = 1 // Vertical: occupies column x+2
	g.x = 3
	g.y = 0

	scoreBefore := g.score
	g.HardDrop()

	if g.lines != 1 {
		t.Fatalf("lines = %d, expected 1", g.lines)
	}
	// One line at level 1 plus hard drop distance bonus
	if g.score <= scoreBefore {
		t.Errorf("score = %d, expected an increase over %d", g.score, scoreBefore)
	}
	// Three cells of the I remain in column 5 after the clear
	remaining := 0
	for y := 0; y < g.board.Height(); y++ {
		if g.board.Filled(5, y) {
			remaining++
		}
	}
	if remaining != 3 {
		t.Errorf("Expected 3 cells left in the gap column, got %d", remaining)
	}
}

func TestBlockedSpawnEndsGame(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Bury the spawn area
	fillRow(g.board, 0)
	fillRow(g.board, 1)
	fillRow(g.board, 2)

	g.spawn()

	if !g.gameOver {
		t.Error("Spawn into occupied cells should end the game")
	}
	if g.Running() {
		t.Error("Running() should be false after game over")
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)

	if !g.paused {
		t.Fatal("ActionPause should pause the game")
	}

	y := g.y
	input.Clear()
	for i := 0; i < 3*g.fallEvery; i++ {
		g.Step(input)
	}
	if g.y != y {
		t.Error("Gravity should not act while paused")
	}

	// Commands are ignored while paused
	x := g.x
	g.MoveLeft()
	if g.x != x {
		t.Error("MoveLeft should be ignored while paused")
	}
}

func TestRotationCycles(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected int
	}{
		{KindI, 2},
		{KindO, 1},
		{KindT, 4},
		{KindS, 2},
		{KindZ, 2},
		{KindJ, 4},
		{KindL, 4},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if got := tc.kind.Rotations(); got != tc.expected {
				t.Errorf("Rotations() = %d, expected %d", got, tc.expected)
			}
			if len(tc.kind.cells(0)) != 4 {
				t.Errorf("Every tetromino has 4 cells, got %d", len(tc.kind.cells(0)))
			}
		})
	}

	// Rotating cycles within [0, Rotations)
	g := New()
	g.Reset(testConfig())
	g.current = KindT
	g.rot = 0
	for i := 0; i < 5; i++ {
		before := g.rot
		g.Rotate()
		if g.rot != (before+1)%4 {
			t.Fatalf("Rotation %d -> %d, expected %d", before, g.rot, (before+1)%4)
		}
	}
}

func TestSevenBagDealsEachKindOnce(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.bag = nil
	seen := make(map[Kind]int)
	for i := 0; i < KindCount; i++ {
		seen[g.popBag()]++
	}

	for k := KindI; k <= KindL; k++ {
		if seen[k] != 1 {
			t.Errorf("Kind %v dealt %d times in one bag, expected 1", k, seen[k])
		}
	}
}

func TestLifecycleEvents(t *testing.T) {
	g := New()

	var events []pilot.Event
	g.Subscribe(func(e pilot.Event) {
		events = append(events, e)
	})

	g.Reset(testConfig())

	if len(events) != 2 || events[0] != pilot.EventPieceSpawned || events[1] != pilot.EventGameStarted {
		t.Fatalf("Reset events = %v, expected [PieceSpawned GameStarted]", events)
	}

	events = nil
	g.HardDrop()
	if len(events) != 1 || events[0] != pilot.EventPieceSpawned {
		t.Errorf("HardDrop events = %v, expected [PieceSpawned]", events)
	}
}
