// Package pilot implements the autonomous player: a heuristic evaluator over
// board shapes, a placement search across every reachable (rotation, column)
// pair for the active piece, and a tick-driven actuator that steers the live
// piece toward the chosen placement one action at a time.
//
// The pilot knows nothing about any concrete game engine. It drives whatever
// implements Machine, and simulates drops on disposable Sandbox copies so the
// live game state is never touched during a search.
package pilot

// Board is a read-only view of playfield cells. Both the live grid and
// scratch copies used during simulation satisfy it.
//
// Coordinates are 0-based with y growing downward. Reading outside
// [0,Width)×[0,Height) is a programming error.
type Board interface {
	Width() int
	Height() int
	Filled(x, y int) bool
}

// Event is an engine lifecycle notification the pilot subscribes to.
// Both events invalidate any placement decision made for a previous piece.
type Event int

const (
	// EventGameStarted fires when a game begins or restarts.
	EventGameStarted Event = iota
	// EventPieceSpawned fires when a new piece becomes the active piece.
	EventPieceSpawned
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventGameStarted:
		return "GameStarted"
	case EventPieceSpawned:
		return "PieceSpawned"
	default:
		return "Unknown"
	}
}

// Sandbox is a disposable copy of the game state used for drop simulation.
// It is created by Machine.Sandbox, used within a single search, and
// discarded; nothing done to it affects the live game.
type Sandbox interface {
	Board

	// Place positions the active piece at the given column and rotation on
	// the spawn row. Returns false if the placement collides immediately,
	// in which case the sandbox must not be dropped.
	Place(col, rot int) bool

	// Drop moves the placed piece straight down to its resting position and
	// locks it into the board, so the Board view reflects only settled cells.
	Drop()
}

// Machine is the narrow engine contract the pilot drives. The embedded Board
// is the live grid; the command methods each perform one discrete move on the
// live piece.
type Machine interface {
	Board

	// PieceRotations returns the number of distinct orientations of the
	// active piece.
	PieceRotations() int

	// PieceColumn returns the active piece's current column.
	PieceColumn() int

	// PieceRotation returns the active piece's current rotation index.
	PieceRotation() int

	// Running reports whether a game is in progress (started and not over).
	Running() bool

	// Paused reports whether the game is paused.
	Paused() bool

	MoveLeft()
	MoveRight()
	Rotate()
	HardDrop()

	// Sandbox returns an independent deep copy of the board plus the active
	// piece for simulation.
	Sandbox() Sandbox

	// Subscribe registers an observer for lifecycle events.
	Subscribe(fn func(Event))
}
