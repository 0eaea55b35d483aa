package tetris

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Mode      string // "marathon" or "zen"
	Score     int
	Lines     int
	Pieces    int
	Level     int // 1-indexed for display
	PieceX    int
	PieceY    int
	Rotation  int
	Current   Kind
	Next      Kind
	BoardRows string // Board rendered as '.'/'#' rows
	GameOver  bool
	Paused    bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Score:     g.score,
		Lines:     g.lines,
		Pieces:    g.pieces,
		Level:     g.level + 1,
		PieceX:    g.x,
		PieceY:    g.y,
		Rotation:  g.rot,
		Current:   g.current,
		Next:      g.next,
		BoardRows: g.board.String(),
		GameOver:  g.gameOver,
		Paused:    g.paused,
	}
}
