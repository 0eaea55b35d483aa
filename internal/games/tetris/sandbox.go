package tetris

// Sandbox is a disposable copy of the board plus the active piece, used by
// the pilot to simulate candidate drops. It satisfies pilot.Sandbox; once the
// search that created it returns, it is garbage.
type Sandbox struct {
	board  *Board
	kind   Kind
	x, y   int
	rot    int
	placed bool
}

// Width returns the scratch board width in cells.
func (s *Sandbox) Width() int {
	return s.board.Width()
}

// Height returns the scratch board height in cells.
func (s *Sandbox) Height() int {
	return s.board.Height()
}

// Filled reports whether the settled scratch cell at (x, y) is occupied.
func (s *Sandbox) Filled(x, y int) bool {
	return s.board.Filled(x, y)
}

// Place positions the piece at the given column and rotation on the spawn
// row. Returns false if the placement collides immediately.
func (s *Sandbox) Place(col, rot int) bool {
	s.x = col
	s.y = 0
	s.rot = rot
	if collides(s.board, s.kind, s.x, s.y, s.rot) {
		return false
	}
	s.placed = true
	return true
}

// Drop moves the placed piece straight down to its resting position and
// locks it into the scratch board. The board then reflects only settled
// cells; rows are not cleared, since the evaluation measures the raw stack
// shape.
func (s *Sandbox) Drop() {
	if !s.placed {
		return
	}
	for !collides(s.board, s.kind, s.x, s.y+1, s.rot) {
		s.y++
	}
	s.board.lock(s.kind, s.x, s.y, s.rot)
	s.placed = false
}
