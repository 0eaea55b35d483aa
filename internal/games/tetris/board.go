package tetris

import "strings"

// Board is the settled playfield: a fixed-size grid of cells, each blank or
// holding the kind of the piece that filled it. The active piece is not part
// of the board; it only enters when locked.
type Board struct {
	width  int
	height int
	// cells[y][x] is 0 for blank, kind+1 for occupied.
	cells [][]int
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(width, height int) *Board {
	cells := make([][]int, height)
	for y := range cells {
		cells[y] = make([]int, width)
	}
	return &Board{width: width, height: height, cells: cells}
}

// Width returns the board width in cells.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height in cells.
func (b *Board) Height() int {
	return b.height
}

// Filled reports whether the cell at (x, y) is occupied.
func (b *Board) Filled(x, y int) bool {
	return b.cells[y][x] != 0
}

// KindAt returns the kind that occupies (x, y). The second result is false
// for a blank cell.
func (b *Board) KindAt(x, y int) (Kind, bool) {
	v := b.cells[y][x]
	if v == 0 {
		return 0, false
	}
	return Kind(v - 1), true
}

// Clone returns an independent deep copy of the board.
func (b *Board) Clone() *Board {
	clone := NewBoard(b.width, b.height)
	for y := range b.cells {
		copy(clone.cells[y], b.cells[y])
	}
	return clone
}

// inside reports whether (x, y) is within the board bounds.
func (b *Board) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// lock writes the piece's cells into the board.
func (b *Board) lock(kind Kind, x, y, rot int) {
	for _, p := range kind.cells(rot) {
		bx, by := x+p.X, y+p.Y
		if b.inside(bx, by) {
			b.cells[by][bx] = int(kind) + 1
		}
	}
}

// ClearFullRows removes every fully occupied row, shifting the rows above it
// down, and returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for y := b.height - 1; y >= 0; y-- {
		full := true
		for x := 0; x < b.width; x++ {
			if b.cells[y][x] == 0 {
				full = false
				break
			}
		}
		if !full {
			continue
		}
		cleared++
		for pull := y; pull > 0; pull-- {
			copy(b.cells[pull], b.cells[pull-1])
		}
		for x := 0; x < b.width; x++ {
			b.cells[0][x] = 0
		}
		y++ // Re-check the row that shifted into this position
	}
	return cleared
}

// String renders the board as rows of '.' and '#', for tests and debugging.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			if b.cells[y][x] != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
