package pilot

import "math"

// Target is the chosen placement for the active piece: the column and
// rotation to steer toward, plus the evaluation score of the board that
// results from dropping there.
type Target struct {
	Column   int
	Rotation int
	Score    float64
}

// Valid reports whether the target refers to a legal placement. An invalid
// target (score +Inf) means every candidate collided, which under normal play
// signals that the game is about to end.
func (t Target) Valid() bool {
	return !math.IsInf(t.Score, 1)
}

// Search enumerates every (rotation, column) placement of the active piece,
// simulates each drop on a disposable sandbox, and returns the placement with
// the lowest evaluation score. On an exact tie the candidate whose column is
// closer to the horizontal center of the board wins. The live game state is
// never modified.
//
// The column range runs from -1 through Width inclusive: a piece's bounding
// box may legally hang over either edge as long as its occupied cells stay
// inside the grid, matching the engine's own movement range.
func Search(m Machine, w Weights) Target {
	best := Target{Score: math.Inf(1)}
	width := m.Width()
	center := float64(width) / 2

	for rot := 0; rot < m.PieceRotations(); rot++ {
		for col := -1; col <= width; col++ {
			sb := m.Sandbox()
			if !sb.Place(col, rot) {
				continue
			}
			sb.Drop()
			score := Evaluate(sb, w)

			better := score < best.Score
			if score == best.Score {
				better = math.Abs(float64(col)-center) < math.Abs(float64(best.Column)-center)
			}
			if better {
				best = Target{Column: col, Rotation: rot, Score: score}
			}
		}
	}
	return best
}
