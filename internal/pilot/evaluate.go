package pilot

import "math"

// Weights are the evaluation coefficients. Lower evaluation totals are
// better, so every term is a penalty. The defaults are empirically tuned;
// they can be overridden from the pilot config but ship exactly as-is.
type Weights struct {
	Holes      float64 `yaml:"holes"`       // blank cells buried under occupied ones
	MeanHeight float64 `yaml:"mean_height"` // arithmetic mean of column heights
	MaxHeight  float64 `yaml:"max_height"`  // tallest column
	Spread     float64 `yaml:"spread"`      // tallest minus shortest column
	Deviation  float64 `yaml:"deviation"`   // population stddev of column heights
}

// DefaultWeights returns the shipping evaluation coefficients.
func DefaultWeights() Weights {
	return Weights{
		Holes:      8.0,
		MeanHeight: 4.0,
		MaxHeight:  3.0,
		Spread:     3.0,
		Deviation:  2.0,
	}
}

// Evaluate scores a settled board, lower is better. It is a pure function of
// the board contents: identical boards always produce identical scores.
func Evaluate(b Board, w Weights) float64 {
	heights := columnHeights(b)

	var sum, maxH float64
	minH := math.Inf(1)
	for _, h := range heights {
		fh := float64(h)
		sum += fh
		if fh > maxH {
			maxH = fh
		}
		if fh < minH {
			minH = fh
		}
	}
	mean := sum / float64(len(heights))

	var sqDev float64
	for _, h := range heights {
		d := mean - float64(h)
		sqDev += d * d
	}
	stddev := math.Sqrt(sqDev / float64(len(heights)))

	return w.Holes*float64(countHoles(b)) +
		w.MeanHeight*mean +
		w.MaxHeight*maxH +
		w.Spread*(maxH-minH) +
		w.Deviation*stddev
}

// columnHeights returns, per column, the distance from the topmost occupied
// cell to the floor. An entirely blank column has height 0.
func columnHeights(b Board) []int {
	heights := make([]int, b.Width())
	for x := 0; x < b.Width(); x++ {
		for y := 0; y < b.Height(); y++ {
			if b.Filled(x, y) {
				heights[x] = b.Height() - y
				break
			}
		}
	}
	return heights
}

// countHoles counts blank cells that have at least one occupied cell above
// them in the same column, in a single top-to-bottom pass per column.
func countHoles(b Board) int {
	holes := 0
	for x := 0; x < b.Width(); x++ {
		covered := false
		for y := 0; y < b.Height(); y++ {
			switch {
			case b.Filled(x, y):
				covered = true
			case covered:
				holes++
			}
		}
	}
	return holes
}
