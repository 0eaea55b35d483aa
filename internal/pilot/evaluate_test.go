package pilot

import "testing"

// rowsBoard is a Board built from strings, one per row, top to bottom.
// '#' marks an occupied cell, anything else is blank.
type rowsBoard []string

func (b rowsBoard) Width() int  { return len(b[0]) }
func (b rowsBoard) Height() int { return len(b) }
func (b rowsBoard) Filled(x, y int) bool {
	return b[y][x] == '#'
}

func TestEvaluateEmptyBoardIsZero(t *testing.T) {
	b := rowsBoard{
		"....",
		"....",
		"....",
		"....",
	}
	if got := Evaluate(b, DefaultWeights()); got != 0 {
		t.Errorf("Evaluate(empty) = %v, expected 0", got)
	}
}

func TestEvaluateDeterminism(t *testing.T) {
	b := rowsBoard{
		"..#.",
		".##.",
		"#.##",
		"####",
	}
	w := DefaultWeights()
	first := Evaluate(b, w)
	for i := 0; i < 10; i++ {
		if got := Evaluate(b, w); got != first {
			t.Fatalf("Evaluate() call %d = %v, expected %v", i, got, first)
		}
	}
}

func TestColumnHeights(t *testing.T) {
	tests := []struct {
		name     string
		board    rowsBoard
		expected []int
	}{
		{
			name: "empty columns have height 0",
			board: rowsBoard{
				"...",
				"...",
				"...",
			},
			expected: []int{0, 0, 0},
		},
		{
			name: "topmost occupied cell at row k gives height H-k",
			board: rowsBoard{
				"#..",
				"...",
				".#.",
				"...",
			},
			expected: []int{4, 2, 0},
		},
		{
			name: "blank cells below the top do not reduce height",
			board: rowsBoard{
				".#",
				"..",
				".#",
			},
			expected: []int{0, 3},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := columnHeights(tc.board)
			if len(got) != len(tc.expected) {
				t.Fatalf("columnHeights() returned %d entries, expected %d", len(got), len(tc.expected))
			}
			for x := range got {
				if got[x] != tc.expected[x] {
					t.Errorf("height(%d) = %d, expected %d", x, got[x], tc.expected[x])
				}
			}
		})
	}
}

func TestCountHoles(t *testing.T) {
	tests := []struct {
		name     string
		board    rowsBoard
		expected int
	}{
		{
			name: "no holes",
			board: rowsBoard{
				"..",
				"#.",
				"##",
			},
			expected: 0,
		},
		{
			name: "occupied-blank-occupied-blank column counts 2",
			board: rowsBoard{
				"#",
				".",
				"#",
				".",
			},
			expected: 2,
		},
		{
			name: "holes counted per column independently",
			board: rowsBoard{
				"##",
				"..",
				".#",
			},
			expected: 3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := countHoles(tc.board); got != tc.expected {
				t.Errorf("countHoles() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestEvaluateWeightTerms(t *testing.T) {
	// One column of height 2 on a 2x4 board: heights are [2, 0].
	// mean = 1, max = 2, spread = 2, stddev = 1, holes = 0.
	b := rowsBoard{
		"..",
		"..",
		"#.",
		"#.",
	}
	w := Weights{Holes: 8, MeanHeight: 4, MaxHeight: 3, Spread: 3, Deviation: 2}
	expected := 4.0*1 + 3.0*2 + 3.0*2 + 2.0*1
	if got := Evaluate(b, w); got != expected {
		t.Errorf("Evaluate() = %v, expected %v", got, expected)
	}

	// Same heights with a buried blank adds exactly the hole weight.
	buried := rowsBoard{
		"..",
		"..",
		"#.",
		"..",
	}
	if got := Evaluate(buried, w); got != expected+8.0 {
		t.Errorf("Evaluate(buried) = %v, expected %v", got, expected+8.0)
	}
}
