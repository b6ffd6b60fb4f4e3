package entity

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Line is a completed three-in-a-row of one classical mark.
type Line struct {
	Cells [3]int `json:"cells"`
	Mark  Mark   `json:"mark"`
}

// EvaluateLines returns every standard line filled by a single classical mark.
// It is informational and never changes the board.
func EvaluateLines(board Board) []Line {
	lines := []Line{}
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a.IsClassical() && a == b && b == c {
			lines = append(lines, Line{Cells: combo, Mark: a.Mark()})
		}
	}

	return lines
}
