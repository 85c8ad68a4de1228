package tetris

// LinesPerLevel is the number of cleared rows needed to advance one level.
const LinesPerLevel = 10

var clearPoints = [...]int{0, 100, 300, 500, 800}

// Points returns the score for clearing the given number of rows in a single lock.
// More rows in one lock score disproportionately more.
func Points(rows, level int) int {
	if rows <= 0 {
		return 0
	}
	if rows >= len(clearPoints) {
		rows = len(clearPoints) - 1
	}
	return clearPoints[rows] * max(level, 1)
}

// LevelFor returns the level reached after clearing lines rows in total.
func LevelFor(lines int) int {
	return lines/LinesPerLevel + 1
}
