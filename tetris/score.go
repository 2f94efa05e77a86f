package tetris

// Points awarded for clearing one to four rows with a single landing.
const (
	PointsSingle = 40
	PointsDouble = 100
	PointsTriple = 300
	PointsTetris = 1200
)

// Award returns the points for clearing rows rows in one batch. There is no
// drop bonus and no level multiplier; any other count awards nothing.
func Award(rows int) int {
	switch rows {
	case 1:
		return PointsSingle
	case 2:
		return PointsDouble
	case 3:
		return PointsTriple
	case 4:
		return PointsTetris
	default:
		return 0
	}
}

// ScoreKeeper tallies score and cleared lines from row notifications.
type ScoreKeeper struct {
	BaseListener
	score int
	lines int
}

// OnRowsEliminated adds the award for rows to the score.
func (s *ScoreKeeper) OnRowsEliminated(rows int) {
	s.score += Award(rows)
	s.lines += rows
}

// Score returns the accumulated points.
func (s *ScoreKeeper) Score() int { return s.score }

// Lines returns the number of cleared rows.
func (s *ScoreKeeper) Lines() int { return s.lines }

// Reset zeroes score and lines.
func (s *ScoreKeeper) Reset() {
	s.score = 0
	s.lines = 0
}
