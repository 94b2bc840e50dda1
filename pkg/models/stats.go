package models

// HalfStats summarizes a game's first half as derived from the play-by-play.
// Built once per evaluation cycle and never mutated afterwards. A missing
// first half is represented by a nil *HalfStats, never a zero value.
type HalfStats struct {
	FieldGoalAttempts int
	FreeThrowAttempts int
	Turnovers         int
	HomePoints        int
	AwayPoints        int

	// Integer is the first-half pace proxy: FGA + FTA/2 + TO.
	Integer float64
}

// CombinedPoints returns the total points scored in the first half.
func (s *HalfStats) CombinedPoints() int {
	return s.HomePoints + s.AwayPoints
}
