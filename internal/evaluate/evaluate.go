// Package evaluate applies the GO / NO-GO rules to a game's first-half
// numbers.
package evaluate

import (
	"math"

	"github.com/rvpicks/halfcourt/pkg/models"
)

// A game qualifies when the pace integer diverges from the implied
// second-half total by at least minLineGap while the half stays closer than
// maxScoreDiff. The DiffLine name suggests a "must be small" gate but the
// documented rule is the opposite; keep the literal condition.
const (
	minLineGap   = 6.0
	maxScoreDiff = 11
)

// Result is the qualification decision for one game.
type Result struct {
	Qualifies bool
	Lean      models.Lean
	DiffLine  float64
	ScoreDiff int
}

// Evaluate combines the first-half pace integer and score with the derived
// second-half line. All inputs must be defined; callers are responsible for
// not evaluating games with missing data.
func Evaluate(integer float64, homePoints, awayPoints int, derived2HLine float64) Result {
	diffLine := math.Abs(integer - derived2HLine)

	scoreDiff := homePoints - awayPoints
	if scoreDiff < 0 {
		scoreDiff = -scoreDiff
	}

	lean := models.LeanNeutral
	switch {
	case integer > derived2HLine:
		lean = models.LeanOver
	case integer < derived2HLine:
		lean = models.LeanUnder
	}

	return Result{
		Qualifies: diffLine >= minLineGap && scoreDiff < maxScoreDiff,
		Lean:      lean,
		DiffLine:  diffLine,
		ScoreDiff: scoreDiff,
	}
}
