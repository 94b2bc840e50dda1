// Package halfstats folds a game's first-half play-by-play into the summary
// counts the evaluator runs on.
package halfstats

import (
	"strconv"
	"strings"

	"github.com/rvpicks/halfcourt/internal/classify"
	"github.com/rvpicks/halfcourt/pkg/models"
)

// FromPlayByPlay aggregates the period-1 section of a play-by-play record.
// Returns nil when the record has no first half; a first half with zero
// plays still yields stats (all zeros), which is distinct from no data.
func FromPlayByPlay(pbp *models.PlayByPlay, classifier *classify.Classifier) *models.HalfStats {
	half := pbp.FirstHalf()
	if half == nil {
		return nil
	}
	return FromPlays(half.Plays, classifier)
}

// FromPlays walks an ordered sequence of first-half plays and accumulates
// attempt counts and the running score. Score snapshots carry forward: a
// play missing a score field keeps the last seen value rather than
// resetting it.
func FromPlays(plays []models.PlayEvent, classifier *classify.Classifier) *models.HalfStats {
	var fga, fta, turnovers int
	var lastHome, lastAway int

	for _, play := range plays {
		if n, ok := parseScore(play.HomeScore); ok {
			lastHome = n
		}
		if n, ok := parseScore(play.VisitorScore); ok {
			lastAway = n
		}

		c := classifier.Classify(play.Text())
		fta += c.FreeThrows
		if c.FieldGoalAttempt {
			fga++
		}
		if c.Turnover {
			turnovers++
		}
	}

	return &models.HalfStats{
		FieldGoalAttempts: fga,
		FreeThrowAttempts: fta,
		Turnovers:         turnovers,
		HomePoints:        lastHome,
		AwayPoints:        lastAway,
		Integer:           float64(fga) + float64(fta)/2.0 + float64(turnovers),
	}
}

func parseScore(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
