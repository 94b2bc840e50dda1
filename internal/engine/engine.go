// Package engine runs one full evaluation cycle: today's scoreboard, the
// first-half filter, per-game play-by-play stats, market pairing, total
// extraction and the qualification call, producing one Row per live game.
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rvpicks/halfcourt/internal/classify"
	"github.com/rvpicks/halfcourt/internal/evaluate"
	"github.com/rvpicks/halfcourt/internal/halfstats"
	"github.com/rvpicks/halfcourt/internal/lines"
	"github.com/rvpicks/halfcourt/internal/metrics"
	"github.com/rvpicks/halfcourt/internal/pairing"
	"github.com/rvpicks/halfcourt/internal/teams"
	"github.com/rvpicks/halfcourt/pkg/contracts"
	"github.com/rvpicks/halfcourt/pkg/models"
)

// Params collects the engine's collaborators. Scoreboard, PlayByPlay, Odds,
// Classifier, Matcher and Extractor are required; Location defaults to the
// local timezone, Log to a no-op logger and Metrics to none.
type Params struct {
	Scoreboard contracts.ScoreboardSource
	PlayByPlay contracts.PlayByPlaySource
	Odds       contracts.OddsSource

	Classifier *classify.Classifier
	Matcher    *teams.Matcher
	Extractor  *lines.Extractor

	// Location is the timezone whose calendar date selects the scoreboard
	// slate (Eastern in production, so the slate doesn't roll over at UTC
	// midnight).
	Location *time.Location

	Log     *zap.Logger
	Metrics *metrics.Metrics
}

// Engine evaluates the current slate. It keeps no state between cycles:
// every BuildRows call refetches everything and recomputes every row.
type Engine struct {
	scoreboard contracts.ScoreboardSource
	pbp        contracts.PlayByPlaySource
	odds       contracts.OddsSource

	classifier *classify.Classifier
	matcher    *teams.Matcher
	extractor  *lines.Extractor

	loc     *time.Location
	log     *zap.Logger
	metrics *metrics.Metrics
}

// New builds an engine from its collaborators.
func New(p Params) *Engine {
	if p.Location == nil {
		p.Location = time.Local
	}
	if p.Log == nil {
		p.Log = zap.NewNop()
	}
	return &Engine{
		scoreboard: p.Scoreboard,
		pbp:        p.PlayByPlay,
		odds:       p.Odds,
		classifier: p.Classifier,
		matcher:    p.Matcher,
		extractor:  p.Extractor,
		loc:        p.Location,
		log:        p.Log,
		metrics:    p.Metrics,
	}
}

// BuildRows runs one evaluation cycle. A scoreboard or odds fetch failure
// aborts the whole cycle with zero rows; anything that goes wrong for a
// single game only degrades that game's row.
func (e *Engine) BuildRows(ctx context.Context) ([]models.Row, error) {
	start := time.Now()
	if e.metrics != nil {
		e.metrics.CyclesTotal.Inc()
	}

	rows, err := e.buildRows(ctx, start)
	if err != nil {
		if e.metrics != nil {
			e.metrics.CycleFailures.Inc()
		}
		return nil, err
	}

	if e.metrics != nil {
		e.metrics.RowsLastCycle.Set(float64(len(rows)))
		e.metrics.CycleDuration.Observe(time.Since(start).Seconds())
	}
	return rows, nil
}

func (e *Engine) buildRows(ctx context.Context, now time.Time) ([]models.Row, error) {
	games, err := e.scoreboard.FetchScoreboard(ctx, now.In(e.loc))
	if err != nil {
		return nil, fmt.Errorf("load scoreboard: %w", err)
	}

	events, err := e.odds.FetchMarketEvents(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("load market odds: %w", err)
	}

	rows := make([]models.Row, 0, len(games))
	for _, game := range games {
		if !inFirstHalf(game.Period) {
			continue
		}
		rows = append(rows, e.buildRow(ctx, game, events))
	}

	e.log.Info("evaluation cycle complete",
		zap.Int("games", len(games)),
		zap.Int("rows", len(rows)),
		zap.Int("market_events", len(events)),
		zap.Duration("elapsed", time.Since(now)))

	return rows, nil
}

// inFirstHalf reports whether a period label describes a game in its first
// half or at halftime. "FINAL" and overtime labels are excluded even when
// they contain a "1" (e.g. "FINAL/1OT").
func inFirstHalf(period string) bool {
	p := strings.ToUpper(period)
	p = strings.TrimSpace(strings.ReplaceAll(p, ".", ""))

	if strings.Contains(p, "HALF") {
		return true
	}
	return strings.Contains(p, "1") &&
		!strings.Contains(p, "FINAL") &&
		!strings.Contains(p, "OT")
}

// buildRow assembles one game's row. Undefined sections stay nil.
func (e *Engine) buildRow(ctx context.Context, game models.Game, events []models.MarketEvent) models.Row {
	row := models.Row{
		Matchup: matchupLabel(game),
		State:   strings.ToUpper(game.State),
		Period:  strings.ToUpper(game.Period),
	}

	var stats *models.HalfStats
	if game.HasPlayByPlay {
		pbp, err := e.pbp.FetchPlayByPlay(ctx, game.Path)
		if err != nil {
			e.log.Warn("play-by-play unavailable",
				zap.String("matchup", row.Matchup),
				zap.Error(err))
		} else {
			stats = halfstats.FromPlayByPlay(pbp, e.classifier)
		}
	}

	if stats != nil {
		halfScore := fmt.Sprintf("%d-%d", stats.AwayPoints, stats.HomePoints)
		row.HalfScore = &halfScore
		row.FGA = intPtr(stats.FieldGoalAttempts)
		row.FTA = intPtr(stats.FreeThrowAttempts)
		row.Turnovers = intPtr(stats.Turnovers)
		integer := stats.Integer
		row.Integer = &integer
	} else if e.metrics != nil {
		e.metrics.DegradedGames.Inc()
	}

	event := pairing.FindMarketEvent(events, game.Home.Variants(), game.Away.Variants(), e.matcher)
	if event != nil {
		if total, book, ok := e.extractor.FullGameTotal(event); ok {
			row.FullGameTotal = &total
			row.Book = &book
		}
	}
	if row.FullGameTotal == nil && e.metrics != nil {
		e.metrics.UnmatchedGames.Inc()
	}

	if stats != nil && row.FullGameTotal != nil {
		derived := lines.Derived2H(*row.FullGameTotal, stats)
		row.Derived2HLine = &derived

		result := evaluate.Evaluate(stats.Integer, stats.HomePoints, stats.AwayPoints, derived)
		row.Qualifies = &result.Qualifies
		lean := result.Lean
		row.Lean = &lean
		diffLine := result.DiffLine
		row.DiffLine = &diffLine
		scoreDiff := result.ScoreDiff
		row.ScoreDiff = &scoreDiff
	}

	return row
}

func matchupLabel(game models.Game) string {
	awayShort := game.Away.Short
	if awayShort == "" {
		awayShort = "Away"
	}
	homeShort := game.Home.Short
	if homeShort == "" {
		homeShort = "Home"
	}
	return fmt.Sprintf("%s @ %s", awayShort, homeShort)
}

func intPtr(v int) *int {
	return &v
}
