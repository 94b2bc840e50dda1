package contracts

import (
	"context"
	"time"

	"github.com/rvpicks/halfcourt/pkg/models"
)

// ScoreboardSource fetches the day's scoreboard games.
type ScoreboardSource interface {
	// FetchScoreboard returns the game records for the given calendar date.
	FetchScoreboard(ctx context.Context, date time.Time) ([]models.Game, error)
}

// PlayByPlaySource fetches a single game's play-by-play record.
type PlayByPlaySource interface {
	// FetchPlayByPlay resolves a game's play-by-play locator. Any transport
	// or parse failure comes back as an error; callers degrade that game
	// rather than abort the cycle.
	FetchPlayByPlay(ctx context.Context, path string) (*models.PlayByPlay, error)
}

// OddsSource fetches the betting-market events for the current slate.
type OddsSource interface {
	// FetchMarketEvents returns market events whose local commence date
	// equals the local date of now.
	FetchMarketEvents(ctx context.Context, now time.Time) ([]models.MarketEvent, error)
}
