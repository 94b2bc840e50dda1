// Package testutil provides fixture builders shared across package tests.
package testutil

import (
	"time"

	"github.com/rvpicks/halfcourt/pkg/models"
)

// NewMarketEvent creates a market event commencing at the given time.
func NewMarketEvent(homeTeam, awayTeam string, commence time.Time, bookmakers ...models.Bookmaker) models.MarketEvent {
	return models.MarketEvent{
		ID:           homeTeam + "-" + awayTeam,
		SportKey:     "basketball_ncaab",
		CommenceTime: commence,
		HomeTeam:     homeTeam,
		AwayTeam:     awayTeam,
		Bookmakers:   bookmakers,
	}
}

// NewTotalsBook creates a bookmaker quoting a single full-game total.
func NewTotalsBook(key, title string, point float64) models.Bookmaker {
	return models.Bookmaker{
		Key:   key,
		Title: title,
		Markets: []models.Market{
			{
				Key: "totals",
				Outcomes: []models.Outcome{
					{Name: "Over", Price: 1.91, Point: Float64Ptr(point)},
					{Name: "Under", Price: 1.91, Point: Float64Ptr(point)},
				},
			},
		},
	}
}

// NewPlay creates a play-by-play event with score snapshots. Empty score
// strings mean the feed omitted the field.
func NewPlay(description, homeScore, visitorScore string) models.PlayEvent {
	return models.PlayEvent{
		Description:  description,
		HomeScore:    homeScore,
		VisitorScore: visitorScore,
	}
}

// NewGame creates a scoreboard game with short names only.
func NewGame(homeShort, awayShort, period, path string) models.Game {
	return models.Game{
		Home:          models.TeamNames{Short: homeShort},
		Away:          models.TeamNames{Short: awayShort},
		State:         "live",
		Period:        period,
		Path:          path,
		HasPlayByPlay: true,
	}
}

// Float64Ptr creates a pointer to a float64.
func Float64Ptr(val float64) *float64 {
	return &val
}
