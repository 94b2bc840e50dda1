// Package pairing matches a scoreboard game to its betting-market event.
package pairing

import (
	"github.com/rvpicks/halfcourt/internal/teams"
	"github.com/rvpicks/halfcourt/pkg/models"
)

// FindMarketEvent scans market events in source order and returns the first
// one whose teams match the game's name variants, trying normal home/away
// alignment and then the swapped alignment (the book and the scoreboard
// occasionally disagree on who is home). First match wins; there is no
// best-candidate search. Returns nil when nothing pairs.
func FindMarketEvent(events []models.MarketEvent, homeVariants, awayVariants []string, matcher *teams.Matcher) *models.MarketEvent {
	for i := range events {
		ev := &events[i]

		homeOK := matchesAny(matcher, homeVariants, ev.HomeTeam)
		awayOK := matchesAny(matcher, awayVariants, ev.AwayTeam)
		if homeOK && awayOK {
			return ev
		}

		homeSwapped := matchesAny(matcher, homeVariants, ev.AwayTeam)
		awaySwapped := matchesAny(matcher, awayVariants, ev.HomeTeam)
		if homeSwapped && awaySwapped {
			return ev
		}
	}
	return nil
}

func matchesAny(matcher *teams.Matcher, variants []string, marketName string) bool {
	for _, v := range variants {
		if v == "" {
			continue
		}
		if matcher.Match(v, marketName) {
			return true
		}
	}
	return false
}
