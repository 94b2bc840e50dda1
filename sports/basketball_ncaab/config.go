// Package basketball_ncaab holds the NCAA men's D1 basketball defaults:
// which markets to pull, which books to trust first, and the keyword tables
// that drive play-by-play classification and team-name matching.
package basketball_ncaab

import (
	"github.com/rvpicks/halfcourt/internal/classify"
)

// Config contains the NCAAB evaluation configuration.
type Config struct {
	// Sport identification
	SportKey    string
	DisplayName string

	// Regions and markets requested from the odds vendor
	Regions []string
	Markets []string

	// BookmakerPriority is the fixed order in which books are consulted for
	// a full-game total. First book present wins.
	BookmakerPriority []string

	// Classifier keyword tables
	FreeThrowCounts  []classify.FreeThrowCountRule
	ShotKeywords     []string
	TurnoverTriggers []string
	TurnoverIgnores  []string

	// NoiseTokens are dropped from team names before matching.
	NoiseTokens []string
}

// DefaultConfig returns the production NCAAB configuration.
func DefaultConfig() *Config {
	return &Config{
		SportKey:    "basketball_ncaab",
		DisplayName: "NCAAB Basketball",

		Regions: []string{"us"},
		Markets: []string{"totals"},

		// DK -> FD -> BetMGM -> the rest
		BookmakerPriority: []string{
			"draftkings",
			"fanduel",
			"betmgm",
			"betonlineag",
			"pointsbetus",
			"caesars",
			"betrivers",
			"unibet_us",
			"wynnbet",
			"barstool",
		},

		// Ordered: "both" before the two/three phrasings, explicit counts
		// before the single-attempt fallback.
		FreeThrowCounts: []classify.FreeThrowCountRule{
			{Phrases: []string{"both free throws"}, Attempts: 2},
			{Phrases: []string{"all three free throws", "all 3 free throws"}, Attempts: 3},
			{Phrases: []string{"three free throws", "3 free throws"}, Attempts: 3},
			{Phrases: []string{"two free throws", "2 free throws"}, Attempts: 2},
		},

		ShotKeywords: []string{
			"jumper",
			"jump shot",
			"jumpshot",
			"layup",
			"dunk",
			"hook shot",
			"hookshot",
			"tip-in",
			"tip in",
			"putback",
			"2 pointer",
			"two pointer",
			"2pt",
			"three pointer",
			"3 pointer",
			"3pt",
			"three-point",
		},

		TurnoverTriggers: []string{
			"turnover by",
			"turnover on",
			"shot clock turnover",
			"team turnover",
			"lost ball turnover",
			"bad pass turnover",
			"traveling turnover",
			"offensive foul turnover",
			"backcourt turnover",
			"five second turnover",
			"three second turnover",
		},

		TurnoverIgnores: []string{
			"points off turnovers",
			"turnover margin",
			"points via turnovers",
		},

		NoiseTokens: []string{
			"university",
			"college",
			"state",
			"st",
			"the",
			"of",
		},
	}
}

// ClassifierRules assembles the classify rule table from this config.
func (c *Config) ClassifierRules() classify.Rules {
	return classify.Rules{
		FreeThrowCounts:  c.FreeThrowCounts,
		ShotKeywords:     c.ShotKeywords,
		TurnoverTriggers: c.TurnoverTriggers,
		TurnoverIgnores:  c.TurnoverIgnores,
	}
}
