package models

import "time"

// MarketEvent is one betting-market record. The JSON tags mirror The Odds
// API v4 event shape so the same structs serve the adapter and the snapshot
// cache.
type MarketEvent struct {
	ID           string      `json:"id"`
	SportKey     string      `json:"sport_key"`
	CommenceTime time.Time   `json:"commence_time"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

// Bookmaker is one book's quotes for an event.
type Bookmaker struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Markets []Market `json:"markets"`
}

// Market is one quoted market (e.g. "totals") from a bookmaker.
type Market struct {
	Key      string    `json:"key"`
	Outcomes []Outcome `json:"outcomes"`
}

// Outcome is one side of a market. Point is nil for markets without a line.
type Outcome struct {
	Name  string   `json:"name"`
	Price float64  `json:"price"`
	Point *float64 `json:"point,omitempty"`
}

// RateLimits contains vendor rate limiting information.
type RateLimits struct {
	RequestsRemaining int
	RequestsUsed      int
}
