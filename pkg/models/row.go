package models

// Lean is the directional recommendation relative to the derived
// second-half line.
type Lean string

const (
	LeanOver    Lean = "OVER"
	LeanUnder   Lean = "UNDER"
	LeanNeutral Lean = "NEUTRAL"
)

// Row is the per-game output of one evaluation cycle. Nil pointer fields
// mean "no data" and must be kept distinct from zero values: play-by-play
// fields are nil when the PBP fetch failed or lacked a first half, market
// fields are nil when no event paired or no book carried a totals market,
// and evaluation fields are nil unless both sides were available.
type Row struct {
	Matchup string
	State   string
	Period  string

	HalfScore *string // "away-home"
	FGA       *int
	FTA       *int
	Turnovers *int
	Integer   *float64

	FullGameTotal *float64
	Book          *string
	Derived2HLine *float64

	Qualifies *bool
	Lean      *Lean
	DiffLine  *float64
	ScoreDiff *int
}
