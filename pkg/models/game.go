package models

// TeamNames holds the name variants the scoreboard reports for one team.
// Any of the four forms may be empty depending on the feed.
type TeamNames struct {
	Short string
	Full  string
	Char6 string
	SEO   string
}

// Variants returns the non-empty name forms, in the order they should be
// tried when matching against a market event.
func (n TeamNames) Variants() []string {
	variants := make([]string, 0, 4)
	for _, v := range []string{n.Short, n.Full, n.Char6, n.SEO} {
		if v != "" {
			variants = append(variants, v)
		}
	}
	return variants
}

// Game is one scoreboard game record.
type Game struct {
	Home          TeamNames
	Away          TeamNames
	State         string // e.g. "live", "pre", "final"
	Period        string // e.g. "1st", "halftime", "2nd", "final"
	Path          string // play-by-play resource locator
	HasPlayByPlay bool
}

// PlayEvent is one reported action within a period. Score snapshots are kept
// as the raw feed strings; an empty string means the feed omitted the field.
type PlayEvent struct {
	Description  string
	HomeText     string
	VisitorText  string
	HomeScore    string
	VisitorScore string
}

// Text returns the event description, falling back to the visitor or home
// text when the primary description is empty.
func (e PlayEvent) Text() string {
	if e.Description != "" {
		return e.Description
	}
	if e.VisitorText != "" {
		return e.VisitorText
	}
	return e.HomeText
}

// Period is an ordered list of plays for one game period.
type Period struct {
	Number string
	Plays  []PlayEvent
}

// PlayByPlay is the full play-by-play record for a game.
type PlayByPlay struct {
	Periods []Period
}

// FirstHalf returns the period-1 section, or nil if the record has none.
func (p *PlayByPlay) FirstHalf() *Period {
	if p == nil {
		return nil
	}
	for i := range p.Periods {
		if p.Periods[i].Number == "1" {
			return &p.Periods[i]
		}
	}
	return nil
}
