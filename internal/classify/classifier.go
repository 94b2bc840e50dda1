// Package classify turns raw play-by-play descriptions into scoring events.
//
// The feed carries no structured event type, only free text, so counting
// attempts comes down to keyword matching. All matching is case-insensitive
// and substring-based; the keyword lists are configuration supplied at
// construction, not package state.
package classify

import "strings"

// FreeThrowCountRule maps trigger phrases to an attempt count. Rules are
// evaluated in order and the first phrase hit wins.
type FreeThrowCountRule struct {
	Phrases  []string
	Attempts int
}

// Rules holds the keyword tables driving classification.
type Rules struct {
	// FreeThrowCounts resolves how many attempts a free-throw description
	// contributes. A description mentioning "free throw" that matches no
	// rule counts as a single attempt.
	FreeThrowCounts []FreeThrowCountRule

	// ShotKeywords mark non-free-throw field goal attempts.
	ShotKeywords []string

	// TurnoverTriggers are phrases that confirm an actual turnover event.
	TurnoverTriggers []string

	// TurnoverIgnores are commentary phrases ("points off turnovers") that
	// mention turnovers without being one.
	TurnoverIgnores []string
}

// Classification is the outcome for a single description. Free throws and
// field goal attempts are mutually exclusive; a turnover can coincide with
// either because it is detected independently.
type Classification struct {
	FreeThrows       int
	FieldGoalAttempt bool
	Turnover         bool
}

// Classifier applies a fixed rule table to event descriptions.
type Classifier struct {
	rules Rules
}

// New builds a classifier from the given rule table.
func New(rules Rules) *Classifier {
	return &Classifier{rules: rules}
}

// Classify categorizes one event description. Empty descriptions classify
// as nothing.
func (c *Classifier) Classify(description string) Classification {
	desc := strings.ToLower(description)

	var out Classification

	// Free throws take priority: a description like "misses free throw
	// jumper" must never double-count as a field goal attempt.
	if strings.Contains(desc, "free throw") {
		out.FreeThrows = c.freeThrowAttempts(desc)
	} else if containsAny(desc, c.rules.ShotKeywords) {
		out.FieldGoalAttempt = true
	}

	// Turnover detection runs regardless of the shot checks.
	if strings.Contains(desc, "turnover") && !containsAny(desc, c.rules.TurnoverIgnores) {
		if containsAny(desc, c.rules.TurnoverTriggers) ||
			strings.HasPrefix(strings.TrimSpace(desc), "turnover") {
			out.Turnover = true
		}
	}

	return out
}

// freeThrowAttempts resolves the attempt count for a free-throw description
// via the ordered count rules, defaulting to one attempt.
func (c *Classifier) freeThrowAttempts(desc string) int {
	for _, rule := range c.rules.FreeThrowCounts {
		if containsAny(desc, rule.Phrases) {
			return rule.Attempts
		}
	}
	return 1
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
