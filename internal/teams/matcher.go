// Package teams decides whether team names from the scoreboard and the odds
// vendor refer to the same team. The two feeds never agree on formatting
// ("Ohio St." vs "Ohio State Buckeyes"), so matching is deliberately loose:
// normalize both names, then accept a substring hit or two shared tokens.
// The occasional false positive on generic tokens is an accepted trade-off.
package teams

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s]`)

// Matcher normalizes and compares team names. The noise-token list is fixed
// at construction.
type Matcher struct {
	noise map[string]struct{}
}

// NewMatcher builds a matcher that drops the given noise tokens
// (e.g. "university", "state") during normalization.
func NewMatcher(noiseTokens []string) *Matcher {
	noise := make(map[string]struct{}, len(noiseTokens))
	for _, tok := range noiseTokens {
		noise[strings.ToLower(tok)] = struct{}{}
	}
	return &Matcher{noise: noise}
}

// Normalize lowercases a name, folds "&" to "and", strips punctuation,
// removes noise tokens and collapses whitespace.
func (m *Matcher) Normalize(name string) string {
	if name == "" {
		return ""
	}

	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "&", "and")
	s = nonAlphanumeric.ReplaceAllString(s, " ")

	fields := strings.Fields(s)
	kept := fields[:0]
	for _, f := range fields {
		if _, drop := m.noise[f]; !drop {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

// Match reports whether two names plausibly refer to the same team: either
// normalized form contains the other, or their token sets share at least
// two tokens. Names that normalize to nothing never match.
func (m *Matcher) Match(a, b string) bool {
	na := m.Normalize(a)
	nb := m.Normalize(b)
	if na == "" || nb == "" {
		return false
	}

	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return true
	}

	return commonTokens(na, nb) >= 2
}

func commonTokens(a, b string) int {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(a) {
		set[tok] = struct{}{}
	}

	seen := make(map[string]struct{})
	count := 0
	for _, tok := range strings.Fields(b) {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		if _, ok := set[tok]; ok {
			count++
		}
	}
	return count
}
