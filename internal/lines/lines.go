// Package lines extracts a full-game total from a matched market event and
// derives the implied second-half line.
package lines

import (
	"github.com/rvpicks/halfcourt/pkg/models"
)

const totalsMarketKey = "totals"

// Extractor selects a single full-game total using a fixed bookmaker
// priority order.
type Extractor struct {
	priority []string
}

// NewExtractor builds an extractor with the given bookmaker key priority.
func NewExtractor(priority []string) *Extractor {
	return &Extractor{priority: priority}
}

// FullGameTotal returns the first usable totals point from the event,
// consulting books strictly in priority order, with the book's display
// title (key as fallback). The scan stops at the first success; totals are
// never averaged across books. ok is false when no book in the priority
// list carries a usable totals market.
func (e *Extractor) FullGameTotal(event *models.MarketEvent) (total float64, book string, ok bool) {
	byKey := make(map[string]*models.Bookmaker, len(event.Bookmakers))
	for i := range event.Bookmakers {
		byKey[event.Bookmakers[i].Key] = &event.Bookmakers[i]
	}

	for _, key := range e.priority {
		bm, present := byKey[key]
		if !present {
			continue
		}
		for _, market := range bm.Markets {
			if market.Key != totalsMarketKey {
				continue
			}
			if len(market.Outcomes) == 0 {
				continue
			}
			point := market.Outcomes[0].Point
			if point == nil {
				continue
			}
			title := bm.Title
			if title == "" {
				title = bm.Key
			}
			return *point, title, true
		}
	}
	return 0, "", false
}

// Derived2H is the implied second-half total: the full-game total minus the
// points already scored in the first half.
func Derived2H(fullGameTotal float64, stats *models.HalfStats) float64 {
	return fullGameTotal - float64(stats.CombinedPoints())
}
