// Package metrics holds the Prometheus instruments for evaluation cycles.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics instruments one process's evaluation cycles.
type Metrics struct {
	CyclesTotal    prometheus.Counter
	CycleFailures  prometheus.Counter
	DegradedGames  prometheus.Counter
	UnmatchedGames prometheus.Counter
	RowsLastCycle  prometheus.Gauge
	CycleDuration  prometheus.Histogram
}

// New registers the cycle instruments on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		CyclesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "halfcourt_cycles_total",
			Help: "Evaluation cycles started.",
		}),
		CycleFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "halfcourt_cycle_failures_total",
			Help: "Evaluation cycles aborted by a scoreboard or odds fetch failure.",
		}),
		DegradedGames: factory.NewCounter(prometheus.CounterOpts{
			Name: "halfcourt_degraded_games_total",
			Help: "Rows emitted without play-by-play stats.",
		}),
		UnmatchedGames: factory.NewCounter(prometheus.CounterOpts{
			Name: "halfcourt_unmatched_games_total",
			Help: "Rows emitted without a usable market total.",
		}),
		RowsLastCycle: factory.NewGauge(prometheus.GaugeOpts{
			Name: "halfcourt_rows_last_cycle",
			Help: "Rows produced by the most recent evaluation cycle.",
		}),
		CycleDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "halfcourt_cycle_duration_seconds",
			Help:    "Wall time of a full evaluation cycle.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		}),
	}
}
