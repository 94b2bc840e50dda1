// Package server is the presentation layer: the row table at /, upstream
// probe endpoints, health and metrics.
package server

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/rvpicks/halfcourt/pkg/contracts"
	"github.com/rvpicks/halfcourt/pkg/models"
)

// RowBuilder runs one evaluation cycle.
type RowBuilder interface {
	BuildRows(ctx context.Context) ([]models.Row, error)
}

// Server renders evaluation rows over HTTP. Every hit on / runs a fresh
// cycle; the POST form is just the Refresh button.
type Server struct {
	rows       RowBuilder
	scoreboard contracts.ScoreboardSource
	odds       contracts.OddsSource
	loc        *time.Location
	gatherer   prometheus.Gatherer
	log        *zap.Logger
	tmpl       *template.Template
}

// New builds the server. gatherer may be nil to disable /metrics.
func New(rows RowBuilder, scoreboard contracts.ScoreboardSource, odds contracts.OddsSource, loc *time.Location, gatherer prometheus.Gatherer, log *zap.Logger) *Server {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		rows:       rows,
		scoreboard: scoreboard,
		odds:       odds,
		loc:        loc,
		gatherer:   gatherer,
		log:        log,
		tmpl:       template.Must(template.New("dashboard").Parse(dashboardTemplate)),
	}
}

// Handler returns the route mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/test-odds", s.handleTestOdds)
	mux.HandleFunc("/test-ncaa", s.handleTestNCAA)
	mux.HandleFunc("/healthz", s.handleHealthz)
	if s.gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return mux
}

type pageData struct {
	Today string
	Error string
	Rows  []viewRow
}

// viewRow is a Row flattened to display strings; "-" marks missing data.
type viewRow struct {
	Matchup       string
	State         string
	Period        string
	HalfScore     string
	FGA           string
	FTA           string
	Turnovers     string
	Integer       string
	FullGameTotal string
	Book          string
	Derived2HLine string
	DiffLine      string
	ScoreDiff     string
	Qualifies     string
	Lean          string
	QualClass     string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data := pageData{
		Today: time.Now().In(s.loc).Format("2006-01-02"),
	}

	rows, err := s.rows.BuildRows(r.Context())
	if err != nil {
		s.log.Error("evaluation cycle failed", zap.Error(err))
		data.Error = err.Error()
	}
	data.Rows = make([]viewRow, 0, len(rows))
	for _, row := range rows {
		data.Rows = append(data.Rows, toViewRow(row))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		s.log.Error("render dashboard failed", zap.Error(err))
	}
}

func (s *Server) handleTestOdds(w http.ResponseWriter, r *http.Request) {
	events, err := s.odds.FetchMarketEvents(r.Context(), time.Now())
	if err != nil {
		http.Error(w, fmt.Sprintf("ERROR talking to The Odds API: %v", err), http.StatusInternalServerError)
		return
	}
	fmt.Fprintf(w, "OK - got %d events from The Odds API.", len(events))
}

func (s *Server) handleTestNCAA(w http.ResponseWriter, r *http.Request) {
	games, err := s.scoreboard.FetchScoreboard(r.Context(), time.Now().In(s.loc))
	if err != nil {
		http.Error(w, fmt.Sprintf("ERROR talking to NCAA API: %v", err), http.StatusInternalServerError)
		return
	}
	fmt.Fprintf(w, "OK - got %d games from the NCAA API.", len(games))
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func toViewRow(row models.Row) viewRow {
	v := viewRow{
		Matchup:       row.Matchup,
		State:         row.State,
		Period:        row.Period,
		HalfScore:     "-",
		FGA:           "-",
		FTA:           "-",
		Turnovers:     "-",
		Integer:       "-",
		FullGameTotal: "-",
		Book:          "-",
		Derived2HLine: "-",
		DiffLine:      "-",
		ScoreDiff:     "-",
		Qualifies:     "-",
		Lean:          "-",
	}

	if row.HalfScore != nil {
		v.HalfScore = *row.HalfScore
	}
	if row.FGA != nil {
		v.FGA = strconv.Itoa(*row.FGA)
	}
	if row.FTA != nil {
		v.FTA = strconv.Itoa(*row.FTA)
	}
	if row.Turnovers != nil {
		v.Turnovers = strconv.Itoa(*row.Turnovers)
	}
	if row.Integer != nil {
		v.Integer = fmt.Sprintf("%.1f", *row.Integer)
	}
	if row.FullGameTotal != nil {
		v.FullGameTotal = strconv.FormatFloat(*row.FullGameTotal, 'g', -1, 64)
	}
	if row.Book != nil {
		v.Book = *row.Book
	}
	if row.Derived2HLine != nil {
		v.Derived2HLine = fmt.Sprintf("%.1f", *row.Derived2HLine)
	}
	if row.DiffLine != nil {
		v.DiffLine = fmt.Sprintf("%.1f", *row.DiffLine)
	}
	if row.ScoreDiff != nil {
		v.ScoreDiff = strconv.Itoa(*row.ScoreDiff)
	}
	if row.Lean != nil {
		v.Lean = string(*row.Lean)
	}
	if row.Qualifies != nil {
		if *row.Qualifies {
			v.Qualifies = "YES"
			v.QualClass = "qual-yes"
		} else {
			v.Qualifies = "NO"
			v.QualClass = "qual-no"
		}
	}

	return v
}
