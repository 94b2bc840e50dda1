package server_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rvpicks/halfcourt/internal/metrics"
	"github.com/rvpicks/halfcourt/internal/server"
	"github.com/rvpicks/halfcourt/pkg/models"
	"github.com/rvpicks/halfcourt/pkg/testutil"
)

type stubRows struct {
	rows []models.Row
	err  error
}

func (s *stubRows) BuildRows(_ context.Context) ([]models.Row, error) {
	return s.rows, s.err
}

type stubScoreboard struct {
	games []models.Game
	err   error
}

func (s *stubScoreboard) FetchScoreboard(_ context.Context, _ time.Time) ([]models.Game, error) {
	return s.games, s.err
}

type stubOdds struct {
	events []models.MarketEvent
	err    error
}

func (s *stubOdds) FetchMarketEvents(_ context.Context, _ time.Time) ([]models.MarketEvent, error) {
	return s.events, s.err
}

func newServer(rows *stubRows, sb *stubScoreboard, odds *stubOdds) http.Handler {
	return server.New(rows, sb, odds, time.UTC, nil, nil).Handler()
}

func get(t *testing.T, h http.Handler, path string) (*http.Response, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	res := rec.Result()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return res, string(body)
}

func qualifiedRow() models.Row {
	halfScore := "34-30"
	fga, fta, to, scoreDiff := 18, 9, 6, 4
	integer, total, derived, diffLine := 28.5, 140.0, 76.0, 47.5
	book := "DraftKings"
	qualifies := true
	lean := models.LeanUnder
	return models.Row{
		Matchup:       "UNC @ Duke",
		State:         "LIVE",
		Period:        "1ST",
		HalfScore:     &halfScore,
		FGA:           &fga,
		FTA:           &fta,
		Turnovers:     &to,
		Integer:       &integer,
		FullGameTotal: &total,
		Book:          &book,
		Derived2HLine: &derived,
		DiffLine:      &diffLine,
		ScoreDiff:     &scoreDiff,
		Qualifies:     &qualifies,
		Lean:          &lean,
	}
}

func TestIndex_RendersRows(t *testing.T) {
	rows := &stubRows{rows: []models.Row{qualifiedRow()}}
	h := newServer(rows, &stubScoreboard{}, &stubOdds{})

	res, body := get(t, h, "/")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	for _, want := range []string{"UNC @ Duke", "34-30", "28.5", "140", "DraftKings", "76.0", "YES", "UNDER", `class="qual-yes"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestIndex_PlaceholdersForMissingData(t *testing.T) {
	// A degraded row renders dashes, never zeros.
	rows := &stubRows{rows: []models.Row{{Matchup: "UNC @ Duke", State: "LIVE", Period: "1ST"}}}
	h := newServer(rows, &stubScoreboard{}, &stubOdds{})

	res, body := get(t, h, "/")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	if !strings.Contains(body, "-") {
		t.Error("expected dash placeholders in the table")
	}
	if strings.Contains(body, `class="qual-yes"`) || strings.Contains(body, `class="qual-no"`) {
		t.Error("undetermined qualification must not get a qual class")
	}
	if strings.Contains(body, "0.0") {
		t.Error("missing numbers must not render as zeros")
	}
}

func TestIndex_BuildFailureShowsError(t *testing.T) {
	rows := &stubRows{err: errors.New("load scoreboard: feed down")}
	h := newServer(rows, &stubScoreboard{}, &stubOdds{})

	res, body := get(t, h, "/")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, the page still renders on a failed cycle", res.StatusCode)
	}
	if !strings.Contains(body, "feed down") {
		t.Error("expected the cycle error on the page")
	}
}

func TestIndex_RefreshViaPost(t *testing.T) {
	rows := &stubRows{rows: []models.Row{qualifiedRow()}}
	h := newServer(rows, &stubScoreboard{}, &stubOdds{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("POST / status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("DELETE / status = %d, want 405", rec.Code)
	}
}

func TestIndex_UnknownPath(t *testing.T) {
	h := newServer(&stubRows{}, &stubScoreboard{}, &stubOdds{})
	res, _ := get(t, h, "/nope")
	if res.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", res.StatusCode)
	}
}

func TestTestOdds(t *testing.T) {
	odds := &stubOdds{events: []models.MarketEvent{
		testutil.NewMarketEvent("Duke", "UNC", time.Now()),
	}}
	h := newServer(&stubRows{}, &stubScoreboard{}, odds)

	res, body := get(t, h, "/test-odds")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	if !strings.Contains(body, "got 1 events") {
		t.Errorf("body = %q", body)
	}

	odds.err = errors.New("quota exceeded")
	res, body = get(t, h, "/test-odds")
	if res.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", res.StatusCode)
	}
	if !strings.Contains(body, "quota exceeded") {
		t.Errorf("body = %q", body)
	}
}

func TestTestNCAA(t *testing.T) {
	sb := &stubScoreboard{games: []models.Game{
		testutil.NewGame("Duke", "UNC", "1st", "/game/1"),
		testutil.NewGame("Kansas", "Kentucky", "2nd", "/game/2"),
	}}
	h := newServer(&stubRows{}, sb, &stubOdds{})

	res, body := get(t, h, "/test-ncaa")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	if !strings.Contains(body, "got 2 games") {
		t.Errorf("body = %q", body)
	}
}

func TestHealthz(t *testing.T) {
	h := newServer(&stubRows{}, &stubScoreboard{}, &stubOdds{})
	res, body := get(t, h, "/healthz")
	if res.StatusCode != http.StatusOK || body != "ok" {
		t.Errorf("got %d %q, want 200 ok", res.StatusCode, body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.CyclesTotal.Inc()

	h := server.New(&stubRows{}, &stubScoreboard{}, &stubOdds{}, time.UTC, reg, nil).Handler()
	res, body := get(t, h, "/metrics")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	if !strings.Contains(body, "halfcourt_cycles_total 1") {
		t.Errorf("metrics output missing counter:\n%s", body)
	}
}
