//go:build integration

// Run with a local Redis:
//   docker run -d -p 6379:6379 redis:7
//   go test -tags=integration ./internal/oddscache/
package oddscache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rvpicks/halfcourt/pkg/models"
	"github.com/rvpicks/halfcourt/pkg/testutil"
)

type countingSource struct {
	events []models.MarketEvent
	err    error
	calls  int
}

func (s *countingSource) FetchMarketEvents(_ context.Context, _ time.Time) ([]models.MarketEvent, error) {
	s.calls++
	return s.events, s.err
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 15})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	if err := client.FlushDB(context.Background()).Err(); err != nil {
		t.Fatalf("flush test db: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestFetchMarketEvents_CachesSnapshot(t *testing.T) {
	rdb := newTestRedis(t)
	src := &countingSource{events: []models.MarketEvent{
		testutil.NewMarketEvent("Duke Blue Devils", "UNC Tar Heels", time.Now(),
			testutil.NewTotalsBook("draftkings", "DraftKings", 140.0)),
	}}
	cache := New(src, rdb, "basketball_ncaab", time.Minute, nil)
	now := time.Now()

	first, err := cache.FetchMarketEvents(context.Background(), now)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	second, err := cache.FetchMarketEvents(context.Background(), now)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}

	if src.calls != 1 {
		t.Errorf("source called %d times, want 1", src.calls)
	}
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("lengths = %d, %d", len(first), len(second))
	}
	if second[0].HomeTeam != "Duke Blue Devils" {
		t.Errorf("cached HomeTeam = %q", second[0].HomeTeam)
	}
	point := second[0].Bookmakers[0].Markets[0].Outcomes[0].Point
	if point == nil || *point != 140.0 {
		t.Errorf("cached point = %v, want 140.0", point)
	}
}

func TestFetchMarketEvents_CorruptEntryRefetches(t *testing.T) {
	rdb := newTestRedis(t)
	src := &countingSource{events: []models.MarketEvent{
		testutil.NewMarketEvent("Duke Blue Devils", "UNC Tar Heels", time.Now()),
	}}
	cache := New(src, rdb, "basketball_ncaab", time.Minute, nil)
	now := time.Now()

	key := cache.buildKey(now)
	if err := rdb.Set(context.Background(), key, "{not json", time.Minute).Err(); err != nil {
		t.Fatalf("seed corrupt entry: %v", err)
	}

	events, err := cache.FetchMarketEvents(context.Background(), now)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if src.calls != 1 {
		t.Errorf("source called %d times, want 1 after corrupt entry", src.calls)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	// The corrupt entry is replaced by the fresh snapshot.
	if _, err := cache.FetchMarketEvents(context.Background(), now); err != nil {
		t.Fatalf("refetch: %v", err)
	}
	if src.calls != 1 {
		t.Errorf("source called %d times, want the rewritten snapshot to serve", src.calls)
	}
}

func TestFetchMarketEvents_SourceErrorPropagates(t *testing.T) {
	rdb := newTestRedis(t)
	src := &countingSource{err: errors.New("quota exceeded")}
	cache := New(src, rdb, "basketball_ncaab", time.Minute, nil)

	if _, err := cache.FetchMarketEvents(context.Background(), time.Now()); err == nil {
		t.Fatal("expected source error to propagate on a cache miss")
	}
}

func TestBuildKey_DatePartition(t *testing.T) {
	cache := New(nil, nil, "basketball_ncaab", time.Minute, nil)
	d1 := time.Date(2026, time.February, 7, 23, 0, 0, 0, time.Local)
	d2 := d1.Add(24 * time.Hour)
	if cache.buildKey(d1) == cache.buildKey(d2) {
		t.Error("keys for different slate dates must differ")
	}
}
