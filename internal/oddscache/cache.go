// Package oddscache puts a short-TTL Redis snapshot in front of the odds
// source so repeated dashboard refreshes don't burn The Odds API quota.
package oddscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rvpicks/halfcourt/pkg/contracts"
	"github.com/rvpicks/halfcourt/pkg/models"
)

// keyFormat namespaces snapshots per sport and local slate date.
// Format: halfcourt:odds:{sport_key}:{yyyy-mm-dd}
const keyFormat = "halfcourt:odds:%s:%s"

// Cache is an OddsSource that serves a cached market-event snapshot when
// one exists, fetching through to the wrapped source otherwise. Redis being
// down or holding a corrupt entry degrades to a plain fetch; it never fails
// a cycle.
type Cache struct {
	source   contracts.OddsSource
	redis    *redis.Client
	sportKey string
	ttl      time.Duration
	log      *zap.Logger
}

var _ contracts.OddsSource = (*Cache)(nil)

// New wraps an odds source with a Redis snapshot cache.
func New(source contracts.OddsSource, redisClient *redis.Client, sportKey string, ttl time.Duration, log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{
		source:   source,
		redis:    redisClient,
		sportKey: sportKey,
		ttl:      ttl,
		log:      log,
	}
}

// FetchMarketEvents returns the cached snapshot for today's slate, or
// fetches and caches a fresh one.
func (c *Cache) FetchMarketEvents(ctx context.Context, now time.Time) ([]models.MarketEvent, error) {
	key := c.buildKey(now)

	cached, err := c.redis.Get(ctx, key).Result()
	switch {
	case err == nil:
		var events []models.MarketEvent
		if jsonErr := json.Unmarshal([]byte(cached), &events); jsonErr == nil {
			return events, nil
		}
		// corrupt entry, fall through to a fresh fetch
		c.log.Warn("discarding corrupt odds snapshot", zap.String("key", key))
	case err != redis.Nil:
		c.log.Warn("odds cache read failed", zap.Error(err))
	}

	events, err := c.source.FetchMarketEvents(ctx, now)
	if err != nil {
		return nil, err
	}

	if data, marshalErr := json.Marshal(events); marshalErr == nil {
		if setErr := c.redis.Set(ctx, key, data, c.ttl).Err(); setErr != nil {
			c.log.Warn("odds cache write failed", zap.Error(setErr))
		}
	}

	return events, nil
}

func (c *Cache) buildKey(now time.Time) string {
	return fmt.Sprintf(keyFormat, c.sportKey, now.Local().Format("2006-01-02"))
}
