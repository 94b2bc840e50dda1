package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rvpicks/halfcourt/adapters/ncaaapi"
	"github.com/rvpicks/halfcourt/adapters/theoddsapi"
	"github.com/rvpicks/halfcourt/internal/classify"
	"github.com/rvpicks/halfcourt/internal/config"
	"github.com/rvpicks/halfcourt/internal/engine"
	"github.com/rvpicks/halfcourt/internal/lines"
	"github.com/rvpicks/halfcourt/internal/logger"
	"github.com/rvpicks/halfcourt/internal/metrics"
	"github.com/rvpicks/halfcourt/internal/oddscache"
	"github.com/rvpicks/halfcourt/internal/server"
	"github.com/rvpicks/halfcourt/internal/teams"
	"github.com/rvpicks/halfcourt/pkg/contracts"
	"github.com/rvpicks/halfcourt/sports/basketball_ncaab"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New("halfcourt", cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	loc, err := cfg.ScoreboardLocation()
	if err != nil {
		log.Fatal("load scoreboard timezone", zap.Error(err))
	}

	ctx := context.Background()

	registry := prometheus.NewRegistry()
	cycleMetrics := metrics.New(registry)

	scoreboard := ncaaapi.NewClientWithBaseURL(cfg.Scoreboard.BaseURL)
	oddsClient := theoddsapi.NewClientWithBaseURL(
		cfg.Odds.APIKey, cfg.Odds.SportKey, cfg.Odds.Regions, cfg.Odds.Markets, cfg.Odds.BaseURL)

	var oddsSource contracts.OddsSource = oddsClient
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal("connect to redis", zap.Error(err))
		}
		log.Info("connected to redis", zap.String("addr", cfg.Redis.Addr))

		oddsSource = oddscache.New(oddsClient, redisClient, cfg.Odds.SportKey, cfg.Redis.CacheTTL, log)
	}

	classifier := classify.New(cfg.Classifier.Rules())
	matcher := teams.NewMatcher(cfg.Matching.NoiseTokens)
	extractor := lines.NewExtractor(cfg.Odds.BookmakerPriority)

	eng := engine.New(engine.Params{
		Scoreboard: scoreboard,
		PlayByPlay: scoreboard,
		Odds:       oddsSource,
		Classifier: classifier,
		Matcher:    matcher,
		Extractor:  extractor,
		Location:   loc,
		Log:        log,
		Metrics:    cycleMetrics,
	})

	srv := server.New(eng, scoreboard, oddsSource, loc, registry, log)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: srv.Handler(),
	}

	go func() {
		log.Info("halfcourt started",
			zap.String("sport", basketball_ncaab.DefaultConfig().DisplayName),
			zap.String("addr", httpServer.Addr),
			zap.Bool("odds_cache", cfg.Redis.Enabled))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
		os.Exit(1)
	}

	log.Info("halfcourt stopped",
		zap.Int("odds_requests_remaining", oddsClient.GetRateLimits().RequestsRemaining))
}
