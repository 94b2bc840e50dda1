package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rvpicks/halfcourt/internal/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Env != "local" {
		t.Errorf("Env = %q, want local", cfg.Env)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Scoreboard.Timezone != "America/New_York" {
		t.Errorf("Scoreboard.Timezone = %q, want America/New_York", cfg.Scoreboard.Timezone)
	}
	if cfg.Odds.SportKey != "basketball_ncaab" {
		t.Errorf("Odds.SportKey = %q, want basketball_ncaab", cfg.Odds.SportKey)
	}
	if len(cfg.Odds.BookmakerPriority) == 0 || cfg.Odds.BookmakerPriority[0] != "draftkings" {
		t.Errorf("BookmakerPriority = %v, want draftkings first", cfg.Odds.BookmakerPriority)
	}
	if cfg.Redis.Enabled {
		t.Error("Redis must default to disabled")
	}
	if cfg.Redis.CacheTTL != 45*time.Second {
		t.Errorf("Redis.CacheTTL = %v, want 45s", cfg.Redis.CacheTTL)
	}
	if len(cfg.Classifier.ShotKeywords) == 0 {
		t.Error("shot keywords must default to the NCAAB table")
	}
	if len(cfg.Classifier.FreeThrowCounts) == 0 {
		t.Fatal("free throw count rules must default to the NCAAB table")
	}
	first := cfg.Classifier.FreeThrowCounts[0]
	if len(first.Phrases) == 0 || first.Phrases[0] != "both free throws" || first.Attempts != 2 {
		t.Errorf("first free throw rule = %+v, want the both-free-throws rule", first)
	}
}

func TestClassifierRules_FromConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	rules := cfg.Classifier.Rules()
	if len(rules.FreeThrowCounts) != len(cfg.Classifier.FreeThrowCounts) {
		t.Errorf("rule count = %d, want %d", len(rules.FreeThrowCounts), len(cfg.Classifier.FreeThrowCounts))
	}
	if len(rules.FreeThrowCounts) == 0 || rules.FreeThrowCounts[0].Attempts != 2 {
		t.Errorf("converted rules = %+v, want the both-free-throws rule first", rules.FreeThrowCounts)
	}
	if len(rules.ShotKeywords) == 0 || len(rules.TurnoverTriggers) == 0 {
		t.Error("keyword tables must carry through")
	}
}

func TestLoad_FreeThrowCountOverride(t *testing.T) {
	path := writeConfigFile(t, `
classifier:
  free_throw_counts:
    - phrases: ["both free throws"]
      attempts: 2
    - phrases: ["and one"]
      attempts: 1
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Classifier.FreeThrowCounts) != 2 {
		t.Fatalf("rules = %+v, want the 2 overridden rules", cfg.Classifier.FreeThrowCounts)
	}
	second := cfg.Classifier.FreeThrowCounts[1]
	if second.Attempts != 1 || len(second.Phrases) != 1 || second.Phrases[0] != "and one" {
		t.Errorf("second rule = %+v", second)
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	path := writeConfigFile(t, `
env: production
server:
  port: "9090"
odds:
  api_key: test-key
  bookmaker_priority:
    - fanduel
    - draftkings
redis:
  enabled: true
  addr: redis:6379
  cache_ttl: 90s
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Env != "production" {
		t.Errorf("Env = %q, want production", cfg.Env)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Odds.APIKey != "test-key" {
		t.Errorf("Odds.APIKey = %q, want test-key", cfg.Odds.APIKey)
	}
	if len(cfg.Odds.BookmakerPriority) != 2 || cfg.Odds.BookmakerPriority[0] != "fanduel" {
		t.Errorf("BookmakerPriority = %v, want fanduel first", cfg.Odds.BookmakerPriority)
	}
	if !cfg.Redis.Enabled || cfg.Redis.CacheTTL != 90*time.Second {
		t.Errorf("Redis = %+v, want enabled with 90s TTL", cfg.Redis)
	}
	// Untouched sections keep their defaults.
	if cfg.Odds.SportKey != "basketball_ncaab" {
		t.Errorf("Odds.SportKey = %q, want default basketball_ncaab", cfg.Odds.SportKey)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for a missing config file")
	}
}

func TestValidate(t *testing.T) {
	valid := func(t *testing.T) *config.Config {
		t.Helper()
		cfg, err := config.Load("")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		cfg.Odds.APIKey = "test-key"
		return cfg
	}

	t.Run("valid config passes", func(t *testing.T) {
		if err := valid(t).Validate(); err != nil {
			t.Errorf("Validate: %v", err)
		}
	})

	t.Run("missing api key", func(t *testing.T) {
		cfg := valid(t)
		cfg.Odds.APIKey = ""
		if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "api_key") {
			t.Errorf("expected api_key error, got %v", err)
		}
	})

	t.Run("empty bookmaker priority", func(t *testing.T) {
		cfg := valid(t)
		cfg.Odds.BookmakerPriority = nil
		if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "bookmaker_priority") {
			t.Errorf("expected bookmaker_priority error, got %v", err)
		}
	})

	t.Run("bad timezone", func(t *testing.T) {
		cfg := valid(t)
		cfg.Scoreboard.Timezone = "Mars/Olympus_Mons"
		if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "timezone") {
			t.Errorf("expected timezone error, got %v", err)
		}
	})

	t.Run("redis enabled needs addr", func(t *testing.T) {
		cfg := valid(t)
		cfg.Redis.Enabled = true
		cfg.Redis.Addr = ""
		if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "redis.addr") {
			t.Errorf("expected redis.addr error, got %v", err)
		}
	})

	t.Run("malformed free throw rule", func(t *testing.T) {
		cfg := valid(t)
		cfg.Classifier.FreeThrowCounts = []config.FreeThrowCountRule{{Attempts: 2}}
		if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "free_throw_counts") {
			t.Errorf("expected free_throw_counts error, got %v", err)
		}
	})

	t.Run("redis enabled needs positive ttl", func(t *testing.T) {
		cfg := valid(t)
		cfg.Redis.Enabled = true
		cfg.Redis.CacheTTL = 0
		if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "cache_ttl") {
			t.Errorf("expected cache_ttl error, got %v", err)
		}
	})
}

func TestScoreboardLocation(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	loc, err := cfg.ScoreboardLocation()
	if err != nil {
		t.Fatalf("ScoreboardLocation: %v", err)
	}
	if loc.String() != "America/New_York" {
		t.Errorf("location = %q, want America/New_York", loc)
	}
}
