// Package config loads the process configuration: YAML file, HALFCOURT_
// environment overrides and NCAAB defaults, in that order of precedence.
// Everything here is read once at startup and passed by reference; no
// component reads configuration ambiently afterwards.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/rvpicks/halfcourt/internal/classify"
	"github.com/rvpicks/halfcourt/sports/basketball_ncaab"
)

// Config represents the complete application configuration.
type Config struct {
	Env        string           `mapstructure:"env"`
	Server     ServerConfig     `mapstructure:"server"`
	Scoreboard ScoreboardConfig `mapstructure:"scoreboard"`
	Odds       OddsConfig       `mapstructure:"odds"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Matching   MatchingConfig   `mapstructure:"matching"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// ScoreboardConfig holds the NCAA API settings. Timezone picks whose
// calendar date selects the slate.
type ScoreboardConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	Timezone string `mapstructure:"timezone"`
}

// OddsConfig holds The Odds API settings and the bookmaker priority order.
type OddsConfig struct {
	APIKey            string   `mapstructure:"api_key"`
	BaseURL           string   `mapstructure:"base_url"`
	SportKey          string   `mapstructure:"sport_key"`
	Regions           []string `mapstructure:"regions"`
	Markets           []string `mapstructure:"markets"`
	BookmakerPriority []string `mapstructure:"bookmaker_priority"`
}

// RedisConfig holds the odds snapshot cache settings.
type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// MatchingConfig holds the team-name matcher settings.
type MatchingConfig struct {
	NoiseTokens []string `mapstructure:"noise_tokens"`
}

// ClassifierConfig holds the play-by-play keyword tables.
type ClassifierConfig struct {
	FreeThrowCounts  []FreeThrowCountRule `mapstructure:"free_throw_counts"`
	ShotKeywords     []string             `mapstructure:"shot_keywords"`
	TurnoverTriggers []string             `mapstructure:"turnover_triggers"`
	TurnoverIgnores  []string             `mapstructure:"turnover_ignores"`
}

// FreeThrowCountRule maps trigger phrases to a free-throw attempt count.
// Rules apply in listed order; the first phrase hit wins.
type FreeThrowCountRule struct {
	Phrases  []string `mapstructure:"phrases"`
	Attempts int      `mapstructure:"attempts"`
}

// Rules assembles the classify rule table from this config.
func (c *ClassifierConfig) Rules() classify.Rules {
	counts := make([]classify.FreeThrowCountRule, 0, len(c.FreeThrowCounts))
	for _, r := range c.FreeThrowCounts {
		counts = append(counts, classify.FreeThrowCountRule{
			Phrases:  r.Phrases,
			Attempts: r.Attempts,
		})
	}
	return classify.Rules{
		FreeThrowCounts:  counts,
		ShotKeywords:     c.ShotKeywords,
		TurnoverTriggers: c.TurnoverTriggers,
		TurnoverIgnores:  c.TurnoverIgnores,
	}
}

// Load reads configuration from an optional file plus environment
// variables. An empty path runs on defaults and environment alone.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("HALFCOURT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults seeds viper with the NCAAB production defaults.
func setDefaults(v *viper.Viper) {
	ncaab := basketball_ncaab.DefaultConfig()

	v.SetDefault("env", "local")
	v.SetDefault("server.port", "8080")

	v.SetDefault("scoreboard.base_url", "https://ncaa-api.henrygd.me")
	v.SetDefault("scoreboard.timezone", "America/New_York")

	v.SetDefault("odds.base_url", "https://api.the-odds-api.com")
	v.SetDefault("odds.sport_key", ncaab.SportKey)
	v.SetDefault("odds.regions", ncaab.Regions)
	v.SetDefault("odds.markets", ncaab.Markets)
	v.SetDefault("odds.bookmaker_priority", ncaab.BookmakerPriority)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.cache_ttl", "45s")

	v.SetDefault("matching.noise_tokens", ncaab.NoiseTokens)

	// Stored as plain maps so the file and env layers merge cleanly.
	counts := make([]map[string]any, 0, len(ncaab.FreeThrowCounts))
	for _, r := range ncaab.FreeThrowCounts {
		counts = append(counts, map[string]any{"phrases": r.Phrases, "attempts": r.Attempts})
	}
	v.SetDefault("classifier.free_throw_counts", counts)
	v.SetDefault("classifier.shot_keywords", ncaab.ShotKeywords)
	v.SetDefault("classifier.turnover_triggers", ncaab.TurnoverTriggers)
	v.SetDefault("classifier.turnover_ignores", ncaab.TurnoverIgnores)
}

// Validate checks that the configuration can actually run a cycle.
func (c *Config) Validate() error {
	if c.Odds.APIKey == "" {
		return fmt.Errorf("odds.api_key is required (HALFCOURT_ODDS_API_KEY)")
	}
	if c.Odds.SportKey == "" {
		return fmt.Errorf("odds.sport_key is required")
	}
	if len(c.Odds.BookmakerPriority) == 0 {
		return fmt.Errorf("odds.bookmaker_priority must contain at least one book")
	}
	if c.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}
	if c.Scoreboard.BaseURL == "" {
		return fmt.Errorf("scoreboard.base_url is required")
	}
	if _, err := time.LoadLocation(c.Scoreboard.Timezone); err != nil {
		return fmt.Errorf("scoreboard.timezone is invalid: %w", err)
	}
	if c.Redis.Enabled {
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required when redis is enabled")
		}
		if c.Redis.CacheTTL <= 0 {
			return fmt.Errorf("redis.cache_ttl must be positive when redis is enabled")
		}
	}
	if len(c.Classifier.ShotKeywords) == 0 {
		return fmt.Errorf("classifier.shot_keywords must not be empty")
	}
	for _, rule := range c.Classifier.FreeThrowCounts {
		if len(rule.Phrases) == 0 || rule.Attempts < 1 {
			return fmt.Errorf("classifier.free_throw_counts entries need phrases and a positive attempt count")
		}
	}
	return nil
}

// ScoreboardLocation resolves the configured scoreboard timezone.
func (c *Config) ScoreboardLocation() (*time.Location, error) {
	return time.LoadLocation(c.Scoreboard.Timezone)
}
