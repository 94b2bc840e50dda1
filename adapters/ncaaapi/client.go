// Package ncaaapi fetches the NCAA men's D1 scoreboard and per-game
// play-by-play records.
package ncaaapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rvpicks/halfcourt/pkg/contracts"
	"github.com/rvpicks/halfcourt/pkg/models"
)

const (
	defaultBaseURL = "https://ncaa-api.henrygd.me"
	userAgent      = "Halfcourt/1.0 (NCAAB 1H lean engine)"
	timeout        = 10 * time.Second
)

// Client implements the ScoreboardSource and PlayByPlaySource interfaces
// against the public NCAA API mirror.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var (
	_ contracts.ScoreboardSource = (*Client)(nil)
	_ contracts.PlayByPlaySource = (*Client)(nil)
)

// NewClient creates a scoreboard/play-by-play client.
func NewClient() *Client {
	return NewClientWithBaseURL(defaultBaseURL)
}

// NewClientWithBaseURL is NewClient with an overridable base URL for tests.
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchScoreboard returns the D1 men's games for the given calendar date.
// The caller picks the timezone; pass an Eastern-time date to avoid rolling
// to tomorrow's slate at UTC midnight.
func (c *Client) FetchScoreboard(ctx context.Context, date time.Time) ([]models.Game, error) {
	year, month, day := date.Date()
	fullURL := fmt.Sprintf("%s/scoreboard/basketball-men/d1/%d/%02d/%02d/all-conf",
		c.baseURL, year, int(month), day)

	body, err := c.doRequest(ctx, fullURL)
	if err != nil {
		return nil, fmt.Errorf("fetch scoreboard failed: %w", err)
	}

	var resp scoreboardResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse scoreboard response: %w", err)
	}

	games := make([]models.Game, 0, len(resp.Games))
	for _, wrapper := range resp.Games {
		games = append(games, wrapper.Game.toModel())
	}
	return games, nil
}

// FetchPlayByPlay resolves a game's play-by-play locator. Errors here are
// per-game: the engine degrades that row instead of failing the cycle.
func (c *Client) FetchPlayByPlay(ctx context.Context, path string) (*models.PlayByPlay, error) {
	if path == "" {
		return nil, fmt.Errorf("no play-by-play locator")
	}

	body, err := c.doRequest(ctx, c.baseURL+path+"/play-by-play")
	if err != nil {
		return nil, fmt.Errorf("fetch play-by-play failed: %w", err)
	}

	var resp playByPlayResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse play-by-play response: %w", err)
	}

	pbp := &models.PlayByPlay{Periods: make([]models.Period, 0, len(resp.Periods))}
	for _, p := range resp.Periods {
		period := models.Period{
			Number: string(p.PeriodNumber),
			Plays:  make([]models.PlayEvent, 0, len(p.Plays)),
		}
		for _, play := range p.Plays {
			period.Plays = append(period.Plays, models.PlayEvent{
				Description:  play.EventDescription,
				HomeText:     play.HomeText,
				VisitorText:  play.VisitorText,
				HomeScore:    string(play.HomeScore),
				VisitorScore: string(play.VisitorScore),
			})
		}
		pbp.Periods = append(pbp.Periods, period)
	}
	return pbp, nil
}

// doRequest performs a single HTTP request.
func (c *Client) doRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// API response structures matching the NCAA API JSON format.

type scoreboardResponse struct {
	Games []gameWrapper `json:"games"`
}

type gameWrapper struct {
	Game gameRecord `json:"game"`
}

type gameRecord struct {
	Away          teamRecord `json:"away"`
	Home          teamRecord `json:"home"`
	GameState     string     `json:"gameState"`
	CurrentPeriod string     `json:"currentPeriod"`
	URL           string     `json:"url"`
	HasPBP        *bool      `json:"hasPbp"`
}

func (g gameRecord) toModel() models.Game {
	hasPBP := true // feed omits the flag for most games; absent means present
	if g.HasPBP != nil {
		hasPBP = *g.HasPBP
	}
	return models.Game{
		Home:          g.Home.Names.toModel(),
		Away:          g.Away.Names.toModel(),
		State:         g.GameState,
		Period:        g.CurrentPeriod,
		Path:          g.URL,
		HasPlayByPlay: hasPBP,
	}
}

type teamRecord struct {
	Names nameRecord `json:"names"`
}

type nameRecord struct {
	Short string `json:"short"`
	Full  string `json:"full"`
	Char6 string `json:"char6"`
	SEO   string `json:"seo"`
}

func (n nameRecord) toModel() models.TeamNames {
	return models.TeamNames{
		Short: n.Short,
		Full:  n.Full,
		Char6: n.Char6,
		SEO:   n.SEO,
	}
}

type playByPlayResponse struct {
	Periods []periodRecord `json:"periods"`
}

type periodRecord struct {
	PeriodNumber feedString   `json:"periodNumber"`
	Plays        []playRecord `json:"playbyplayStats"`
}

type playRecord struct {
	EventDescription string     `json:"eventDescription"`
	HomeText         string     `json:"homeText"`
	VisitorText      string     `json:"visitorText"`
	HomeScore        feedString `json:"homeScore"`
	VisitorScore     feedString `json:"visitorScore"`
}

// feedString tolerates fields the feed serves as either JSON strings or
// numbers (period numbers and scores show up both ways).
type feedString string

func (s *feedString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = feedString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = feedString(n.String())
	return nil
}
