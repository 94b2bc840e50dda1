// Package theoddsapi fetches full-game totals from The Odds API v4.
package theoddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rvpicks/halfcourt/pkg/contracts"
	"github.com/rvpicks/halfcourt/pkg/models"
)

const (
	defaultBaseURL = "https://api.the-odds-api.com"
	apiVersion     = "v4"
	userAgent      = "Halfcourt/1.0 (NCAAB 1H lean engine)"
	timeout        = 10 * time.Second
)

// Client implements the OddsSource interface against The Odds API.
// A failed request fails the evaluation cycle; there are no retries, so a
// slow upstream only blocks the one refresh that hit it.
type Client struct {
	apiKey     string
	sportKey   string
	regions    []string
	markets    []string
	baseURL    string
	httpClient *http.Client
	rateLimits models.RateLimits
	mu         sync.RWMutex
}

var _ contracts.OddsSource = (*Client)(nil)

// NewClient creates an Odds API client for one sport's markets.
func NewClient(apiKey, sportKey string, regions, markets []string) *Client {
	return NewClientWithBaseURL(apiKey, sportKey, regions, markets, defaultBaseURL)
}

// NewClientWithBaseURL is NewClient with an overridable base URL for tests.
func NewClientWithBaseURL(apiKey, sportKey string, regions, markets []string, baseURL string) *Client {
	return &Client{
		apiKey:   apiKey,
		sportKey: sportKey,
		regions:  regions,
		markets:  markets,
		baseURL:  baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		rateLimits: models.RateLimits{
			RequestsRemaining: 500, // default quota until headers say otherwise
		},
	}
}

// FetchMarketEvents retrieves the configured markets and keeps only events
// whose commence time falls on today in the local timezone.
func (c *Client) FetchMarketEvents(ctx context.Context, now time.Time) ([]models.MarketEvent, error) {
	endpoint := fmt.Sprintf("%s/%s/sports/%s/odds", c.baseURL, apiVersion, c.sportKey)

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("regions", strings.Join(c.regions, ","))
	params.Set("markets", strings.Join(c.markets, ","))
	params.Set("oddsFormat", "decimal")
	params.Set("dateFormat", "iso")

	body, err := c.doRequest(ctx, fmt.Sprintf("%s?%s", endpoint, params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("fetch odds failed: %w", err)
	}

	var records []eventRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("parse odds response: %w", err)
	}

	local := now.Local()
	year, month, day := local.Date()

	filtered := make([]models.MarketEvent, 0, len(records))
	for _, rec := range records {
		// One event with a missing or mangled timestamp drops out; it must
		// not take the rest of the slate with it.
		commence, err := time.Parse(time.RFC3339, rec.CommenceTime)
		if err != nil {
			continue
		}
		y, m, d := commence.Local().Date()
		if y == year && m == month && d == day {
			filtered = append(filtered, rec.toModel(commence))
		}
	}

	return filtered, nil
}

// eventRecord is the wire shape of one odds event. commence_time decodes as
// a string so a single bad timestamp skips that event instead of failing the
// whole response.
type eventRecord struct {
	ID           string             `json:"id"`
	SportKey     string             `json:"sport_key"`
	CommenceTime string             `json:"commence_time"`
	HomeTeam     string             `json:"home_team"`
	AwayTeam     string             `json:"away_team"`
	Bookmakers   []models.Bookmaker `json:"bookmakers"`
}

func (r eventRecord) toModel(commence time.Time) models.MarketEvent {
	return models.MarketEvent{
		ID:           r.ID,
		SportKey:     r.SportKey,
		CommenceTime: commence,
		HomeTeam:     r.HomeTeam,
		AwayTeam:     r.AwayTeam,
		Bookmakers:   r.Bookmakers,
	}
}

// GetRateLimits returns the quota counters from the last response.
func (c *Client) GetRateLimits() models.RateLimits {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rateLimits
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

	c.updateRateLimits(resp.Header)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &httpError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	return body, nil
}

// updateRateLimits extracts quota info from response headers.
func (c *Client) updateRateLimits(headers http.Header) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if remaining := headers.Get("x-requests-remaining"); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			c.rateLimits.RequestsRemaining = val
		}
	}

	if used := headers.Get("x-requests-used"); used != "" {
		if val, err := strconv.Atoi(used); err == nil {
			c.rateLimits.RequestsUsed = val
		}
	}
}

// httpError represents an HTTP error with status code.
type httpError struct {
	StatusCode int
	Message    string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}
