package thesportsdb

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"nfl-picks-service/internal/domain/matches"
	"nfl-picks-service/internal/domain/teams"
	"nfl-picks-service/internal/providers"
)

// Config controls how the TheSportsDB client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	LeagueID   string
	HTTPClient *http.Client
	Directory  *teams.Directory
}

// Client fetches a week of NFL events from TheSportsDB. Events carry only
// full team names, which are resolved through the team directory.
type Client struct {
	baseURL    string
	apiKey     string
	leagueID   string
	httpClient httpDoer
	dir        *teams.Directory
}

// NewClient constructs a TheSportsDB client with the provided configuration.
func NewClient(cfg Config) *Client {
	dir := cfg.Directory
	if dir == nil {
		dir = teams.NewDirectory()
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     orDefault(cfg.APIKey, defaultAPIKey),
		leagueID:   orDefault(cfg.LeagueID, defaultLeagueID),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		dir:        dir,
	}
}

// FetchWeek retrieves the events of one round.
func (c *Client) FetchWeek(ctx context.Context, season, week int) ([]matches.Match, error) {
	if _, err := providers.ResolveWeek(week); err != nil {
		return nil, err
	}

	req, err := c.buildRequest(ctx, season, week)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.NetworkError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, providers.StatusError(providerName, resp)
	}

	var payload eventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &providers.ParseError{Provider: providerName, Err: err}
	}

	out := make([]matches.Match, 0, len(payload.Events))
	for _, e := range payload.Events {
		out = append(out, mapEvent(e, c.dir))
	}
	return out, nil
}

func (c *Client) buildRequest(ctx context.Context, season, week int) (*http.Request, error) {
	url := c.baseURL + "/" + c.apiKey + "/eventsround.php"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("id", c.leagueID)
	q.Set("r", strconv.Itoa(roundFor(week)))
	q.Set("s", strconv.Itoa(season))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	return req, nil
}
