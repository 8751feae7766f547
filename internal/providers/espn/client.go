package espn

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"nfl-picks-service/internal/domain/matches"
	"nfl-picks-service/internal/domain/teams"
	"nfl-picks-service/internal/providers"
)

// Config controls how the ESPN client reaches the scoreboard API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Directory  *teams.Directory
}

// Client fetches a week from the ESPN scoreboard. Competitors carry their
// abbreviation, display name and record, so no name lookup is needed.
type Client struct {
	baseURL    string
	httpClient httpDoer
	dir        *teams.Directory
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	dir := cfg.Directory
	if dir == nil {
		dir = teams.NewDirectory()
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		dir:        dir,
	}
}

// FetchWeek retrieves the scoreboard for one week.
func (c *Client) FetchWeek(ctx context.Context, season, week int) ([]matches.Match, error) {
	remote, err := providers.ResolveWeek(week)
	if err != nil {
		return nil, err
	}

	req, err := c.buildRequest(ctx, season, remote)
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

	var payload scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &providers.ParseError{Provider: providerName, Err: err}
	}

	out := make([]matches.Match, 0, len(payload.Events))
	for _, e := range payload.Events {
		if m, ok := mapEvent(e, c.dir); ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (c *Client) buildRequest(ctx context.Context, season int, remote providers.RemoteWeek) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/scoreboard", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("seasontype", strconv.Itoa(remote.SeasonType))
	q.Set("week", strconv.Itoa(remote.SubSeasonIndex))
	q.Set("dates", strconv.Itoa(season))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	return req, nil
}
