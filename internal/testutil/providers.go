package testutil

import (
	"context"
	"sync"

	"nfl-picks-service/internal/domain/matches"
)

// WeekProvider returns the same matches for every week and counts calls.
type WeekProvider struct {
	mu      sync.Mutex
	Matches []matches.Match
	calls   int
}

func (p *WeekProvider) FetchWeek(ctx context.Context, season, week int) ([]matches.Match, error) {
	_ = ctx
	_ = season
	_ = week
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	out := make([]matches.Match, len(p.Matches))
	copy(out, p.Matches)
	return out, nil
}

// Calls reports how many times the week was fetched.
func (p *WeekProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchWeek(ctx context.Context, season, week int) ([]matches.Match, error) {
	return nil, p.Err
}
