package schedule

import (
	"context"
	"fmt"

	"nfl-picks-service/internal/domain/matches"
	"nfl-picks-service/internal/providers"
)

// Week is one rendered week of matches.
type Week struct {
	Season        int
	Week          int
	Matches       []matches.Match
	ForcedMatchID string
}

// MatchIDs lists the ids of the week in schedule order.
func (w Week) MatchIDs() []string {
	return matches.IDs(w.Matches)
}

// Service fetches weeks through the configured provider and marks the
// featured match for a pooler.
type Service struct {
	provider providers.ScheduleProvider
}

// NewService constructs a Service with the provided provider.
func NewService(provider providers.ScheduleProvider) *Service {
	return &Service{provider: provider}
}

// Week fetches the schedule and resolves the featured and forced matches.
// featuredMatchID wins over the favorite team when set.
func (s *Service) Week(ctx context.Context, season, week int, featuredMatchID, favoriteTeam string) (Week, error) {
	if s == nil || s.provider == nil {
		return Week{}, providers.ErrProviderUnavailable
	}
	items, err := s.provider.FetchWeek(ctx, season, week)
	if err != nil {
		return Week{}, fmt.Errorf("schedule: season %d week %d: %w", season, week, err)
	}
	return Week{
		Season:        season,
		Week:          week,
		Matches:       matches.MarkFeatured(items, featuredMatchID, favoriteTeam),
		ForcedMatchID: matches.ForcedMatchID(items, favoriteTeam),
	}, nil
}
