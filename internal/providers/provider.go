package providers

import (
	"context"

	"nfl-picks-service/internal/domain/matches"
)

// ScheduleProvider fetches one NFL week and normalizes it into matches.
// Weeks 1-18 are the regular season and 19-22 the postseason rounds.
// Implementations issue a single upstream request per call.
type ScheduleProvider interface {
	FetchWeek(ctx context.Context, season, week int) ([]matches.Match, error)
}
