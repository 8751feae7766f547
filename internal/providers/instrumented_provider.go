package providers

import (
	"context"
	"log/slog"
	"time"

	"nfl-picks-service/internal/domain/matches"
	"nfl-picks-service/internal/logging"
	"nfl-picks-service/internal/metrics"
)

// instrumentedProvider records latency and failures for every fetch.
// It makes exactly one attempt; schedule fetches are never retried.
type instrumentedProvider struct {
	inner    ScheduleProvider
	logger   *slog.Logger
	recorder *metrics.Recorder
	name     string
	now      func() time.Time
}

// NewInstrumentedProvider wraps a provider with logging and metrics.
func NewInstrumentedProvider(inner ScheduleProvider, logger *slog.Logger, recorder *metrics.Recorder, name string) ScheduleProvider {
	return &instrumentedProvider{
		inner:    inner,
		logger:   logger,
		recorder: recorder,
		name:     name,
		now:      time.Now,
	}
}

func (p *instrumentedProvider) FetchWeek(ctx context.Context, season, week int) ([]matches.Match, error) {
	if p == nil || p.inner == nil {
		return nil, ErrProviderUnavailable
	}

	start := p.now()
	items, err := p.inner.FetchWeek(ctx, season, week)
	elapsed := p.now().Sub(start)
	p.recorder.RecordProviderAttempt(p.name, elapsed, err)

	logger := logging.FromContext(ctx, p.logger)
	if err != nil {
		if rl, ok := AsRateLimitError(err); ok {
			p.recorder.RecordRateLimit(p.name, rl.RetryAfter)
		}
		logWithProvider(ctx, logger, slog.LevelWarn, p.name, "schedule fetch failed",
			slog.Int(logging.FieldSeason, season),
			slog.Int(logging.FieldWeek, week),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any("err", err),
		)
		return nil, err
	}

	logWithProvider(ctx, logger, slog.LevelInfo, p.name, "schedule fetched",
		slog.Int(logging.FieldSeason, season),
		slog.Int(logging.FieldWeek, week),
		slog.Int(logging.FieldCount, len(items)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return items, nil
}
