package server

import (
	"log/slog"

	"nfl-picks-service/internal/config"
	"nfl-picks-service/internal/domain/teams"
	"nfl-picks-service/internal/metrics"
	"nfl-picks-service/internal/providers"
)

// providerFactory assembles the schedule provider with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
	dir     *teams.Directory
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder, dir *teams.Directory) providerFactory {
	return providerFactory{logger: logger, metrics: metrics, dir: dir}
}

func (f providerFactory) build(cfg config.Config) providers.ScheduleProvider {
	base := selectProvider(cfg, f.dir, f.logger)
	return f.wrap(cfg, base)
}

func (f providerFactory) wrap(cfg config.Config, base providers.ScheduleProvider) providers.ScheduleProvider {
	return providers.NewInstrumentedProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base))
}
