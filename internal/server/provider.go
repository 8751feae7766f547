package server

import (
	"log/slog"
	"net/http"
	"strings"

	"nfl-picks-service/internal/config"
	"nfl-picks-service/internal/domain/teams"
	"nfl-picks-service/internal/logging"
	"nfl-picks-service/internal/providers"
	"nfl-picks-service/internal/providers/espn"
	"nfl-picks-service/internal/providers/fixture"
	"nfl-picks-service/internal/providers/thesportsdb"
)

func selectProvider(cfg config.Config, dir *teams.Directory, logger *slog.Logger) providers.ScheduleProvider {
	client := &http.Client{Timeout: cfg.ProviderTimeout}

	switch strings.ToLower(cfg.Provider) {
	case "fixture", "":
		return fixture.New(dir)
	case "thesportsdb":
		return thesportsdb.NewClient(thesportsdb.Config{
			BaseURL:    cfg.TheSportsDB.BaseURL,
			APIKey:     cfg.TheSportsDB.APIKey,
			LeagueID:   cfg.TheSportsDB.LeagueID,
			HTTPClient: client,
			Directory:  dir,
		})
	case "espn":
		return espn.NewClient(espn.Config{
			BaseURL:    cfg.ESPN.BaseURL,
			HTTPClient: client,
			Directory:  dir,
		})
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New(dir)
	}
}
