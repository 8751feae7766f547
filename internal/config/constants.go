package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envProviderTimeout = "PROVIDER_TIMEOUT"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken      = "ADMIN_TOKEN"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"

	envSportsDBBaseURL  = "THESPORTSDB_BASE_URL"
	envSportsDBAPIKey   = "THESPORTSDB_API_KEY"
	envSportsDBLeagueID = "THESPORTSDB_LEAGUE_ID"
	envESPNBaseURL      = "ESPN_BASE_URL"

	envDatabaseURL     = "DATABASE_URL"
	envSeason          = "CONF_SEASON"
	envPicksURL        = "PICKS_URL"
	envDisplayTimezone = "DISPLAY_TIMEZONE"

	defaultPort     = "4000"
	defaultProvider = "fixture"
	// Upstream schedule calls are made while a pooler waits on the page.
	defaultProviderTimeout = 10 * Duration(time.Second)
	defaultMetricsPort     = "9090"
	defaultServiceName     = "nfl-picks-service"

	defaultSportsDBBaseURL  = "https://www.thesportsdb.com/api/v1/json"
	defaultSportsDBAPIKey   = "3"
	defaultSportsDBLeagueID = 4391
	defaultESPNBaseURL      = "https://site.api.espn.com/apis/site/v2/sports/football/nfl"

	defaultDatabaseURL     = "picks.db"
	defaultSeason          = 2024
	defaultPicksURL        = "http://localhost:4000"
	defaultDisplayTimezone = "America/New_York"
)
