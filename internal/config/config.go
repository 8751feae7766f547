package config

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	Provider        string
	ProviderTimeout Duration
	AdminToken      string
	TheSportsDB     TheSportsDBConfig
	ESPN            ESPNConfig
	Pool            PoolConfig
	Metrics         MetricsConfig
	Log             LogConfig
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		Provider:        envOrDefault(envProvider, defaultProvider),
		ProviderTimeout: durationEnvOrDefault(envProviderTimeout, defaultProviderTimeout),
		AdminToken:      envOrDefault(envAdminToken, ""),
		TheSportsDB:     loadTheSportsDB(),
		ESPN:            loadESPN(),
		Pool:            loadPool(),
		Metrics:         loadMetrics(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, ""),
			Format: envOrDefault(envLogFormat, ""),
		},
	}
}
