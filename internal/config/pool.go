package config

// PoolConfig holds the pool's own settings: where picks are stored, the
// season the bracket defaults to, and how links and kickoffs are shown.
type PoolConfig struct {
	DatabaseURL     string
	Season          int
	PicksURL        string
	DisplayTimezone string
}

func loadPool() PoolConfig {
	return PoolConfig{
		DatabaseURL:     envOrDefault(envDatabaseURL, defaultDatabaseURL),
		Season:          intEnvOrDefault(envSeason, defaultSeason),
		PicksURL:        envOrDefault(envPicksURL, defaultPicksURL),
		DisplayTimezone: envOrDefault(envDisplayTimezone, defaultDisplayTimezone),
	}
}

// InMemory reports whether the pool should run without a database file.
func (c PoolConfig) InMemory() bool {
	return c.DatabaseURL == ":memory:"
}
