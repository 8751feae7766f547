package config

// TheSportsDBConfig controls how we talk to TheSportsDB.
type TheSportsDBConfig struct {
	BaseURL  string
	APIKey   string
	LeagueID int
}

// ESPNConfig points the ESPN scoreboard client at its API.
type ESPNConfig struct {
	BaseURL string
}

func loadTheSportsDB() TheSportsDBConfig {
	return TheSportsDBConfig{
		BaseURL:  envOrDefault(envSportsDBBaseURL, defaultSportsDBBaseURL),
		APIKey:   envOrDefault(envSportsDBAPIKey, defaultSportsDBAPIKey),
		LeagueID: intEnvOrDefault(envSportsDBLeagueID, defaultSportsDBLeagueID),
	}
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		BaseURL: envOrDefault(envESPNBaseURL, defaultESPNBaseURL),
	}
}
