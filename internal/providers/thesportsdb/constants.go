package thesportsdb

import "time"

const (
	providerName       = "thesportsdb"
	defaultBaseURL     = "https://www.thesportsdb.com/api/v1/json"
	defaultAPIKey      = "3"
	defaultLeagueID    = "4391"
	defaultHTTPTimeout = 10 * time.Second
)

// Postseason rounds use the provider's own round numbers.
var postseasonRounds = map[int]int{
	19: 160,
	20: 125,
	21: 150,
	22: 200,
}
