package thesportsdb

type eventsResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID        string `json:"idEvent"`
	HomeTeam  string `json:"strHomeTeam"`
	AwayTeam  string `json:"strAwayTeam"`
	DateEvent string `json:"dateEvent"`
	Time      string `json:"strTime"`
	Timestamp string `json:"strTimestamp"`
	Round     string `json:"intRound"`
	Season    string `json:"strSeason"`
}
