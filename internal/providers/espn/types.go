package espn

type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	Name         string                `json:"name"`
	Competitions []competitionResponse `json:"competitions"`
}

type competitionResponse struct {
	ID          string               `json:"id"`
	Date        string               `json:"date"`
	Competitors []competitorResponse `json:"competitors"`
}

type competitorResponse struct {
	ID       string           `json:"id"`
	HomeAway string           `json:"homeAway"`
	Team     teamResponse     `json:"team"`
	Records  []recordResponse `json:"records"`
}

type teamResponse struct {
	ID           string `json:"id"`
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
}

type recordResponse struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Summary string `json:"summary"`
}
