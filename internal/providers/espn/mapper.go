package espn

import (
	"strings"
	"time"

	"nfl-picks-service/internal/domain/matches"
	"nfl-picks-service/internal/domain/teams"
	"nfl-picks-service/internal/timeutil"
)

// mapEvent returns false for events without a home and away competitor.
func mapEvent(e eventResponse, dir *teams.Directory) (matches.Match, bool) {
	if len(e.Competitions) == 0 {
		return matches.Match{}, false
	}
	comp := e.Competitions[0]

	var home, away *competitorResponse
	for i := range comp.Competitors {
		switch strings.ToLower(comp.Competitors[i].HomeAway) {
		case "home":
			home = &comp.Competitors[i]
		case "away":
			away = &comp.Competitors[i]
		}
	}
	if home == nil || away == nil {
		return matches.Match{}, false
	}

	return matches.Match{
		ID:   strings.TrimSpace(e.ID),
		Date: kickoff(e.Date, comp.Date),
		Home: mapSide(*home, dir),
		Away: mapSide(*away, dir),
	}, true
}

func mapSide(c competitorResponse, dir *teams.Directory) matches.Side {
	short, err := dir.NormalizeShortName(c.Team.Abbreviation)
	if err != nil {
		short = strings.TrimSpace(c.Team.Abbreviation)
	}
	return matches.Side{
		ShortName:   short,
		DisplayName: strings.TrimSpace(c.Team.DisplayName),
		Record:      overallRecord(c.Records),
	}
}

// overallRecord prefers the "total" record and falls back to the first one.
func overallRecord(records []recordResponse) string {
	for _, r := range records {
		if r.Type == "total" || strings.EqualFold(r.Name, "overall") {
			return r.Summary
		}
	}
	if len(records) > 0 {
		return records[0].Summary
	}
	return ""
}

func kickoff(values ...string) time.Time {
	for _, v := range values {
		if t, err := timeutil.ParseKickoff(v); err == nil {
			return t
		}
	}
	return time.Time{}
}
