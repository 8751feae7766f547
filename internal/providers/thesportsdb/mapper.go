package thesportsdb

import (
	"strings"
	"time"

	"nfl-picks-service/internal/domain/matches"
	"nfl-picks-service/internal/domain/teams"
	"nfl-picks-service/internal/timeutil"
)

func mapEvent(e eventResponse, dir *teams.Directory) matches.Match {
	return matches.Match{
		ID:   strings.TrimSpace(e.ID),
		Date: kickoff(e),
		Home: mapSide(e.HomeTeam, dir),
		Away: mapSide(e.AwayTeam, dir),
	}
}

// Unknown names are kept raw so the page can still show them.
func mapSide(fullName string, dir *teams.Directory) matches.Side {
	name := strings.TrimSpace(fullName)
	return matches.Side{
		ShortName:   dir.DisplayShortName(name),
		DisplayName: name,
	}
}

func kickoff(e eventResponse) time.Time {
	if t, err := timeutil.ParseKickoff(e.Timestamp); err == nil {
		return t
	}
	if e.DateEvent != "" && e.Time != "" {
		if t, err := timeutil.ParseKickoff(e.DateEvent + " " + e.Time); err == nil {
			return t
		}
	}
	if t, err := timeutil.ParseKickoff(e.DateEvent); err == nil {
		return t
	}
	return time.Time{}
}

// roundFor returns the provider round for a pool week.
func roundFor(week int) int {
	if round, ok := postseasonRounds[week]; ok {
		return round
	}
	return week
}
