package testutil

import (
	"nfl-picks-service/internal/domain/matches"
)

// SampleMatch returns a match between two short names kicking off at the
// given RFC3339 time.
func SampleMatch(id, away, home, kickoff string) matches.Match {
	return matches.Match{
		ID:   id,
		Date: MustParseRFC3339(kickoff),
		Home: matches.Side{ShortName: home, DisplayName: home},
		Away: matches.Side{ShortName: away, DisplayName: away},
	}
}

// SampleWeek returns three matches; BAL plays in the second.
func SampleWeek() []matches.Match {
	return []matches.Match{
		SampleMatch("401", "PIT", "ATL", "2024-09-08T17:00:00Z"),
		SampleMatch("402", "BAL", "KC", "2024-09-06T00:20:00Z"),
		SampleMatch("403", "GB", "PHI", "2024-09-07T00:15:00Z"),
	}
}
