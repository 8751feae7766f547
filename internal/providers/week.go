package providers

import "fmt"

// Season type codes used by the upstream schedule APIs.
const (
	SeasonTypeRegular = 2
	SeasonTypePost    = 3
)

// LastRegularWeek is the final week of the regular season.
const LastRegularWeek = 18

// RemoteWeek is a pool week expressed in the upstream encoding.
type RemoteWeek struct {
	SubSeasonIndex int
	SeasonType     int
}

var postseasonWeeks = map[int]RemoteWeek{
	19: {SubSeasonIndex: 1, SeasonType: SeasonTypePost},
	20: {SubSeasonIndex: 2, SeasonType: SeasonTypePost},
	21: {SubSeasonIndex: 3, SeasonType: SeasonTypePost},
	// Index 4 is the bye week before the final.
	22: {SubSeasonIndex: 5, SeasonType: SeasonTypePost},
}

// ResolveWeek maps a pool week onto the upstream (index, season type) pair.
func ResolveWeek(week int) (RemoteWeek, error) {
	if week >= 1 && week <= LastRegularWeek {
		return RemoteWeek{SubSeasonIndex: week, SeasonType: SeasonTypeRegular}, nil
	}
	if rw, ok := postseasonWeeks[week]; ok {
		return rw, nil
	}
	return RemoteWeek{}, fmt.Errorf("week %d: %w", week, ErrInvalidWeek)
}

// IsPostseason reports whether the pool week is a playoff round.
func IsPostseason(week int) bool {
	_, ok := postseasonWeeks[week]
	return ok
}
