package picks

import (
	"encoding/json"
	"fmt"
	"strings"

	"nfl-picks-service/internal/domain/matches"
	"nfl-picks-service/internal/domain/teams"
)

// NoPick is stored for every match the pooler left blank.
const NoPick = "N/A"

// PickSet maps a match id to a team short name or NoPick.
type PickSet map[string]string

// BuildPicks produces one entry per match id the pooler was shown.
// matchIDs must come from the server-side schedule, never from the form,
// so the key set cannot be shrunk or inflated by the client.
func BuildPicks(matchIDs []string, formValues map[string]string, forcedMatchID, favoriteTeam string) PickSet {
	out := make(PickSet, len(matchIDs))
	for _, id := range matchIDs {
		if pick := strings.TrimSpace(formValues[id]); pick != "" {
			out[id] = pick
			continue
		}
		if forcedMatchID != "" && id == forcedMatchID && favoriteTeam != "" {
			out[id] = favoriteTeam
			continue
		}
		out[id] = NoPick
	}
	return out
}

// Validate checks every entry against the match it was made for. A value
// that is neither NoPick nor one of the two sides fails with
// *teams.UnknownTeamError.
func (p PickSet) Validate(items []matches.Match) error {
	for _, m := range items {
		pick, ok := p[m.ID]
		if !ok || pick == NoPick || pick == m.Home.ShortName || pick == m.Away.ShortName {
			continue
		}
		return fmt.Errorf("picks: match %s: %w", m.ID, &teams.UnknownTeamError{Name: pick})
	}
	return nil
}

// Encode serialises the set as a JSON object with sorted keys.
func (p PickSet) Encode() (string, error) {
	raw, err := json.Marshal(map[string]string(p))
	if err != nil {
		return "", fmt.Errorf("picks: encode: %w", err)
	}
	return string(raw), nil
}

// Decode parses a stored pick string.
func Decode(raw string) (PickSet, error) {
	out := PickSet{}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("picks: decode: %w", err)
	}
	return out, nil
}
