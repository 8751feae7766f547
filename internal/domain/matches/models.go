package matches

import "time"

// Side is one participant of a match as rendered on the picks page.
type Side struct {
	ShortName   string `json:"shortName"`
	DisplayName string `json:"displayName"`
	Record      string `json:"record,omitempty"`
}

// Match is the uniform shape every schedule provider is normalized into.
// Matches live for one render cycle and are never persisted.
type Match struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Home       Side      `json:"home"`
	Away       Side      `json:"away"`
	IsFeatured bool      `json:"isFeatured"`
}

// Involves reports whether the short name plays in the match.
func (m Match) Involves(shortName string) bool {
	if shortName == "" {
		return false
	}
	return m.Home.ShortName == shortName || m.Away.ShortName == shortName
}

// IDs returns match ids in schedule order.
func IDs(items []Match) []string {
	ids := make([]string, 0, len(items))
	for _, m := range items {
		ids = append(ids, m.ID)
	}
	return ids
}

// ForcedMatchID returns the id of the first match the favorite team plays in.
func ForcedMatchID(items []Match, favoriteTeam string) string {
	for _, m := range items {
		if m.Involves(favoriteTeam) {
			return m.ID
		}
	}
	return ""
}

// MarkFeatured flags at most one match. An explicit featured id wins;
// otherwise the first match involving the favorite team is featured.
func MarkFeatured(items []Match, featuredMatchID, favoriteTeam string) []Match {
	out := make([]Match, len(items))
	copy(out, items)
	for i := range out {
		out[i].IsFeatured = false
	}

	if featuredMatchID != "" {
		for i := range out {
			if out[i].ID == featuredMatchID {
				out[i].IsFeatured = true
				return out
			}
		}
		return out
	}

	for i := range out {
		if out[i].Involves(favoriteTeam) {
			out[i].IsFeatured = true
			break
		}
	}
	return out
}
