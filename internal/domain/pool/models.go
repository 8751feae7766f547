package pool

import "errors"

var (
	// ErrNotFound is returned when no row matches the pooler and instance.
	ErrNotFound = errors.New("pool: not found")
	// ErrAlreadySubmitted is returned when picks or a bracket are already stored.
	ErrAlreadySubmitted = errors.New("pool: already submitted")
)

// PickContext is everything the picks page needs about one pick instance.
type PickContext struct {
	PickID          int64
	Avatar          string
	DisplayName     string
	FavoriteTeam    string
	Season          int
	Week            int
	PickString      *string
	FeaturedMatchID *string
	FeaturedTarget  *float64
}

// Submitted reports whether picks were already stored for the instance.
func (c PickContext) Submitted() bool {
	return c.PickString != nil
}

// BracketContext identifies the pooler filling a playoff bracket.
type BracketContext struct {
	PoolerID     int64
	Avatar       string
	DisplayName  string
	FavoriteTeam string
	Season       int
	Submitted    bool
}

// PrimeResult describes the pick instance handed out for a week.
type PrimeResult struct {
	PickID  int64 `json:"pickId"`
	Created bool  `json:"created"`
	Filled  bool  `json:"filled"`
}

// Feature is the featured match of a week and its over/under target.
type Feature struct {
	Season  int     `json:"season"`
	Week    int     `json:"week"`
	MatchID string  `json:"matchId"`
	Target  float64 `json:"target"`
}

// Pooler registers a pool member for a Discord user.
type Pooler struct {
	DiscordID    string `json:"discordId"`
	Name         string `json:"name"`
	Avatar       string `json:"avatar"`
	FavoriteTeam string `json:"favoriteTeam"`
}
