package views

import (
	"fmt"
	"strconv"
	"time"

	"github.com/a-h/templ"

	apppicks "nfl-picks-service/internal/app/picks"
	"nfl-picks-service/internal/domain/matches"
)

const kickoffLayout = "Mon Jan 2, 3:04 PM MST"

// PicksView is the picks page model.
type PicksView struct {
	Action        string
	DisplayName   string
	Avatar        string
	FavoriteTeam  string
	Season        int
	Week          int
	HasTarget     bool
	Target        string
	FeaturedField string
	Matches       []MatchView
}

// MatchView is one row of the pick form.
type MatchView struct {
	ID       string
	Kickoff  string
	Home     matches.Side
	Away     matches.Side
	Featured bool
	Forced   bool
}

// NewPicksView shapes a loaded page for rendering, showing kickoffs in loc.
func NewPicksView(discordID string, page apppicks.Page, loc *time.Location) PicksView {
	if loc == nil {
		loc = time.UTC
	}
	pc := page.Context
	v := PicksView{
		Action:        fmt.Sprintf("/picks/%s/%d", discordID, pc.PickID),
		DisplayName:   pc.DisplayName,
		Avatar:        pc.Avatar,
		FavoriteTeam:  pc.FavoriteTeam,
		Season:        pc.Season,
		Week:          pc.Week,
		FeaturedField: apppicks.FeaturedField,
		Matches:       make([]MatchView, 0, len(page.Week.Matches)),
	}
	if pc.FeaturedMatchID != nil && pc.FeaturedTarget != nil {
		v.HasTarget = true
		v.Target = strconv.FormatFloat(*pc.FeaturedTarget, 'f', -1, 64)
	}
	for _, m := range page.Week.Matches {
		mv := MatchView{
			ID:       m.ID,
			Home:     m.Home,
			Away:     m.Away,
			Featured: m.IsFeatured,
			Forced:   m.ID == page.Week.ForcedMatchID,
		}
		if !m.Date.IsZero() {
			mv.Kickoff = m.Date.In(loc).Format(kickoffLayout)
		}
		v.Matches = append(v.Matches, mv)
	}
	return v
}

// Picks renders the weekly pick form.
func Picks(v PicksView) templ.Component {
	return component(PagePicks, v)
}
