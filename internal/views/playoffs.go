package views

import (
	"fmt"

	"github.com/a-h/templ"

	appbracket "nfl-picks-service/internal/app/bracket"
	domainbracket "nfl-picks-service/internal/domain/bracket"
	"nfl-picks-service/internal/domain/pool"
	"nfl-picks-service/internal/domain/teams"
)

// PlayoffsView is the bracket wizard page model.
type PlayoffsView struct {
	Action             string
	DisplayName        string
	Avatar             string
	Season             int
	Phase              domainbracket.Phase
	SelectingWildcards bool
	State              string
	CanContinue        bool
	CanSubmit          bool
	ContinueAction     string
	BackAction         string
	SubmitAction       string
	Conferences        []ConferenceView
}

// ConferenceView groups one conference's choices.
type ConferenceView struct {
	Name          teams.Conference
	Divisions     []DivisionView
	Wildcards     []TeamOption
	WildcardCount int
}

// DivisionView lists the teams a division winner is picked from.
type DivisionView struct {
	Name  teams.Division
	Teams []TeamOption
}

// TeamOption is one clickable team.
type TeamOption struct {
	FullName string
	Action   string
	Selected bool
	Disabled bool
}

// NewPlayoffsView shapes the wizard for rendering. The encoded state is
// posted back with every button.
func NewPlayoffsView(discordID string, bc pool.BracketContext, w *domainbracket.Wizard, dir *teams.Directory) (PlayoffsView, error) {
	state, err := domainbracket.EncodeState(w.State())
	if err != nil {
		return PlayoffsView{}, err
	}
	v := PlayoffsView{
		Action:             fmt.Sprintf("/playoffs/%s/%d", discordID, bc.Season),
		DisplayName:        bc.DisplayName,
		Avatar:             bc.Avatar,
		Season:             bc.Season,
		Phase:              w.Phase(),
		SelectingWildcards: w.Phase() == domainbracket.SelectingWildcards,
		State:              state,
		CanContinue:        w.AllWinnersSelected(),
		CanSubmit:          w.CanSubmit(),
		ContinueAction:     appbracket.Action{Kind: appbracket.ActionContinue}.String(),
		BackAction:         appbracket.Action{Kind: appbracket.ActionBack}.String(),
		SubmitAction:       appbracket.Action{Kind: appbracket.ActionSubmit}.String(),
	}
	for _, conf := range teams.Conferences {
		v.Conferences = append(v.Conferences, conferenceView(conf, w, dir))
	}
	return v, nil
}

func conferenceView(conf teams.Conference, w *domainbracket.Wizard, dir *teams.Directory) ConferenceView {
	cv := ConferenceView{Name: conf, WildcardCount: len(w.Wildcards(conf))}
	for _, div := range teams.Divisions {
		dv := DivisionView{Name: div}
		for _, t := range dir.Division(conf, div) {
			dv.Teams = append(dv.Teams, TeamOption{
				FullName: t.FullName,
				Action:   appbracket.Action{Kind: appbracket.ActionWinner, Conference: conf, Division: div, Team: t.FullName}.String(),
				Selected: w.Winner(conf, div) == t.FullName,
			})
		}
		cv.Divisions = append(cv.Divisions, dv)
	}
	full := cv.WildcardCount >= domainbracket.MaxWildcards
	for _, t := range dir.Conference(conf) {
		selected := w.IsWildcard(conf, t.FullName)
		cv.Wildcards = append(cv.Wildcards, TeamOption{
			FullName: t.FullName,
			Action:   appbracket.Action{Kind: appbracket.ActionWildcard, Conference: conf, Team: t.FullName}.String(),
			Selected: selected,
			Disabled: w.IsWinner(conf, t.FullName) || (full && !selected),
		})
	}
	return cv
}

// Playoffs renders the bracket wizard.
func Playoffs(v PlayoffsView) templ.Component {
	return component(PagePlayoffs, v)
}
