package bracket

import (
	"errors"
	"slices"

	"nfl-picks-service/internal/domain/teams"
)

// Phase is the wizard step currently shown to the pooler.
type Phase string

const (
	SelectingWinners   Phase = "winners"
	SelectingWildcards Phase = "wildcards"
)

// MaxWildcards is the number of wildcard teams per conference.
const MaxWildcards = 3

var (
	ErrWinnersIncomplete = errors.New("bracket: every division needs a winner")
	ErrNotReady          = errors.New("bracket: both conferences need exactly three wildcards")
)

type selection struct {
	winners   map[teams.Division]string
	wildcards []string
}

func newSelection() *selection {
	return &selection{winners: make(map[teams.Division]string, len(teams.Divisions))}
}

// Wizard walks a pooler through division winners then wildcards.
// It is driven by one event at a time and is not safe for concurrent use.
type Wizard struct {
	phase      Phase
	selections map[teams.Conference]*selection
}

// NewWizard starts in the winners phase with nothing selected.
func NewWizard() *Wizard {
	w := &Wizard{
		phase:      SelectingWinners,
		selections: make(map[teams.Conference]*selection, len(teams.Conferences)),
	}
	for _, conf := range teams.Conferences {
		w.selections[conf] = newSelection()
	}
	return w
}

// Phase returns the current step.
func (w *Wizard) Phase() Phase {
	return w.phase
}

// ToggleWinner selects, replaces or clears a division winner.
// Only valid while selecting winners; returns false when ignored.
func (w *Wizard) ToggleWinner(conf teams.Conference, div teams.Division, team string) bool {
	if w.phase != SelectingWinners || team == "" || !slices.Contains(teams.Divisions, div) {
		return false
	}
	sel, ok := w.selections[conf]
	if !ok {
		return false
	}

	if sel.winners[div] == team {
		delete(sel.winners, div)
		return true
	}
	sel.winners[div] = team
	// A division winner can never also hold a wildcard spot.
	sel.wildcards = slices.DeleteFunc(sel.wildcards, func(name string) bool { return name == team })
	return true
}

// Winner returns the selected winner of a division, or "".
func (w *Wizard) Winner(conf teams.Conference, div teams.Division) string {
	if sel, ok := w.selections[conf]; ok {
		return sel.winners[div]
	}
	return ""
}

// WinnerCount returns how many divisions of a conference have a winner.
func (w *Wizard) WinnerCount(conf teams.Conference) int {
	if sel, ok := w.selections[conf]; ok {
		return len(sel.winners)
	}
	return 0
}

// IsWinner reports whether the team won any division of the conference.
func (w *Wizard) IsWinner(conf teams.Conference, team string) bool {
	sel, ok := w.selections[conf]
	if !ok {
		return false
	}
	for _, winner := range sel.winners {
		if winner == team {
			return true
		}
	}
	return false
}

// AllWinnersSelected is true once all eight divisions have a winner.
func (w *Wizard) AllWinnersSelected() bool {
	for _, conf := range teams.Conferences {
		if w.WinnerCount(conf) != len(teams.Divisions) {
			return false
		}
	}
	return true
}

// ProceedToWildcards moves to the wildcard phase when every division is decided.
func (w *Wizard) ProceedToWildcards() error {
	if w.phase == SelectingWildcards {
		return nil
	}
	if !w.AllWinnersSelected() {
		return ErrWinnersIncomplete
	}
	w.phase = SelectingWildcards
	return nil
}

// Back returns to the winners phase keeping every selection.
func (w *Wizard) Back() {
	w.phase = SelectingWinners
}

// ToggleWildcard adds or removes a wildcard. Division winners, a full
// conference and the winners phase all turn the toggle into a no-op.
func (w *Wizard) ToggleWildcard(conf teams.Conference, team string) bool {
	if w.phase != SelectingWildcards || team == "" {
		return false
	}
	sel, ok := w.selections[conf]
	if !ok || w.IsWinner(conf, team) {
		return false
	}
	if idx := slices.Index(sel.wildcards, team); idx >= 0 {
		sel.wildcards = slices.Delete(sel.wildcards, idx, idx+1)
		return true
	}
	return w.addWildcard(conf, team)
}

func (w *Wizard) addWildcard(conf teams.Conference, team string) bool {
	sel, ok := w.selections[conf]
	if !ok || team == "" || w.IsWinner(conf, team) {
		return false
	}
	if slices.Contains(sel.wildcards, team) || len(sel.wildcards) >= MaxWildcards {
		return false
	}
	sel.wildcards = append(sel.wildcards, team)
	return true
}

// Wildcards returns a copy of a conference's wildcards in selection order.
func (w *Wizard) Wildcards(conf teams.Conference) []string {
	if sel, ok := w.selections[conf]; ok {
		return slices.Clone(sel.wildcards)
	}
	return nil
}

// IsWildcard reports whether the team holds a wildcard spot.
func (w *Wizard) IsWildcard(conf teams.Conference, team string) bool {
	if sel, ok := w.selections[conf]; ok {
		return slices.Contains(sel.wildcards, team)
	}
	return false
}

// CanSubmit is true in the wildcard phase with three wildcards per conference.
func (w *Wizard) CanSubmit() bool {
	if w.phase != SelectingWildcards {
		return false
	}
	for _, conf := range teams.Conferences {
		if len(w.selections[conf].wildcards) != MaxWildcards {
			return false
		}
	}
	return true
}

// Submit freezes the current selection.
func (w *Wizard) Submit() (Submission, error) {
	if !w.CanSubmit() {
		return Submission{}, ErrNotReady
	}
	sub := Submission{
		Winners:   make(map[teams.Conference]map[teams.Division]string, len(teams.Conferences)),
		Wildcards: make(map[teams.Conference][]string, len(teams.Conferences)),
	}
	for _, conf := range teams.Conferences {
		sel := w.selections[conf]
		winners := make(map[teams.Division]string, len(sel.winners))
		for div, name := range sel.winners {
			winners[div] = name
		}
		sub.Winners[conf] = winners
		sub.Wildcards[conf] = slices.Clone(sel.wildcards)
	}
	return sub, nil
}
