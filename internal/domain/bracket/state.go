package bracket

import (
	"encoding/json"
	"fmt"

	"nfl-picks-service/internal/domain/teams"
)

// State is the serialisable snapshot carried between wizard requests.
type State struct {
	Phase        Phase                     `json:"phase"`
	AFCWinners   map[teams.Division]string `json:"afcWinners"`
	NFCWinners   map[teams.Division]string `json:"nfcWinners"`
	AFCWildcards []string                  `json:"afcWildcards"`
	NFCWildcards []string                  `json:"nfcWildcards"`
}

// State captures the wizard for a later Restore.
func (w *Wizard) State() State {
	s := State{
		Phase:        w.phase,
		AFCWinners:   map[teams.Division]string{},
		NFCWinners:   map[teams.Division]string{},
		AFCWildcards: w.Wildcards(teams.AFC),
		NFCWildcards: w.Wildcards(teams.NFC),
	}
	for _, div := range teams.Divisions {
		if name := w.Winner(teams.AFC, div); name != "" {
			s.AFCWinners[div] = name
		}
		if name := w.Winner(teams.NFC, div); name != "" {
			s.NFCWinners[div] = name
		}
	}
	if s.AFCWildcards == nil {
		s.AFCWildcards = []string{}
	}
	if s.NFCWildcards == nil {
		s.NFCWildcards = []string{}
	}
	return s
}

// Restore replays a snapshot through the wizard's rules, so a tampered
// snapshot can only produce a state the wizard itself allows. Wildcards
// survive a snapshot taken after Back.
func Restore(s State) *Wizard {
	w := NewWizard()
	for _, div := range teams.Divisions {
		if name := s.AFCWinners[div]; name != "" {
			w.ToggleWinner(teams.AFC, div, name)
		}
		if name := s.NFCWinners[div]; name != "" {
			w.ToggleWinner(teams.NFC, div, name)
		}
	}
	for _, name := range s.AFCWildcards {
		w.addWildcard(teams.AFC, name)
	}
	for _, name := range s.NFCWildcards {
		w.addWildcard(teams.NFC, name)
	}
	if s.Phase == SelectingWildcards {
		_ = w.ProceedToWildcards()
	}
	return w
}

// EncodeState serialises a snapshot for a hidden form field.
func EncodeState(s State) (string, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("bracket: encode state: %w", err)
	}
	return string(raw), nil
}

// DecodeState parses a snapshot; an empty string is a fresh wizard.
func DecodeState(raw string) (State, error) {
	if raw == "" {
		return State{Phase: SelectingWinners}, nil
	}
	var s State
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return State{}, fmt.Errorf("bracket: decode state: %w", err)
	}
	return s, nil
}
