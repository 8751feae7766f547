package bracket

import (
	"fmt"
	"strings"

	"nfl-picks-service/internal/domain/teams"
)

// ActionKind names a wizard button.
type ActionKind string

const (
	ActionWinner   ActionKind = "winner"
	ActionWildcard ActionKind = "wildcard"
	ActionContinue ActionKind = "continue"
	ActionBack     ActionKind = "back"
	ActionSubmit   ActionKind = "submit"
	ActionNone     ActionKind = ""
)

// Action is one posted wizard event. Buttons encode it as
// "winner|AFC|North|Baltimore Ravens" or "wildcard|NFC|Green Bay Packers".
type Action struct {
	Kind       ActionKind
	Conference teams.Conference
	Division   teams.Division
	Team       string
}

// String renders the action as a button value.
func (a Action) String() string {
	switch a.Kind {
	case ActionWinner:
		return strings.Join([]string{string(a.Kind), string(a.Conference), string(a.Division), a.Team}, "|")
	case ActionWildcard:
		return strings.Join([]string{string(a.Kind), string(a.Conference), a.Team}, "|")
	default:
		return string(a.Kind)
	}
}

// ParseAction decodes a button value. An empty value is ActionNone.
func ParseAction(raw string) (Action, error) {
	parts := strings.Split(strings.TrimSpace(raw), "|")
	kind := ActionKind(parts[0])

	switch kind {
	case ActionNone, ActionContinue, ActionBack, ActionSubmit:
		if len(parts) != 1 {
			return Action{}, fmt.Errorf("bracket: malformed action %q", raw)
		}
		return Action{Kind: kind}, nil
	case ActionWinner:
		if len(parts) != 4 {
			return Action{}, fmt.Errorf("bracket: malformed action %q", raw)
		}
		conf, err := teams.ParseConference(parts[1])
		if err != nil {
			return Action{}, err
		}
		div, err := teams.ParseDivision(parts[2])
		if err != nil {
			return Action{}, err
		}
		return Action{Kind: kind, Conference: conf, Division: div, Team: parts[3]}, nil
	case ActionWildcard:
		if len(parts) != 3 {
			return Action{}, fmt.Errorf("bracket: malformed action %q", raw)
		}
		conf, err := teams.ParseConference(parts[1])
		if err != nil {
			return Action{}, err
		}
		return Action{Kind: kind, Conference: conf, Team: parts[2]}, nil
	default:
		return Action{}, fmt.Errorf("bracket: unknown action %q", raw)
	}
}
