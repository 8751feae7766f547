package bracket

import (
	"fmt"
	"strings"

	"nfl-picks-service/internal/domain/teams"
)

// Submission is a frozen wizard selection keyed by full team names.
type Submission struct {
	Winners   map[teams.Conference]map[teams.Division]string
	Wildcards map[teams.Conference][]string
}

// Record is a submission translated to short names, ready to persist.
type Record struct {
	Winners   map[teams.Conference]map[teams.Division]string
	Wildcards map[teams.Conference][]string
}

// Winner returns the short name recorded for a division.
func (r Record) Winner(conf teams.Conference, div teams.Division) string {
	return r.Winners[conf][div]
}

// WildcardList joins a conference's wildcards the way they are stored.
func (r Record) WildcardList(conf teams.Conference) string {
	return strings.Join(r.Wildcards[conf], ",")
}

// Record resolves every team through the directory. Unknown teams and
// teams placed outside their own conference or division are rejected.
func (s Submission) Record(dir *teams.Directory) (Record, error) {
	rec := Record{
		Winners:   make(map[teams.Conference]map[teams.Division]string, len(teams.Conferences)),
		Wildcards: make(map[teams.Conference][]string, len(teams.Conferences)),
	}
	for _, conf := range teams.Conferences {
		winners := make(map[teams.Division]string, len(teams.Divisions))
		for _, div := range teams.Divisions {
			name := s.Winners[conf][div]
			if name == "" {
				return Record{}, fmt.Errorf("bracket: %s %s: %w", conf, div, ErrWinnersIncomplete)
			}
			team, err := resolve(dir, name)
			if err != nil {
				return Record{}, err
			}
			if team.Conference != conf || team.Division != div {
				return Record{}, fmt.Errorf("bracket: %s is not in the %s %s", name, conf, div)
			}
			winners[div] = team.ShortName
		}
		rec.Winners[conf] = winners

		picked := s.Wildcards[conf]
		if len(picked) != MaxWildcards {
			return Record{}, fmt.Errorf("bracket: %s: %w", conf, ErrNotReady)
		}
		wildcards := make([]string, 0, len(picked))
		for _, name := range picked {
			team, err := resolve(dir, name)
			if err != nil {
				return Record{}, err
			}
			if team.Conference != conf {
				return Record{}, fmt.Errorf("bracket: %s is not in the %s", name, conf)
			}
			wildcards = append(wildcards, team.ShortName)
		}
		rec.Wildcards[conf] = wildcards
	}
	return rec, nil
}

func resolve(dir *teams.Directory, name string) (teams.Team, error) {
	short, err := dir.ShortNameOf(name)
	if err != nil {
		return teams.Team{}, fmt.Errorf("bracket: %w", err)
	}
	team, ok := dir.ByShortName(short)
	if !ok {
		return teams.Team{}, fmt.Errorf("bracket: %w", &teams.UnknownTeamError{Name: name})
	}
	return team, nil
}
