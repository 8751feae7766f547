package teams

import "strings"

// nflTeams is the canonical listing, grouped by conference then division.
var nflTeams = []Team{
	{"Baltimore Ravens", "BAL", AFC, North},
	{"Cincinnati Bengals", "CIN", AFC, North},
	{"Cleveland Browns", "CLE", AFC, North},
	{"Pittsburgh Steelers", "PIT", AFC, North},
	{"Houston Texans", "HOU", AFC, South},
	{"Indianapolis Colts", "IND", AFC, South},
	{"Jacksonville Jaguars", "JAX", AFC, South},
	{"Tennessee Titans", "TEN", AFC, South},
	{"Buffalo Bills", "BUF", AFC, East},
	{"Miami Dolphins", "MIA", AFC, East},
	{"New England Patriots", "NE", AFC, East},
	{"New York Jets", "NYJ", AFC, East},
	{"Denver Broncos", "DEN", AFC, West},
	{"Kansas City Chiefs", "KC", AFC, West},
	{"Las Vegas Raiders", "LV", AFC, West},
	{"Los Angeles Chargers", "LAC", AFC, West},
	{"Chicago Bears", "CHI", NFC, North},
	{"Detroit Lions", "DET", NFC, North},
	{"Green Bay Packers", "GB", NFC, North},
	{"Minnesota Vikings", "MIN", NFC, North},
	{"Atlanta Falcons", "ATL", NFC, South},
	{"Carolina Panthers", "CAR", NFC, South},
	{"New Orleans Saints", "NO", NFC, South},
	{"Tampa Bay Buccaneers", "TB", NFC, South},
	{"Dallas Cowboys", "DAL", NFC, East},
	{"New York Giants", "NYG", NFC, East},
	{"Philadelphia Eagles", "PHI", NFC, East},
	{"Washington Commanders", "WAS", NFC, East},
	{"Arizona Cardinals", "ARI", NFC, West},
	{"Los Angeles Rams", "LAR", NFC, West},
	{"San Francisco 49ers", "SF", NFC, West},
	{"Seattle Seahawks", "SEA", NFC, West},
}

// Historical franchise names still returned by schedule providers.
var nameAliases = map[string]string{
	"St. Louis Rams":           "LAR",
	"Oakland Raiders":          "LV",
	"San Diego Chargers":       "LAC",
	"Washington":               "WAS",
	"Washington Redskins":      "WAS",
	"Washington Football Team": "WAS",
}

// Provider abbreviations that differ from the canonical short names.
var shortAliases = map[string]string{
	"WSH": "WAS",
	"LA":  "LAR",
	"JAC": "JAX",
	"OAK": "LV",
	"SD":  "LAC",
	"STL": "LAR",
}

// Directory resolves team names and abbreviations. It is read-only after
// construction and safe to share across requests.
type Directory struct {
	teams   []Team
	byName  map[string]string
	byShort map[string]Team
	names   map[string][]string
}

// NewDirectory builds the directory from the canonical NFL listing.
func NewDirectory() *Directory {
	d := &Directory{
		teams:   make([]Team, len(nflTeams)),
		byName:  make(map[string]string, len(nflTeams)+len(nameAliases)),
		byShort: make(map[string]Team, len(nflTeams)),
		names:   make(map[string][]string, len(nflTeams)),
	}
	copy(d.teams, nflTeams)
	for _, t := range d.teams {
		d.byName[t.FullName] = t.ShortName
		d.byShort[t.ShortName] = t
		d.names[t.ShortName] = append(d.names[t.ShortName], t.FullName)
	}
	for name, short := range nameAliases {
		d.byName[name] = short
		d.names[short] = append(d.names[short], name)
	}
	return d
}

// ShortNameOf returns the abbreviation for a full team name.
func (d *Directory) ShortNameOf(fullName string) (string, error) {
	if short, ok := d.byName[strings.TrimSpace(fullName)]; ok {
		return short, nil
	}
	return "", &UnknownTeamError{Name: fullName}
}

// DisplayShortName resolves a full name for display, falling back to the raw name.
func (d *Directory) DisplayShortName(fullName string) string {
	if short, err := d.ShortNameOf(fullName); err == nil {
		return short
	}
	return fullName
}

// NormalizeShortName maps a provider abbreviation onto the canonical short name.
func (d *Directory) NormalizeShortName(abbr string) (string, error) {
	key := strings.ToUpper(strings.TrimSpace(abbr))
	if canonical, ok := shortAliases[key]; ok {
		key = canonical
	}
	if _, ok := d.byShort[key]; ok {
		return key, nil
	}
	return "", &UnknownTeamError{Name: abbr}
}

// ByShortName returns the current team for an abbreviation.
func (d *Directory) ByShortName(short string) (Team, bool) {
	t, ok := d.byShort[short]
	return t, ok
}

// FullNamesOf lists every known full name (current name first) for an abbreviation.
func (d *Directory) FullNamesOf(short string) []string {
	names := d.names[short]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// TeamsByConferenceAndDivision returns AFC then NFC, each in North, South,
// East, West order, keeping listing order inside a division.
func (d *Directory) TeamsByConferenceAndDivision() []Team {
	out := make([]Team, 0, len(d.teams))
	for _, conf := range Conferences {
		out = append(out, d.Conference(conf)...)
	}
	return out
}

// Conference returns a conference's teams in division order.
func (d *Directory) Conference(conf Conference) []Team {
	out := make([]Team, 0, len(d.teams)/2)
	for _, div := range Divisions {
		out = append(out, d.Division(conf, div)...)
	}
	return out
}

// Division returns the teams of one division in listing order.
func (d *Directory) Division(conf Conference, div Division) []Team {
	var out []Team
	for _, t := range d.teams {
		if t.Conference == conf && t.Division == div {
			out = append(out, t)
		}
	}
	return out
}
