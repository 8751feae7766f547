package teams

import (
	"fmt"
	"strings"
)

// Conference is one of the two NFL conferences.
type Conference string

// Division is a compass division inside a conference.
type Division string

const (
	AFC Conference = "AFC"
	NFC Conference = "NFC"

	North Division = "North"
	South Division = "South"
	East  Division = "East"
	West  Division = "West"
)

// Conferences lists conferences in display order.
var Conferences = []Conference{AFC, NFC}

// Divisions lists divisions in declaration order.
var Divisions = []Division{North, South, East, West}

// Team represents a franchise under its current name.
type Team struct {
	FullName   string     `json:"fullName" yaml:"fullName"`
	ShortName  string     `json:"shortName" yaml:"shortName"`
	Conference Conference `json:"conference" yaml:"conference"`
	Division   Division   `json:"division" yaml:"division"`
}

// ParseConference accepts AFC/NFC in any case.
func ParseConference(raw string) (Conference, error) {
	switch Conference(strings.ToUpper(strings.TrimSpace(raw))) {
	case AFC:
		return AFC, nil
	case NFC:
		return NFC, nil
	}
	return "", fmt.Errorf("teams: unknown conference %q", raw)
}

// ParseDivision accepts North/South/East/West in any case.
func ParseDivision(raw string) (Division, error) {
	trimmed := strings.TrimSpace(raw)
	for _, d := range Divisions {
		if strings.EqualFold(string(d), trimmed) {
			return d, nil
		}
	}
	return "", fmt.Errorf("teams: unknown division %q", raw)
}
