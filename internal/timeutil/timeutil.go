package timeutil

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// DefaultDisplayZone is used when no display timezone is configured.
const DefaultDisplayZone = "America/New_York"

// Upstream schedules report kickoffs in several shapes. Layouts without
// an offset are read as UTC.
var kickoffLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DateLayout,
}

// ParseKickoff parses an upstream kickoff timestamp into UTC.
func ParseKickoff(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("timeutil: empty kickoff")
	}
	for _, layout := range kickoffLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("timeutil: unrecognised kickoff %q", value)
}

// ResolveLocation returns the named location, falling back to the default
// display zone and then UTC.
func ResolveLocation(name string) *time.Location {
	if name == "" {
		name = DefaultDisplayZone
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.UTC
}
