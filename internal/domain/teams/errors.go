package teams

import (
	"errors"
	"fmt"
)

// UnknownTeamError is returned when a name or abbreviation has no directory entry.
type UnknownTeamError struct {
	Name string
}

func (e *UnknownTeamError) Error() string {
	return fmt.Sprintf("unknown team %q", e.Name)
}

// AsUnknownTeamError attempts to unwrap an error into an UnknownTeamError.
func AsUnknownTeamError(err error) (*UnknownTeamError, bool) {
	var utErr *UnknownTeamError
	if errors.As(err, &utErr) {
		return utErr, true
	}
	return nil, false
}
