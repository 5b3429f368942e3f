package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidName         = errors.New("team name is empty")
	ErrSameTeamName        = errors.New("team names are the same")
	ErrMatchAlreadyStarted = errors.New("match already started")
	ErrTeamBusy            = errors.New("team is currently playing")
	// ErrAmbiguousOrder is returned by UpdateScore when home and away are
	// swapped relative to Start. The registry never swaps them on its own.
	ErrAmbiguousOrder = errors.New("team names are swapped")
)

// MatchError describes a rejected registry operation.
type MatchError struct {
	Op   string // start|update
	Home string
	Away string
	Team string // set for ErrTeamBusy
	Err  error
}

func (e *MatchError) Error() string {
	if e.Team != "" {
		return fmt.Sprintf("%s %s vs %s: %s: %v", e.Op, e.Home, e.Away, e.Team, e.Err)
	}
	return fmt.Sprintf("%s %s vs %s: %v", e.Op, e.Home, e.Away, e.Err)
}

func (e *MatchError) Unwrap() error { return e.Err }

// ErrorCode maps registry errors to stable machine-readable codes.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidName):
		return "invalid_name"
	case errors.Is(err, ErrSameTeamName):
		return "same_team"
	case errors.Is(err, ErrMatchAlreadyStarted):
		return "already_started"
	case errors.Is(err, ErrTeamBusy):
		return "team_busy"
	case errors.Is(err, ErrAmbiguousOrder):
		return "ambiguous_order"
	default:
		return "internal"
	}
}
