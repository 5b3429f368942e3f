package game

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want string
	}{
		{err: nil, want: ""},
		{err: fmt.Errorf("%w: %q", ErrInvalidName, " "), want: "invalid_name"},
		{err: &MatchError{Op: "start", Err: ErrSameTeamName}, want: "same_team"},
		{err: &MatchError{Op: "start", Err: ErrMatchAlreadyStarted}, want: "already_started"},
		{err: fmt.Errorf("step 2: %w", &MatchError{Op: "start", Err: ErrTeamBusy}), want: "team_busy"},
		{err: &MatchError{Op: "update", Err: ErrAmbiguousOrder}, want: "ambiguous_order"},
		{err: errors.New("boom"), want: "internal"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ErrorCode(tc.err), "err=%v", tc.err)
	}
}

func TestMatchError_Message(t *testing.T) {
	err := &MatchError{Op: "start", Home: "Team1", Away: "Team3", Team: "Team1", Err: ErrTeamBusy}
	require.Equal(t, "start Team1 vs Team3: Team1: team is currently playing", err.Error())

	err = &MatchError{Op: "update", Home: "B", Away: "A", Err: ErrAmbiguousOrder}
	require.Equal(t, "update B vs A: team names are swapped", err.Error())
}
