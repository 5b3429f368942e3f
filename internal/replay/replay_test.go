package replay

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/scoreboard/internal/game"
)

const worldCup = `
name: world cup
steps:
  - {op: start, home: Mexico, away: Canada}
  - {op: update, home: mexico, away: canada, homeScore: 0, awayScore: 5}
  - {op: start, home: Spain, away: Brazil}
  - {op: update, home: Spain, away: Brazil, homeScore: 10, awayScore: 2}
  - {op: start, home: Spain, away: Germany}
  - {op: update, home: Brazil, away: Spain, homeScore: 3, awayScore: 3}
  - {op: score, home: Canada, away: Mexico}
  - op: Summary
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(worldCup))
	require.NoError(t, err)

	require.Equal(t, "world cup", s.Name)
	require.Len(t, s.Steps, 8)
	require.Equal(t, Step{Op: OpUpdate, Home: "Spain", Away: "Brazil", HomeScore: 10, AwayScore: 2}, s.Steps[3])
	require.Equal(t, OpSummary, s.Steps[7].Op)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		doc  string
		msg  string
	}{
		{name: "bad_yaml", doc: "steps: [", msg: "parse script"},
		{name: "missing_op", doc: "steps:\n  - {home: a, away: b}", msg: "step 1: missing op"},
		{name: "unknown_op", doc: "steps:\n  - {op: flush}\n  - {op: pause}", msg: `step 2: unknown op "pause"`},
		{name: "missing_team", doc: "steps:\n  - {op: start, home: a}", msg: "step 1 (start): home and away are required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tc.doc))
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day1.yaml")
	require.NoError(t, os.WriteFile(path, []byte(worldCup), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	require.Len(t, s.Steps, 8)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunner_RecordsRejectedSteps(t *testing.T) {
	s, err := Parse([]byte(worldCup))
	require.NoError(t, err)

	reg := game.NewRegistry()
	out, err := Runner{Board: reg}.Run(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, out, 8)

	failed := Failed(out)
	require.Len(t, failed, 2)
	assert.Equal(t, 5, failed[0].Step)
	assert.Equal(t, "team_busy", failed[0].Code)
	assert.Equal(t, 6, failed[1].Step)
	assert.Equal(t, "ambiguous_order", failed[1].Code)

	score := out[6]
	require.True(t, score.Found)
	require.Equal(t, "Mexico", score.Match.HomeTeam)
	require.Equal(t, 5, score.Match.Total())

	sum := out[7].Summary
	require.Len(t, sum, 2)
	require.Equal(t, "Spain", sum[0].HomeTeam)
	require.Equal(t, "Mexico", sum[1].HomeTeam)
}

func TestRunner_StopOnError(t *testing.T) {
	s, err := Parse([]byte(worldCup))
	require.NoError(t, err)

	reg := game.NewRegistry()
	out, err := Runner{Board: reg, StopOnError: true}.Run(context.Background(), s)
	require.ErrorIs(t, err, game.ErrTeamBusy)
	require.Contains(t, err.Error(), "step 5 (start)")
	require.Len(t, out, 5)
	require.Equal(t, 2, reg.Len())
}

func TestRunner_FinishAndFlush(t *testing.T) {
	s := Script{Steps: []Step{
		{Op: OpStart, Home: "a", Away: "b"},
		{Op: OpFinish, Home: "b", Away: "a"},
		{Op: OpFinish, Home: "a", Away: "b"},
		{Op: OpStart, Home: "c", Away: "d"},
		{Op: OpFlush},
		{Op: OpSummary},
	}}

	out, err := Runner{Board: game.NewRegistry()}.Run(context.Background(), s)
	require.NoError(t, err)
	require.Empty(t, Failed(out))

	require.True(t, out[1].Found)
	require.Equal(t, "A", out[1].Match.HomeTeam)
	require.False(t, out[2].Found)
	require.Empty(t, out[5].Summary)
}

func TestRunner_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := Runner{Board: game.NewRegistry()}.Run(ctx, Script{Steps: []Step{{Op: OpFlush}}})
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, out)
}
