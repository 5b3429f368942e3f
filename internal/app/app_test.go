package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/scoreboard/internal/config"
	"example.com/scoreboard/internal/game"
	"example.com/scoreboard/internal/replay"
)

func testConfig() config.Config {
	var c config.Config
	c.Env = "dev"
	c.Log.Format = "text"
	c.Log.Level = "info"
	c.Redis.Board = "default"
	c.Feed.Buffer = 64
	return c
}

func TestApp_ReplayWithLoggedEvents(t *testing.T) {
	cfg := testConfig()
	cfg.Feed.LogEvents = true

	var buf bytes.Buffer
	a, err := New(context.Background(), cfg, NewLogger(cfg, &buf))
	require.NoError(t, err)
	defer a.Close(context.Background())

	s := replay.Script{Name: "day1", Steps: []replay.Step{
		{Op: replay.OpStart, Home: "Mexico", Away: "Canada"},
		{Op: replay.OpUpdate, Home: "Mexico", Away: "Canada", HomeScore: 0, AwayScore: 5},
		{Op: replay.OpStart, Home: "Canada", Away: "Spain"},
	}}

	out, err := a.Replay(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, out, 3)
	require.Equal(t, "team_busy", out[2].Code)

	logs := buf.String()
	require.Contains(t, logs, "kind=match_started")
	require.Contains(t, logs, "kind=score_updated")
	require.Contains(t, logs, `msg="replay finished"`)
	require.Contains(t, logs, "rejected=1")

	sum := a.Board().Summary()
	require.Len(t, sum, 1)
	require.Equal(t, 5, sum[0].Total())
}

func TestApp_ReplayStopOnError(t *testing.T) {
	cfg := testConfig()
	cfg.Replay.StopOnError = true

	a, err := New(context.Background(), cfg, NewLogger(cfg, &bytes.Buffer{}))
	require.NoError(t, err)

	s := replay.Script{Steps: []replay.Step{
		{Op: replay.OpStart, Home: "a", Away: "a"},
		{Op: replay.OpStart, Home: "b", Away: "c"},
	}}

	out, err := a.Replay(context.Background(), s)
	require.ErrorIs(t, err, game.ErrSameTeamName)
	require.Len(t, out, 1)
	require.Zero(t, a.Board().Len())
}

func TestNewLogger(t *testing.T) {
	cfg := testConfig()
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	var buf bytes.Buffer
	log := NewLogger(cfg, &buf)
	log.Info("hidden")
	log.Warn("shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)
	require.Contains(t, buf.String(), `"env":"dev"`)
}
