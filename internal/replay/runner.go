package replay

import (
	"context"
	"fmt"
	"log/slog"

	"example.com/scoreboard/internal/game"
)

// Board is the part of *game.Registry a script can drive.
type Board interface {
	Start(team1, team2 string) error
	Finish(team1, team2 string) (game.Match, bool, error)
	UpdateScore(homeTeam, awayTeam string, homeScore, awayScore int) error
	Score(team1, team2 string) (game.Match, bool, error)
	Summary() []game.Match
	Flush()
}

// Outcome is the result of one step. Match/Found are set by finish and score,
// Summary by summary.
type Outcome struct {
	Step    int // 1-based
	Op      Op
	Match   game.Match
	Found   bool
	Summary []game.Match
	Code    string // game.ErrorCode of Err
	Err     error
}

type Runner struct {
	Board       Board
	StopOnError bool
	Log         *slog.Logger
}

// Run applies the steps in order. Rejected steps are recorded in their
// Outcome; with StopOnError the first rejection also ends the run and is
// returned. Run checks ctx between steps.
func (r Runner) Run(ctx context.Context, s Script) ([]Outcome, error) {
	log := r.Log
	if log == nil {
		log = slog.Default()
	}

	out := make([]Outcome, 0, len(s.Steps))
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		o := r.apply(i+1, st)
		out = append(out, o)

		if o.Err != nil {
			log.Debug("step rejected", "script", s.Name, "step", o.Step, "op", o.Op, "code", o.Code, "err", o.Err)
			if r.StopOnError {
				return out, fmt.Errorf("step %d (%s): %w", o.Step, o.Op, o.Err)
			}
		}
	}
	return out, nil
}

func (r Runner) apply(n int, st Step) Outcome {
	o := Outcome{Step: n, Op: st.Op}

	switch st.Op {
	case OpStart:
		o.Err = r.Board.Start(st.Home, st.Away)
	case OpFinish:
		o.Match, o.Found, o.Err = r.Board.Finish(st.Home, st.Away)
	case OpUpdate:
		o.Err = r.Board.UpdateScore(st.Home, st.Away, st.HomeScore, st.AwayScore)
	case OpScore:
		o.Match, o.Found, o.Err = r.Board.Score(st.Home, st.Away)
	case OpSummary:
		o.Summary = r.Board.Summary()
	case OpFlush:
		r.Board.Flush()
	default:
		o.Err = fmt.Errorf("unknown op %q", st.Op)
	}

	o.Code = game.ErrorCode(o.Err)
	return o
}

// Failed returns the outcomes whose step was rejected.
func Failed(outcomes []Outcome) []Outcome {
	var out []Outcome
	for _, o := range outcomes {
		if o.Err != nil {
			out = append(out, o)
		}
	}
	return out
}
