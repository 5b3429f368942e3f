package feed

import (
	"context"
	"log/slog"

	"example.com/scoreboard/internal/game"
)

// LogSink writes every event as a structured log record.
type LogSink struct {
	Log *slog.Logger
}

func (s LogSink) Deliver(ctx context.Context, ev game.Event) error {
	attrs := []any{"kind", ev.Kind, "seq", ev.Seq}
	if ev.Match != nil {
		attrs = append(attrs, "match_id", ev.Match.ID, "score", ev.Match.String())
	}
	s.Log.InfoContext(ctx, "board event", attrs...)
	return nil
}
