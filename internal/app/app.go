package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"example.com/scoreboard/internal/config"
	"example.com/scoreboard/internal/feed"
	"example.com/scoreboard/internal/game"
	"example.com/scoreboard/internal/replay"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	rdb *redis.Client

	board *game.Registry
	feed  *feed.Dispatcher
}

func New(ctx context.Context, cfg config.Config, log *slog.Logger) (*App, error) {
	if log == nil {
		log = slog.Default()
	}

	var sinks []feed.Sink

	// --- Redis (optional) ---
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("redis ping (%s db=%d): %w", cfg.Redis.Addr, cfg.Redis.DB, err)
		}

		pub := feed.NewRedisPublisher(rdb, cfg.Redis.Board)
		sinks = append(sinks, pub)
		log.Info("publishing board events", "channel", pub.Channel())
	}

	if cfg.Feed.LogEvents {
		sinks = append(sinks, feed.LogSink{Log: log})
	}

	// --- Board ---
	disp := feed.NewDispatcher(cfg.Feed.Buffer, log, sinks...)
	board := game.NewRegistry(
		game.WithLogger(log),
		game.WithObserver(disp.Observe),
	)

	return &App{cfg: cfg, log: log, rdb: rdb, board: board, feed: disp}, nil
}

func (a *App) Board() *game.Registry {
	return a.board
}

// Replay runs the script against the board while the feed delivers the
// resulting events. It returns once the script is done and the feed has
// drained.
func (a *App) Replay(ctx context.Context, s replay.Script) ([]replay.Outcome, error) {
	g, gctx := errgroup.WithContext(ctx)
	feedCtx, stopFeed := context.WithCancel(gctx)
	defer stopFeed()

	a.log.Info("replay starting", "script", s.Name, "steps", len(s.Steps))

	g.Go(func() error {
		return a.feed.Run(feedCtx)
	})

	var outcomes []replay.Outcome
	g.Go(func() error {
		defer stopFeed()
		runner := replay.Runner{Board: a.board, StopOnError: a.cfg.Replay.StopOnError, Log: a.log}
		var err error
		outcomes, err = runner.Run(gctx, s)
		return err
	})

	err := g.Wait()
	a.log.Info("replay finished",
		"script", s.Name,
		"applied", len(outcomes),
		"rejected", len(replay.Failed(outcomes)),
		"matches", a.board.Len(),
	)
	return outcomes, err
}

func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.rdb != nil {
		errs = append(errs, a.rdb.Close())
	}
	return errors.Join(errs...)
}
