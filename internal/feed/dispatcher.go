// Package feed fans board events out to external sinks without ever blocking
// the registry.
package feed

import (
	"context"
	"log/slog"
	"sync/atomic"

	"example.com/scoreboard/internal/game"
)

const DefaultBuffer = 256

// Sink receives events in the order they were applied to the board.
type Sink interface {
	Deliver(ctx context.Context, ev game.Event) error
}

// Dispatcher buffers events coming from the registry observer and delivers
// them to every sink from a single goroutine (Run).
type Dispatcher struct {
	in    chan game.Event
	sinks []Sink
	log   *slog.Logger

	dropped atomic.Uint64
}

func NewDispatcher(buffer int, log *slog.Logger, sinks ...Sink) *Dispatcher {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{
		in:    make(chan game.Event, buffer),
		sinks: sinks,
		log:   log,
	}
}

// Observe enqueues ev and returns immediately. When the buffer is full the
// event is dropped and counted. Suitable for game.WithObserver.
func (d *Dispatcher) Observe(ev game.Event) {
	select {
	case d.in <- ev:
	default:
		d.dropped.Add(1)
	}
}

// Dropped reports how many events were discarded because the buffer was full.
func (d *Dispatcher) Dropped() uint64 {
	return d.dropped.Load()
}

// Run delivers events until ctx is done, then flushes whatever is still
// buffered. It always returns nil.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case ev := <-d.in:
			d.deliver(ctx, ev)
		case <-ctx.Done():
			d.drain(context.WithoutCancel(ctx))
			if n := d.Dropped(); n > 0 {
				d.log.Warn("feed dropped events", "count", n)
			}
			return nil
		}
	}
}

func (d *Dispatcher) drain(ctx context.Context) {
	for {
		select {
		case ev := <-d.in:
			d.deliver(ctx, ev)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, ev game.Event) {
	for _, s := range d.sinks {
		if err := s.Deliver(ctx, ev); err != nil {
			d.log.Warn("feed delivery failed", "kind", ev.Kind, "seq", ev.Seq, "err", err)
		}
	}
}
