package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dinger/contract"
	"dinger/projection"
)

const DefaultPollInterval = 2 * time.Second

// StateSource is the part of the Dinger service the poller drives.
type StateSource interface {
	Fetch(ctx context.Context) error
	State() projection.State
}

// PollWorker refreshes the state once at start then on every tick and
// hands each snapshot to the sinks. A failed fetch is logged and the
// previous state is published unchanged.
type PollWorker struct {
	log      *slog.Logger
	source   StateSource
	interval time.Duration
	sinks    []contract.StateSink
}

func NewPollWorker(log *slog.Logger, source StateSource, interval time.Duration, sinks ...contract.StateSink) *PollWorker {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &PollWorker{log: log, source: source, interval: interval, sinks: sinks}
}

func (w *PollWorker) Run(ctx context.Context) error {
	w.log.Info("Starting poll worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *PollWorker) poll(ctx context.Context) {
	if err := w.source.Fetch(ctx); err != nil {
		w.log.Debug("Poll failed", "error", err)
	}
	state := w.source.State()
	for _, sink := range w.sinks {
		if err := sink.Consume(ctx, state); err != nil {
			w.log.Warn("Sink rejected state", "sink", fmt.Sprintf("%T", sink), "error", err)
		}
	}
}
