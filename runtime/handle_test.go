package runtime

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"dinger/mocks"
	"dinger/runtime/workers"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type tickingWorker struct {
	ticks   atomic.Int32
	stopped atomic.Bool
}

func (w *tickingWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.stopped.Store(true)
			return ctx.Err()
		case <-ticker.C:
			w.ticks.Add(1)
		}
	}
}

func TestHandle_StopCancelsAndWaits(t *testing.T) {
	req := require.New(t)
	worker := &tickingWorker{}
	supervisor := workers.NewSupervisor(slog.Default(), 0)
	supervisor.Add(worker)

	h := Start(context.Background(), supervisor)
	req.Eventually(func() bool { return worker.ticks.Load() > 2 }, time.Second, 5*time.Millisecond)

	h.Stop()
	req.True(worker.stopped.Load())
	ticks := worker.ticks.Load()
	time.Sleep(20 * time.Millisecond)
	req.Equal(ticks, worker.ticks.Load())

	// Second stop is a no-op
	h.Stop()
}

func TestHandle_ParentCancellation(t *testing.T) {
	req := require.New(t)
	worker := &tickingWorker{}
	supervisor := workers.NewSupervisor(slog.Default(), 0)
	supervisor.Add(worker)

	ctx, cancel := context.WithCancel(context.Background())
	h := Start(ctx, supervisor)
	cancel()

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		req.Fail("workers should stop with their parent context")
	}
	req.True(worker.stopped.Load())
}

func TestHandle_RunsSupervisorOnce(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	supervisor := mocks.NewMockISupervisor(ctrl)
	running := make(chan struct{})

	supervisor.EXPECT().Run(gomock.Any()).Do(func(ctx context.Context) {
		close(running)
		<-ctx.Done()
	}).Times(1)

	h := Start(context.Background(), supervisor)
	<-running
	select {
	case <-h.Done():
		req.Fail("handle should stay open while the supervisor runs")
	default:
	}

	h.Stop()
	select {
	case <-h.Done():
	default:
		req.Fail("Done should be closed once Stop returned")
	}
}
