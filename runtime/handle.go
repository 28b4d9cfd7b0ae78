// Package runtime starts the supervised workers of a node and gives the
// caller an explicit handle to stop them.
package runtime

import (
	"context"
	"sync"

	"dinger/contract"
)

// Handle controls a running supervisor.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Start runs the supervisor in the background until Stop is called or ctx
// is cancelled.
func Start(ctx context.Context, supervisor contract.ISupervisor) *Handle {
	runCtx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(h.done)
		supervisor.Run(runCtx)
	}()
	return h
}

// Stop cancels the workers and waits until they returned. It is safe to
// call more than once.
func (h *Handle) Stop() {
	h.once.Do(h.cancel)
	<-h.done
}

// Done is closed once every worker returned.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}
