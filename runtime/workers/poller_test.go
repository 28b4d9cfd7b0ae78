package workers

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"dinger/mocks"
	"dinger/projection"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPollWorker_FetchesAtStartAndOnTick(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIDingerService(ctrl)
	sink := mocks.NewMockStateSink(ctrl)

	state := projection.NewState()
	published := make(chan projection.State, 10)
	service.EXPECT().Fetch(gomock.Any()).Return(nil).MinTimes(2)
	service.EXPECT().State().Return(state).MinTimes(2)
	sink.EXPECT().Consume(gomock.Any(), state).DoAndReturn(func(_ context.Context, s projection.State) error {
		published <- s
		return nil
	}).MinTimes(2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- NewPollWorker(slog.Default(), service, 20*time.Millisecond, sink).Run(ctx) }()

	for range 2 {
		select {
		case <-published:
		case <-time.After(time.Second):
			req.Fail("state was not published")
		}
	}
	cancel()
	req.ErrorIs(<-done, context.Canceled)
}

func TestPollWorker_PublishesPreviousStateOnFailure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIDingerService(ctrl)
	sink := mocks.NewMockStateSink(ctrl)

	state := projection.Reduce(projection.NewState(), projection.Connected{DID: "did:dinger:alice"})
	service.EXPECT().Fetch(gomock.Any()).Return(fmt.Errorf("node down"))
	service.EXPECT().State().Return(state)
	sink.EXPECT().Consume(gomock.Any(), state).Return(fmt.Errorf("terminal closed"))

	NewPollWorker(slog.Default(), service, time.Hour, sink).poll(context.Background())
	req.True(ctrl.Satisfied())
}
