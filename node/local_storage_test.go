package node

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"dinger/domain/protocol"
	"dinger/domain/record"
	"dinger/errors"
	"dinger/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type storageFixture struct {
	node      *LocalNode
	records   *mocks.MockIRecordRepository
	protocols *mocks.MockIProtocolRepository
}

func newStorageFixture(t *testing.T) storageFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := storageFixture{
		records:   mocks.NewMockIRecordRepository(ctrl),
		protocols: mocks.NewMockIProtocolRepository(ctrl),
	}
	f.node = NewLocalNode(slog.Default(), f.records, f.protocols, NewDirectory(nil, nil))
	f.node.Host(alice)
	return f
}

func TestLocalNode_StorageFailuresAreInternalErrors(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newStorageFixture(t)
	diskFull := fmt.Errorf("disk full")

	f.protocols.EXPECT().StoreProtocol(alice, protocol.Dinger()).Return(diskFull)
	status, err := f.node.ConfigureProtocol(ctx, alice, protocol.Dinger())
	req.ErrorIs(err, diskFull)
	req.Equal(record.StatusError, status.Code)

	f.protocols.EXPECT().FindProtocols(alice, protocol.DingerURI).Return([]protocol.Definition{protocol.Dinger()}, nil)
	f.records.EXPECT().StoreRecord(gomock.Any()).
		DoAndReturn(func(rec record.Record) error {
			req.Equal(alice, rec.Tenant)
			req.NotEqual(uuid.Nil, rec.ID)
			req.False(rec.DateCreated.IsZero())
			return diskFull
		})
	_, status, err = f.node.WriteRecord(ctx, dingRequest(t, alice, bob, "hello"))
	req.ErrorIs(err, diskFull)
	req.Equal(record.StatusError, status.Code)

	f.records.EXPECT().QueryRecords(dingQuery(alice, alice)).Return(nil, diskFull)
	_, status, err = f.node.QueryRecords(ctx, dingQuery(alice, alice))
	req.ErrorIs(err, diskFull)
	req.Equal(record.StatusError, status.Code)
}

func TestLocalNode_ForeignReadLooksUpEachProtocolOnce(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newStorageFixture(t)

	stored := []record.Record{
		{ID: uuid.New(), Tenant: alice, Author: bob, Recipient: alice, Protocol: protocol.DingerURI, ProtocolPath: protocol.DingPath},
		{ID: uuid.New(), Tenant: alice, Author: carol, Recipient: alice, Protocol: protocol.DingerURI, ProtocolPath: protocol.DingPath},
		{ID: uuid.New(), Tenant: alice, Author: bob, Recipient: alice, Protocol: "https://example.org/removed", ProtocolPath: "note"},
	}
	query := record.Query{Tenant: alice, Requester: bob}
	f.records.EXPECT().QueryRecords(query).Return(stored, nil)
	f.protocols.EXPECT().FindProtocols(alice, protocol.DingerURI).Return([]protocol.Definition{protocol.Dinger()}, nil).Times(1)
	f.protocols.EXPECT().FindProtocols(alice, "https://example.org/removed").Return(nil, nil).Times(1)

	readable, status, err := f.node.QueryRecords(ctx, query)
	req.NoError(err)
	req.Equal(record.StatusOK, status.Code)
	// Carol's ding is not bob's, the uninstalled protocol hides the last one
	req.Equal([]record.Record{stored[0]}, readable)
}

func TestLocalNode_SendUnknownRecord(t *testing.T) {
	req := require.New(t)
	f := newStorageFixture(t)
	id := uuid.New()

	f.records.EXPECT().GetRecord(alice, id).Return(record.Record{}, fmt.Errorf("%w: %s", errors.ErrRecordNotFound, id))
	status, err := f.node.SendRecord(context.Background(), alice, id, bob)
	req.ErrorIs(err, errors.ErrRecordNotFound)
	req.Equal(record.StatusNotFound, status.Code)
}
