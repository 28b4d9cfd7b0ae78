package services

import (
	"context"
	"log/slog"
	"testing"

	"dinger/node"
	"dinger/observability"
	"dinger/repositories"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// newPeer wires a service on its own node and storage, registered in the
// shared directory.
func newPeer(t *testing.T, directory *node.Directory) *DingerService {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })

	local := node.NewLocalNode(log,
		repositories.NewRecordRepository(db, log, nil),
		repositories.NewProtocolRepository(db, log),
		directory)
	return NewDingerService(log, local,
		repositories.NewIdentityRepository(db, log),
		repositories.NewNoteIndex(writer, log),
		nil,
		observability.NewMonitoring(log))
}

func TestDingerService_TwoPeersExchangeDings(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	directory := node.NewDirectory(nil, nil)
	alice := newPeer(t, directory)
	bob := newPeer(t, directory)

	aliceDID, err := alice.Connect(ctx)
	req.NoError(err)
	bobDID, err := bob.Connect(ctx)
	req.NoError(err)
	req.NotEqual(aliceDID, bobDID)

	alice.StartConversation(bobDID)
	req.Contains(alice.State().Groups, bobDID)
	req.Empty(alice.State().Conversation(bobDID))

	req.NoError(alice.Submit(ctx, "ding from alice"))
	req.NoError(bob.Fetch(ctx))

	bobState := bob.State()
	req.Len(bobState.Received, 1)
	req.Equal("ding from alice", bobState.Conversation(aliceDID)[0].Note)

	bob.SelectRecipient(aliceDID)
	req.NoError(bob.Submit(ctx, "ding back"))
	req.NoError(alice.Fetch(ctx))

	conversation := alice.State().Conversation(bobDID)
	req.Len(conversation, 2)
	req.Equal("ding from alice", conversation[0].Note)
	req.Equal("ding back", conversation[1].Note)

	found, err := alice.Search(ctx, "back")
	req.NoError(err)
	req.Len(found, 1)
	req.Equal(bobDID, found[0].Sender)
}
