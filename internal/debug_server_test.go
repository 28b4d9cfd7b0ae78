package internal

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dinger/domain/ding"
	"dinger/domain/protocol"
	"dinger/observability"
	"dinger/projection"
	"dinger/repositories"
	"dinger/sink"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

const (
	alice = "did:dinger:alice"
	bob   = "did:dinger:bob"
)

func newDebugServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := slog.Default()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, repositories.NewProtocolRepository(db, log).StoreProtocol(alice, protocol.Dinger()))

	state := projection.Reduce(projection.NewState(), projection.Connected{DID: alice})
	state = projection.Reduce(state, projection.Fetched{
		Received: []ding.Ding{ding.New(bob, alice, "hello", time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))},
	})
	monitoring := observability.NewMonitoring(log)
	monitoring.IncrPoll(1, time.Now())

	debug := NewDebugServer(log, db, func() projection.State { return state }, monitoring, sink.NewHub(log))
	server := httptest.NewServer(debug.Routes())
	t.Cleanup(server.Close)
	return server
}

func get(t *testing.T, url string) (int, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestDebugServer_Inspect(t *testing.T) {
	req := require.New(t)
	server := newDebugServer(t)

	code, body := get(t, server.URL+"/inspect?prefix=proto:")
	req.Equal(http.StatusOK, code)
	req.Contains(string(body), "PROTOCOL")
	req.Contains(string(body), alice)
	req.Contains(string(body), "polls")
}

func TestDebugServer_State(t *testing.T) {
	req := require.New(t)
	server := newDebugServer(t)

	code, body := get(t, server.URL+"/api/state")
	req.Equal(http.StatusOK, code)
	var snapshot sink.Snapshot
	req.NoError(json.Unmarshal(body, &snapshot))
	req.Equal(alice, snapshot.LocalDID)
	req.Len(snapshot.Conversations, 1)
	req.Equal(bob, snapshot.Conversations[0].Partner)

	code, body = get(t, server.URL+"/api/stats")
	req.Equal(http.StatusOK, code)
	var stats observability.Stats
	req.NoError(json.Unmarshal(body, &stats))
	req.Equal(uint64(1), stats.Polls)
}

func TestDebugServer_Conversation(t *testing.T) {
	req := require.New(t)
	server := newDebugServer(t)

	code, body := get(t, server.URL+"/api/conversations/"+bob)
	req.Equal(http.StatusOK, code)
	var conversation sink.Conversation
	req.NoError(json.Unmarshal(body, &conversation))
	req.Len(conversation.Dings, 1)
	req.Equal("hello", conversation.Dings[0].Note)

	code, _ = get(t, server.URL+"/api/conversations/did:dinger:nobody")
	req.Equal(http.StatusNotFound, code)
}
