package node

import (
	"context"
	"log/slog"
	"testing"

	"dinger/contract"
	"dinger/domain/ding"
	"dinger/domain/protocol"
	"dinger/domain/record"
	"dinger/errors"
	"dinger/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	alice = "did:dinger:alice"
	bob   = "did:dinger:bob"
	carol = "did:dinger:carol"
)

func newNode(t *testing.T, directory *Directory, tenants ...string) *LocalNode {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := slog.Default()
	n := NewLocalNode(log,
		repositories.NewRecordRepository(db, log, nil),
		repositories.NewProtocolRepository(db, log),
		directory)
	for _, tenant := range tenants {
		n.Host(tenant)
		_, err = n.ConfigureProtocol(context.Background(), tenant, protocol.Dinger())
		require.NoError(t, err)
	}
	return n
}

func dingRequest(t *testing.T, author, recipient, note string) record.WriteRequest {
	t.Helper()
	data, err := ding.Encode(ding.Ding{Sender: author, Recipient: recipient, Note: note})
	require.NoError(t, err)
	return record.WriteRequest{
		Tenant:       author,
		Author:       author,
		Recipient:    recipient,
		Protocol:     protocol.DingerURI,
		ProtocolPath: protocol.DingPath,
		Schema:       protocol.DingSchema,
		DataFormat:   protocol.JSONFormat,
		Data:         data,
	}
}

func dingQuery(tenant, requester string) record.Query {
	return record.Query{
		Tenant:       tenant,
		Requester:    requester,
		Protocol:     protocol.DingerURI,
		ProtocolPath: protocol.DingPath,
		DateSort:     record.CreatedAscending,
	}
}

func TestLocalNode_ProtocolLifecycle(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	n := newNode(t, NewDirectory(nil, nil))
	n.Host(alice)

	found, status, err := n.QueryProtocols(ctx, alice, protocol.DingerURI)
	req.NoError(err)
	req.Equal(record.StatusOK, status.Code)
	req.Empty(found)

	status, err = n.ConfigureProtocol(ctx, alice, protocol.Dinger())
	req.NoError(err)
	req.Equal(record.StatusAccepted, status.Code)

	found, _, err = n.QueryProtocols(ctx, alice, protocol.DingerURI)
	req.NoError(err)
	req.Len(found, 1)

	invalid := protocol.Dinger()
	invalid.Protocol = ""
	status, err = n.ConfigureProtocol(ctx, alice, invalid)
	req.ErrorIs(err, errors.ErrInvalidProtocol)
	req.Equal(record.StatusBadRequest, status.Code)
}

func TestLocalNode_WriteRejections(t *testing.T) {
	ctx := context.Background()
	directory := NewDirectory(nil, nil)
	n := newNode(t, directory, alice)
	bare := newNode(t, directory)
	bare.Host(carol)

	tests := []struct {
		name   string
		node   *LocalNode
		mutate func(r *record.WriteRequest)
		want   error
		code   int
	}{
		{"tenant not hosted", n, func(r *record.WriteRequest) { r.Tenant = bob }, errors.ErrTenantNotHosted, record.StatusNotFound},
		{"protocol not installed", bare, func(r *record.WriteRequest) { r.Tenant = carol }, errors.ErrProtocolNotInstalled, record.StatusBadRequest},
		{"unknown path", n, func(r *record.WriteRequest) { r.ProtocolPath = "reply" }, errors.ErrUnknownProtocolPath, record.StatusBadRequest},
		{"wrong schema", n, func(r *record.WriteRequest) { r.Schema = "https://example.org/other" }, errors.ErrSchemaMismatch, record.StatusBadRequest},
		{"declared format not allowed", n, func(r *record.WriteRequest) { r.DataFormat = "text/plain" }, errors.ErrDataFormatMismatch, record.StatusBadRequest},
		{"payload is not json", n, func(r *record.WriteRequest) { r.Data = []byte("just words") }, errors.ErrDataFormatMismatch, record.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			request := dingRequest(t, alice, bob, "hello")
			tt.mutate(&request)
			_, status, err := tt.node.WriteRecord(ctx, request)
			req.ErrorIs(err, tt.want)
			req.Equal(tt.code, status.Code)
		})
	}
}

func TestLocalNode_SendDeliversToRecipientNode(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	directory := NewDirectory(nil, nil)
	aliceNode := newNode(t, directory, alice)
	bobNode := newNode(t, directory, bob)

	rec, status, err := aliceNode.WriteRecord(ctx, dingRequest(t, alice, bob, "ding!"))
	req.NoError(err)
	req.Equal(record.StatusAccepted, status.Code)

	status, err = aliceNode.SendRecord(ctx, alice, rec.ID, bob)
	req.NoError(err)
	req.Equal(record.StatusAccepted, status.Code)

	inbox, status, err := bobNode.QueryRecords(ctx, dingQuery(bob, bob))
	req.NoError(err)
	req.Equal(record.StatusOK, status.Code)
	req.Len(inbox, 1)
	req.Equal(alice, inbox[0].Author)
	req.Equal(bob, inbox[0].Tenant)
	req.Equal(rec.Data, inbox[0].Data)

	outbox, _, err := aliceNode.QueryRecords(ctx, dingQuery(alice, alice))
	req.NoError(err)
	req.Len(outbox, 1)
}

func TestLocalNode_SendToSelfDoesNotDuplicate(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	n := newNode(t, NewDirectory(nil, nil), alice)

	rec, _, err := n.WriteRecord(ctx, dingRequest(t, alice, alice, "memo"))
	req.NoError(err)
	_, err = n.SendRecord(ctx, alice, rec.ID, alice)
	req.NoError(err)

	records, _, err := n.QueryRecords(ctx, dingQuery(alice, alice))
	req.NoError(err)
	req.Len(records, 1)
}

func TestLocalNode_SendFailures(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	n := newNode(t, NewDirectory(nil, nil), alice)

	rec, _, err := n.WriteRecord(ctx, dingRequest(t, alice, bob, "anyone there?"))
	req.NoError(err)

	status, err := n.SendRecord(ctx, alice, rec.ID, bob)
	req.ErrorIs(err, errors.ErrRecipientUnreachable)
	req.Equal(record.StatusError, status.Code)

	status, err = n.SendRecord(ctx, alice, uuid.New(), bob)
	req.ErrorIs(err, errors.ErrRecordNotFound)
	req.Equal(record.StatusNotFound, status.Code)
}

func TestLocalNode_ForeignRequesterOnlyReadsItsDings(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	directory := NewDirectory(nil, nil)
	bobNode := newNode(t, directory, bob)
	_ = newNode(t, directory, alice, carol)

	// Dings delivered to bob by alice and carol
	for _, author := range []string{alice, carol} {
		request := dingRequest(t, author, bob, "hi bob")
		request.Tenant = bob
		_, _, err := bobNode.WriteRecord(ctx, request)
		req.NoError(err)
	}

	visible, _, err := bobNode.QueryRecords(ctx, dingQuery(bob, alice))
	req.NoError(err)
	req.Len(visible, 1)
	req.Equal(alice, visible[0].Author)

	stranger, _, err := bobNode.QueryRecords(ctx, dingQuery(bob, "did:dinger:eve"))
	req.NoError(err)
	req.Empty(stranger)
}

func TestLocalNode_PartialDeliveryIsAccepted(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	bobNode := newNode(t, NewDirectory(nil, nil), bob)
	directory := NewDirectory(map[string][]string{bob: {"up", "down"}}, func(address string) (contract.Node, error) {
		if address == "up" {
			return bobNode, nil
		}
		return downNode{}, nil
	})
	aliceNode := newNode(t, directory, alice)

	rec, _, err := aliceNode.WriteRecord(ctx, dingRequest(t, alice, bob, "one of two"))
	req.NoError(err)
	status, err := aliceNode.SendRecord(ctx, alice, rec.ID, bob)
	req.NoError(err)
	req.Equal(record.StatusAccepted, status.Code)

	inbox, _, err := bobNode.QueryRecords(ctx, dingQuery(bob, bob))
	req.NoError(err)
	req.Len(inbox, 1)
}

type downNode struct{ contract.Node }

func (downNode) WriteRecord(context.Context, record.WriteRequest) (record.Record, record.Status, error) {
	return record.Record{}, record.Status{Code: record.StatusError}, errors.ErrRecipientUnreachable
}
