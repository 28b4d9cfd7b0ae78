package e2e

import (
	"context"
	"testing"
	"time"

	"dinger/domain/ding"
	"dinger/domain/protocol"
	"dinger/domain/record"
	"dinger/errors"
	"dinger/infrastructure/grpc/client"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type testDingExchangeSuite struct {
	BaseGrpcSuite
}

func TestDingExchangeSuite(t *testing.T) {
	suite.Run(t, &testDingExchangeSuite{})
}

func (s *testDingExchangeSuite) TestDeliverAndReadBack() {
	peer := "did:dinger:e2e-" + uuid.NewString()
	note := "e2e ding " + time.Now().UTC().Format(time.RFC3339Nano)
	var written record.Record

	s.Run("Step 1: the node has the Dinger protocol installed", func() {
		s.WithNode("Query protocols", func(ctx context.Context, node *client.NodeClient) {
			definitions, st, err := node.QueryProtocols(ctx, s.Config.NodeDID, protocol.DingerURI)
			s.Require().NoError(err)
			s.Require().Equal(record.StatusOK, st.Code)
			s.Require().Len(definitions, 1)
			s.Require().Equal(protocol.Dinger(), definitions[0])
		})
	})

	s.Run("Step 2: a peer delivers a ding to the node", func() {
		s.WithNode("Write record", func(ctx context.Context, node *client.NodeClient) {
			data, err := ding.Encode(ding.New(peer, s.Config.NodeDID, note, time.Now()))
			s.Require().NoError(err)
			var st record.Status
			written, st, err = node.WriteRecord(ctx, record.WriteRequest{
				Tenant:       s.Config.NodeDID,
				Author:       peer,
				Recipient:    s.Config.NodeDID,
				Protocol:     protocol.DingerURI,
				ProtocolPath: protocol.DingPath,
				Schema:       protocol.DingSchema,
				DataFormat:   protocol.JSONFormat,
				Data:         data,
			})
			s.Require().NoError(err)
			s.Require().Equal(record.StatusAccepted, st.Code)
		})
	})

	s.Run("Step 3: the peer reads back only what the protocol allows", func() {
		s.WithNode("Query records", func(ctx context.Context, node *client.NodeClient) {
			records, st, err := node.QueryRecords(ctx, record.Query{
				Tenant:       s.Config.NodeDID,
				Requester:    peer,
				Protocol:     protocol.DingerURI,
				ProtocolPath: protocol.DingPath,
				DateSort:     record.CreatedAscending,
			})
			s.Require().NoError(err)
			s.Require().Equal(record.StatusOK, st.Code)
			s.Require().Len(records, 1)
			s.Require().Equal(written.ID, records[0].ID)

			d, err := ding.FromRecord(records[0])
			s.Require().NoError(err)
			s.Require().Equal(note, d.Note)
		})
	})

	s.Run("Step 4: unknown tenants are rejected", func() {
		s.WithNode("Query foreign tenant", func(ctx context.Context, node *client.NodeClient) {
			_, st, err := node.QueryRecords(ctx, record.Query{Tenant: peer})
			s.Require().ErrorIs(err, errors.ErrTenantNotHosted)
			s.Require().Equal(record.StatusNotFound, st.Code)
		})
	})
}
