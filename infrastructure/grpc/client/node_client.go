package client

import (
	"context"
	"fmt"

	"dinger/contract"
	"dinger/domain/protocol"
	"dinger/domain/record"
	"dinger/errors"
	"dinger/infrastructure/grpc/nodev1"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// NodeClient is a contract.Node backed by a remote node.
type NodeClient struct {
	client nodev1.NodeServiceClient
}

func NewNodeClient(cc grpc.ClientConnInterface) *NodeClient {
	return &NodeClient{client: nodev1.NewNodeServiceClient(cc)}
}

// Dial opens an insecure connection to a peer node.
func Dial(address string) (contract.Node, error) {
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return NewNodeClient(conn), nil
}

func (c *NodeClient) QueryProtocols(ctx context.Context, tenant, uri string) ([]protocol.Definition, record.Status, error) {
	out, err := c.client.QueryProtocols(ctx, fields(map[string]*structpb.Value{
		"tenant": structpb.NewStringValue(tenant),
		"uri":    structpb.NewStringValue(uri),
	}))
	if err != nil {
		st, err := failure(err)
		return nil, st, err
	}
	var definitions []protocol.Definition
	for _, value := range out.GetFields()["definitions"].GetListValue().GetValues() {
		definition, err := protocol.FromProto(value.GetStructValue())
		if err != nil {
			st, err := decodeFailure(err)
			return nil, st, err
		}
		definitions = append(definitions, definition)
	}
	return definitions, statusOf(out), nil
}

func (c *NodeClient) ConfigureProtocol(ctx context.Context, tenant string, definition protocol.Definition) (record.Status, error) {
	packed, err := protocol.ToProto(definition)
	if err != nil {
		return decodeFailure(err)
	}
	out, err := c.client.ConfigureProtocol(ctx, fields(map[string]*structpb.Value{
		"tenant":     structpb.NewStringValue(tenant),
		"definition": structpb.NewStructValue(packed),
	}))
	if err != nil {
		return failure(err)
	}
	return statusOf(out), nil
}

func (c *NodeClient) WriteRecord(ctx context.Context, request record.WriteRequest) (record.Record, record.Status, error) {
	in, err := record.WriteRequestToProto(request)
	if err != nil {
		st, err := decodeFailure(err)
		return record.Record{}, st, err
	}
	out, err := c.client.WriteRecord(ctx, in)
	if err != nil {
		st, err := failure(err)
		return record.Record{}, st, err
	}
	rec, err := record.FromProto(out.GetFields()["record"].GetStructValue())
	if err != nil {
		st, err := decodeFailure(err)
		return record.Record{}, st, err
	}
	return rec, statusOf(out), nil
}

func (c *NodeClient) QueryRecords(ctx context.Context, query record.Query) ([]record.Record, record.Status, error) {
	in, err := record.QueryToProto(query)
	if err != nil {
		st, err := decodeFailure(err)
		return nil, st, err
	}
	out, err := c.client.QueryRecords(ctx, in)
	if err != nil {
		st, err := failure(err)
		return nil, st, err
	}
	var records []record.Record
	for _, value := range out.GetFields()["records"].GetListValue().GetValues() {
		rec, err := record.FromProto(value.GetStructValue())
		if err != nil {
			st, err := decodeFailure(err)
			return nil, st, err
		}
		records = append(records, rec)
	}
	return records, statusOf(out), nil
}

func (c *NodeClient) SendRecord(ctx context.Context, tenant string, recordID uuid.UUID, target string) (record.Status, error) {
	out, err := c.client.SendRecord(ctx, fields(map[string]*structpb.Value{
		"tenant":   structpb.NewStringValue(tenant),
		"recordId": structpb.NewStringValue(recordID.String()),
		"target":   structpb.NewStringValue(target),
	}))
	if err != nil {
		return failure(err)
	}
	return statusOf(out), nil
}

func fields(values map[string]*structpb.Value) *structpb.Struct {
	return &structpb.Struct{Fields: values}
}

func statusOf(out *structpb.Struct) record.Status {
	return record.StatusFromProto(out.GetFields()["status"].GetStructValue())
}

// failure turns a gRPC error back into the node status and domain error.
func failure(err error) (record.Status, error) {
	code := record.StatusError
	switch status.Code(err) {
	case codes.NotFound:
		code = record.StatusNotFound
	case codes.PermissionDenied, codes.Unauthenticated:
		code = record.StatusUnauthorized
	case codes.InvalidArgument, codes.FailedPrecondition:
		code = record.StatusBadRequest
	}
	return record.Status{Code: code, Detail: status.Convert(err).Message()}, errors.FromGRPCError(err)
}

func decodeFailure(err error) (record.Status, error) {
	err = fmt.Errorf("node envelope: %w", err)
	return record.Status{Code: record.StatusError, Detail: err.Error()}, err
}

var _ contract.Node = (*NodeClient)(nil)
