package server

import (
	"context"
	"log/slog"

	"dinger/contract"
	"dinger/domain/protocol"
	"dinger/domain/record"
	"dinger/errors"
	"dinger/infrastructure/grpc/nodev1"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// NodeServer exposes a node to its peers. Domain failures are mapped to
// gRPC status errors; successful replies carry the node status.
type NodeServer struct {
	node contract.Node
	log  *slog.Logger
}

func NewNodeServer(log *slog.Logger, node contract.Node) *NodeServer {
	return &NodeServer{node: node, log: log}
}

func (s *NodeServer) QueryProtocols(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()
	definitions, st, err := s.node.QueryProtocols(ctx,
		fields["tenant"].GetStringValue(), fields["uri"].GetStringValue())
	if err != nil {
		return nil, s.fail("QueryProtocols", err)
	}
	values := make([]*structpb.Value, 0, len(definitions))
	for _, definition := range definitions {
		packed, err := protocol.ToProto(definition)
		if err != nil {
			return nil, s.fail("QueryProtocols", err)
		}
		values = append(values, structpb.NewStructValue(packed))
	}
	return reply(st, "definitions", structpb.NewListValue(&structpb.ListValue{Values: values})), nil
}

func (s *NodeServer) ConfigureProtocol(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()
	definition, err := protocol.FromProto(fields["definition"].GetStructValue())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "malformed definition: %v", err)
	}
	st, err := s.node.ConfigureProtocol(ctx, fields["tenant"].GetStringValue(), definition)
	if err != nil {
		return nil, s.fail("ConfigureProtocol", err)
	}
	return reply(st, "", nil), nil
}

func (s *NodeServer) WriteRecord(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	request, err := record.WriteRequestFromProto(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "malformed write: %v", err)
	}
	rec, st, err := s.node.WriteRecord(ctx, request)
	if err != nil {
		return nil, s.fail("WriteRecord", err)
	}
	packed, err := record.ToProto(rec)
	if err != nil {
		return nil, s.fail("WriteRecord", err)
	}
	return reply(st, "record", structpb.NewStructValue(packed)), nil
}

func (s *NodeServer) QueryRecords(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	records, st, err := s.node.QueryRecords(ctx, record.QueryFromProto(req))
	if err != nil {
		return nil, s.fail("QueryRecords", err)
	}
	values := make([]*structpb.Value, 0, len(records))
	for _, rec := range records {
		packed, err := record.ToProto(rec)
		if err != nil {
			return nil, s.fail("QueryRecords", err)
		}
		values = append(values, structpb.NewStructValue(packed))
	}
	return reply(st, "records", structpb.NewListValue(&structpb.ListValue{Values: values})), nil
}

func (s *NodeServer) SendRecord(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()
	id, err := uuid.Parse(fields["recordId"].GetStringValue())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "malformed record id: %v", err)
	}
	st, err := s.node.SendRecord(ctx, fields["tenant"].GetStringValue(), id, fields["target"].GetStringValue())
	if err != nil {
		return nil, s.fail("SendRecord", err)
	}
	return reply(st, "", nil), nil
}

func (s *NodeServer) fail(method string, err error) error {
	s.log.Debug("Node call failed", "method", method, "error", err)
	return errors.MapToGRPCError(err)
}

func reply(st record.Status, name string, value *structpb.Value) *structpb.Struct {
	out := &structpb.Struct{Fields: map[string]*structpb.Value{
		"status": structpb.NewStructValue(record.StatusToProto(st)),
	}}
	if name != "" {
		out.Fields[name] = value
	}
	return out
}

var _ nodev1.NodeServiceServer = (*NodeServer)(nil)
