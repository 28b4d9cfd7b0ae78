// Package nodev1 declares the dinger.v1.NodeService gRPC service. Messages
// are google.protobuf.Struct envelopes built by the domain packages, so the
// service needs no generated message types.
package nodev1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "dinger.v1.NodeService"

const (
	QueryProtocolsMethod    = "/" + ServiceName + "/QueryProtocols"
	ConfigureProtocolMethod = "/" + ServiceName + "/ConfigureProtocol"
	WriteRecordMethod       = "/" + ServiceName + "/WriteRecord"
	QueryRecordsMethod      = "/" + ServiceName + "/QueryRecords"
	SendRecordMethod        = "/" + ServiceName + "/SendRecord"
)

type NodeServiceServer interface {
	QueryProtocols(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ConfigureProtocol(context.Context, *structpb.Struct) (*structpb.Struct, error)
	WriteRecord(context.Context, *structpb.Struct) (*structpb.Struct, error)
	QueryRecords(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SendRecord(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func RegisterNodeServiceServer(s grpc.ServiceRegistrar, srv NodeServiceServer) {
	s.RegisterService(&NodeServiceDesc, srv)
}

type unaryCall func(NodeServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryCall) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(NodeServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(NodeServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var NodeServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*NodeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "QueryProtocols",
			Handler:    unaryHandler(QueryProtocolsMethod, NodeServiceServer.QueryProtocols),
		},
		{
			MethodName: "ConfigureProtocol",
			Handler:    unaryHandler(ConfigureProtocolMethod, NodeServiceServer.ConfigureProtocol),
		},
		{
			MethodName: "WriteRecord",
			Handler:    unaryHandler(WriteRecordMethod, NodeServiceServer.WriteRecord),
		},
		{
			MethodName: "QueryRecords",
			Handler:    unaryHandler(QueryRecordsMethod, NodeServiceServer.QueryRecords),
		},
		{
			MethodName: "SendRecord",
			Handler:    unaryHandler(SendRecordMethod, NodeServiceServer.SendRecord),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dinger/v1/node.proto",
}

// NodeServiceClient calls a remote NodeService.
type NodeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewNodeServiceClient(cc grpc.ClientConnInterface) NodeServiceClient {
	return NodeServiceClient{cc: cc}
}

func (c NodeServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c NodeServiceClient) QueryProtocols(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, QueryProtocolsMethod, in, opts...)
}

func (c NodeServiceClient) ConfigureProtocol(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ConfigureProtocolMethod, in, opts...)
}

func (c NodeServiceClient) WriteRecord(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, WriteRecordMethod, in, opts...)
}

func (c NodeServiceClient) QueryRecords(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, QueryRecordsMethod, in, opts...)
}

func (c NodeServiceClient) SendRecord(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, SendRecordMethod, in, opts...)
}
