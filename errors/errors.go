package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrWorkerPanic          = fmt.Errorf("worker panic")
	ErrEmptyWords           = fmt.Errorf("no words have been found")
	ErrEmptyNote            = fmt.Errorf("note is empty")
	ErrNoRecipient          = fmt.Errorf("no recipient selected")
	ErrNotConnected         = fmt.Errorf("node not connected")
	ErrInvalidDing          = fmt.Errorf("invalid ding")
	ErrInvalidProtocol      = fmt.Errorf("invalid protocol definition")
	ErrProtocolNotInstalled = fmt.Errorf("protocol not installed")
	ErrUnknownProtocolPath  = fmt.Errorf("unknown protocol path")
	ErrSchemaMismatch       = fmt.Errorf("schema mismatch")
	ErrDataFormatMismatch   = fmt.Errorf("data format mismatch")
	ErrUnauthorized         = fmt.Errorf("action not permitted by protocol")
	ErrTenantNotHosted      = fmt.Errorf("tenant not hosted on this node")
	ErrRecordNotFound       = fmt.Errorf("record not found")
	ErrRecipientUnreachable = fmt.Errorf("recipient unreachable")
)

type grpcMapping struct {
	err  error
	code codes.Code
}

var grpcMappings = []grpcMapping{
	{ErrEmptyNote, codes.InvalidArgument},
	{ErrInvalidDing, codes.InvalidArgument},
	{ErrInvalidProtocol, codes.InvalidArgument},
	{ErrUnknownProtocolPath, codes.InvalidArgument},
	{ErrSchemaMismatch, codes.InvalidArgument},
	{ErrDataFormatMismatch, codes.InvalidArgument},
	{ErrProtocolNotInstalled, codes.FailedPrecondition},
	{ErrUnauthorized, codes.PermissionDenied},
	{ErrTenantNotHosted, codes.NotFound},
	{ErrRecordNotFound, codes.NotFound},
	{ErrRecipientUnreachable, codes.Unavailable},
}

// MapToGRPCError converts domain errors into gRPC status errors.
// The sentinel message is kept as the status message so the client side
// can restore it with FromGRPCError.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	for _, m := range grpcMappings {
		if errors.Is(err, m.err) {
			return status.Error(m.code, m.err.Error())
		}
	}
	return status.Error(codes.Internal, err.Error())
}

// FromGRPCError restores the sentinel carried by a status error, if any.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	for _, m := range grpcMappings {
		if st.Code() == m.code && st.Message() == m.err.Error() {
			return m.err
		}
	}
	return err
}
