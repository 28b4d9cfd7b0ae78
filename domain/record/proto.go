package record

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToProto packs a record into a protobuf Struct, the envelope used both on
// disk and on the wire.
func ToProto(r Record) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"id":           r.ID.String(),
		"tenant":       r.Tenant,
		"author":       r.Author,
		"recipient":    r.Recipient,
		"protocol":     r.Protocol,
		"protocolPath": r.ProtocolPath,
		"schema":       r.Schema,
		"dataFormat":   r.DataFormat,
		"dateCreated":  r.DateCreated.UTC().Format(time.RFC3339Nano),
		"data":         base64.StdEncoding.EncodeToString(r.Data),
	})
}

func FromProto(s *structpb.Struct) (Record, error) {
	fields := s.GetFields()
	str := func(name string) string { return fields[name].GetStringValue() }

	id, err := uuid.Parse(str("id"))
	if err != nil {
		return Record{}, fmt.Errorf("record id: %w", err)
	}
	created, err := time.Parse(time.RFC3339Nano, str("dateCreated"))
	if err != nil {
		return Record{}, fmt.Errorf("record date: %w", err)
	}
	data, err := base64.StdEncoding.DecodeString(str("data"))
	if err != nil {
		return Record{}, fmt.Errorf("record data: %w", err)
	}
	return Record{
		ID:           id,
		Tenant:       str("tenant"),
		Author:       str("author"),
		Recipient:    str("recipient"),
		Protocol:     str("protocol"),
		ProtocolPath: str("protocolPath"),
		Schema:       str("schema"),
		DataFormat:   str("dataFormat"),
		DateCreated:  created.UTC(),
		Data:         data,
	}, nil
}

func WriteRequestToProto(w WriteRequest) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"tenant":       w.Tenant,
		"author":       w.Author,
		"recipient":    w.Recipient,
		"protocol":     w.Protocol,
		"protocolPath": w.ProtocolPath,
		"schema":       w.Schema,
		"dataFormat":   w.DataFormat,
		"data":         base64.StdEncoding.EncodeToString(w.Data),
	})
}

func WriteRequestFromProto(s *structpb.Struct) (WriteRequest, error) {
	fields := s.GetFields()
	str := func(name string) string { return fields[name].GetStringValue() }
	data, err := base64.StdEncoding.DecodeString(str("data"))
	if err != nil {
		return WriteRequest{}, fmt.Errorf("write data: %w", err)
	}
	return WriteRequest{
		Tenant:       str("tenant"),
		Author:       str("author"),
		Recipient:    str("recipient"),
		Protocol:     str("protocol"),
		ProtocolPath: str("protocolPath"),
		Schema:       str("schema"),
		DataFormat:   str("dataFormat"),
		Data:         data,
	}, nil
}

func QueryToProto(q Query) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"tenant":       q.Tenant,
		"requester":    q.Requester,
		"protocol":     q.Protocol,
		"protocolPath": q.ProtocolPath,
		"dateSort":     string(q.DateSort),
	})
}

func QueryFromProto(s *structpb.Struct) Query {
	fields := s.GetFields()
	return Query{
		Tenant:       fields["tenant"].GetStringValue(),
		Requester:    fields["requester"].GetStringValue(),
		Protocol:     fields["protocol"].GetStringValue(),
		ProtocolPath: fields["protocolPath"].GetStringValue(),
		DateSort:     DateSort(fields["dateSort"].GetStringValue()),
	}
}

func StatusToProto(st Status) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"code":   structpb.NewNumberValue(float64(st.Code)),
		"detail": structpb.NewStringValue(st.Detail),
	}}
}

func StatusFromProto(s *structpb.Struct) Status {
	fields := s.GetFields()
	return Status{
		Code:   int(fields["code"].GetNumberValue()),
		Detail: fields["detail"].GetStringValue(),
	}
}
