package protocol

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToProto converts a definition into a protobuf Struct keeping its JSON
// field names ($actions, dataFormats...).
func ToProto(d Definition) (*structpb.Struct, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	var packed structpb.Struct
	if err = protojson.Unmarshal(raw, &packed); err != nil {
		return nil, err
	}
	return &packed, nil
}

func FromProto(s *structpb.Struct) (Definition, error) {
	raw, err := protojson.Marshal(s)
	if err != nil {
		return Definition{}, err
	}
	var d Definition
	err = json.Unmarshal(raw, &d)
	return d, err
}
