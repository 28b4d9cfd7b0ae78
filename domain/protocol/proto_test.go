package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefinitionProtoKeepsJSONNames(t *testing.T) {
	req := require.New(t)

	packed, err := ToProto(Dinger())
	req.NoError(err)
	structure := packed.GetFields()["structure"].GetStructValue()
	ding := structure.GetFields()[DingPath].GetStructValue()
	req.Contains(ding.GetFields(), "$actions")

	back, err := FromProto(packed)
	req.NoError(err)
	req.Equal(Dinger(), back)
}
