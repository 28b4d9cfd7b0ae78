package record

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecord_Accessors(t *testing.T) {
	req := require.New(t)
	r := Record{Data: []byte(`{"note":"hi"}`)}

	req.Equal(`{"note":"hi"}`, r.Text())

	var payload struct {
		Note string `json:"note"`
	}
	req.NoError(r.JSON(&payload))
	req.Equal("hi", payload.Note)

	r.Data = []byte("plain")
	req.Error(r.JSON(&payload))
}
