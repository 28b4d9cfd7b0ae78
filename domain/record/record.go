package record

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type DateSort string

const (
	CreatedAscending  DateSort = "createdAscending"
	CreatedDescending DateSort = "createdDescending"
)

// Status codes follow the HTTP-like replies of a decentralized web node.
const (
	StatusOK           = 200
	StatusAccepted     = 202
	StatusBadRequest   = 400
	StatusUnauthorized = 401
	StatusNotFound     = 404
	StatusError        = 500
)

type Status struct {
	Code   int
	Detail string
}

func OK() Status       { return Status{Code: StatusOK, Detail: "OK"} }
func Accepted() Status { return Status{Code: StatusAccepted, Detail: "Accepted"} }

// Record is a protocol record stored in the tenant's node.
type Record struct {
	ID           uuid.UUID
	Tenant       string
	Author       string
	Recipient    string
	Protocol     string
	ProtocolPath string
	Schema       string
	DataFormat   string
	DateCreated  time.Time
	Data         []byte
}

func (r Record) Text() string {
	return string(r.Data)
}

func (r Record) JSON(v any) error {
	return json.Unmarshal(r.Data, v)
}

type WriteRequest struct {
	Tenant       string
	Author       string
	Recipient    string
	Protocol     string
	ProtocolPath string
	Schema       string
	DataFormat   string
	Data         []byte
}

// Query selects records of a tenant. Requester is the identity asking;
// when it differs from the tenant, protocol read rules apply.
type Query struct {
	Tenant       string
	Requester    string
	Protocol     string
	ProtocolPath string
	DateSort     DateSort
}
