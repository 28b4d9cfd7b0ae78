//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"dinger/domain/protocol"
	"dinger/domain/record"
	"dinger/projection"

	"github.com/google/uuid"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Node is the decentralized web node surface used by the application.
// A non-nil error always comes with a Status describing it.
type Node interface {
	QueryProtocols(ctx context.Context, tenant, uri string) ([]protocol.Definition, record.Status, error)
	ConfigureProtocol(ctx context.Context, tenant string, definition protocol.Definition) (record.Status, error)
	WriteRecord(ctx context.Context, request record.WriteRequest) (record.Record, record.Status, error)
	QueryRecords(ctx context.Context, query record.Query) ([]record.Record, record.Status, error)
	SendRecord(ctx context.Context, tenant string, recordID uuid.UUID, target string) (record.Status, error)
}

// StateSink consumes view state snapshots published by the poller.
type StateSink interface {
	Consume(ctx context.Context, state projection.State) error
}

// NoteIndex makes ding notes searchable.
type NoteIndex interface {
	Index(ctx context.Context, entries ...IndexEntry) error
	Search(ctx context.Context, terms string, limit int) ([]string, error)
}

type IndexEntry struct {
	RecordID string
	Partner  string
	Note     string
}
