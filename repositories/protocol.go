//go:generate go run go.uber.org/mock/mockgen -source=protocol.go -destination=../mocks/mock_protocol_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"

	"dinger/domain/protocol"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

type IProtocolRepository interface {
	StoreProtocol(tenant string, definition protocol.Definition) error
	FindProtocols(tenant, uri string) ([]protocol.Definition, error)
}

type ProtocolRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewProtocolRepository(db *badger.DB, log *slog.Logger) ProtocolRepository {
	return ProtocolRepository{db: db, log: log}
}

func protocolPrefix(tenant string) string {
	return fmt.Sprintf("proto:%s:", tenantKey(tenant))
}

// StoreProtocol installs a definition for a tenant, replacing any previous
// definition of the same protocol URI.
func (p ProtocolRepository) StoreProtocol(tenant string, definition protocol.Definition) error {
	packed, err := protocol.ToProto(definition)
	if err != nil {
		return err
	}
	bytes, err := proto.Marshal(packed)
	if err != nil {
		return err
	}
	key := protocolPrefix(tenant) + definition.Protocol
	return p.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// FindProtocols returns the tenant's definitions, restricted to uri when set.
func (p ProtocolRepository) FindProtocols(tenant, uri string) ([]protocol.Definition, error) {
	var definitions []protocol.Definition
	err := p.db.View(func(txn *badger.Txn) error {
		prefix := []byte(protocolPrefix(tenant) + uri)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			if uri != "" && string(item.Key()) != string(prefix) {
				continue
			}
			err := item.Value(func(value []byte) error {
				definition, err := decodeDefinition(value)
				if err != nil {
					return err
				}
				definitions = append(definitions, definition)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return definitions, nil
}

func decodeDefinition(value []byte) (protocol.Definition, error) {
	var packed structpb.Struct
	if err := proto.Unmarshal(value, &packed); err != nil {
		return protocol.Definition{}, err
	}
	return protocol.FromProto(&packed)
}
