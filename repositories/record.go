//go:generate go run go.uber.org/mock/mockgen -source=record.go -destination=../mocks/mock_record_repository.go -package=mocks
package repositories

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"slices"

	"dinger/domain/record"
	"dinger/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

type IRecordRepository interface {
	StoreRecord(r record.Record) error
	GetRecord(tenant string, id uuid.UUID) (record.Record, error)
	QueryRecords(query record.Query) ([]record.Record, error)
}

type RecordRepository struct {
	db           *badger.DB
	log          *slog.Logger
	limitRecords *int
}

func NewRecordRepository(db *badger.DB, log *slog.Logger, limitRecords *int) RecordRepository {
	return RecordRepository{db: db, log: log, limitRecords: limitRecords}
}

// tenantKey keeps DIDs, which contain colons, out of the key separators.
func tenantKey(tenant string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(tenant))
}

func recordPrefix(tenant string) string {
	return fmt.Sprintf("rec:%s:", tenantKey(tenant))
}

func recordIDKey(tenant string, id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("recid:%s:%s", tenantKey(tenant), id))
}

// StoreRecord persists a record in its tenant's keyspace.
// The key is formatted as "rec:{tenant}:{created_padded}:{uuid}" so a prefix
// scan returns records in creation order, the UUID breaking ties between
// records created at the same nanosecond. A secondary "recid:" key points
// back to it for lookups by ID.
func (r RecordRepository) StoreRecord(rec record.Record) error {
	key := fmt.Sprintf("%s%019d:%s", recordPrefix(rec.Tenant), rec.DateCreated.UnixNano(), rec.ID)
	packed, err := record.ToProto(rec)
	if err != nil {
		return err
	}
	bytes, err := proto.Marshal(packed)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(key), bytes); err != nil {
			return err
		}
		return txn.Set(recordIDKey(rec.Tenant, rec.ID), []byte(key))
	})
}

func (r RecordRepository) GetRecord(tenant string, id uuid.UUID) (record.Record, error) {
	var value []byte
	err := r.db.View(func(txn *badger.Txn) error {
		pointer, err := txn.Get(recordIDKey(tenant, id))
		if err != nil {
			return err
		}
		key, err := pointer.ValueCopy(nil)
		if err != nil {
			return err
		}
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return record.Record{}, fmt.Errorf("%w: %s", errors.ErrRecordNotFound, id)
	}
	if err != nil {
		return record.Record{}, err
	}
	return decodeRecord(value)
}

// QueryRecords scans the tenant's records in the requested date order and
// keeps those matching the protocol filter. With limitRecords set, only the
// latest matches are kept, whatever the requested order.
func (r RecordRepository) QueryRecords(query record.Query) ([]record.Record, error) {
	var records []record.Record
	limited := r.limitRecords != nil
	newestFirst := limited || query.DateSort == record.CreatedDescending
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(recordPrefix(query.Tenant))
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		seek := prefix
		if newestFirst {
			options.Reverse = true
			seek = append(append([]byte{}, prefix...), 0xff)
		}
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			if limited && len(records) == *r.limitRecords {
				r.log.Debug(fmt.Sprintf("Maximum of %d records reached", *r.limitRecords))
				break
			}
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			rec, err := decodeRecord(value)
			if err != nil {
				return err
			}
			if matches(rec, query) {
				records = append(records, rec)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if newestFirst && query.DateSort != record.CreatedDescending {
		slices.Reverse(records)
	}
	return records, nil
}

func matches(rec record.Record, query record.Query) bool {
	if query.Protocol != "" && rec.Protocol != query.Protocol {
		return false
	}
	if query.ProtocolPath != "" && rec.ProtocolPath != query.ProtocolPath {
		return false
	}
	return true
}

func decodeRecord(value []byte) (record.Record, error) {
	var packed structpb.Struct
	if err := proto.Unmarshal(value, &packed); err != nil {
		return record.Record{}, err
	}
	return record.FromProto(&packed)
}
