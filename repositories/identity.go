//go:generate go run go.uber.org/mock/mockgen -source=identity.go -destination=../mocks/mock_identity_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	identityKey = "identity:self"
	DIDPrefix   = "did:dinger:"
)

type IIdentityRepository interface {
	LoadOrCreate() (string, bool, error)
}

type IdentityRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewIdentityRepository(db *badger.DB, log *slog.Logger) IdentityRepository {
	return IdentityRepository{db: db, log: log}
}

// LoadOrCreate returns the node's own DID, generating and persisting one on
// first start. The boolean reports whether the DID was just created.
func (i IdentityRepository) LoadOrCreate() (string, bool, error) {
	var did string
	created := false
	err := i.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(identityKey))
		switch {
		case err == nil:
			value, err := item.ValueCopy(nil)
			did = string(value)
			return err
		case err == badger.ErrKeyNotFound:
			did = DIDPrefix + uuid.NewString()
			created = true
			return txn.Set([]byte(identityKey), []byte(did))
		default:
			return err
		}
	})
	if err != nil {
		return "", false, fmt.Errorf("identity bootstrap: %w", err)
	}
	if created {
		i.log.Info("New identity created", "did", did)
	}
	return did, created, nil
}
