package badger

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/onflow/flow-witness/ledger"
	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/storage"
	"github.com/onflow/flow-witness/storage/badger/operation"
)

// FlatStates stores every value of a state as its own entry, so that single
// values can be read without loading a trie.
type FlatStates struct {
	db *badger.DB
}

func NewFlatStates(db *badger.DB) *FlatStates {
	return &FlatStates{db: db}
}

func (f *FlatStates) Index(root flow.StateCommitment, payloads []ledger.Payload) error {
	// badger limits the size of a single transaction
	wb := f.db.NewWriteBatch()
	defer wb.Cancel()

	for _, payload := range payloads {
		entry, err := operation.FlatValueEntry(root, payload)
		if err != nil {
			return err
		}
		err = wb.SetEntry(entry)
		if err != nil {
			return fmt.Errorf("could not batch value of %s: %w", payload.Key, err)
		}
	}

	// the marker is written last, a state is only readable once complete
	entry, err := operation.FlatRootEntry(root, len(payloads))
	if err != nil {
		return err
	}
	err = wb.SetEntry(entry)
	if err != nil {
		return fmt.Errorf("could not batch state marker: %w", err)
	}
	return wb.Flush()
}

func (f *FlatStates) Get(root flow.StateCommitment, key string) ([]byte, bool, error) {
	var value []byte
	found := true
	err := f.db.View(func(tx *badger.Txn) error {
		var indexed bool
		err := operation.FlatStateExists(root, &indexed)(tx)
		if err != nil {
			return fmt.Errorf("could not check state: %w", err)
		}
		if !indexed {
			return fmt.Errorf("state %x is not indexed: %w", root, storage.ErrNotFound)
		}

		err = operation.RetrieveFlatValue(root, key, &value)(tx)
		if errors.Is(err, storage.ErrNotFound) {
			found = false
			return nil
		}
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return value, found, nil
}
