package operation

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/onflow/flow-witness/ledger"
	"github.com/onflow/flow-witness/model/flow"
)

// IndexFlatState stores every payload of the state with the given root as an
// individual entry, and marks the state as indexed.
func IndexFlatState(root flow.StateCommitment, payloads []ledger.Payload) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {
		for _, payload := range payloads {
			err := upsert(makePrefix(codeFlatValue, root, payload.Key), payload.Value)(tx)
			if err != nil {
				return fmt.Errorf("could not index value of %s: %w", payload.Key, err)
			}
		}
		return upsert(makePrefix(codeFlatRoot, root), uint64(len(payloads)))(tx)
	}
}

// FlatValueEntry returns the badger entry holding a single value of the state,
// for writing through a badger.WriteBatch.
func FlatValueEntry(root flow.StateCommitment, payload ledger.Payload) (*badger.Entry, error) {
	val, err := encodeEntity(payload.Value)
	if err != nil {
		return nil, err
	}
	return badger.NewEntry(makePrefix(codeFlatValue, root, payload.Key), val), nil
}

// FlatRootEntry returns the badger entry marking the state as indexed.
func FlatRootEntry(root flow.StateCommitment, count int) (*badger.Entry, error) {
	val, err := encodeEntity(uint64(count))
	if err != nil {
		return nil, err
	}
	return badger.NewEntry(makePrefix(codeFlatRoot, root), val), nil
}

// FlatStateExists checks whether the state with the given root was indexed.
func FlatStateExists(root flow.StateCommitment, exists *bool) func(*badger.Txn) error {
	return check(makePrefix(codeFlatRoot, root), exists)
}

func RetrieveFlatValue(root flow.StateCommitment, key string, value *[]byte) func(*badger.Txn) error {
	return retrieve(makePrefix(codeFlatValue, root, key), value)
}

// TraverseFlatState calls the handler for every indexed payload of the state,
// in key order.
func TraverseFlatState(root flow.StateCommitment, handler func(payload ledger.Payload) error) func(*badger.Txn) error {
	prefix := makePrefix(codeFlatValue, root)
	return traverse(prefix, func(key []byte, val []byte) error {
		var value []byte
		err := decodeValue(val, &value)
		if err != nil {
			return fmt.Errorf("could not decode flat value: %w", err)
		}
		return handler(ledger.NewPayload(string(key[len(prefix):]), value))
	})
}
