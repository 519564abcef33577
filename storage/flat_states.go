package storage

import (
	"github.com/onflow/flow-witness/ledger"
	"github.com/onflow/flow-witness/model/flow"
)

// FlatStates provides point reads of state values without walking a trie.
// Values are indexed by the state root they belong to.
type FlatStates interface {

	// Index stores all payloads of the state with the given root.
	Index(root flow.StateCommitment, payloads []ledger.Payload) error

	// Get returns the value stored under key in the state with the given root.
	// If the key is absent from an indexed state, found is false. If the state
	// was never indexed, storage.ErrNotFound is returned.
	Get(root flow.StateCommitment, key string) (value []byte, found bool, err error)
}
