package storage

import (
	"github.com/onflow/flow-witness/ledger/complete/mtrie/trie"
	"github.com/onflow/flow-witness/model/flow"
)

// Tries stores snapshots of the state trie, addressed by their root hash.
type Tries interface {

	// Store persists the trie under its root hash. Storing a trie that
	// already exists is a no-op.
	Store(t *trie.MTrie) error

	// ByRoot returns the trie with the given root hash.
	ByRoot(root flow.StateCommitment) (*trie.MTrie, error)
}
