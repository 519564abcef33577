package operation

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/onflow/flow-witness/ledger"
	"github.com/onflow/flow-witness/model/flow"
)

// InsertTrie stores the payloads of a trie snapshot under its root hash.
func InsertTrie(root flow.StateCommitment, payloads []ledger.Payload) func(*badger.Txn) error {
	return insert(makePrefix(codeTrie, root), payloads)
}

func RetrieveTrie(root flow.StateCommitment, payloads *[]ledger.Payload) func(*badger.Txn) error {
	return retrieve(makePrefix(codeTrie, root), payloads)
}

func TrieExists(root flow.StateCommitment, exists *bool) func(*badger.Txn) error {
	return check(makePrefix(codeTrie, root), exists)
}
