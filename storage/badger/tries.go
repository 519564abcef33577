package badger

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/onflow/flow-witness/ledger"
	"github.com/onflow/flow-witness/ledger/complete/mtrie/trie"
	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/module"
	"github.com/onflow/flow-witness/module/metrics"
	"github.com/onflow/flow-witness/storage/badger/operation"
)

// Tries stores state trie snapshots. Only the payloads are persisted; the
// trie is rebuilt on load, and recently used tries are kept in memory.
type Tries struct {
	db    *badger.DB
	cache *Cache[flow.StateCommitment, *trie.MTrie]
}

func NewTries(collector module.CacheMetrics, db *badger.DB, cacheSize uint) *Tries {
	store := func(root flow.StateCommitment, t *trie.MTrie) error {
		return db.Update(func(tx *badger.Txn) error {
			var exists bool
			err := operation.TrieExists(root, &exists)(tx)
			if err != nil {
				return fmt.Errorf("could not check trie: %w", err)
			}
			if exists {
				return nil
			}
			return operation.InsertTrie(root, t.Payloads())(tx)
		})
	}

	retrieve := func(root flow.StateCommitment) (*trie.MTrie, error) {
		var payloads []ledger.Payload
		err := db.View(operation.RetrieveTrie(root, &payloads))
		if err != nil {
			return nil, err
		}
		t, err := trie.NewMTrie(payloads)
		if err != nil {
			return nil, fmt.Errorf("could not rebuild trie: %w", err)
		}
		if flow.StateCommitment(t.RootHash()) != root {
			return nil, fmt.Errorf("rebuilt trie has root %x, expected %x", t.RootHash(), root)
		}
		return t, nil
	}

	return &Tries{
		db: db,
		cache: newCache[flow.StateCommitment, *trie.MTrie](collector, metrics.ResourceTrie,
			withLimit[flow.StateCommitment, *trie.MTrie](cacheSize),
			withStore(store),
			withRetrieve(retrieve)),
	}
}

func (t *Tries) Store(mt *trie.MTrie) error {
	return t.cache.Put(flow.StateCommitment(mt.RootHash()), mt)
}

func (t *Tries) ByRoot(root flow.StateCommitment) (*trie.MTrie, error) {
	return t.cache.Get(root)
}
