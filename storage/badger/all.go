package badger

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/onflow/flow-witness/module"
	"github.com/onflow/flow-witness/storage"
)

// DefaultTrieCacheSize is the number of state tries kept in memory.
const DefaultTrieCacheSize = 64

// InitAll creates the badger backed stores. The latest-witness store lives in
// a separate database and is left unset.
func InitAll(metrics module.CacheMetrics, db *badger.DB) *storage.All {
	return &storage.All{
		Blocks:     NewBlocks(metrics, db),
		Chunks:     NewChunks(metrics, db),
		Tries:      NewTries(metrics, db, DefaultTrieCacheSize),
		FlatStates: NewFlatStates(db),
	}
}
