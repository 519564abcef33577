package badger

import (
	"errors"

	"github.com/dgraph-io/badger/v2"

	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/module"
	"github.com/onflow/flow-witness/module/metrics"
	"github.com/onflow/flow-witness/storage"
	"github.com/onflow/flow-witness/storage/badger/operation"
)

// Chunks stores chunks with their transactions.
type Chunks struct {
	db    *badger.DB
	cache *Cache[flow.Identifier, *flow.Chunk]
}

func NewChunks(collector module.CacheMetrics, db *badger.DB) *Chunks {
	store := func(chunkID flow.Identifier, chunk *flow.Chunk) error {
		err := db.Update(operation.InsertChunk(chunkID, chunk))
		// a carried-over chunk is stored again under the same ID
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil
		}
		return err
	}

	retrieve := func(chunkID flow.Identifier) (*flow.Chunk, error) {
		var chunk flow.Chunk
		err := db.View(operation.RetrieveChunk(chunkID, &chunk))
		return &chunk, err
	}

	return &Chunks{
		db: db,
		cache: newCache[flow.Identifier, *flow.Chunk](collector, metrics.ResourceChunk,
			withLimit[flow.Identifier, *flow.Chunk](1000),
			withStore(store),
			withRetrieve(retrieve)),
	}
}

func (c *Chunks) Store(chunk *flow.Chunk) error {
	return c.cache.Put(chunk.ID(), chunk)
}

func (c *Chunks) ByID(chunkID flow.Identifier) (*flow.Chunk, error) {
	return c.cache.Get(chunkID)
}
