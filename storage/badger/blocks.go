package badger

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/module"
	"github.com/onflow/flow-witness/module/metrics"
	"github.com/onflow/flow-witness/storage/badger/operation"
	"github.com/onflow/flow-witness/storage/badger/procedure"
	"github.com/onflow/flow-witness/storage/badger/transaction"
)

// Blocks implements a simple block storage around a badger DB.
type Blocks struct {
	db    *badger.DB
	cache *Cache[flow.Identifier, *flow.Block]
}

func NewBlocks(collector module.CacheMetrics, db *badger.DB) *Blocks {
	retrieve := func(blockID flow.Identifier) (*flow.Block, error) {
		var block flow.Block
		err := db.View(procedure.RetrieveBlock(blockID, &block))
		return &block, err
	}

	b := &Blocks{
		db: db,
		cache: newCache[flow.Identifier, *flow.Block](collector, metrics.ResourceBlock,
			withLimit[flow.Identifier, *flow.Block](1000),
			withRetrieve(retrieve)),
	}
	return b
}

func (b *Blocks) storeTx(block *flow.Block) func(*transaction.Tx) error {
	return func(tx *transaction.Tx) error {
		blockID := block.ID()
		err := procedure.InsertBlock(blockID, block)(tx.DBTxn)
		if err != nil {
			return err
		}
		tx.OnSucceed(func() {
			b.cache.cache.Add(blockID, block)
		})
		return nil
	}
}

// Store stores the block and indexes it by height.
func (b *Blocks) Store(block *flow.Block) error {
	return transaction.Update(b.db, b.storeTx(block))
}

// ByID returns the block with the given ID.
func (b *Blocks) ByID(blockID flow.Identifier) (*flow.Block, error) {
	return b.cache.Get(blockID)
}

// ByHeight returns the block indexed at the given height.
func (b *Blocks) ByHeight(height uint64) (*flow.Block, error) {
	var blockID flow.Identifier
	err := b.db.View(operation.LookupBlockHeight(height, &blockID))
	if err != nil {
		return nil, fmt.Errorf("could not look up block at height %d: %w", height, err)
	}
	return b.ByID(blockID)
}
