package procedure

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/storage/badger/operation"
)

// InsertBlock inserts a block to the storage and indexes it by height.
func InsertBlock(blockID flow.Identifier, block *flow.Block) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {

		// store the block header
		err := operation.InsertHeader(blockID, block.Header)(tx)
		if err != nil {
			return fmt.Errorf("could not insert block header: %w", err)
		}

		// store the chunk headers
		err = operation.InsertBlockChunks(blockID, block.Chunks)(tx)
		if err != nil {
			return fmt.Errorf("could not insert block chunks: %w", err)
		}

		err = operation.IndexBlockHeight(block.Header.Height, blockID)(tx)
		if err != nil {
			return fmt.Errorf("could not index block height: %w", err)
		}

		return nil
	}
}

// RetrieveBlock retrieves a block by the given blockID
func RetrieveBlock(blockID flow.Identifier, block *flow.Block) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {

		// get the block header
		var header flow.Header
		err := operation.RetrieveHeader(blockID, &header)(tx)
		if err != nil {
			return fmt.Errorf("could not retrieve header: %w", err)
		}

		// get the chunk headers
		var chunks []*flow.ChunkHeader
		err = operation.RetrieveBlockChunks(blockID, &chunks)(tx)
		if err != nil {
			return fmt.Errorf("could not retrieve chunks: %w", err)
		}

		// build block and replace original
		*block = flow.Block{
			Header: &header,
			Chunks: chunks,
		}

		return nil
	}
}
