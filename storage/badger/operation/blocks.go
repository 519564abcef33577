package operation

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/onflow/flow-witness/model/flow"
)

func InsertHeader(blockID flow.Identifier, header *flow.Header) func(*badger.Txn) error {
	return insert(makePrefix(codeHeader, blockID), header)
}

func RetrieveHeader(blockID flow.Identifier, header *flow.Header) func(*badger.Txn) error {
	return retrieve(makePrefix(codeHeader, blockID), header)
}

// InsertBlockChunks stores the chunk headers of a block, ordered by shard.
func InsertBlockChunks(blockID flow.Identifier, chunks []*flow.ChunkHeader) func(*badger.Txn) error {
	return insert(makePrefix(codeBlockChunks, blockID), chunks)
}

func RetrieveBlockChunks(blockID flow.Identifier, chunks *[]*flow.ChunkHeader) func(*badger.Txn) error {
	return retrieve(makePrefix(codeBlockChunks, blockID), chunks)
}

// IndexBlockHeight indexes the block at the given height, replacing any previous entry.
func IndexBlockHeight(height uint64, blockID flow.Identifier) func(*badger.Txn) error {
	return upsert(makePrefix(codeHeightToBlock, height), blockID)
}

func LookupBlockHeight(height uint64, blockID *flow.Identifier) func(*badger.Txn) error {
	return retrieve(makePrefix(codeHeightToBlock, height), blockID)
}
