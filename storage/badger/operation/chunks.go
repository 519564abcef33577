package operation

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/onflow/flow-witness/model/flow"
)

func InsertChunk(chunkID flow.Identifier, chunk *flow.Chunk) func(*badger.Txn) error {
	return insert(makePrefix(codeChunk, chunkID), chunk)
}

func RetrieveChunk(chunkID flow.Identifier, chunk *flow.Chunk) func(*badger.Txn) error {
	return retrieve(makePrefix(codeChunk, chunkID), chunk)
}

func ChunkExists(chunkID flow.Identifier, exists *bool) func(*badger.Txn) error {
	return check(makePrefix(codeChunk, chunkID), exists)
}
