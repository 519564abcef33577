package chain

import (
	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/model/witness"
)

//go:generate mockery --name=Store --output=mock --outpkg=mock --case=underscore

// Store is the read view of the chain used by witness building and validation.
// Implementations are safe for concurrent use.
type Store interface {

	// BlockByID returns the block with the given ID.
	// Expected errors during normal operations:
	//   - storage.ErrNotFound if the block is unknown
	BlockByID(blockID flow.Identifier) (*flow.Block, error)

	// ChunkByHeader returns the chunk described by the header.
	// Expected errors during normal operations:
	//   - storage.ErrNotFound if the chunk is unknown
	ChunkByHeader(header *flow.ChunkHeader) (*flow.Chunk, error)

	// ChunkByID returns the chunk with the given ID.
	// Expected errors during normal operations:
	//   - storage.ErrNotFound if the chunk is unknown
	ChunkByID(chunkID flow.Identifier) (*flow.Chunk, error)

	// SaveLatestWitness replaces the latest witness of the shard.
	// Expected errors during normal operations:
	//   - ErrNoLatestWitnesses if no latest witness storage is configured
	SaveLatestWitness(shard flow.ShardID, encoded *witness.EncodedStateWitness) error
}
