package epochs

import (
	"github.com/onflow/flow-witness/model/flow"
)

// ShardLayout describes how the state is partitioned during an epoch.
type ShardLayout struct {
	NumShards uint64
}

// Contains returns true if the shard is part of the layout.
func (l ShardLayout) Contains(shard flow.ShardID) bool {
	return uint64(shard) < l.NumShards
}

//go:generate mockery --name=Manager --output=mock --outpkg=mock --case=underscore

// Manager provides the epoch configuration needed to validate chunks.
// Implementations are safe for concurrent use.
type Manager interface {

	// ShardLayout returns the shard layout of the epoch.
	// Expected errors during normal operations:
	//   - *UnknownEpochError if the epoch is not known
	ShardLayout(epochID flow.Identifier) (ShardLayout, error)

	// ChunkProducer returns the account responsible for producing the chunk of
	// the shard at the given height.
	// Expected errors during normal operations:
	//   - *UnknownEpochError if the epoch is not known
	//   - *UnknownShardError if the shard is not part of the epoch's layout
	ChunkProducer(epochID flow.Identifier, height uint64, shard flow.ShardID) (flow.AccountID, error)
}
