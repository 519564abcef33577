package storage

import (
	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/model/witness"
)

// LatestWitnesses keeps the most recent state witness built for every shard,
// for debugging.
type LatestWitnesses interface {

	// Store replaces the latest witness of the shard with the encoded witness.
	Store(shard flow.ShardID, encoded *witness.EncodedStateWitness) error

	// ByShard returns the latest witness of the shard.
	ByShard(shard flow.ShardID) (*witness.StateWitness, error)
}
