package storage

import (
	"github.com/onflow/flow-witness/model/flow"
)

// Blocks represents persistent storage for blocks.
type Blocks interface {

	// Store stores the block and indexes it by height. A block at a height
	// that is already indexed replaces the previous index entry.
	Store(block *flow.Block) error

	// ByID returns the block with the given hash.
	ByID(blockID flow.Identifier) (*flow.Block, error)

	// ByHeight returns the block indexed at the given height.
	ByHeight(height uint64) (*flow.Block, error)
}
