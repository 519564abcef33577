package storage

import (
	"github.com/onflow/flow-witness/model/flow"
)

// Chunks represents persistent storage for chunks, including their transactions.
type Chunks interface {

	// Store stores the chunk under the ID of its header.
	Store(chunk *flow.Chunk) error

	// ByID returns the chunk with the given ID.
	ByID(chunkID flow.Identifier) (*flow.Chunk, error)
}
