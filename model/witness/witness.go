package witness

import (
	"github.com/onflow/flow-witness/ledger"
	"github.com/onflow/flow-witness/model/flow"
)

// StateWitness contains everything a validator needs to verify a chunk without
// having access to the state of its shard: the chunk and its context in the chain,
// and a storage proof covering every state entry read by the chunk's transactions.
//
// A witness is not modified after construction.
type StateWitness struct {
	// ChunkProducer is the account that produced the witness.
	ChunkProducer flow.AccountID
	// PrevBlockHeader is the header of the block the chunk was built on.
	PrevBlockHeader *flow.Header
	// PrevChunkHeader is the header of the last chunk of the same shard,
	// as contained in the previous block.
	PrevChunkHeader *flow.ChunkHeader
	ChunkHeader     *flow.ChunkHeader
	Transactions    []*flow.Transaction
	// StorageProof proves the state reads of Transactions against
	// ChunkHeader.PrevStateRoot.
	StorageProof *ledger.Proof
}

// NewStateWitness assembles the witness for the given chunk.
func NewStateWitness(
	producer flow.AccountID,
	prevBlockHeader *flow.Header,
	prevChunkHeader *flow.ChunkHeader,
	chunk *flow.Chunk,
	storageProof *ledger.Proof,
) *StateWitness {
	return &StateWitness{
		ChunkProducer:   producer,
		PrevBlockHeader: prevBlockHeader,
		PrevChunkHeader: prevChunkHeader,
		ChunkHeader:     chunk.Header,
		Transactions:    chunk.Transactions,
		StorageProof:    storageProof,
	}
}

// ShardID returns the shard of the witnessed chunk.
func (w *StateWitness) ShardID() flow.ShardID {
	return w.ChunkHeader.ShardID
}

// ChunkID returns the ID of the witnessed chunk.
func (w *StateWitness) ChunkID() flow.Identifier {
	return w.ChunkHeader.ID()
}

// ID returns the content hash of the witness.
func (w *StateWitness) ID() flow.Identifier {
	return flow.MakeID(w)
}
