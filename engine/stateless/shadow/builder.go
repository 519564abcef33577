package shadow

import (
	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/model/witness"
	"github.com/onflow/flow-witness/module/runtime"
)

// buildWitness reconstructs the witness of the chunk. The storage proof, which a
// producer would ship with its witness, is obtained by preparing the chunk's
// transactions against the durable state before the chunk.
func (v *Validator) buildWitness(
	prevBlockHeader *flow.Header,
	prevChunkHeader *flow.ChunkHeader,
	chunk *flow.Chunk,
) (*witness.StateWitness, error) {
	lastChunkID := prevChunkHeader.ID()
	lastChunk, err := v.chain.ChunkByID(lastChunkID)
	if err != nil {
		return nil, &ChunkFetchError{ChunkID: lastChunkID, err: err}
	}

	cfg := runtime.StorageConfig{
		StateRoot:      chunk.Header.PrevStateRoot,
		UseFlatStorage: true,
		Source:         runtime.SourceDB,
	}
	validated, err := v.runtime.ValidatePreparedTransactions(cfg, chunk.Header, chunk.Transactions, lastChunk.Transactions)
	if err != nil {
		return nil, &StorageProofError{err: err}
	}

	w := witness.NewStateWitness(v.config.ChunkProducer, prevBlockHeader, prevChunkHeader, chunk, validated.Proof)

	return w, nil
}
