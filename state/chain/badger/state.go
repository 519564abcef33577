package badger

import (
	"fmt"

	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/model/witness"
	"github.com/onflow/flow-witness/state/chain"
	"github.com/onflow/flow-witness/storage"
)

// State implements chain.Store on top of the persistent storage modules.
type State struct {
	blocks          storage.Blocks
	chunks          storage.Chunks
	latestWitnesses storage.LatestWitnesses
}

var _ chain.Store = (*State)(nil)

// NewState returns the chain store backed by all. all.LatestWitnesses may be nil,
// in which case SaveLatestWitness fails with chain.ErrNoLatestWitnesses.
func NewState(all *storage.All) *State {
	return &State{
		blocks:          all.Blocks,
		chunks:          all.Chunks,
		latestWitnesses: all.LatestWitnesses,
	}
}

func (s *State) BlockByID(blockID flow.Identifier) (*flow.Block, error) {
	block, err := s.blocks.ByID(blockID)
	if err != nil {
		return nil, fmt.Errorf("could not get block %v: %w", blockID, err)
	}
	return block, nil
}

func (s *State) ChunkByHeader(header *flow.ChunkHeader) (*flow.Chunk, error) {
	chunk, err := s.ChunkByID(header.ID())
	if err != nil {
		return nil, err
	}
	// the stored header may have been included at another height
	return &flow.Chunk{
		Header:       header,
		Transactions: chunk.Transactions,
	}, nil
}

func (s *State) ChunkByID(chunkID flow.Identifier) (*flow.Chunk, error) {
	chunk, err := s.chunks.ByID(chunkID)
	if err != nil {
		return nil, fmt.Errorf("could not get chunk %v: %w", chunkID, err)
	}
	return chunk, nil
}

func (s *State) SaveLatestWitness(shard flow.ShardID, encoded *witness.EncodedStateWitness) error {
	if s.latestWitnesses == nil {
		return chain.ErrNoLatestWitnesses
	}
	err := s.latestWitnesses.Store(shard, encoded)
	if err != nil {
		return fmt.Errorf("could not save latest witness of shard %d: %w", shard, err)
	}
	return nil
}
