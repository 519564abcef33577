package flow

// ChunkHeader holds the meta-data of the chunk of a single shard.
type ChunkHeader struct {
	ShardID ShardID
	// PrevBlockID is the block the chunk was built on.
	PrevBlockID Identifier
	// HeightCreated is the height of the block the chunk was produced for.
	HeightCreated uint64
	// HeightIncluded is the height of the block that included the chunk. It
	// differs from HeightCreated when the chunk was produced late, and stays
	// unchanged when a later block carries the header over.
	HeightIncluded uint64
	PrevStateRoot  StateCommitment
	PostStateRoot  StateCommitment
	TxRoot         Identifier
	Producer       AccountID
}

// ID returns the identifier of the chunk. HeightIncluded is not part of it,
// so a carried-over header keeps its ID.
func (ch ChunkHeader) ID() Identifier {
	return MakeID(struct {
		ShardID       ShardID
		PrevBlockID   Identifier
		HeightCreated uint64
		PrevStateRoot StateCommitment
		PostStateRoot StateCommitment
		TxRoot        Identifier
		Producer      AccountID
	}{
		ShardID:       ch.ShardID,
		PrevBlockID:   ch.PrevBlockID,
		HeightCreated: ch.HeightCreated,
		PrevStateRoot: ch.PrevStateRoot,
		PostStateRoot: ch.PostStateRoot,
		TxRoot:        ch.TxRoot,
		Producer:      ch.Producer,
	})
}

// IsNewChunk returns true if the chunk was included in the block at the given height.
func (ch ChunkHeader) IsNewChunk(height uint64) bool {
	return ch.HeightIncluded == height
}

// Chunk is a chunk header together with its transactions.
type Chunk struct {
	Header       *ChunkHeader
	Transactions []*Transaction
}

// ID returns the ID of the chunk header.
func (c Chunk) ID() Identifier {
	return c.Header.ID()
}
