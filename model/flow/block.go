package flow

// Block includes the header as well as the chunk headers of all shards.
//
// Chunks is ordered by shard, so that Chunks[i].ShardID == i. A shard that had
// no new chunk at this height carries over the header of its previous chunk,
// with an unchanged HeightIncluded.
type Block struct {
	Header *Header
	Chunks []*ChunkHeader
}

// NewBlock builds a block and sets the chunks root of the header.
func NewBlock(header Header, chunks []*ChunkHeader) *Block {
	header.ChunksRoot = ChunkHeadersRoot(chunks)
	return &Block{
		Header: &header,
		Chunks: chunks,
	}
}

// Valid will check whether the block is valid bottom-up.
func (b Block) Valid() bool {
	return b.Header.ChunksRoot == ChunkHeadersRoot(b.Chunks)
}

// ID returns the ID of the header.
func (b Block) ID() Identifier {
	return b.Header.ID()
}

// NewChunks returns the chunk headers which were produced for this block.
func (b Block) NewChunks() []*ChunkHeader {
	chunks := make([]*ChunkHeader, 0, len(b.Chunks))
	for _, header := range b.Chunks {
		if header.IsNewChunk(b.Header.Height) {
			chunks = append(chunks, header)
		}
	}
	return chunks
}

// ChunkHeadersRoot commits to the complete chunk headers, including the height
// at which they were included.
func ChunkHeadersRoot(chunks []*ChunkHeader) Identifier {
	if chunks == nil {
		chunks = []*ChunkHeader{}
	}
	return MakeID(chunks)
}
