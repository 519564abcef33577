package flow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/utils/unittest"
)

func TestBlockValid(t *testing.T) {
	block := unittest.BlockFixture(10, 4)
	require.True(t, block.Valid())

	block.Chunks[2].HeightIncluded = 9
	assert.False(t, block.Valid())
}

func TestBlockNewChunks(t *testing.T) {
	chunks := make([]*flow.ChunkHeader, 0, 4)
	for shard := 0; shard < 4; shard++ {
		height := uint64(9)
		if shard == 2 {
			height = 10
		}
		chunks = append(chunks, unittest.ChunkHeaderFixture(flow.ShardID(shard), height))
	}
	block := flow.NewBlock(flow.Header{Height: 10}, chunks)

	newChunks := block.NewChunks()
	require.Len(t, newChunks, 1)
	assert.Equal(t, flow.ShardID(2), newChunks[0].ShardID)
}

func TestHeaderIDChangesWithChunks(t *testing.T) {
	block := unittest.BlockFixture(10, 2)
	other := flow.NewBlock(*block.Header, []*flow.ChunkHeader{block.Chunks[1], block.Chunks[0]})

	assert.NotEqual(t, block.ID(), other.ID())
	assert.Equal(t, block.Header.ID(), block.ID())
}

func TestHexStringToIdentifier(t *testing.T) {
	id := unittest.IdentifierFixture()
	parsed, err := flow.HexStringToIdentifier(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = flow.HexStringToIdentifier("abcd")
	assert.Error(t, err)
	_, err = flow.HexStringToIdentifier("zz")
	assert.Error(t, err)
}
