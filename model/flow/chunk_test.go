package flow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v4"

	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/utils/unittest"
)

func TestChunkHeaderIDIgnoresHeightIncluded(t *testing.T) {
	header := unittest.ChunkHeaderFixture(3, 10)
	carried := *header
	carried.HeightIncluded = header.HeightIncluded - 1

	assert.Equal(t, header.ID(), carried.ID())

	carried.PostStateRoot = unittest.StateCommitmentFixture()
	assert.NotEqual(t, header.ID(), carried.ID())
}

func TestIsNewChunk(t *testing.T) {
	header := unittest.ChunkHeaderFixture(0, 10)
	assert.True(t, header.IsNewChunk(10))
	assert.False(t, header.IsNewChunk(11))
	assert.False(t, header.IsNewChunk(9))
}

func TestChunkHeaderEncodingMsgpack(t *testing.T) {
	header := unittest.ChunkHeaderFixture(1, 5)
	data, err := msgpack.Marshal(header)
	require.NoError(t, err)

	var decoded flow.ChunkHeader
	require.NoError(t, msgpack.Unmarshal(data, &decoded))
	assert.Equal(t, *header, decoded)
	assert.Equal(t, header.ID(), decoded.ID())
}

func TestTransactionsRootOrderMatters(t *testing.T) {
	txs := unittest.TransactionListFixture(3)
	reordered := []*flow.Transaction{txs[1], txs[0], txs[2]}

	assert.Equal(t, flow.TransactionsRoot(txs), flow.TransactionsRoot(txs))
	assert.NotEqual(t, flow.TransactionsRoot(txs), flow.TransactionsRoot(reordered))
	assert.NotEqual(t, flow.TransactionsRoot(nil), flow.TransactionsRoot(txs))
}
