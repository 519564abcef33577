package testutil

import (
	"fmt"
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-witness/ledger"
	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/module/epochs"
	"github.com/onflow/flow-witness/module/metrics"
	"github.com/onflow/flow-witness/module/runtime"
	chainbadger "github.com/onflow/flow-witness/state/chain/badger"
	"github.com/onflow/flow-witness/storage"
	bstorage "github.com/onflow/flow-witness/storage/badger"
	"github.com/onflow/flow-witness/utils/unittest"
)

// ChainProducers are the chunk producers of the epoch of a ChainBuilder.
var ChainProducers = []string{"producer-a", "producer-b", "producer-c"}

// ChainBuilder grows a consistent chain on a badger database: every new chunk
// is executed by the runtime, so that state roots, stored tries and flat
// states all line up, and producers follow the epoch manager.
type ChainBuilder struct {
	t         testing.TB
	All       *storage.All
	State     *chainbadger.State
	Runtime   *runtime.Runtime
	Epochs    *epochs.StaticManager
	EpochID   flow.Identifier
	NumShards int

	blocks []*flow.Block
	nonces map[flow.AccountID]uint64
}

// NewChainBuilder stores a genesis block with numShards shards. Every shard
// holds two funded accounts.
func NewChainBuilder(t testing.TB, db *badger.DB, numShards int) *ChainBuilder {
	all := bstorage.InitAll(metrics.NewNoopCollector(), db)
	epochID := unittest.IdentifierFixture()
	manager, err := epochs.NewStaticManager(epochs.StaticConfig{
		Epochs: []epochs.EpochConfig{{
			ID:        epochID.String(),
			NumShards: uint64(numShards),
			Producers: ChainProducers,
		}},
	})
	require.NoError(t, err)

	cb := &ChainBuilder{
		t:         t,
		All:       all,
		State:     chainbadger.NewState(all),
		Runtime:   runtime.NewRuntime(unittest.Logger(), all.Tries, all.FlatStates),
		Epochs:    manager,
		EpochID:   epochID,
		NumShards: numShards,
		nonces:    make(map[flow.AccountID]uint64),
	}

	chunks := make([]*flow.ChunkHeader, 0, numShards)
	for s := 0; s < numShards; s++ {
		shard := flow.ShardID(s)
		sender, receiver := ShardAccounts(shard)
		root, err := cb.Runtime.Bootstrap([]ledger.Payload{
			runtime.AccountPayload(sender, runtime.Account{Balance: 1_000_000}),
			runtime.AccountPayload(receiver, runtime.Account{Balance: 1_000_000}),
		})
		require.NoError(t, err)

		chunk := &flow.Chunk{
			Header: &flow.ChunkHeader{
				ShardID:       shard,
				PrevStateRoot: root,
				PostStateRoot: root,
				TxRoot:        flow.TransactionsRoot(nil),
				Producer:      cb.producer(0, shard),
			},
		}
		require.NoError(t, all.Chunks.Store(chunk))
		chunks = append(chunks, chunk.Header)
	}

	genesis := flow.NewBlock(flow.Header{EpochID: epochID}, chunks)
	require.NoError(t, all.Blocks.Store(genesis))
	cb.blocks = append(cb.blocks, genesis)

	return cb
}

// ShardAccounts returns the two accounts of a shard.
func ShardAccounts(shard flow.ShardID) (flow.AccountID, flow.AccountID) {
	return flow.AccountID(fmt.Sprintf("sender.shard-%d", shard)), flow.AccountID(fmt.Sprintf("receiver.shard-%d", shard))
}

// Genesis returns the first block.
func (cb *ChainBuilder) Genesis() *flow.Block {
	return cb.blocks[0]
}

// Head returns the last block.
func (cb *ChainBuilder) Head() *flow.Block {
	return cb.blocks[len(cb.blocks)-1]
}

// Extend stores a new block on top of the head. Only the given shards get a
// new chunk with txsPerChunk transfers; the other shards carry over their
// previous chunk header. Without shards, every shard gets a new chunk.
func (cb *ChainBuilder) Extend(txsPerChunk int, shards ...flow.ShardID) *flow.Block {
	parent := cb.Head()
	height := parent.Header.Height + 1

	newShards := make(map[flow.ShardID]bool, len(shards))
	for _, shard := range shards {
		newShards[shard] = true
	}

	chunks := make([]*flow.ChunkHeader, 0, cb.NumShards)
	for s, prev := range parent.Chunks {
		shard := flow.ShardID(s)
		if len(shards) > 0 && !newShards[shard] {
			chunks = append(chunks, prev)
			continue
		}
		chunks = append(chunks, cb.newChunk(parent, prev, height, txsPerChunk).Header)
	}

	block := flow.NewBlock(flow.Header{
		Height:    height,
		ParentID:  parent.ID(),
		EpochID:   cb.EpochID,
		Timestamp: height * 1000,
	}, chunks)
	require.NoError(cb.t, cb.All.Blocks.Store(block))
	cb.blocks = append(cb.blocks, block)
	return block
}

func (cb *ChainBuilder) newChunk(parent *flow.Block, prev *flow.ChunkHeader, height uint64, numTxs int) *flow.Chunk {
	sender, receiver := ShardAccounts(prev.ShardID)
	txs := make([]*flow.Transaction, 0, numTxs)
	for i := 0; i < numTxs; i++ {
		cb.nonces[sender]++
		txs = append(txs, &flow.Transaction{
			Signer:   sender,
			Receiver: receiver,
			Nonce:    cb.nonces[sender],
			Amount:   uint64(i + 1),
		})
	}

	header := &flow.ChunkHeader{
		ShardID:        prev.ShardID,
		PrevBlockID:    parent.ID(),
		HeightCreated:  height,
		HeightIncluded: height,
		PrevStateRoot:  prev.PostStateRoot,
		TxRoot:         flow.TransactionsRoot(txs),
		Producer:       cb.producer(height, prev.ShardID),
	}
	result, err := cb.Runtime.ApplyChunk(runtime.StorageConfig{
		StateRoot:      header.PrevStateRoot,
		UseFlatStorage: true,
		Source:         runtime.SourceDB,
	}, header, txs)
	require.NoError(cb.t, err)
	require.Empty(cb.t, result.Skipped)
	header.PostStateRoot = result.StateRoot

	chunk := &flow.Chunk{Header: header, Transactions: txs}
	require.NoError(cb.t, cb.All.Chunks.Store(chunk))
	return chunk
}

func (cb *ChainBuilder) producer(height uint64, shard flow.ShardID) flow.AccountID {
	producer, err := cb.Epochs.ChunkProducer(cb.EpochID, height, shard)
	require.NoError(cb.t, err)
	return producer
}
