package badger_test

import (
	"testing"

	"github.com/cockroachdb/pebble"
	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/model/witness"
	"github.com/onflow/flow-witness/module/metrics"
	"github.com/onflow/flow-witness/state/chain"
	chainbadger "github.com/onflow/flow-witness/state/chain/badger"
	"github.com/onflow/flow-witness/storage"
	bstorage "github.com/onflow/flow-witness/storage/badger"
	pstorage "github.com/onflow/flow-witness/storage/pebble"
	"github.com/onflow/flow-witness/utils/unittest"
)

func TestBlocksAndChunks(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		all := bstorage.InitAll(metrics.NewNoopCollector(), db)
		state := chainbadger.NewState(all)

		chunk := unittest.ChunkFixture(1, 10, 2)
		block := unittest.BlockFixture(10, 2)
		block = flow.NewBlock(*block.Header, []*flow.ChunkHeader{block.Chunks[0], chunk.Header})
		require.NoError(t, all.Blocks.Store(block))
		require.NoError(t, all.Chunks.Store(chunk))

		t.Run("block by id", func(t *testing.T) {
			actual, err := state.BlockByID(block.ID())
			require.NoError(t, err)
			assert.Equal(t, block, actual)

			_, err = state.BlockByID(unittest.IdentifierFixture())
			assert.ErrorIs(t, err, storage.ErrNotFound)
		})

		t.Run("chunk by id", func(t *testing.T) {
			actual, err := state.ChunkByID(chunk.ID())
			require.NoError(t, err)
			assert.Equal(t, chunk, actual)

			_, err = state.ChunkByID(block.Chunks[0].ID())
			assert.ErrorIs(t, err, storage.ErrNotFound)
		})

		t.Run("chunk by carried over header", func(t *testing.T) {
			carried := *chunk.Header
			carried.HeightIncluded = 9
			actual, err := state.ChunkByHeader(&carried)
			require.NoError(t, err)
			assert.Equal(t, &carried, actual.Header)
			assert.Equal(t, chunk.Transactions, actual.Transactions)
		})
	})
}

func TestSaveLatestWitness(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		unittest.RunWithBadgerDB(t, func(db *badger.DB) {
			state := chainbadger.NewState(bstorage.InitAll(metrics.NewNoopCollector(), db))
			w := unittest.StateWitnessFixture()
			encoded, err := witness.Encode(w)
			require.NoError(t, err)
			err = state.SaveLatestWitness(w.ShardID(), encoded)
			assert.ErrorIs(t, err, chain.ErrNoLatestWitnesses)
		})
	})

	t.Run("configured", func(t *testing.T) {
		unittest.RunWithBadgerDB(t, func(db *badger.DB) {
			unittest.RunWithPebbleDB(t, func(pdb *pebble.DB) {
				all := bstorage.InitAll(metrics.NewNoopCollector(), db)
				all.LatestWitnesses = pstorage.NewLatestWitnesses(pdb)
				state := chainbadger.NewState(all)

				w := unittest.StateWitnessFixture()
				encoded, err := witness.Encode(w)
				require.NoError(t, err)
				require.NoError(t, state.SaveLatestWitness(w.ShardID(), encoded))

				actual, err := all.LatestWitnesses.ByShard(w.ShardID())
				require.NoError(t, err)
				assert.Equal(t, w, actual)
			})
		})
	})
}
