package badger_test

import (
	"errors"
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-witness/module/metrics"
	"github.com/onflow/flow-witness/storage"
	badgerstorage "github.com/onflow/flow-witness/storage/badger"
	"github.com/onflow/flow-witness/utils/unittest"
)

func TestBlocks(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := badgerstorage.NewBlocks(metrics.NewNoopCollector(), db)

		// check retrieval of non-existing key
		_, err := store.ByID(unittest.IdentifierFixture())
		assert.Error(t, err)
		assert.True(t, errors.Is(err, storage.ErrNotFound))

		_, err = store.ByHeight(5)
		assert.True(t, errors.Is(err, storage.ErrNotFound))

		block := unittest.BlockFixture(5, 3)
		require.NoError(t, store.Store(block))

		actual, err := store.ByID(block.ID())
		require.NoError(t, err)
		assert.Equal(t, block, actual)

		actual, err = store.ByHeight(5)
		require.NoError(t, err)
		assert.Equal(t, block.ID(), actual.ID())

		// a fresh store reads through to the database
		fresh := badgerstorage.NewBlocks(metrics.NewNoopCollector(), db)
		actual, err = fresh.ByID(block.ID())
		require.NoError(t, err)
		assert.Equal(t, block, actual)
	})
}

func TestChunks(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := badgerstorage.NewChunks(metrics.NewNoopCollector(), db)
		chunk := unittest.ChunkFixture(1, 9, 3)

		_, err := store.ByID(chunk.ID())
		assert.ErrorIs(t, err, storage.ErrNotFound)

		require.NoError(t, store.Store(chunk))
		// storing a chunk again is not an error
		require.NoError(t, store.Store(chunk))

		fresh := badgerstorage.NewChunks(metrics.NewNoopCollector(), db)
		actual, err := fresh.ByID(chunk.ID())
		require.NoError(t, err)
		assert.Equal(t, chunk, actual)
	})
}
