package badger_test

import (
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-witness/ledger/complete/mtrie/trie"
	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/module/metrics"
	"github.com/onflow/flow-witness/storage"
	badgerstorage "github.com/onflow/flow-witness/storage/badger"
	"github.com/onflow/flow-witness/utils/unittest"
)

func TestTries(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		registry := prometheus.NewRegistry()
		collector := metrics.NewCacheCollector(registry)
		store := badgerstorage.NewTries(collector, db, 2)

		mt, err := trie.NewMTrie(unittest.PayloadsFixture(20))
		require.NoError(t, err)
		root := flow.StateCommitment(mt.RootHash())

		_, err = store.ByRoot(root)
		assert.ErrorIs(t, err, storage.ErrNotFound)

		require.NoError(t, store.Store(mt))
		require.NoError(t, store.Store(mt))

		actual, err := store.ByRoot(root)
		require.NoError(t, err)
		assert.Equal(t, mt.RootHash(), actual.RootHash())

		// rebuilt from the database by a fresh store
		fresh := badgerstorage.NewTries(metrics.NewNoopCollector(), db, 2)
		actual, err = fresh.ByRoot(root)
		require.NoError(t, err)
		assert.Equal(t, mt.RootHash(), actual.RootHash())
		assert.Equal(t, mt.Payloads(), actual.Payloads())

		count, err := testutil.GatherAndCount(registry, "storage_cache_hits_total")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestFlatStates(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := badgerstorage.NewFlatStates(db)
		root := unittest.StateCommitmentFixture()
		payloads := unittest.PayloadsFixture(8)

		_, _, err := store.Get(root, payloads[0].Key)
		assert.ErrorIs(t, err, storage.ErrNotFound)

		require.NoError(t, store.Index(root, payloads))

		value, found, err := store.Get(root, payloads[4].Key)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, payloads[4].Value, value)

		_, found, err = store.Get(root, "absent")
		require.NoError(t, err)
		assert.False(t, found)
	})
}
