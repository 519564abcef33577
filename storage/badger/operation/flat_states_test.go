package operation

import (
	"sort"
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-witness/ledger"
	"github.com/onflow/flow-witness/storage"
	"github.com/onflow/flow-witness/utils/unittest"
)

func TestFlatState(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		root := unittest.StateCommitmentFixture()
		other := unittest.StateCommitmentFixture()
		payloads := unittest.PayloadsFixture(10)

		require.NoError(t, db.Update(IndexFlatState(root, payloads)))
		require.NoError(t, db.Update(IndexFlatState(other, unittest.PayloadsFixture(3))))

		var exists bool
		require.NoError(t, db.View(FlatStateExists(root, &exists)))
		assert.True(t, exists)
		require.NoError(t, db.View(FlatStateExists(unittest.StateCommitmentFixture(), &exists)))
		assert.False(t, exists)

		var value []byte
		require.NoError(t, db.View(RetrieveFlatValue(root, payloads[3].Key, &value)))
		assert.Equal(t, payloads[3].Value, value)

		err := db.View(RetrieveFlatValue(root, "absent", &value))
		assert.ErrorIs(t, err, storage.ErrNotFound)

		// traversal only visits the payloads of the requested state, in key order
		var traversed []ledger.Payload
		err = db.View(TraverseFlatState(root, func(payload ledger.Payload) error {
			traversed = append(traversed, payload)
			return nil
		}))
		require.NoError(t, err)

		sort.Slice(payloads, func(i, j int) bool { return payloads[i].Key < payloads[j].Key })
		assert.Equal(t, payloads, traversed)
	})
}

func TestTrieInsertRetrieve(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		root := unittest.StateCommitmentFixture()
		payloads := unittest.PayloadsFixture(5)

		require.NoError(t, db.Update(InsertTrie(root, payloads)))

		var actual []ledger.Payload
		require.NoError(t, db.View(RetrieveTrie(root, &actual)))
		assert.Equal(t, payloads, actual)

		var exists bool
		require.NoError(t, db.View(TrieExists(root, &exists)))
		assert.True(t, exists)
	})
}
