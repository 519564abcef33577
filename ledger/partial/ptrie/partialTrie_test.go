package ptrie_test

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-witness/ledger"
	"github.com/onflow/flow-witness/ledger/complete/mtrie/trie"
	"github.com/onflow/flow-witness/ledger/partial/ptrie"
	"github.com/onflow/flow-witness/utils/unittest"
)

func withTrie(t *testing.T, n int, f func(t *testing.T, mt *trie.MTrie)) {
	ps := make([]ledger.Payload, 0, n)
	for i := 0; i < n; i++ {
		ps = append(ps, ledger.NewPayload(fmt.Sprintf("key-%03d", i), []byte{byte(i)}))
	}
	mt, err := trie.NewMTrie(ps)
	require.NoError(t, err)
	f(t, mt)
}

func TestPartialTrieEmptyTrie(t *testing.T) {
	mt := trie.NewEmptyMTrie()
	proof := mt.Prove([]string{"anything"})

	psmt, err := ptrie.NewPSMT(mt.RootHash(), proof)
	require.NoError(t, err)
	assert.Equal(t, mt.RootHash(), psmt.RootHash())

	// every key is provably absent from an empty trie
	_, found, err := psmt.Get("anything")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPartialTrieGet(t *testing.T) {
	withTrie(t, 13, func(t *testing.T, mt *trie.MTrie) {
		proof := mt.Prove([]string{"key-004", "key-0095", "key-012"})
		psmt, err := ptrie.NewPSMT(mt.RootHash(), proof)
		require.NoError(t, err)

		value, found, err := psmt.Get("key-004")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, []byte{4}, value)

		// proven absent through its neighbours key-009 and key-010
		_, found, err = psmt.Get("key-0095")
		require.NoError(t, err)
		assert.False(t, found)

		// key-012 is the last leaf, so anything after it is absent
		_, found, err = psmt.Get("zzz")
		require.NoError(t, err)
		assert.False(t, found)

		// not covered by the proof at all
		_, _, err = psmt.Get("key-006")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ledger.ErrMissingKeys{}))
		assert.True(t, errors.Is(err, ledger.ErrMissingKey))
	})
}

// TestPartialTrieUpdate tests that updating the partial trie yields the same root as
// updating the complete trie.
func TestPartialTrieUpdate(t *testing.T) {
	withTrie(t, 21, func(t *testing.T, mt *trie.MTrie) {
		keys := []string{"key-000", "key-007", "key-008", "key-020"}
		psmt, err := ptrie.NewPSMT(mt.RootHash(), mt.Prove(keys))
		require.NoError(t, err)

		updates := []ledger.Payload{
			ledger.NewPayload("key-000", []byte("a")),
			ledger.NewPayload("key-008", []byte("b")),
			ledger.NewPayload("key-020", []byte("c")),
		}
		partialRoot, err := psmt.Update(updates)
		require.NoError(t, err)

		updated, err := mt.Update(updates)
		require.NoError(t, err)
		assert.Equal(t, updated.RootHash(), partialRoot)
		assert.Equal(t, partialRoot, psmt.RootHash())
	})
}

func TestPartialTrieUpdateMissingKey(t *testing.T) {
	withTrie(t, 8, func(t *testing.T, mt *trie.MTrie) {
		psmt, err := ptrie.NewPSMT(mt.RootHash(), mt.Prove([]string{"key-001"}))
		require.NoError(t, err)
		before := psmt.RootHash()

		_, err = psmt.Update([]ledger.Payload{
			ledger.NewPayload("key-001", []byte("x")),
			ledger.NewPayload("key-005", []byte("y")),
		})
		require.Error(t, err)

		var missing ledger.ErrMissingKeys
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, []string{"key-005"}, missing.Keys)

		// no partial update is applied
		assert.Equal(t, before, psmt.RootHash())
	})
}

func TestPartialTrieRootMismatch(t *testing.T) {
	withTrie(t, 8, func(t *testing.T, mt *trie.MTrie) {
		proof := mt.Prove([]string{"key-002"})
		proof.Leaves[0].Value = []byte("tampered")

		_, err := ptrie.NewPSMT(mt.RootHash(), proof)
		require.Error(t, err)
		assert.True(t, ledger.IsInvalidProofError(err))
	})
}

func TestPartialTrieMalformedProof(t *testing.T) {
	withTrie(t, 8, func(t *testing.T, mt *trie.MTrie) {
		t.Run("nil proof", func(t *testing.T) {
			_, err := ptrie.NewPSMT(mt.RootHash(), nil)
			assert.True(t, ledger.IsInvalidProofError(err))
		})

		t.Run("missing sibling", func(t *testing.T) {
			proof := mt.Prove([]string{"key-002"})
			proof.Nodes = proof.Nodes[1:]
			_, err := ptrie.NewPSMT(mt.RootHash(), proof)
			assert.True(t, ledger.IsInvalidProofError(err))
		})

		t.Run("leaves out of order", func(t *testing.T) {
			proof := mt.Prove([]string{"key-002", "key-006"})
			proof.Leaves[0], proof.Leaves[1] = proof.Leaves[1], proof.Leaves[0]
			_, err := ptrie.NewPSMT(mt.RootHash(), proof)
			assert.True(t, ledger.IsInvalidProofError(err))
		})

		t.Run("leaf count too large", func(t *testing.T) {
			for _, count := range []uint64{ledger.MaxLeafCount + 1, math.MaxUint64} {
				proof := mt.Prove([]string{"key-002"})
				proof.LeafCount = count
				unittest.RequireReturnsBefore(t, func() {
					_, err := ptrie.NewPSMT(mt.RootHash(), proof)
					assert.True(t, ledger.IsInvalidProofError(err))
				}, time.Second, "proof verification did not return")
			}

			// an empty proof with a huge leaf count fails without revealing anything
			unittest.RequireReturnsBefore(t, func() {
				_, err := ptrie.NewPSMT(mt.RootHash(), &ledger.Proof{LeafCount: math.MaxUint64})
				assert.True(t, ledger.IsInvalidProofError(err))
			}, time.Second, "proof verification did not return")
		})

		t.Run("hidden trailing leaves", func(t *testing.T) {
			// claiming fewer leaves must not verify against the real root
			proof := mt.Prove([]string{"key-007"})
			proof.LeafCount = 7
			_, err := ptrie.NewPSMT(mt.RootHash(), proof)
			assert.Error(t, err)
		})
	})
}
