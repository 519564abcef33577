package validator_test

import (
	"os"
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/onflow/flow-witness/engine/stateless/validator"
	"github.com/onflow/flow-witness/engine/testutil"
	"github.com/onflow/flow-witness/ledger"
	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/model/witness"
	"github.com/onflow/flow-witness/module/epochs"
	epochsmock "github.com/onflow/flow-witness/module/epochs/mock"
	"github.com/onflow/flow-witness/module/metrics"
	"github.com/onflow/flow-witness/module/runtime"
	"github.com/onflow/flow-witness/storage"
	"github.com/onflow/flow-witness/utils/unittest"
)

type ValidatorSuite struct {
	suite.Suite
	dir       string
	db        *badger.DB
	chain     *testutil.ChainBuilder
	validator *validator.Validator
	block     *flow.Block
}

func TestValidator(t *testing.T) {
	suite.Run(t, new(ValidatorSuite))
}

func (s *ValidatorSuite) SetupTest() {
	s.dir = unittest.TempDir(s.T())
	s.db = unittest.BadgerDB(s.T(), s.dir)
	s.chain = testutil.NewChainBuilder(s.T(), s.db, 2)
	s.chain.Extend(2)
	s.block = s.chain.Extend(3)
	s.validator = s.newValidator(s.chain.Epochs)
}

func (s *ValidatorSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
	s.Require().NoError(os.RemoveAll(s.dir))
}

func (s *ValidatorSuite) newValidator(manager epochs.Manager) *validator.Validator {
	cache, err := validator.NewTransitionCache(metrics.NewNoopCollector(), validator.DefaultTransitionCacheSize)
	s.Require().NoError(err)
	return validator.New(unittest.Logger(), s.chain.State, manager, s.chain.Runtime, cache)
}

// witness builds the witness a producer of the given shard would send for the block.
func (s *ValidatorSuite) witness(block *flow.Block, shard flow.ShardID) *witness.StateWitness {
	parent, err := s.chain.State.BlockByID(block.Header.ParentID)
	s.Require().NoError(err)
	prevChunkHeader := parent.Chunks[shard]
	chunk, err := s.chain.State.ChunkByHeader(block.Chunks[shard])
	s.Require().NoError(err)
	last, err := s.chain.State.ChunkByID(prevChunkHeader.ID())
	s.Require().NoError(err)

	validated, err := s.chain.Runtime.ValidatePreparedTransactions(runtime.StorageConfig{
		StateRoot:      chunk.Header.PrevStateRoot,
		UseFlatStorage: true,
		Source:         runtime.SourceDB,
	}, chunk.Header, chunk.Transactions, last.Transactions)
	s.Require().NoError(err)

	return witness.NewStateWitness("test.producer", parent.Header, prevChunkHeader, chunk, validated.Proof)
}

// modified returns a copy of the witness with copied headers, changed by f.
func modified(w *witness.StateWitness, f func(*witness.StateWitness)) *witness.StateWitness {
	c := *w
	prevBlock := *w.PrevBlockHeader
	prevChunk := *w.PrevChunkHeader
	header := *w.ChunkHeader
	c.PrevBlockHeader = &prevBlock
	c.PrevChunkHeader = &prevChunk
	c.ChunkHeader = &header
	f(&c)
	return &c
}

func (s *ValidatorSuite) TestValidWitness() {
	for shard := range s.block.Chunks {
		w := s.witness(s.block, flow.ShardID(shard))

		result, err := s.validator.PreValidate(w)
		s.Require().NoError(err)
		s.Assert().Equal(w.ChunkID(), result.ChunkID)
		s.Assert().Equal(s.chain.EpochID, result.EpochID)
		s.Assert().Equal(uint64(2), result.Layout.NumShards)

		s.Require().NoError(s.validator.Validate(w, result))
	}
}

func (s *ValidatorSuite) TestCarriedOverPreviousChunk() {
	// shard 1 has no new chunk in the next block, so the chunk after it builds on
	// a carried over header
	s.chain.Extend(1, 0)
	block := s.chain.Extend(2)

	w := s.witness(block, 1)
	s.Assert().NotEqual(w.PrevChunkHeader.HeightIncluded, w.PrevBlockHeader.Height)
	result, err := s.validator.PreValidate(w)
	s.Require().NoError(err)
	s.Require().NoError(s.validator.Validate(w, result))
}

func (s *ValidatorSuite) TestPreValidate_InvalidWitness() {
	w := s.witness(s.block, 1)
	other := s.witness(s.block, 0)

	cases := []struct {
		name   string
		modify func(*witness.StateWitness)
		reason validator.Reason
	}{
		{"header mismatch", func(w *witness.StateWitness) {
			w.PrevBlockHeader.Timestamp++
		}, validator.ReasonHeaderMismatch},
		{"shard mismatch", func(w *witness.StateWitness) {
			w.PrevChunkHeader = other.PrevChunkHeader
		}, validator.ReasonShardMismatch},
		{"state root mismatch", func(w *witness.StateWitness) {
			w.ChunkHeader.PrevStateRoot = unittest.StateCommitmentFixture()
		}, validator.ReasonStateRootMismatch},
		{"tx root mismatch", func(w *witness.StateWitness) {
			w.Transactions = w.Transactions[1:]
		}, validator.ReasonTxRootMismatch},
		{"unknown previous chunk", func(w *witness.StateWitness) {
			w.PrevChunkHeader.Producer = "someone.else"
		}, validator.ReasonUnknownPrevChunk},
		{"producer mismatch", func(w *witness.StateWitness) {
			w.ChunkHeader.Producer = "someone.else"
		}, validator.ReasonProducerMismatch},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			_, err := s.validator.PreValidate(modified(w, c.modify))
			s.Require().Error(err)
			s.Assert().True(validator.HasReason(err, c.reason), "unexpected error: %v", err)
		})
	}
}

func (s *ValidatorSuite) TestPreValidate_UnknownPreviousBlock() {
	block := s.chain.Extend(1)
	w := s.witness(block, 0)

	// a witness for a fork the node never saw
	forked := modified(w, func(w *witness.StateWitness) {
		w.PrevBlockHeader.Timestamp++
		w.ChunkHeader.PrevBlockID = w.PrevBlockHeader.ID()
	})
	_, err := s.validator.PreValidate(forked)
	s.Assert().ErrorIs(err, storage.ErrNotFound)
}

func (s *ValidatorSuite) TestPreValidate_Epoch() {
	w := s.witness(s.block, 1)

	s.Run("unknown epoch", func() {
		manager := epochsmock.NewManager(s.T())
		manager.On("ShardLayout", w.PrevBlockHeader.EpochID).
			Return(epochs.ShardLayout{}, epochs.NewUnknownEpochError(w.PrevBlockHeader.EpochID)).Once()

		_, err := s.newValidator(manager).PreValidate(w)
		s.Assert().True(epochs.IsUnknownEpochError(err))
	})

	s.Run("shard not in epoch", func() {
		manager := epochsmock.NewManager(s.T())
		manager.On("ShardLayout", w.PrevBlockHeader.EpochID).Return(epochs.ShardLayout{NumShards: 1}, nil).Once()

		_, err := s.newValidator(manager).PreValidate(w)
		s.Assert().True(validator.HasReason(err, validator.ReasonShardNotInEpoch))
	})

	s.Run("producer from epoch", func() {
		manager := epochsmock.NewManager(s.T())
		manager.On("ShardLayout", mock.Anything).Return(epochs.ShardLayout{NumShards: 2}, nil).Once()
		manager.On("ChunkProducer", w.PrevBlockHeader.EpochID, w.ChunkHeader.HeightCreated, flow.ShardID(1)).
			Return(w.ChunkHeader.Producer, nil).Once()

		_, err := s.newValidator(manager).PreValidate(w)
		s.Assert().NoError(err)
	})
}

func (s *ValidatorSuite) TestPreValidate_StorageProof() {
	w := s.witness(s.block, 0)

	s.Run("tampered value", func() {
		tampered := modified(w, func(w *witness.StateWitness) {
			proof := *w.StorageProof
			proof.Leaves = append([]ledger.ProofLeaf(nil), proof.Leaves...)
			proof.Leaves[0].Value = []byte("tampered")
			w.StorageProof = &proof
		})
		_, err := s.validator.PreValidate(tampered)
		s.Assert().True(ledger.IsInvalidProofError(err), "unexpected error: %v", err)
	})

	s.Run("proof of another chunk", func() {
		swapped := modified(w, func(w *witness.StateWitness) {
			w.StorageProof = s.witness(s.block, 1).StorageProof
		})
		_, err := s.validator.PreValidate(swapped)
		s.Assert().True(ledger.IsInvalidProofError(err), "unexpected error: %v", err)
	})

	s.Run("transactions replayed from the previous chunk", func() {
		next := s.chain.Extend(1)
		w := s.witness(next, 0)
		last, err := s.chain.State.ChunkByID(w.PrevChunkHeader.ID())
		s.Require().NoError(err)

		replayed := modified(w, func(w *witness.StateWitness) {
			w.Transactions = append(w.Transactions, last.Transactions[0])
			w.ChunkHeader.TxRoot = flow.TransactionsRoot(w.Transactions)
		})
		_, err = s.validator.PreValidate(replayed)
		s.Assert().True(runtime.IsInvalidTransactionError(err), "unexpected error: %v", err)
	})
}

func (s *ValidatorSuite) TestValidate() {
	w := s.witness(s.block, 1)
	result, err := s.validator.PreValidate(w)
	s.Require().NoError(err)

	s.Run("post state mismatch", func() {
		wrong := modified(w, func(w *witness.StateWitness) {
			w.ChunkHeader.PostStateRoot = unittest.StateCommitmentFixture()
		})
		result, err := s.validator.PreValidate(wrong)
		s.Require().NoError(err)
		err = s.validator.Validate(wrong, result)
		s.Assert().True(validator.HasReason(err, validator.ReasonPostStateMismatch), "unexpected error: %v", err)
	})

	s.Run("result of another chunk", func() {
		err := s.validator.Validate(s.witness(s.block, 0), result)
		s.Assert().True(validator.HasReason(err, validator.ReasonResultMismatch))

		err = s.validator.Validate(w, nil)
		s.Assert().True(validator.HasReason(err, validator.ReasonResultMismatch))
	})

	s.Run("cached transition", func() {
		adapter := &countingAdapter{Adapter: s.chain.Runtime}
		cache, err := validator.NewTransitionCache(metrics.NewNoopCollector(), 10)
		s.Require().NoError(err)
		v := validator.New(unittest.Logger(), s.chain.State, s.chain.Epochs, adapter, cache)

		s.Require().NoError(v.Validate(w, result))
		s.Require().NoError(v.Validate(w, result))
		s.Assert().Equal(1, adapter.applied)
		s.Assert().Equal(1, cache.Len())
	})
}

// TestEncodedWitnessValidatesIdentically checks that decoding an encoded witness
// does not change the validation outcome.
func (s *ValidatorSuite) TestEncodedWitnessValidatesIdentically() {
	valid := s.witness(s.block, 0)
	invalid := modified(valid, func(w *witness.StateWitness) {
		w.ChunkHeader.PostStateRoot = unittest.StateCommitmentFixture()
	})

	for _, w := range []*witness.StateWitness{valid, invalid} {
		encoded, err := witness.Encode(w)
		s.Require().NoError(err)
		decoded, err := encoded.Decode()
		s.Require().NoError(err)

		s.Assert().Equal(s.outcome(w), s.outcome(decoded))
	}
	s.Assert().NoError(s.outcome(valid))
	s.Assert().Error(s.outcome(invalid))
}

// outcome runs both validation steps with a fresh transition cache.
func (s *ValidatorSuite) outcome(w *witness.StateWitness) error {
	v := s.newValidator(s.chain.Epochs)
	result, err := v.PreValidate(w)
	if err != nil {
		return err
	}
	return v.Validate(w, result)
}

type countingAdapter struct {
	runtime.Adapter
	applied int
}

func (a *countingAdapter) ApplyChunk(cfg runtime.StorageConfig, header *flow.ChunkHeader, txs []*flow.Transaction) (*runtime.ApplyResult, error) {
	a.applied++
	return a.Adapter.ApplyChunk(cfg, header, txs)
}

func TestTransitionCache(t *testing.T) {
	cache, err := validator.NewTransitionCache(metrics.NewNoopCollector(), 2)
	require.NoError(t, err)

	first, second, third := unittest.IdentifierFixture(), unittest.IdentifierFixture(), unittest.IdentifierFixture()
	root := unittest.StateCommitmentFixture()

	_, ok := cache.Get(first)
	require.False(t, ok)

	cache.Add(first, root)
	actual, ok := cache.Get(first)
	require.True(t, ok)
	require.Equal(t, root, actual)

	// least recently used is evicted
	cache.Add(second, root)
	cache.Get(first)
	cache.Add(third, root)
	_, ok = cache.Get(second)
	require.False(t, ok)
	_, ok = cache.Get(first)
	require.True(t, ok)
	require.Equal(t, 2, cache.Len())

	_, err = validator.NewTransitionCache(metrics.NewNoopCollector(), 0)
	require.Error(t, err)
}
