package validator

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/model/witness"
	"github.com/onflow/flow-witness/module/epochs"
	"github.com/onflow/flow-witness/module/runtime"
	"github.com/onflow/flow-witness/state/chain"
)

// PreValidationResult is the outcome of a successful pre-validation, which the
// full validation builds on.
type PreValidationResult struct {
	ChunkID   flow.Identifier
	EpochID   flow.Identifier
	Layout    epochs.ShardLayout
	Validated *runtime.ValidatedTransactions
}

// Validator verifies state witnesses in two steps. PreValidate is cheap and
// checks the witness against the chain and the epoch. Validate re-executes the
// chunk over the storage proof of the witness.
type Validator struct {
	log         zerolog.Logger
	chain       chain.Store
	epochs      epochs.Manager
	runtime     runtime.Adapter
	transitions *TransitionCache
}

func New(
	log zerolog.Logger,
	chain chain.Store,
	epochs epochs.Manager,
	runtime runtime.Adapter,
	transitions *TransitionCache,
) *Validator {
	return &Validator{
		log:         log.With().Str("module", "witness_validator").Logger(),
		chain:       chain,
		epochs:      epochs,
		runtime:     runtime,
		transitions: transitions,
	}
}

// PreValidate checks that the witness is consistent, fits into the chain and the
// epoch, and that its transactions are valid over its storage proof.
// Expected errors during normal operations:
//   - *InvalidWitnessError if the witness is inconsistent
//   - storage.ErrNotFound if the previous block or chunk is unknown
//   - *epochs.UnknownEpochError if the epoch of the previous block is unknown
//   - *runtime.InvalidTransactionError if a transaction is invalid
//   - ledger.InvalidProofError or ledger.ErrMissingKeys if the storage proof is insufficient
func (v *Validator) PreValidate(w *witness.StateWitness) (*PreValidationResult, error) {
	header := w.ChunkHeader
	shard := header.ShardID

	prevBlockID := w.PrevBlockHeader.ID()
	if header.PrevBlockID != prevBlockID {
		return nil, NewInvalidWitnessErrorf(ReasonHeaderMismatch,
			"chunk was built on block %v, witness carries header of block %v", header.PrevBlockID, prevBlockID)
	}
	if w.PrevChunkHeader.ShardID != shard {
		return nil, NewInvalidWitnessErrorf(ReasonShardMismatch,
			"previous chunk of shard %d belongs to shard %d", shard, w.PrevChunkHeader.ShardID)
	}
	if header.PrevStateRoot != w.PrevChunkHeader.PostStateRoot {
		return nil, NewInvalidWitnessErrorf(ReasonStateRootMismatch,
			"chunk starts from state %x, previous chunk ends at %x", header.PrevStateRoot, w.PrevChunkHeader.PostStateRoot)
	}
	txRoot := flow.TransactionsRoot(w.Transactions)
	if header.TxRoot != txRoot {
		return nil, NewInvalidWitnessErrorf(ReasonTxRootMismatch,
			"transactions hash to %v, chunk header commits to %v", txRoot, header.TxRoot)
	}

	prevBlock, err := v.chain.BlockByID(prevBlockID)
	if err != nil {
		return nil, fmt.Errorf("could not get previous block: %w", err)
	}
	prevChunkID := w.PrevChunkHeader.ID()
	if int(shard) >= len(prevBlock.Chunks) || prevBlock.Chunks[shard].ID() != prevChunkID {
		return nil, NewInvalidWitnessErrorf(ReasonUnknownPrevChunk,
			"previous block %v does not contain chunk %v", prevBlockID, prevChunkID)
	}

	epochID := w.PrevBlockHeader.EpochID
	layout, err := v.epochs.ShardLayout(epochID)
	if err != nil {
		return nil, fmt.Errorf("could not get shard layout: %w", err)
	}
	if !layout.Contains(shard) {
		return nil, NewInvalidWitnessErrorf(ReasonShardNotInEpoch,
			"shard %d is not part of epoch %v", shard, epochID)
	}
	producer, err := v.epochs.ChunkProducer(epochID, header.HeightCreated, shard)
	if err != nil {
		return nil, fmt.Errorf("could not get chunk producer: %w", err)
	}
	if producer != header.Producer {
		return nil, NewInvalidWitnessErrorf(ReasonProducerMismatch,
			"chunk was produced by %s, expected %s", header.Producer, producer)
	}

	lastChunk, err := v.chain.ChunkByID(prevChunkID)
	if err != nil {
		return nil, fmt.Errorf("could not get previous chunk: %w", err)
	}
	validated, err := v.runtime.ValidatePreparedTransactions(v.recordedConfig(w), header, w.Transactions, lastChunk.Transactions)
	if err != nil {
		return nil, fmt.Errorf("could not validate transactions: %w", err)
	}

	return &PreValidationResult{
		ChunkID:   w.ChunkID(),
		EpochID:   epochID,
		Layout:    layout,
		Validated: validated,
	}, nil
}

// Validate re-executes the chunk over the storage proof of the witness and
// checks the resulting state root against the chunk header.
// Expected errors during normal operations:
//   - *InvalidWitnessError if the result is not for this witness, or the state roots differ
//   - ledger.ErrMissingKeys if the storage proof does not cover the execution
func (v *Validator) Validate(w *witness.StateWitness, result *PreValidationResult) error {
	chunkID := w.ChunkID()
	if result == nil || result.ChunkID != chunkID {
		return NewInvalidWitnessErrorf(ReasonResultMismatch, "no pre-validation result for chunk %v", chunkID)
	}

	root, cached := v.transitions.Get(chunkID)
	if !cached {
		start := time.Now()
		applied, err := v.runtime.ApplyChunk(v.recordedConfig(w), w.ChunkHeader, w.Transactions)
		if err != nil {
			return fmt.Errorf("could not apply chunk %v: %w", chunkID, err)
		}
		root = applied.StateRoot
		v.log.Debug().
			Hex("chunk_id", chunkID[:]).
			Int("applied", len(applied.Applied)).
			Int("skipped", len(applied.Skipped)).
			Dur("elapsed", time.Since(start)).
			Msg("chunk re-executed")
	}

	if root != w.ChunkHeader.PostStateRoot {
		return NewInvalidWitnessErrorf(ReasonPostStateMismatch,
			"chunk %v transitions to %x, header commits to %x", chunkID, root, w.ChunkHeader.PostStateRoot)
	}
	if !cached {
		v.transitions.Add(chunkID, root)
	}
	return nil
}

func (v *Validator) recordedConfig(w *witness.StateWitness) runtime.StorageConfig {
	return runtime.StorageConfig{
		StateRoot:     w.ChunkHeader.PrevStateRoot,
		Source:        runtime.SourceRecorded,
		RecordedProof: w.StorageProof,
	}
}
