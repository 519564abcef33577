package shadow

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/onflow/flow-witness/engine/stateless/validator"
	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/model/witness"
	"github.com/onflow/flow-witness/module"
	"github.com/onflow/flow-witness/module/runtime"
	"github.com/onflow/flow-witness/state/chain"
	"github.com/onflow/flow-witness/utils/logging"
)

//go:generate mockery --name=WitnessValidator --output=mock --outpkg=mock --case=underscore

// WitnessValidator validates state witnesses the way witnesses received from
// chunk producers are validated.
type WitnessValidator interface {
	// PreValidate runs the cheap checks of a witness.
	PreValidate(w *witness.StateWitness) (*validator.PreValidationResult, error)
	// Validate re-executes the chunk of a pre-validated witness.
	Validate(w *witness.StateWitness, result *validator.PreValidationResult) error
}

// Submitter runs tasks asynchronously, without reporting back.
type Submitter interface {
	Submit(task func()) error
}

// Stats counts shadow validation attempts.
type Stats struct {
	Attempted uint64
	Submitted uint64
	Validated uint64
	Failed    uint64
}

// Validator rebuilds, for every new chunk of a processed block, the state witness
// its producer would have sent, and validates it like a received witness.
//
// Failures are logged and counted, and never returned: shadow validation must
// not influence block processing. Only failing to load the block itself is
// reported to the caller.
type Validator struct {
	log       zerolog.Logger
	config    Config
	chain     chain.Store
	runtime   runtime.Adapter
	validator WitnessValidator
	pool      Submitter
	metrics   module.ShadowValidationMetrics
	codec     WitnessCodec

	attempted *atomic.Uint64
	submitted *atomic.Uint64
	validated *atomic.Uint64
	failed    *atomic.Uint64
}

func NewValidator(
	log zerolog.Logger,
	config Config,
	chain chain.Store,
	runtime runtime.Adapter,
	validator WitnessValidator,
	pool Submitter,
	metrics module.ShadowValidationMetrics,
	opts ...func(*Validator),
) *Validator {
	v := &Validator{
		log:       log.With().Str("engine", "shadow_validation").Logger(),
		config:    config,
		chain:     chain,
		runtime:   runtime,
		validator: validator,
		pool:      pool,
		metrics:   metrics,
		codec:     wireCodec{},
		attempted: atomic.NewUint64(0),
		submitted: atomic.NewUint64(0),
		validated: atomic.NewUint64(0),
		failed:    atomic.NewUint64(0),
	}
	for _, apply := range opts {
		apply(v)
	}
	return v
}

// WithCodec replaces the witness codec checked before pre-validation.
func WithCodec(codec WitnessCodec) func(*Validator) {
	return func(v *Validator) {
		v.codec = codec
	}
}

// ValidateBlockChunks shadow validates every chunk that is new in the block.
// Full validations are submitted to the pool and may complete after it returns.
// Expected errors during normal operations:
//   - *PreconditionError if the block or its parent can't be loaded
func (v *Validator) ValidateBlockChunks(blockID flow.Identifier) error {
	if !v.config.Enabled {
		return nil
	}

	block, err := v.chain.BlockByID(blockID)
	if err != nil {
		return NewPreconditionError(blockID, err)
	}
	prevBlock, err := v.chain.BlockByID(block.Header.ParentID)
	if err != nil {
		return NewPreconditionError(blockID, fmt.Errorf("could not get parent: %w", err))
	}

	for index, header := range block.Chunks {
		if !header.IsNewChunk(block.Header.Height) {
			continue
		}
		v.attempted.Inc()

		chunk, err := v.chain.ChunkByHeader(header)
		if err != nil {
			v.onChunkFailure(blockID, header, &ChunkFetchError{ChunkID: header.ID(), err: err})
			continue
		}
		if index >= len(prevBlock.Chunks) {
			v.onChunkFailure(blockID, header, &MissingPrevChunkError{PrevBlockID: prevBlock.ID(), Shard: header.ShardID})
			continue
		}

		err = v.validateChunk(blockID, prevBlock.Header, prevBlock.Chunks[index], chunk)
		if err != nil {
			v.onChunkFailure(blockID, header, err)
		}
	}

	return nil
}

// validateChunk builds and pre-validates the witness of the chunk, then submits
// its full validation.
func (v *Validator) validateChunk(
	blockID flow.Identifier,
	prevBlockHeader *flow.Header,
	prevChunkHeader *flow.ChunkHeader,
	chunk *flow.Chunk,
) error {
	w, err := v.buildWitness(prevBlockHeader, prevChunkHeader, chunk)
	if err != nil {
		return err
	}

	encoded, err := v.checkCodec(w)
	if err != nil {
		return err
	}

	shard := w.ShardID()
	if v.config.SaveLatestWitnesses {
		err = v.chain.SaveLatestWitness(shard, encoded)
		if err != nil {
			v.log.Warn().
				Err(err).
				Uint64("shard_id", uint64(shard)).
				Hex("chunk_id", logging.ID(w.ChunkHeader)).
				Msg("could not save latest witness")
		}
	}

	start := time.Now()
	result, err := v.validator.PreValidate(w)
	if err != nil {
		return &PreValidationError{err: err}
	}
	elapsed := time.Since(start)
	v.metrics.WitnessPreValidated(shard, elapsed)
	v.log.Debug().
		Uint64("shard_id", uint64(shard)).
		Hex("chunk_id", logging.ID(w.ChunkHeader)).
		Int("witness_raw_size", encoded.RawSize()).
		Int("witness_size", encoded.Size()).
		Dur("elapsed", elapsed).
		Msg("witness pre-validated")

	err = v.pool.Submit(func() {
		v.fullValidation(blockID, w, result)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errSubmission, err)
	}
	v.submitted.Inc()
	return nil
}

func (v *Validator) fullValidation(blockID flow.Identifier, w *witness.StateWitness, result *validator.PreValidationResult) {
	start := time.Now()
	err := v.validator.Validate(w, result)
	if err != nil {
		v.onChunkFailure(blockID, w.ChunkHeader, &FullValidationError{err: err})
		return
	}
	elapsed := time.Since(start)
	v.metrics.WitnessValidated(w.ShardID(), elapsed)
	v.validated.Inc()

	v.log.Debug().
		Uint64("shard_id", uint64(w.ShardID())).
		Hex("chunk_id", logging.ID(w.ChunkHeader)).
		Dur("elapsed", elapsed).
		Msg("witness validated")
}

// onChunkFailure reports a failed attempt: exactly one log entry and one counter increment.
func (v *Validator) onChunkFailure(blockID flow.Identifier, header *flow.ChunkHeader, err error) {
	v.failed.Inc()
	v.metrics.ShadowValidationFailed(header.ShardID)

	v.log.Error().
		Err(err).
		Uint64("shard_id", uint64(header.ShardID)).
		Hex("chunk_id", logging.ID(header)).
		Hex("block_id", blockID[:]).
		Str("failure", FailureKind(err)).
		Msg("shadow validation failed")
}

// Stats returns the counts of shadow validation attempts so far.
func (v *Validator) Stats() Stats {
	return Stats{
		Attempted: v.attempted.Load(),
		Submitted: v.submitted.Load(),
		Validated: v.validated.Load(),
		Failed:    v.failed.Load(),
	}
}
