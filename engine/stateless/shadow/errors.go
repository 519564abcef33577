package shadow

import (
	"errors"
	"fmt"

	"github.com/onflow/flow-witness/model/flow"
)

// Failure kinds, as logged in the `failure` field.
const (
	FailureChunkFetch       = "chunk_fetch"
	FailureMissingPrevChunk = "missing_prev_chunk"
	FailureStorageProof     = "storage_proof"
	FailureCodec            = "codec"
	FailurePreValidation    = "pre_validation"
	FailureFullValidation   = "full_validation"
	FailureSubmission       = "submission"
	FailureUnknown          = "unknown"
)

// PreconditionError is returned when the block or its parent can't be loaded,
// so none of its chunks can be shadow validated.
type PreconditionError struct {
	BlockID flow.Identifier
	err     error
}

func NewPreconditionError(blockID flow.Identifier, err error) error {
	return &PreconditionError{BlockID: blockID, err: err}
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("could not shadow validate block %v: %v", e.BlockID, e.err)
}

func (e *PreconditionError) Unwrap() error {
	return e.err
}

func IsPreconditionError(err error) bool {
	var target *PreconditionError
	return errors.As(err, &target)
}

// ChunkFetchError is returned when a chunk can't be loaded.
type ChunkFetchError struct {
	ChunkID flow.Identifier
	err     error
}

func (e *ChunkFetchError) Error() string {
	return fmt.Sprintf("could not get chunk %v: %v", e.ChunkID, e.err)
}

func (e *ChunkFetchError) Unwrap() error {
	return e.err
}

func IsChunkFetchError(err error) bool {
	var target *ChunkFetchError
	return errors.As(err, &target)
}

// MissingPrevChunkError is returned when the previous block has no chunk at the
// shard index of a new chunk.
type MissingPrevChunkError struct {
	PrevBlockID flow.Identifier
	Shard       flow.ShardID
}

func (e *MissingPrevChunkError) Error() string {
	return fmt.Sprintf("previous block %v has no chunk for shard %d", e.PrevBlockID, e.Shard)
}

func IsMissingPrevChunkError(err error) bool {
	var target *MissingPrevChunkError
	return errors.As(err, &target)
}

// StorageProofError is returned when no storage proof can be produced for the
// transactions of a chunk.
type StorageProofError struct {
	err error
}

func (e *StorageProofError) Error() string {
	return fmt.Sprintf("could not produce storage proof: %v", e.err)
}

func (e *StorageProofError) Unwrap() error {
	return e.err
}

func IsStorageProofError(err error) bool {
	var target *StorageProofError
	return errors.As(err, &target)
}

// Codec operations.
const (
	OpEncode = "encode"
	OpDecode = "decode"
)

// CodecError is returned when a witness fails to encode or decode.
type CodecError struct {
	Op  string
	err error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("could not %s witness: %v", e.Op, e.err)
}

func (e *CodecError) Unwrap() error {
	return e.err
}

func IsCodecError(err error) bool {
	var target *CodecError
	return errors.As(err, &target)
}

// PreValidationError is returned when pre-validation rejects a witness.
type PreValidationError struct {
	err error
}

func (e *PreValidationError) Error() string {
	return fmt.Sprintf("pre-validation failed: %v", e.err)
}

func (e *PreValidationError) Unwrap() error {
	return e.err
}

func IsPreValidationError(err error) bool {
	var target *PreValidationError
	return errors.As(err, &target)
}

// FullValidationError is reported when full validation rejects a witness.
type FullValidationError struct {
	err error
}

func (e *FullValidationError) Error() string {
	return fmt.Sprintf("full validation failed: %v", e.err)
}

func (e *FullValidationError) Unwrap() error {
	return e.err
}

func IsFullValidationError(err error) bool {
	var target *FullValidationError
	return errors.As(err, &target)
}

// FailureKind returns the failure kind of an error of a shadow validation attempt.
func FailureKind(err error) string {
	switch {
	case IsChunkFetchError(err):
		return FailureChunkFetch
	case IsMissingPrevChunkError(err):
		return FailureMissingPrevChunk
	case IsStorageProofError(err):
		return FailureStorageProof
	case IsCodecError(err):
		return FailureCodec
	case IsPreValidationError(err):
		return FailurePreValidation
	case IsFullValidationError(err):
		return FailureFullValidation
	case errors.Is(err, errSubmission):
		return FailureSubmission
	default:
		return FailureUnknown
	}
}

var errSubmission = errors.New("could not submit full validation")
