package validator

import (
	"errors"
	"fmt"
)

// Reason classifies why a witness is invalid.
type Reason string

const (
	ReasonHeaderMismatch    Reason = "header_mismatch"
	ReasonShardMismatch     Reason = "shard_mismatch"
	ReasonStateRootMismatch Reason = "state_root_mismatch"
	ReasonTxRootMismatch    Reason = "tx_root_mismatch"
	ReasonUnknownPrevChunk  Reason = "unknown_prev_chunk"
	ReasonShardNotInEpoch   Reason = "shard_not_in_epoch"
	ReasonProducerMismatch  Reason = "producer_mismatch"
	ReasonResultMismatch    Reason = "result_mismatch"
	ReasonPostStateMismatch Reason = "post_state_mismatch"
)

// InvalidWitnessError is returned when a witness is inconsistent with itself or
// with the chain.
type InvalidWitnessError struct {
	Reason Reason
	msg    string
}

func NewInvalidWitnessErrorf(reason Reason, msg string, args ...interface{}) error {
	return &InvalidWitnessError{
		Reason: reason,
		msg:    fmt.Sprintf(msg, args...),
	}
}

func (e *InvalidWitnessError) Error() string {
	return fmt.Sprintf("invalid witness (%s): %s", e.Reason, e.msg)
}

// IsInvalidWitnessError returns whether err is an InvalidWitnessError.
func IsInvalidWitnessError(err error) bool {
	var target *InvalidWitnessError
	return errors.As(err, &target)
}

// HasReason returns whether err is an InvalidWitnessError with the given reason.
func HasReason(err error, reason Reason) bool {
	var target *InvalidWitnessError
	return errors.As(err, &target) && target.Reason == reason
}
