package runtime

import (
	"errors"
	"fmt"

	"github.com/onflow/flow-witness/model/flow"
)

// ErrStatePatchWhileRecording is returned when a storage proof is requested for
// a patched state. A proof over patched values could never be verified.
var ErrStatePatchWhileRecording = errors.New("state patch is not allowed while recording")

// InvalidReason explains why a transaction is invalid.
type InvalidReason string

const (
	ReasonAlreadyIncluded     InvalidReason = "already_included"
	ReasonDuplicate           InvalidReason = "duplicate"
	ReasonUnknownSigner       InvalidReason = "unknown_signer"
	ReasonUnknownReceiver     InvalidReason = "unknown_receiver"
	ReasonInvalidNonce        InvalidReason = "invalid_nonce"
	ReasonInsufficientBalance InvalidReason = "insufficient_balance"
)

// InvalidTransactionError is returned when a transaction of a chunk breaks a
// transaction rule.
type InvalidTransactionError struct {
	TxID   flow.Identifier
	Index  int
	Reason InvalidReason
}

func (e *InvalidTransactionError) Error() string {
	return fmt.Sprintf("transaction %d (%v) is invalid: %s", e.Index, e.TxID, e.Reason)
}

func IsInvalidTransactionError(err error) bool {
	var target *InvalidTransactionError
	return errors.As(err, &target)
}
