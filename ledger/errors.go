package ledger

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingKey is returned by a partial trie when a key is neither revealed by
// the proof nor proven to be absent. It means the proof is insufficient for the read.
var ErrMissingKey = errors.New("key is not covered by the proof")

// ErrDuplicateKey is returned when a trie is constructed from payloads sharing a key.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrMissingKeys is returned when some keys are not covered by a partial ledger
type ErrMissingKeys struct {
	Keys []string
}

func (e ErrMissingKeys) Error() string {
	return fmt.Sprintf("keys are missing: [%s]", strings.Join(e.Keys, ", "))
}

// Is returns true if the type of errors are the same
func (e ErrMissingKeys) Is(other error) bool {
	if _, ok := other.(ErrMissingKeys); ok {
		return true
	}
	return errors.Is(other, ErrMissingKey)
}

// InvalidProofError is returned when a proof is malformed or does not hash to the expected root.
type InvalidProofError struct {
	Reason string
}

func NewInvalidProofErrorf(msg string, args ...interface{}) error {
	return InvalidProofError{Reason: fmt.Sprintf(msg, args...)}
}

func (e InvalidProofError) Error() string {
	return "invalid proof: " + e.Reason
}

// IsInvalidProofError returns whether the given error is an InvalidProofError
func IsInvalidProofError(err error) bool {
	var proofErr InvalidProofError
	return errors.As(err, &proofErr)
}
