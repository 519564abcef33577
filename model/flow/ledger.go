package flow

import (
	"github.com/onflow/flow-witness/ledger/common/hash"
)

// StateCommitment holds the root hash of the state trie after a chunk was applied.
type StateCommitment hash.Hash

// DummyStateCommitment is an arbitrary value used in function failure cases,
// although it can represent a valid state commitment.
var DummyStateCommitment = StateCommitment(hash.DummyHash)

// ToStateCommitment converts a byte slice into a StateCommitment.
// It returns an error if the slice has an invalid length.
func ToStateCommitment(stateBytes []byte) (StateCommitment, error) {
	h, err := hash.ToHash(stateBytes)
	if err != nil {
		return DummyStateCommitment, err
	}
	return StateCommitment(h), nil
}

func (s StateCommitment) String() string {
	return hash.Hash(s).String()
}
