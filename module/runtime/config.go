package runtime

import (
	"github.com/onflow/flow-witness/ledger"
	"github.com/onflow/flow-witness/model/flow"
)

// StorageSource selects where state reads are served from.
type StorageSource int

const (
	// SourceDB reads from the durable state snapshots of the node.
	SourceDB StorageSource = iota
	// SourceRecorded reads from a previously recorded storage proof.
	SourceRecorded
)

func (s StorageSource) String() string {
	switch s {
	case SourceDB:
		return "db"
	case SourceRecorded:
		return "recorded"
	default:
		return "unknown"
	}
}

// StorageConfig describes the state a chunk is executed against.
type StorageConfig struct {
	// StateRoot is the root of the state before the chunk.
	StateRoot flow.StateCommitment
	// UseFlatStorage serves SourceDB reads from the flat state index instead of the trie.
	UseFlatStorage bool
	Source         StorageSource
	// StatePatch is applied on top of the state before any transaction.
	StatePatch []ledger.Payload
	// RecordedProof is required for SourceRecorded.
	RecordedProof *ledger.Proof
}
