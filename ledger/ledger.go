package ledger

import (
	"bytes"
	"fmt"
	"math/bits"

	"github.com/onflow/flow-witness/ledger/common/hash"
)

// Payload is a single key/value entry of the ledger. Keys are unique within a
// state and payloads are kept sorted by key inside a trie.
type Payload struct {
	Key   string
	Value []byte
}

// NewPayload returns a new payload given a key and a value.
func NewPayload(key string, value []byte) Payload {
	return Payload{Key: key, Value: value}
}

// Equals compares this payload to another payload.
func (p Payload) Equals(other Payload) bool {
	return p.Key == other.Key && bytes.Equal(p.Value, other.Value)
}

// LeafHash returns the hash of the trie leaf holding this payload.
func (p Payload) LeafHash() hash.Hash {
	return hash.HashLeaf([]byte(p.Key), p.Value)
}

func (p Payload) String() string {
	return fmt.Sprintf("%s:%x", p.Key, p.Value)
}

// ProofLeaf is a leaf revealed by a proof, together with its position in the trie.
type ProofLeaf struct {
	Index uint64
	Key   string
	Value []byte
}

// ProofNode is an interim node hash revealed by a proof. Level 0 is the leaf level.
type ProofNode struct {
	Level uint32
	Index uint64
	Hash  hash.Hash
}

// Proof is a batch proof of reads against a single state commitment.
//
// It reveals the leaves that were read, the leaves adjacent to every key that was
// read but not found (non-membership), and the minimal set of sibling hashes
// needed to recompute the root from those leaves. Leaves are ordered by index
// and nodes by (level, index), so that identical reads always produce an
// identical proof.
type Proof struct {
	LeafCount uint64
	Leaves    []ProofLeaf
	Nodes     []ProofNode
}

// Size returns the number of leaves revealed by the proof.
func (p *Proof) Size() int {
	if p == nil {
		return 0
	}
	return len(p.Leaves)
}

// Keys returns the keys of all revealed leaves, in trie order.
func (p *Proof) Keys() []string {
	keys := make([]string, 0, len(p.Leaves))
	for _, leaf := range p.Leaves {
		keys = append(keys, leaf.Key)
	}
	return keys
}

// MaxLeafCount is the largest number of leaves a trie or proof can hold, so
// that leaf indices at every level fit into a uint64.
const MaxLeafCount = uint64(1) << 63

// Depth returns the height of the complete binary tree holding leafCount leaves.
func Depth(leafCount uint64) uint32 {
	if leafCount <= 1 {
		return 0
	}
	return uint32(bits.Len64(leafCount - 1))
}
