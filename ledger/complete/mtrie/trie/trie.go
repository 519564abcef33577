package trie

import (
	"fmt"
	"sort"

	"github.com/onflow/flow-witness/ledger"
	"github.com/onflow/flow-witness/ledger/common/hash"
)

// MTrie represents a complete in-memory binary Merkle tree over a sorted set of payloads.
//
// Leaves hold payloads in ascending key order and the leaf level is padded with
// hash.EmptyHash up to the next power of two. The root hash additionally commits
// to the number of occupied leaves (see hash.HashRoot), which makes the position of
// a leaf meaningful: two leaves at adjacent indices are adjacent keys of the state.
// This is what allows a proof to show that a key is absent.
//
// MTries are immutable. Update returns a new trie.
//
// DEFINITIONS and CONVENTIONS:
//   - LEVEL of a node is its distance from the leaf level; leaves are at level 0
//     and the tree root is at level Depth().
//   - INDEX of a node is its position within its level, counted from the left.
type MTrie struct {
	payloads []ledger.Payload
	levels   [][]hash.Hash
	index    map[string]uint64
}

// NewEmptyMTrie returns a trie without payloads.
func NewEmptyMTrie() *MTrie {
	t, _ := NewMTrie(nil)
	return t
}

// NewMTrie builds a trie holding the given payloads. The input slice is not modified.
// An error wrapping ledger.ErrDuplicateKey is returned if two payloads share a key.
func NewMTrie(payloads []ledger.Payload) (*MTrie, error) {
	sorted := make([]ledger.Payload, len(payloads))
	copy(sorted, payloads)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})

	index := make(map[string]uint64, len(sorted))
	for i, p := range sorted {
		if i > 0 && sorted[i-1].Key == p.Key {
			return nil, fmt.Errorf("could not build trie: %w: %s", ledger.ErrDuplicateKey, p.Key)
		}
		index[p.Key] = uint64(i)
	}

	depth := ledger.Depth(uint64(len(sorted)))
	leaves := make([]hash.Hash, uint64(1)<<depth)
	for i, p := range sorted {
		leaves[i] = p.LeafHash()
	}

	levels := make([][]hash.Hash, 0, depth+1)
	levels = append(levels, leaves)
	for l := uint32(0); l < depth; l++ {
		children := levels[l]
		parents := make([]hash.Hash, len(children)/2)
		for i := range parents {
			parents[i] = hash.HashInterNode(children[2*i], children[2*i+1])
		}
		levels = append(levels, parents)
	}

	return &MTrie{
		payloads: sorted,
		levels:   levels,
		index:    index,
	}, nil
}

// RootHash returns the state commitment of the trie.
func (mt *MTrie) RootHash() hash.Hash {
	return hash.HashRoot(uint64(len(mt.payloads)), mt.treeRoot())
}

// Depth returns the level of the tree root.
func (mt *MTrie) Depth() uint32 {
	return uint32(len(mt.levels) - 1)
}

// Size returns the number of payloads stored in the trie.
func (mt *MTrie) Size() int {
	return len(mt.payloads)
}

// Payloads returns a copy of all payloads, sorted by key.
func (mt *MTrie) Payloads() []ledger.Payload {
	payloads := make([]ledger.Payload, len(mt.payloads))
	copy(payloads, mt.payloads)
	return payloads
}

// Get returns the value stored under key, and whether the key exists.
func (mt *MTrie) Get(key string) ([]byte, bool) {
	i, ok := mt.index[key]
	if !ok {
		return nil, false
	}
	return mt.payloads[i].Value, true
}

// Update returns a new trie with the given payloads inserted or replaced.
func (mt *MTrie) Update(updates []ledger.Payload) (*MTrie, error) {
	merged := make(map[string][]byte, len(mt.payloads)+len(updates))
	for _, p := range mt.payloads {
		merged[p.Key] = p.Value
	}
	for _, p := range updates {
		merged[p.Key] = p.Value
	}
	payloads := make([]ledger.Payload, 0, len(merged))
	for k, v := range merged {
		payloads = append(payloads, ledger.NewPayload(k, v))
	}
	return NewMTrie(payloads)
}

// Prove returns a batch proof for reading the given keys.
//
// Keys present in the trie are revealed directly. For an absent key, the leaves
// immediately before and after its sort position are revealed instead, which is
// sufficient to prove non-membership. The proof content only depends on the set
// of keys, never on their order or multiplicity.
func (mt *MTrie) Prove(keys []string) *ledger.Proof {
	count := uint64(len(mt.payloads))
	revealed := make(map[uint64]struct{})
	for _, key := range keys {
		if i, ok := mt.index[key]; ok {
			revealed[i] = struct{}{}
			continue
		}
		pos := uint64(sort.Search(len(mt.payloads), func(i int) bool {
			return mt.payloads[i].Key >= key
		}))
		if pos > 0 {
			revealed[pos-1] = struct{}{}
		}
		if pos < count {
			revealed[pos] = struct{}{}
		}
	}

	indices := make([]uint64, 0, len(revealed))
	for i := range revealed {
		indices = append(indices, i)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	proof := &ledger.Proof{
		LeafCount: count,
		Leaves:    make([]ledger.ProofLeaf, 0, len(indices)),
		Nodes:     make([]ledger.ProofNode, 0),
	}
	for _, i := range indices {
		p := mt.payloads[i]
		value := make([]byte, len(p.Value))
		copy(value, p.Value)
		proof.Leaves = append(proof.Leaves, ledger.ProofLeaf{Index: i, Key: p.Key, Value: value})
	}

	if len(indices) == 0 {
		// nothing to reveal, the proof only pins the tree root
		proof.Nodes = append(proof.Nodes, ledger.ProofNode{Level: mt.Depth(), Index: 0, Hash: mt.treeRoot()})
		return proof
	}

	// walk up from the revealed leaves, emitting every sibling that is not itself
	// on a path. Indices stay sorted at every level, so nodes come out ordered.
	current := indices
	for l := uint32(0); l < mt.Depth(); l++ {
		onPath := make(map[uint64]struct{}, len(current))
		for _, i := range current {
			onPath[i] = struct{}{}
		}
		parents := make([]uint64, 0, len(current))
		for _, i := range current {
			sibling := i ^ 1
			if _, ok := onPath[sibling]; !ok {
				proof.Nodes = append(proof.Nodes, ledger.ProofNode{Level: l, Index: sibling, Hash: mt.levels[l][sibling]})
			}
			parent := i / 2
			if len(parents) == 0 || parents[len(parents)-1] != parent {
				parents = append(parents, parent)
			}
		}
		current = parents
	}

	return proof
}

func (mt *MTrie) treeRoot() hash.Hash {
	return mt.levels[len(mt.levels)-1][0]
}
