package ptrie

import (
	"fmt"
	"sort"

	"github.com/onflow/flow-witness/ledger"
	"github.com/onflow/flow-witness/ledger/common/hash"
)

// PSMT (Partial Merkle Tree) holds the subset of a trie revealed by a batch proof.
// Instead of keeping any unneeded branch, it only keeps the hash of the subtree.
// This implementation is fully stored in memory and doesn't use a database.
//
// A PSMT can answer reads for every key revealed by the proof, prove absence of
// keys that fall between two adjacent revealed leaves, and recompute the root
// hash after revealed values were updated. Keys can not be inserted, since that
// would change the shape of the tree.
type PSMT struct {
	leafCount uint64
	depth     uint32
	siblings  []map[uint64]hash.Hash // per level, hashes of unrevealed subtrees
	leaves    map[string]uint64      // key -> leaf index
	values    map[uint64][]byte      // leaf index -> value
	keys      map[uint64]string      // leaf index -> key
	ordered   []uint64               // revealed leaf indices, ascending
	root      hash.Hash
}

// NewPSMT builds a partial trie from a batch proof and checks that it hashes to
// the expected root. Any structural problem with the proof, or a root mismatch,
// is reported as a ledger.InvalidProofError.
func NewPSMT(rootHash hash.Hash, proof *ledger.Proof) (*PSMT, error) {
	if proof == nil {
		return nil, ledger.NewInvalidProofErrorf("proof is nil")
	}
	if proof.LeafCount > ledger.MaxLeafCount {
		return nil, ledger.NewInvalidProofErrorf("leaf count %d exceeds maximum %d", proof.LeafCount, ledger.MaxLeafCount)
	}

	depth := ledger.Depth(proof.LeafCount)
	psmt := &PSMT{
		leafCount: proof.LeafCount,
		depth:     depth,
		siblings:  make([]map[uint64]hash.Hash, depth+1),
		leaves:    make(map[string]uint64, len(proof.Leaves)),
		values:    make(map[uint64][]byte, len(proof.Leaves)),
		keys:      make(map[uint64]string, len(proof.Leaves)),
		ordered:   make([]uint64, 0, len(proof.Leaves)),
	}
	for l := range psmt.siblings {
		psmt.siblings[l] = make(map[uint64]hash.Hash)
	}

	for i, leaf := range proof.Leaves {
		if leaf.Index >= proof.LeafCount {
			return nil, ledger.NewInvalidProofErrorf("leaf index %d out of range (leaf count %d)", leaf.Index, proof.LeafCount)
		}
		if i > 0 {
			prev := proof.Leaves[i-1]
			if leaf.Index <= prev.Index || leaf.Key <= prev.Key {
				return nil, ledger.NewInvalidProofErrorf("leaves are not in strictly ascending order at position %d", i)
			}
		}
		value := make([]byte, len(leaf.Value))
		copy(value, leaf.Value)
		psmt.leaves[leaf.Key] = leaf.Index
		psmt.values[leaf.Index] = value
		psmt.keys[leaf.Index] = leaf.Key
		psmt.ordered = append(psmt.ordered, leaf.Index)
	}

	for _, node := range proof.Nodes {
		if node.Level > depth {
			return nil, ledger.NewInvalidProofErrorf("node level %d exceeds trie depth %d", node.Level, depth)
		}
		if node.Index >= (uint64(1)<<depth)>>node.Level {
			return nil, ledger.NewInvalidProofErrorf("node index %d out of range at level %d", node.Index, node.Level)
		}
		if _, dup := psmt.siblings[node.Level][node.Index]; dup {
			return nil, ledger.NewInvalidProofErrorf("duplicate node at level %d index %d", node.Level, node.Index)
		}
		if _, revealed := psmt.values[node.Index]; node.Level == 0 && revealed {
			return nil, ledger.NewInvalidProofErrorf("node at level 0 index %d conflicts with a revealed leaf", node.Index)
		}
		psmt.siblings[node.Level][node.Index] = node.Hash
	}

	computed, err := psmt.computeRoot()
	if err != nil {
		return nil, err
	}
	if computed != rootHash {
		return nil, ledger.NewInvalidProofErrorf("root hash mismatch: proof hashes to %x, expected %x", computed, rootHash)
	}
	psmt.root = computed

	return psmt, nil
}

// RootHash returns the root hash of the partial trie, reflecting all updates applied so far.
func (p *PSMT) RootHash() hash.Hash {
	return p.root
}

// Get returns the value stored under the key.
//
// found is false if the proof shows the key is not part of the state. If the
// proof neither reveals nor excludes the key, ledger.ErrMissingKeys is returned.
func (p *PSMT) Get(key string) (value []byte, found bool, err error) {
	if i, ok := p.leaves[key]; ok {
		v := p.values[i]
		value = make([]byte, len(v))
		copy(value, v)
		return value, true, nil
	}
	if p.provesAbsence(key) {
		return nil, false, nil
	}
	return nil, false, ledger.ErrMissingKeys{Keys: []string{key}}
}

// Update sets new values for revealed keys and returns the new root hash.
// In case any of the keys is not revealed by the proof, no update is applied
// and ledger.ErrMissingKeys lists all failed keys.
func (p *PSMT) Update(payloads []ledger.Payload) (hash.Hash, error) {
	var failedKeys []string
	for _, payload := range payloads {
		if _, ok := p.leaves[payload.Key]; !ok {
			failedKeys = append(failedKeys, payload.Key)
		}
	}
	if len(failedKeys) > 0 {
		return hash.DummyHash, ledger.ErrMissingKeys{Keys: failedKeys}
	}

	for _, payload := range payloads {
		value := make([]byte, len(payload.Value))
		copy(value, payload.Value)
		p.values[p.leaves[payload.Key]] = value
	}

	// after updating all the leaves, compute the root only once
	root, err := p.computeRoot()
	if err != nil {
		return hash.DummyHash, fmt.Errorf("could not recompute root after update: %w", err)
	}
	p.root = root
	return root, nil
}

// provesAbsence returns true if the revealed leaves show the key can't be in the trie.
func (p *PSMT) provesAbsence(key string) bool {
	if p.leafCount == 0 {
		return true
	}
	// first revealed leaf with a key greater than the searched one
	pos := sort.Search(len(p.ordered), func(i int) bool {
		return p.keys[p.ordered[i]] > key
	})
	switch {
	case pos == 0:
		return p.ordered[0] == 0
	case pos == len(p.ordered):
		return p.ordered[pos-1] == p.leafCount-1
	default:
		return p.ordered[pos-1]+1 == p.ordered[pos]
	}
}

func (p *PSMT) computeRoot() (hash.Hash, error) {
	if len(p.ordered) == 0 {
		treeRoot, ok := p.siblings[p.depth][0]
		if !ok {
			return hash.DummyHash, ledger.NewInvalidProofErrorf("proof neither reveals leaves nor the tree root")
		}
		return hash.HashRoot(p.leafCount, treeRoot), nil
	}

	current := make(map[uint64]hash.Hash, len(p.ordered)+len(p.siblings[0]))
	for i, h := range p.siblings[0] {
		current[i] = h
	}
	for _, i := range p.ordered {
		current[i] = hash.HashLeaf([]byte(p.keys[i]), p.values[i])
	}

	path := p.ordered
	for l := uint32(0); l < p.depth; l++ {
		next := make(map[uint64]hash.Hash, len(path)+len(p.siblings[l+1]))
		for i, h := range p.siblings[l+1] {
			next[i] = h
		}
		parents := make([]uint64, 0, len(path))
		for _, i := range path {
			parent := i / 2
			if len(parents) > 0 && parents[len(parents)-1] == parent {
				continue
			}
			left, okLeft := current[2*parent]
			right, okRight := current[2*parent+1]
			if !okLeft || !okRight {
				return hash.DummyHash, ledger.NewInvalidProofErrorf("missing sibling below level %d index %d", l+1, parent)
			}
			next[parent] = hash.HashInterNode(left, right)
			parents = append(parents, parent)
		}
		current = next
		path = parents
	}

	return hash.HashRoot(p.leafCount, current[0]), nil
}
