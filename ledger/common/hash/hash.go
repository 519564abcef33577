package hash

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// HashLen is the ledger default output hash length in bytes
const HashLen = 32

// Hash is the hash type used in all ledger
type Hash [HashLen]byte

// DummyHash is an arbitrary hash value, used in function errors.
// DummyHash represents a valid hash value.
var DummyHash Hash

// EmptyHash is the value of an unoccupied leaf position of a trie. Padding leaves
// carry this value so that every trie is a complete binary tree.
var EmptyHash Hash

// domain separation tags, prepended to every hashed message
const (
	tagLeaf      = byte(0x00)
	tagInterNode = byte(0x01)
	tagRoot      = byte(0x02)
)

// HashLeaf returns the hash value for leaf nodes.
//
// The key is length-prefixed so that (key, value) pairs can't collide by
// shifting bytes between the two.
func HashLeaf(key []byte, value []byte) Hash {
	hasher := sha3.New256()
	var length [8]byte
	binary.BigEndian.PutUint64(length[:], uint64(len(key)))
	_, _ = hasher.Write([]byte{tagLeaf})
	_, _ = hasher.Write(length[:])
	_, _ = hasher.Write(key)
	_, _ = hasher.Write(value)
	return sum(hasher.Sum(nil))
}

// HashInterNode returns the hash value for intermediate nodes.
func HashInterNode(hash1 Hash, hash2 Hash) Hash {
	hasher := sha3.New256()
	_, _ = hasher.Write([]byte{tagInterNode})
	_, _ = hasher.Write(hash1[:])
	_, _ = hasher.Write(hash2[:])
	return sum(hasher.Sum(nil))
}

// HashRoot binds the number of occupied leaves to the hash of the tree root.
// Without it, a proof could hide trailing leaves behind padding positions.
func HashRoot(leafCount uint64, treeRoot Hash) Hash {
	hasher := sha3.New256()
	var count [8]byte
	binary.BigEndian.PutUint64(count[:], leafCount)
	_, _ = hasher.Write([]byte{tagRoot})
	_, _ = hasher.Write(count[:])
	_, _ = hasher.Write(treeRoot[:])
	return sum(hasher.Sum(nil))
}

// Sum256 returns the plain SHA3-256 digest of data.
func Sum256(data []byte) Hash {
	return sha3.Sum256(data)
}

// ToHash converts a byte slice into a Hash.
// It returns an error if the slice has an invalid length.
func ToHash(bytes []byte) (Hash, error) {
	var h Hash
	if len(bytes) != len(h) {
		return DummyHash, fmt.Errorf("expecting %d bytes but got %d bytes", len(h), len(bytes))
	}
	copy(h[:], bytes)
	return h, nil
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

func sum(b []byte) Hash {
	var h Hash
	copy(h[:], b)
	return h
}
