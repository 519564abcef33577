package flow

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/onflow/flow-witness/model/encoding/cbor"
)

// Identifier represents a 32-byte unique identifier for an entity.
type Identifier [32]byte

// ZeroID is the lowest value in the 32-byte ID space.
var ZeroID = Identifier{}

// Entity defines how flow entities should be defined.
type Entity interface {
	// ID returns a unique id for this entity using a hash of the immutable
	// fields of the entity.
	ID() Identifier
}

// HexStringToIdentifier converts a hex string to an identifier. The input
// must be 64 characters long and contain only valid hex characters.
func HexStringToIdentifier(hexString string) (Identifier, error) {
	var identifier Identifier
	i, err := hex.Decode(identifier[:], []byte(hexString))
	if err != nil {
		return identifier, err
	}
	if i != 32 {
		return identifier, fmt.Errorf("malformed input, expected 32 bytes (64 characters), decoded %d", i)
	}
	return identifier, nil
}

func MustHexStringToIdentifier(hexString string) Identifier {
	id, err := HexStringToIdentifier(hexString)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the hex string representation of the identifier.
func (id Identifier) String() string {
	return hex.EncodeToString(id[:])
}

// TerminalString returns a shortened representation for logs.
func (id Identifier) TerminalString() string {
	return id.String()[:8]
}

// MakeID creates an ID from the canonical CBOR encoding of the entity.
func MakeID(entity interface{}) Identifier {
	b, err := cbor.EncMode.Marshal(entity)
	if err != nil {
		panic(fmt.Errorf("could not encode entity for identifier: %w", err))
	}
	return HashToID(b)
}

// HashToID hashes raw bytes into an identifier.
func HashToID(b []byte) Identifier {
	return sha3.Sum256(b)
}

// IdentifierList is a list of identifiers.
type IdentifierList []Identifier

// Strings returns the hex representation of all identifiers.
func (il IdentifierList) Strings() []string {
	list := make([]string, 0, len(il))
	for _, id := range il {
		list = append(list, id.String())
	}
	return list
}
