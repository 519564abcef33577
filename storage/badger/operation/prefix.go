package operation

import (
	"encoding/binary"
	"fmt"

	"github.com/onflow/flow-witness/model/flow"
)

const (

	// codes for entities
	codeHeader      = 10
	codeBlockChunks = 11
	codeChunk       = 12
	codeTrie        = 13

	// codes for indexes
	codeHeightToBlock = 20
	codeFlatValue     = 21
	codeFlatRoot      = 22
)

func makePrefix(code byte, keys ...interface{}) []byte {
	prefix := make([]byte, 1)
	prefix[0] = code
	for _, key := range keys {
		prefix = append(prefix, b(key)...)
	}
	return prefix
}

func b(v interface{}) []byte {
	switch i := v.(type) {
	case uint8:
		return []byte{i}
	case uint32:
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, i)
		return b
	case uint64:
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, i)
		return b
	case string:
		return []byte(i)
	case flow.Identifier:
		return i[:]
	case flow.StateCommitment:
		return i[:]
	default:
		panic(fmt.Sprintf("unsupported type to convert (%T)", v))
	}
}
