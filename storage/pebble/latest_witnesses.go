package pebble

import (
	"encoding/binary"
	"fmt"

	"github.com/cockroachdb/pebble"

	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/model/witness"
	"github.com/onflow/flow-witness/storage"
)

const codeLatestWitness byte = 0x01

// LatestWitnesses keeps the encoded latest witness of each shard.
type LatestWitnesses struct {
	db *pebble.DB
}

var _ storage.LatestWitnesses = (*LatestWitnesses)(nil)

func NewLatestWitnesses(db *pebble.DB) *LatestWitnesses {
	return &LatestWitnesses{db: db}
}

// Store replaces the latest witness of the shard. The witness is stored as
// encoded, it is not encoded again.
func (l *LatestWitnesses) Store(shard flow.ShardID, encoded *witness.EncodedStateWitness) error {
	err := l.db.Set(latestWitnessKey(shard), encoded.Bytes(), pebble.Sync)
	if err != nil {
		return fmt.Errorf("could not store latest witness of shard %d: %w", shard, err)
	}
	return nil
}

// ByShard returns the latest witness of the shard.
func (l *LatestWitnesses) ByShard(shard flow.ShardID) (*witness.StateWitness, error) {
	data, closer, err := l.db.Get(latestWitnessKey(shard))
	if err != nil {
		return nil, handleError(err, witness.StateWitness{})
	}
	defer closer.Close()

	// data is only valid until closer is closed
	buf := make([]byte, len(data))
	copy(buf, data)

	w, err := witness.NewEncodedStateWitness(buf).Decode()
	if err != nil {
		return nil, fmt.Errorf("could not decode latest witness of shard %d: %w", shard, err)
	}
	return w, nil
}

func latestWitnessKey(shard flow.ShardID) []byte {
	key := make([]byte, 9)
	key[0] = codeLatestWitness
	binary.BigEndian.PutUint64(key[1:], uint64(shard))
	return key
}
