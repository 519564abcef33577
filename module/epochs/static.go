package epochs

import (
	"fmt"

	"github.com/onflow/flow-witness/model/flow"
)

// EpochConfig is the configuration of a single epoch. ID is hex encoded so the
// configuration can be loaded from a file or the environment.
type EpochConfig struct {
	ID        string   `mapstructure:"id"`
	NumShards uint64   `mapstructure:"num_shards"`
	Producers []string `mapstructure:"producers"`
}

// StaticConfig lists all epochs known to a StaticManager.
type StaticConfig struct {
	Epochs []EpochConfig `mapstructure:"epochs"`
}

type epoch struct {
	layout    ShardLayout
	producers []flow.AccountID
}

// StaticManager is a Manager with a fixed set of epochs. Chunk producers rotate
// through the configured producers by height and shard.
type StaticManager struct {
	epochs map[flow.Identifier]epoch
}

var _ Manager = (*StaticManager)(nil)

// NewStaticManager validates the configuration and builds the manager.
func NewStaticManager(config StaticConfig) (*StaticManager, error) {
	m := &StaticManager{
		epochs: make(map[flow.Identifier]epoch, len(config.Epochs)),
	}
	for i, ec := range config.Epochs {
		epochID, err := flow.HexStringToIdentifier(ec.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid id of epoch %d: %w", i, err)
		}
		if _, dup := m.epochs[epochID]; dup {
			return nil, fmt.Errorf("duplicate epoch %v", epochID)
		}
		if ec.NumShards == 0 {
			return nil, fmt.Errorf("epoch %v has no shards", epochID)
		}
		if len(ec.Producers) == 0 {
			return nil, fmt.Errorf("epoch %v has no chunk producers", epochID)
		}
		producers := make([]flow.AccountID, 0, len(ec.Producers))
		for _, p := range ec.Producers {
			producers = append(producers, flow.AccountID(p))
		}
		m.epochs[epochID] = epoch{
			layout:    ShardLayout{NumShards: ec.NumShards},
			producers: producers,
		}
	}
	return m, nil
}

func (m *StaticManager) ShardLayout(epochID flow.Identifier) (ShardLayout, error) {
	e, ok := m.epochs[epochID]
	if !ok {
		return ShardLayout{}, NewUnknownEpochError(epochID)
	}
	return e.layout, nil
}

func (m *StaticManager) ChunkProducer(epochID flow.Identifier, height uint64, shard flow.ShardID) (flow.AccountID, error) {
	e, ok := m.epochs[epochID]
	if !ok {
		return "", NewUnknownEpochError(epochID)
	}
	if !e.layout.Contains(shard) {
		return "", &UnknownShardError{EpochID: epochID, Shard: shard, NumShards: e.layout.NumShards}
	}
	return e.producers[(height+uint64(shard))%uint64(len(e.producers))], nil
}
