package epochs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/module/epochs"
	"github.com/onflow/flow-witness/utils/unittest"
)

func TestStaticManager(t *testing.T) {
	epochID := unittest.IdentifierFixture()
	manager, err := epochs.NewStaticManager(epochs.StaticConfig{
		Epochs: []epochs.EpochConfig{{
			ID:        epochID.String(),
			NumShards: 4,
			Producers: []string{"alice", "bob", "carol"},
		}},
	})
	require.NoError(t, err)

	t.Run("shard layout", func(t *testing.T) {
		layout, err := manager.ShardLayout(epochID)
		require.NoError(t, err)
		assert.Equal(t, uint64(4), layout.NumShards)
		assert.True(t, layout.Contains(3))
		assert.False(t, layout.Contains(4))
	})

	t.Run("producers rotate by height and shard", func(t *testing.T) {
		cases := []struct {
			height   uint64
			shard    flow.ShardID
			producer flow.AccountID
		}{
			{0, 0, "alice"},
			{1, 0, "bob"},
			{1, 1, "carol"},
			{10, 2, "alice"},
		}
		for _, c := range cases {
			producer, err := manager.ChunkProducer(epochID, c.height, c.shard)
			require.NoError(t, err)
			assert.Equal(t, c.producer, producer, "height %d shard %d", c.height, c.shard)
		}
	})

	t.Run("unknown epoch", func(t *testing.T) {
		_, err := manager.ShardLayout(unittest.IdentifierFixture())
		assert.True(t, epochs.IsUnknownEpochError(err))

		_, err = manager.ChunkProducer(unittest.IdentifierFixture(), 1, 0)
		assert.True(t, epochs.IsUnknownEpochError(err))
	})

	t.Run("unknown shard", func(t *testing.T) {
		_, err := manager.ChunkProducer(epochID, 1, 4)
		assert.True(t, epochs.IsUnknownShardError(err))
		assert.False(t, epochs.IsUnknownEpochError(err))
	})
}

func TestNewStaticManager_InvalidConfig(t *testing.T) {
	valid := func() epochs.EpochConfig {
		return epochs.EpochConfig{
			ID:        unittest.IdentifierFixture().String(),
			NumShards: 1,
			Producers: []string{"alice"},
		}
	}

	t.Run("invalid id", func(t *testing.T) {
		ec := valid()
		ec.ID = "not hex"
		_, err := epochs.NewStaticManager(epochs.StaticConfig{Epochs: []epochs.EpochConfig{ec}})
		assert.Error(t, err)
	})

	t.Run("duplicate epoch", func(t *testing.T) {
		ec := valid()
		_, err := epochs.NewStaticManager(epochs.StaticConfig{Epochs: []epochs.EpochConfig{ec, ec}})
		assert.Error(t, err)
	})

	t.Run("no shards", func(t *testing.T) {
		ec := valid()
		ec.NumShards = 0
		_, err := epochs.NewStaticManager(epochs.StaticConfig{Epochs: []epochs.EpochConfig{ec}})
		assert.Error(t, err)
	})

	t.Run("no producers", func(t *testing.T) {
		ec := valid()
		ec.Producers = nil
		_, err := epochs.NewStaticManager(epochs.StaticConfig{Epochs: []epochs.EpochConfig{ec}})
		assert.Error(t, err)
	})
}
