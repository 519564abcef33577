package common_test

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-witness/cmd/util/cmd/common"
	"github.com/onflow/flow-witness/module/epochs"
	"github.com/onflow/flow-witness/utils/unittest"
)

func TestParseFromTo(t *testing.T) {
	from, to, err := common.ParseFromTo("10-20")
	require.NoError(t, err)
	assert.Equal(t, uint64(10), from)
	assert.Equal(t, uint64(20), to)

	from, to, err = common.ParseFromTo(" 7 - 7 ")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), from)
	assert.Equal(t, uint64(7), to)

	for _, invalid := range []string{"", "10", "a-20", "10-b", "20-10", "1-2-3"} {
		_, _, err := common.ParseFromTo(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestLoadEpochs(t *testing.T) {
	epochID := unittest.IdentifierFixture()

	t.Run("yaml", func(t *testing.T) {
		v := viper.New()
		v.SetConfigType("yaml")
		require.NoError(t, v.ReadConfig(bytes.NewBufferString(`
workers: 4
epochs:
  - id: `+epochID.String()+`
    num_shards: 2
    producers: [alice, bob]
`)))

		manager, err := common.LoadEpochs(v)
		require.NoError(t, err)

		layout, err := manager.ShardLayout(epochID)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), layout.NumShards)

		producer, err := manager.ChunkProducer(epochID, 1, 0)
		require.NoError(t, err)
		assert.Equal(t, "bob", string(producer))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := common.LoadEpochs(viper.New())
		require.Error(t, err)
	})

	t.Run("unknown epoch", func(t *testing.T) {
		v := viper.New()
		v.Set("epochs", []map[string]interface{}{{"id": epochID.String(), "num_shards": 1, "producers": []string{"alice"}}})
		manager, err := common.LoadEpochs(v)
		require.NoError(t, err)

		_, err = manager.ShardLayout(unittest.IdentifierFixture())
		assert.True(t, epochs.IsUnknownEpochError(err))
	})
}
