package util_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/onflow/flow-witness/module/util"
	"github.com/onflow/flow-witness/utils/unittest"
)

func TestLogProgress(t *testing.T) {
	t.Run("logs every tenth", func(t *testing.T) {
		counter := unittest.NewLogCounter()
		progress := util.LogProgress(unittest.HookedLogger(counter), "replay", 100)

		for i := 0; i < 100; i++ {
			progress(1)
		}
		// 0% plus ten steps
		assert.Equal(t, 11, counter.Count(zerolog.InfoLevel))
	})

	t.Run("small total", func(t *testing.T) {
		counter := unittest.NewLogCounter()
		progress := util.LogProgress(unittest.HookedLogger(counter), "replay", 3)

		progress(2)
		progress(1)
		assert.Equal(t, 4, counter.Count(zerolog.InfoLevel))
	})

	t.Run("ignores negative", func(t *testing.T) {
		counter := unittest.NewLogCounter()
		progress := util.LogProgress(unittest.HookedLogger(counter), "replay", 10)

		progress(-5)
		assert.Equal(t, 1, counter.Count(zerolog.InfoLevel))
	})
}
