package shadow_test

import (
	"context"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-witness/engine/stateless/shadow"
	shadowmock "github.com/onflow/flow-witness/engine/stateless/shadow/mock"
	"github.com/onflow/flow-witness/engine/stateless/validator"
	"github.com/onflow/flow-witness/engine/testutil"
	"github.com/onflow/flow-witness/model/witness"
	"github.com/onflow/flow-witness/module/irrecoverable"
	"github.com/onflow/flow-witness/module/metrics"
	"github.com/onflow/flow-witness/utils/unittest"
)

// TestEngine_DrainsOnShutdown checks that validations submitted before shutdown
// all complete before the engine is done.
func TestEngine_DrainsOnShutdown(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		chain := testutil.NewChainBuilder(t, db, 2)
		chain.Extend(1)
		block := chain.Extend(2)

		release := make(chan struct{})
		wv := shadowmock.NewWitnessValidator(t)
		wv.On("PreValidate", mock.Anything).Return(&validator.PreValidationResult{}, nil).Twice()
		wv.On("Validate", mock.Anything, mock.Anything).Return(func(*witness.StateWitness, *validator.PreValidationResult) error {
			<-release
			return nil
		}).Twice()

		config := shadow.DefaultConfig()
		config.Workers = 1
		engine := shadow.NewEngine(unittest.Logger(), config, chain.State, chain.Runtime, wv,
			metrics.NewNoopCollector(), metrics.NewNoopCollector())

		ctx, cancel := irrecoverable.NewMockSignalerContextWithCancel(t, context.Background())
		engine.Start(ctx)
		unittest.RequireCloseBefore(t, engine.Ready(), time.Second, "engine not ready")

		engine.OnBlockProcessed(block.ID())
		assert.Equal(t, uint64(2), engine.Stats().Submitted)

		cancel()
		unittest.RequireNotClosed(t, engine.Done(), 50*time.Millisecond, "engine done with pending validations")
		close(release)
		unittest.RequireCloseBefore(t, engine.Done(), time.Second, "engine did not stop")

		assert.Equal(t, shadow.Stats{Attempted: 2, Submitted: 2, Validated: 2}, engine.Stats())
	})
}

// TestEngine_UnknownBlock checks that a block which can't be loaded is only logged.
func TestEngine_UnknownBlock(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		chain := testutil.NewChainBuilder(t, db, 1)
		counter := unittest.NewLogCounter()
		log := unittest.HookedLogger(counter)

		engine := shadow.NewEngine(log, shadow.DefaultConfig(), chain.State, chain.Runtime,
			shadowmock.NewWitnessValidator(t), metrics.NewNoopCollector(), metrics.NewNoopCollector())

		engine.OnBlockProcessed(unittest.IdentifierFixture())

		require.Equal(t, shadow.Stats{}, engine.Stats())
		require.Equal(t, 1, counter.Count(zerolog.WarnLevel))
		require.Zero(t, counter.Count(zerolog.ErrorLevel))
	})
}
