package shadow

import (
	"github.com/rs/zerolog"

	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/module"
	"github.com/onflow/flow-witness/module/component"
	"github.com/onflow/flow-witness/module/irrecoverable"
	"github.com/onflow/flow-witness/module/metrics"
	"github.com/onflow/flow-witness/module/runtime"
	"github.com/onflow/flow-witness/module/util"
	"github.com/onflow/flow-witness/module/workerpool"
	"github.com/onflow/flow-witness/state/chain"
)

// Engine runs shadow validation for processed blocks. It owns the worker pool
// of the full validations, which drains all submitted validations on shutdown.
type Engine struct {
	component.Component

	log       zerolog.Logger
	pool      *workerpool.Pool
	validator *Validator
}

func NewEngine(
	log zerolog.Logger,
	config Config,
	chain chain.Store,
	runtime runtime.Adapter,
	witnessValidator WitnessValidator,
	shadowMetrics module.ShadowValidationMetrics,
	poolMetrics module.WorkerPoolMetrics,
) *Engine {
	log = log.With().Str("engine", "shadow_validation").Logger()
	pool := workerpool.New(log, poolMetrics, metrics.PoolFullValidation, int(config.Workers))

	e := &Engine{
		log:       log,
		pool:      pool,
		validator: NewValidator(log, config, chain, runtime, witnessValidator, pool, shadowMetrics),
	}

	e.Component = component.NewComponentManagerBuilder().
		AddWorker(func(ctx irrecoverable.SignalerContext, ready component.ReadyFunc) {
			e.pool.Start(ctx)
			err := util.WaitClosed(ctx, e.pool.Ready())
			if err == nil {
				ready()
			}
			<-e.pool.Done()
		}).
		Build()

	return e
}

// OnBlockProcessed shadow validates the new chunks of a processed block on the
// caller's goroutine. It never fails, a block that can't be loaded is logged.
func (e *Engine) OnBlockProcessed(blockID flow.Identifier) {
	err := e.validator.ValidateBlockChunks(blockID)
	if IsPreconditionError(err) {
		e.log.Warn().Err(err).Hex("block_id", blockID[:]).Msg("skipping shadow validation of block")
		return
	}
	if err != nil {
		e.log.Error().Err(err).Hex("block_id", blockID[:]).Msg("unexpected error in shadow validation")
	}
}

// Stats returns the counts of shadow validation attempts so far.
func (e *Engine) Stats() Stats {
	return e.validator.Stats()
}
