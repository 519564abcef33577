package shadowvalidate

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/onflow/flow-witness/cmd/util/cmd/common"
	"github.com/onflow/flow-witness/engine/stateless/shadow"
	"github.com/onflow/flow-witness/engine/stateless/validator"
	"github.com/onflow/flow-witness/module"
	"github.com/onflow/flow-witness/module/irrecoverable"
	"github.com/onflow/flow-witness/module/metrics"
	"github.com/onflow/flow-witness/module/runtime"
	"github.com/onflow/flow-witness/module/util"
	chainbadger "github.com/onflow/flow-witness/state/chain/badger"
)

var (
	flagDatadir     string
	flagWitnessDir  string
	flagFromTo      string
	flagMetricsPort uint
	flagCacheSize   int

	config = shadow.DefaultConfig()
)

// # shadow validate the chunks of the blocks from height 1000 to 2000
// ./util shadow-validate --config epochs.yaml --datadir /var/flow/data/chain --from_to 1000-2000
// # and keep the latest witness of every shard
// ./util shadow-validate --config epochs.yaml --datadir /var/flow/data/chain --witness-dir /var/flow/data/witnesses --save-latest-witnesses --from_to 1000-2000
var Cmd = &cobra.Command{
	Use:   "shadow-validate",
	Short: "build and validate the state witnesses of all new chunks in a height range",
	Run:   run,
}

func init() {
	Cmd.Flags().StringVar(&flagDatadir, "datadir", "/var/flow/data/chain",
		"directory that stores the chain state")
	_ = Cmd.MarkFlagRequired("datadir")

	Cmd.Flags().StringVar(&flagWitnessDir, "witness-dir", "",
		"directory that stores the latest witnesses, required with --save-latest-witnesses")

	Cmd.Flags().StringVar(&flagFromTo, "from_to", "",
		"the height range to shadow validate (inclusive), i.e, 1-1000, 1000-2000, etc.")
	_ = Cmd.MarkFlagRequired("from_to")

	Cmd.Flags().UintVar(&flagMetricsPort, "metrics-port", 0,
		"port of the prometheus metrics endpoint, disabled if 0")

	Cmd.Flags().IntVar(&flagCacheSize, "transition-cache-size", validator.DefaultTransitionCacheSize,
		"number of validated chunk transitions to cache")

	config.BindFlags(Cmd.Flags())
}

func run(*cobra.Command, []string) {
	from, to, err := common.ParseFromTo(flagFromTo)
	if err != nil {
		log.Fatal().Err(err).Msg("could not parse from_to")
	}
	if config.SaveLatestWitnesses && flagWitnessDir == "" {
		log.Fatal().Msg("--save-latest-witnesses requires --witness-dir")
	}

	manager, err := common.LoadEpochs(viper.GetViper())
	if err != nil {
		log.Fatal().Err(err).Msg("could not load epochs")
	}

	registry := prometheus.NewRegistry()
	cacheMetrics := metrics.NewCacheCollector(registry)

	storages := common.InitStorages(cacheMetrics, flagDatadir, flagWitnessDir)
	defer func() {
		err := storages.Close()
		if err != nil {
			log.Error().Err(err).Msg("could not close storages")
		}
	}()

	state := chainbadger.NewState(storages.All)
	rt := runtime.NewRuntime(log.Logger, storages.Tries, storages.FlatStates)
	transitions, err := validator.NewTransitionCache(cacheMetrics, flagCacheSize)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create transition cache")
	}

	engine := shadow.NewEngine(
		log.Logger,
		config,
		state,
		rt,
		validator.New(log.Logger, state, manager, rt, transitions),
		metrics.NewShadowValidationCollector(registry),
		metrics.NewWorkerPoolCollector(registry),
	)

	components := []module.ReadyDoneAware{engine}
	ctx, cancel := context.WithCancel(context.Background())
	signalerCtx, errChan := irrecoverable.WithSignaler(ctx)
	go func() {
		select {
		case err := <-errChan:
			log.Fatal().Err(err).Msg("irrecoverable error")
		case <-ctx.Done():
		}
	}()

	engine.Start(signalerCtx)
	if flagMetricsPort > 0 {
		server := metrics.NewServer(log.Logger, flagMetricsPort, registry)
		server.Start(signalerCtx)
		components = append(components, server)
	}
	<-util.AllReady(components...)

	log.Info().Msgf("shadow validating range from %d to %d", from, to)
	progress := util.LogProgress(log.Logger, "shadow validation", int(to-from+1))
	for height := from; height <= to; height++ {
		block, err := storages.Blocks.ByHeight(height)
		if err != nil {
			log.Fatal().Err(err).Uint64("height", height).Msg("could not get block")
		}
		engine.OnBlockProcessed(block.ID())
		progress(1)
	}

	// wait for the submitted full validations
	cancel()
	<-util.AllDone(components...)

	stats := engine.Stats()
	log.Info().
		Uint64("attempted", stats.Attempted).
		Uint64("submitted", stats.Submitted).
		Uint64("validated", stats.Validated).
		Uint64("failed", stats.Failed).
		Msgf("shadow validated range from %d to %d", from, to)
}
