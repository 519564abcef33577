package readwitness

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/onflow/flow-witness/model/flow"
	pstorage "github.com/onflow/flow-witness/storage/pebble"
	"github.com/onflow/flow-witness/utils/logging"
)

var (
	flagWitnessDir string
	flagShard      uint64
)

var Cmd = &cobra.Command{
	Use:   "read-witness",
	Short: "print the latest saved witness of a shard",
	Run:   run,
}

func init() {
	Cmd.Flags().StringVar(&flagWitnessDir, "witness-dir", "/var/flow/data/witnesses",
		"directory that stores the latest witnesses")
	_ = Cmd.MarkFlagRequired("witness-dir")

	Cmd.Flags().Uint64Var(&flagShard, "shard", 0, "the shard of the witness")
}

func run(*cobra.Command, []string) {
	db, err := pstorage.OpenLatestWitnessDB(flagWitnessDir)
	if err != nil {
		log.Fatal().Err(err).Msg("could not open latest witness database")
	}
	defer db.Close()

	w, err := pstorage.NewLatestWitnesses(db).ByShard(flow.ShardID(flagShard))
	if err != nil {
		log.Fatal().Err(err).Uint64("shard", flagShard).Msg("could not get latest witness")
	}

	log.Info().Hex("witness_id", logging.ID(w)).Hex("chunk_id", logging.ID(w.ChunkHeader)).Msg("latest witness")
	bytes, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("could not marshal witness")
	}
	fmt.Println(string(bytes))
}
