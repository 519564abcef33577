package shadow

import (
	"runtime"

	"github.com/spf13/pflag"

	"github.com/onflow/flow-witness/model/flow"
)

// DefaultChunkProducer is the producer named in locally built witnesses. Shadow
// validation does not attribute a witness to its real producer.
const DefaultChunkProducer flow.AccountID = "shadow.validator"

// Config configures shadow validation.
type Config struct {
	// Enabled turns shadow validation on.
	Enabled bool
	// SaveLatestWitnesses keeps the last built witness of every shard for debugging.
	SaveLatestWitnesses bool
	// ChunkProducer is the producer named in built witnesses.
	ChunkProducer flow.AccountID
	// Workers is the number of concurrent full validations.
	Workers uint
}

func DefaultConfig() Config {
	return Config{
		Enabled:             true,
		SaveLatestWitnesses: false,
		ChunkProducer:       DefaultChunkProducer,
		Workers:             uint(runtime.NumCPU()),
	}
}

// BindFlags binds the configuration to command line flags, using the current
// values as defaults.
func (c *Config) BindFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&c.Enabled, "shadow-validation", c.Enabled, "whether to shadow validate the witnesses of new chunks")
	flags.BoolVar(&c.SaveLatestWitnesses, "save-latest-witnesses", c.SaveLatestWitnesses, "whether to save the latest witness of every shard")
	flags.StringVar((*string)(&c.ChunkProducer), "shadow-chunk-producer", string(c.ChunkProducer), "producer named in locally built witnesses")
	flags.UintVar(&c.Workers, "workers", c.Workers, "number of concurrent full validations")
}
