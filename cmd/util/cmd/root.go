package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	readwitness "github.com/onflow/flow-witness/cmd/util/cmd/read-witness"
	shadowvalidate "github.com/onflow/flow-witness/cmd/util/cmd/shadow-validate"
)

// EnvPrefix is the prefix of environment variables overriding flags, e.g.
// FLOWWITNESS_WORKERS for --workers.
const EnvPrefix = "FLOWWITNESS"

var (
	flagConfig   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "util",
	Short: "operator tools for state witnesses",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := zerolog.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		zerolog.SetGlobalLevel(level)
		return bindFlags(cmd.Flags())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file, holding the epochs and flag values")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "loglevel", "info", "level for logging (panic, fatal, error, warn, info, debug)")

	addCommands()

	cobra.OnInitialize(initConfig)
}

func addCommands() {
	rootCmd.AddCommand(shadowvalidate.Cmd)
	rootCmd.AddCommand(readwitness.Cmd)
}

func initConfig() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if flagConfig != "" {
		viper.SetConfigFile(flagConfig)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal().Err(err).Str("config", flagConfig).Msg("could not read config")
		}
		log.Info().Str("config", viper.ConfigFileUsed()).Msg("using config file")
	}
}

// bindFlags sets every flag not given on the command line from the
// environment or the config file, when set there.
func bindFlags(flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || !viper.IsSet(f.Name) {
			return
		}
		err = flags.Set(f.Name, viper.GetString(f.Name))
		if err != nil {
			err = fmt.Errorf("invalid value for --%s: %w", f.Name, err)
		}
	})
	return err
}
