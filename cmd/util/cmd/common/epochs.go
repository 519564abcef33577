package common

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/onflow/flow-witness/module/epochs"
)

// LoadEpochs builds the epoch manager from the `epochs` section of the config.
func LoadEpochs(v *viper.Viper) (*epochs.StaticManager, error) {
	if !v.IsSet("epochs") {
		return nil, fmt.Errorf("no epochs configured")
	}

	var config epochs.StaticConfig
	err := v.Unmarshal(&config)
	if err != nil {
		return nil, fmt.Errorf("could not decode epochs: %w", err)
	}

	manager, err := epochs.NewStaticManager(config)
	if err != nil {
		return nil, fmt.Errorf("invalid epochs: %w", err)
	}
	return manager, nil
}
