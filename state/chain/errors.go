package chain

import (
	"errors"
)

// ErrNoLatestWitnesses is returned by SaveLatestWitness if the store was built
// without a latest witness storage.
var ErrNoLatestWitnesses = errors.New("latest witness storage is not configured")
