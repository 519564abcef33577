package logging

import (
	"github.com/onflow/flow-witness/model/flow"
)

// ID returns the identifier of the entity as bytes, for hex logging.
func ID(entity flow.Entity) []byte {
	id := entity.ID()
	return id[:]
}
