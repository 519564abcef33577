package epochs

import (
	"errors"
	"fmt"

	"github.com/onflow/flow-witness/model/flow"
)

// UnknownEpochError is returned when an epoch is queried that the manager has no configuration for.
type UnknownEpochError struct {
	EpochID flow.Identifier
}

func NewUnknownEpochError(epochID flow.Identifier) *UnknownEpochError {
	return &UnknownEpochError{EpochID: epochID}
}

func (e *UnknownEpochError) Error() string {
	return fmt.Sprintf("unknown epoch %v", e.EpochID)
}

func IsUnknownEpochError(err error) bool {
	var target *UnknownEpochError
	return errors.As(err, &target)
}

// UnknownShardError is returned when a shard is queried that is not part of an epoch's layout.
type UnknownShardError struct {
	EpochID   flow.Identifier
	Shard     flow.ShardID
	NumShards uint64
}

func (e *UnknownShardError) Error() string {
	return fmt.Sprintf("shard %d is not part of epoch %v with %d shards", e.Shard, e.EpochID, e.NumShards)
}

func IsUnknownShardError(err error) bool {
	var target *UnknownShardError
	return errors.As(err, &target)
}
