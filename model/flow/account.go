package flow

import (
	"strconv"
)

// AccountID is the name of an account of the sharded state.
type AccountID string

func (a AccountID) String() string {
	return string(a)
}

// ShardID is the index of a shard within the shard layout of an epoch.
type ShardID uint64

func (s ShardID) String() string {
	return strconv.FormatUint(uint64(s), 10)
}
