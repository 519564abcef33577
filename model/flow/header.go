package flow

import (
	"time"
)

// Header contains all meta-data for a block.
type Header struct {
	// Height is the height of the parent + 1
	Height uint64
	// ParentID is the ID of this block's parent.
	ParentID Identifier
	// EpochID identifies the epoch that defines the shard layout and the chunk
	// producers for this block.
	EpochID Identifier
	// Timestamp is the time at which this block was proposed, in unix milliseconds.
	Timestamp uint64
	// ChunksRoot commits to the chunk headers of the block.
	ChunksRoot Identifier
}

// ID returns a unique ID to singularly identify the header and its block
// within the flow system.
func (h Header) ID() Identifier {
	return MakeID(h)
}

// Time returns the block timestamp.
func (h Header) Time() time.Time {
	return time.UnixMilli(int64(h.Timestamp)).UTC()
}
