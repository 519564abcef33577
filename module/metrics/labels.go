package metrics

const (
	LabelShard    = "shard"
	LabelResource = "resource"
	LabelPool     = "pool"
	LabelSize     = "size"
)

const (
	ResourceUndefined  = "undefined"
	ResourceBlock      = "block"
	ResourceChunk      = "chunk"
	ResourceTrie       = "trie"
	ResourceTransition = "transition"
)

const (
	SizeRaw     = "raw"
	SizeEncoded = "encoded"
)

const (
	PoolFullValidation = "full_validation"
)
