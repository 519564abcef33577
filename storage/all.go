package storage

// All includes all the storage modules
type All struct {
	Blocks          Blocks
	Chunks          Chunks
	Tries           Tries
	FlatStates      FlatStates
	LatestWitnesses LatestWitnesses
}
