package unittest

import (
	crand "crypto/rand"
	"fmt"
	"math/rand"

	"github.com/onflow/flow-witness/ledger"
	"github.com/onflow/flow-witness/ledger/complete/mtrie/trie"
	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/model/witness"
)

func IdentifierFixture() flow.Identifier {
	var id flow.Identifier
	_, _ = crand.Read(id[:])
	return id
}

func StateCommitmentFixture() flow.StateCommitment {
	var state flow.StateCommitment
	_, _ = crand.Read(state[:])
	return state
}

func RandomBytes(n int) []byte {
	b := make([]byte, n)
	read, err := crand.Read(b)
	if err != nil {
		panic("cannot read random bytes")
	}
	if read != n {
		panic(fmt.Errorf("cannot read enough random bytes (got %d of %d)", read, n))
	}
	return b
}

func AccountIDFixture() flow.AccountID {
	return flow.AccountID(fmt.Sprintf("account-%d.near", rand.Uint32()))
}

func BlockHeaderFixture(opts ...func(header *flow.Header)) *flow.Header {
	height := 1 + uint64(rand.Uint32()) // avoiding edge case of height = 0 (genesis block)
	header := &flow.Header{
		Height:     height,
		ParentID:   IdentifierFixture(),
		EpochID:    IdentifierFixture(),
		Timestamp:  uint64(rand.Int63()),
		ChunksRoot: IdentifierFixture(),
	}
	for _, opt := range opts {
		opt(header)
	}
	return header
}

func ChunkHeaderFixture(shard flow.ShardID, heightIncluded uint64, opts ...func(*flow.ChunkHeader)) *flow.ChunkHeader {
	header := &flow.ChunkHeader{
		ShardID:        shard,
		PrevBlockID:    IdentifierFixture(),
		HeightCreated:  heightIncluded,
		HeightIncluded: heightIncluded,
		PrevStateRoot:  StateCommitmentFixture(),
		PostStateRoot:  StateCommitmentFixture(),
		TxRoot:         IdentifierFixture(),
		Producer:       AccountIDFixture(),
	}
	for _, opt := range opts {
		opt(header)
	}
	return header
}

// BlockFixture returns a valid block at the given height, where every shard
// has a new chunk.
func BlockFixture(height uint64, numShards int) *flow.Block {
	chunks := make([]*flow.ChunkHeader, 0, numShards)
	for shard := 0; shard < numShards; shard++ {
		chunks = append(chunks, ChunkHeaderFixture(flow.ShardID(shard), height))
	}
	header := BlockHeaderFixture(func(h *flow.Header) {
		h.Height = height
	})
	return flow.NewBlock(*header, chunks)
}

func TransactionFixture(opts ...func(*flow.Transaction)) *flow.Transaction {
	tx := &flow.Transaction{
		Signer:   AccountIDFixture(),
		Receiver: AccountIDFixture(),
		Nonce:    1 + uint64(rand.Uint32()),
		Amount:   uint64(rand.Intn(1000)),
	}
	for _, opt := range opts {
		opt(tx)
	}
	return tx
}

func TransactionListFixture(n int) []*flow.Transaction {
	txs := make([]*flow.Transaction, 0, n)
	for i := 0; i < n; i++ {
		txs = append(txs, TransactionFixture())
	}
	return txs
}

func ChunkFixture(shard flow.ShardID, height uint64, numTxs int) *flow.Chunk {
	txs := TransactionListFixture(numTxs)
	return &flow.Chunk{
		Header: ChunkHeaderFixture(shard, height, func(header *flow.ChunkHeader) {
			header.TxRoot = flow.TransactionsRoot(txs)
		}),
		Transactions: txs,
	}
}

func PayloadFixture() ledger.Payload {
	return ledger.NewPayload(fmt.Sprintf("key-%x", RandomBytes(8)), RandomBytes(16))
}

func PayloadsFixture(n int) []ledger.Payload {
	payloads := make([]ledger.Payload, 0, n)
	for i := 0; i < n; i++ {
		payloads = append(payloads, PayloadFixture())
	}
	return payloads
}

// ProofFixture returns a proof for reading some of the payloads of a random
// trie, together with the root it verifies against.
func ProofFixture() (*ledger.Proof, flow.StateCommitment) {
	payloads := PayloadsFixture(16)
	mt, err := trie.NewMTrie(payloads)
	if err != nil {
		panic(err)
	}
	proof := mt.Prove([]string{payloads[0].Key, payloads[5].Key, "absent"})
	return proof, flow.StateCommitment(mt.RootHash())
}

func StateWitnessFixture(opts ...func(*witness.StateWitness)) *witness.StateWitness {
	prevBlock := BlockHeaderFixture()
	prevChunk := ChunkHeaderFixture(0, prevBlock.Height)
	chunk := ChunkFixture(0, prevBlock.Height+1, 3)
	chunk.Header.PrevBlockID = prevBlock.ID()
	proof, _ := ProofFixture()

	w := witness.NewStateWitness(AccountIDFixture(), prevBlock, prevChunk, chunk, proof)
	for _, opt := range opts {
		opt(w)
	}
	return w
}
