package runtime

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/onflow/flow-witness/ledger"
	"github.com/onflow/flow-witness/ledger/common/hash"
	"github.com/onflow/flow-witness/ledger/complete/mtrie/trie"
	"github.com/onflow/flow-witness/ledger/partial/ptrie"
	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/storage"
)

//go:generate mockery --name=Adapter --output=mock --outpkg=mock --case=underscore

// Adapter executes the transactions of chunks against the state of a shard.
// Implementations are safe for concurrent use.
type Adapter interface {

	// ValidatePreparedTransactions checks every transaction of a chunk against
	// the state before the chunk, and returns a storage proof of all state reads.
	// Expected errors during normal operations:
	//   - *InvalidTransactionError if any transaction breaks a rule
	//   - ledger.ErrMissingKeys if a SourceRecorded proof does not cover a read
	ValidatePreparedTransactions(cfg StorageConfig, header *flow.ChunkHeader, txs []*flow.Transaction, prevTxs []*flow.Transaction) (*ValidatedTransactions, error)

	// ApplyChunk applies the valid transactions of a chunk, skipping invalid
	// ones, and returns the resulting state root.
	ApplyChunk(cfg StorageConfig, header *flow.ChunkHeader, txs []*flow.Transaction) (*ApplyResult, error)
}

// ValidatedTransactions is the result of transaction preparation.
type ValidatedTransactions struct {
	Transactions []*flow.Transaction
	// Proof covers every state read of the preparation.
	Proof *ledger.Proof
}

// ApplyResult is the result of applying a chunk.
type ApplyResult struct {
	StateRoot flow.StateCommitment
	Applied   flow.IdentifierList
	Skipped   flow.IdentifierList
}

// Runtime implements Adapter over the durable state snapshots of the node,
// or over recorded storage proofs.
type Runtime struct {
	log   zerolog.Logger
	tries storage.Tries
	flat  storage.FlatStates
}

var _ Adapter = (*Runtime)(nil)

func NewRuntime(log zerolog.Logger, tries storage.Tries, flat storage.FlatStates) *Runtime {
	return &Runtime{
		log:   log.With().Str("module", "runtime").Logger(),
		tries: tries,
		flat:  flat,
	}
}

// Bootstrap persists a genesis state and returns its root.
func (r *Runtime) Bootstrap(payloads []ledger.Payload) (flow.StateCommitment, error) {
	mt, err := trie.NewMTrie(payloads)
	if err != nil {
		return flow.DummyStateCommitment, fmt.Errorf("could not build genesis state: %w", err)
	}
	err = r.persist(mt)
	if err != nil {
		return flow.DummyStateCommitment, err
	}
	return flow.StateCommitment(mt.RootHash()), nil
}

func (r *Runtime) ValidatePreparedTransactions(
	cfg StorageConfig,
	header *flow.ChunkHeader,
	txs []*flow.Transaction,
	prevTxs []*flow.Transaction,
) (*ValidatedTransactions, error) {
	if len(cfg.StatePatch) > 0 {
		return nil, ErrStatePatchWhileRecording
	}

	src, err := r.open(cfg)
	if err != nil {
		return nil, err
	}
	rec := newRecorder(src.reader)
	v := newView(rec)

	included := make(map[flow.Identifier]struct{}, len(prevTxs))
	for _, tx := range prevTxs {
		included[tx.ID()] = struct{}{}
	}
	seen := make(map[flow.Identifier]struct{}, len(txs))
	for i, tx := range txs {
		txID := tx.ID()
		if _, ok := included[txID]; ok {
			return nil, &InvalidTransactionError{TxID: txID, Index: i, Reason: ReasonAlreadyIncluded}
		}
		if _, ok := seen[txID]; ok {
			return nil, &InvalidTransactionError{TxID: txID, Index: i, Reason: ReasonDuplicate}
		}
		seen[txID] = struct{}{}

		reason, err := execute(v, tx)
		if err != nil {
			return nil, fmt.Errorf("could not execute transaction %d of shard %d: %w", i, header.ShardID, err)
		}
		if reason != "" {
			return nil, &InvalidTransactionError{TxID: txID, Index: i, Reason: reason}
		}
	}

	proof := cfg.RecordedProof
	if src.trie != nil {
		proof = src.trie.Prove(rec.Keys())
	}

	r.log.Debug().
		Uint64("shard_id", uint64(header.ShardID)).
		Str("source", cfg.Source.String()).
		Int("transactions", len(txs)).
		Int("proof_size", proof.Size()).
		Msg("transactions validated")

	return &ValidatedTransactions{
		Transactions: txs,
		Proof:        proof,
	}, nil
}

func (r *Runtime) ApplyChunk(cfg StorageConfig, header *flow.ChunkHeader, txs []*flow.Transaction) (*ApplyResult, error) {
	src, err := r.open(cfg)
	if err != nil {
		return nil, err
	}
	v := newView(src.reader)
	for _, p := range cfg.StatePatch {
		v.Set(p.Key, p.Value)
	}

	result := &ApplyResult{}
	seen := make(map[flow.Identifier]struct{}, len(txs))
	for i, tx := range txs {
		txID := tx.ID()
		reason := ReasonDuplicate
		if _, ok := seen[txID]; !ok {
			seen[txID] = struct{}{}
			reason, err = execute(v, tx)
			if err != nil {
				return nil, fmt.Errorf("could not execute transaction %d of shard %d: %w", i, header.ShardID, err)
			}
		}
		if reason != "" {
			r.log.Debug().
				Hex("tx_id", txID[:]).
				Str("reason", string(reason)).
				Msg("skipping invalid transaction")
			result.Skipped = append(result.Skipped, txID)
			continue
		}
		result.Applied = append(result.Applied, txID)
	}

	updates := v.payloads()
	switch {
	case src.trie != nil:
		updated, err := src.trie.Update(updates)
		if err != nil {
			return nil, fmt.Errorf("could not update state: %w", err)
		}
		err = r.persist(updated)
		if err != nil {
			return nil, err
		}
		result.StateRoot = flow.StateCommitment(updated.RootHash())
	default:
		root, err := src.psmt.Update(updates)
		if err != nil {
			return nil, fmt.Errorf("could not update partial state: %w", err)
		}
		result.StateRoot = flow.StateCommitment(root)
	}

	return result, nil
}

type source struct {
	reader reader
	trie   *trie.MTrie
	psmt   *ptrie.PSMT
}

func (r *Runtime) open(cfg StorageConfig) (*source, error) {
	switch cfg.Source {
	case SourceDB:
		mt, err := r.tries.ByRoot(cfg.StateRoot)
		if err != nil {
			return nil, fmt.Errorf("could not load state %x: %w", cfg.StateRoot, err)
		}
		if cfg.UseFlatStorage {
			return &source{reader: &flatReader{root: cfg.StateRoot, flat: r.flat}, trie: mt}, nil
		}
		return &source{reader: &trieReader{trie: mt}, trie: mt}, nil
	case SourceRecorded:
		if cfg.RecordedProof == nil {
			return nil, fmt.Errorf("no recorded proof for state %x", cfg.StateRoot)
		}
		psmt, err := ptrie.NewPSMT(hash.Hash(cfg.StateRoot), cfg.RecordedProof)
		if err != nil {
			return nil, fmt.Errorf("could not verify recorded proof: %w", err)
		}
		return &source{reader: &partialReader{psmt: psmt}, psmt: psmt}, nil
	default:
		return nil, fmt.Errorf("unknown storage source %d", cfg.Source)
	}
}

func (r *Runtime) persist(mt *trie.MTrie) error {
	root := flow.StateCommitment(mt.RootHash())
	err := r.tries.Store(mt)
	if err != nil {
		return fmt.Errorf("could not store state %x: %w", root, err)
	}
	err = r.flat.Index(root, mt.Payloads())
	if err != nil {
		return fmt.Errorf("could not index state %x: %w", root, err)
	}
	return nil
}

// execute applies a transaction to the view. If the transaction breaks a rule,
// the reason is returned and the view is unchanged.
func execute(v *view, tx *flow.Transaction) (InvalidReason, error) {
	signer, found, err := v.account(tx.Signer)
	if err != nil {
		return "", err
	}
	if !found {
		return ReasonUnknownSigner, nil
	}
	_, found, err = v.account(tx.Receiver)
	if err != nil {
		return "", err
	}
	if !found {
		return ReasonUnknownReceiver, nil
	}
	if tx.Nonce <= signer.Nonce {
		return ReasonInvalidNonce, nil
	}
	if signer.Balance < tx.Amount {
		return ReasonInsufficientBalance, nil
	}

	signer.Balance -= tx.Amount
	signer.Nonce = tx.Nonce
	v.setAccount(tx.Signer, signer)

	// read after the debit, signer and receiver may be the same account
	receiver, _, err := v.account(tx.Receiver)
	if err != nil {
		return "", err
	}
	receiver.Balance += tx.Amount
	v.setAccount(tx.Receiver, receiver)

	return "", nil
}

// payloads returns the buffered writes sorted by key.
func (v *view) payloads() []ledger.Payload {
	payloads := make([]ledger.Payload, 0, len(v.writes))
	for key, value := range v.writes {
		payloads = append(payloads, ledger.NewPayload(key, value))
	}
	sort.Slice(payloads, func(i, j int) bool {
		return payloads[i].Key < payloads[j].Key
	})
	return payloads
}
