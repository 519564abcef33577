package runtime

import (
	"fmt"
	"sort"

	"github.com/onflow/flow-witness/ledger/complete/mtrie/trie"
	"github.com/onflow/flow-witness/ledger/partial/ptrie"
	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/storage"
)

// reader serves reads of a single state.
type reader interface {
	Get(key string) (value []byte, found bool, err error)
}

// trieReader reads from a complete trie snapshot.
type trieReader struct {
	trie *trie.MTrie
}

func (r *trieReader) Get(key string) ([]byte, bool, error) {
	value, found := r.trie.Get(key)
	return value, found, nil
}

// flatReader reads from the flat state index.
type flatReader struct {
	root flow.StateCommitment
	flat storage.FlatStates
}

func (r *flatReader) Get(key string) ([]byte, bool, error) {
	return r.flat.Get(r.root, key)
}

// partialReader reads from a partial trie built from a storage proof. Reads of
// keys the proof does not cover fail with ledger.ErrMissingKeys.
type partialReader struct {
	psmt *ptrie.PSMT
}

func (r *partialReader) Get(key string) ([]byte, bool, error) {
	return r.psmt.Get(key)
}

// recorder remembers every key read through it.
type recorder struct {
	reader
	keys map[string]struct{}
}

func newRecorder(r reader) *recorder {
	return &recorder{
		reader: r,
		keys:   make(map[string]struct{}),
	}
}

func (r *recorder) Get(key string) ([]byte, bool, error) {
	r.keys[key] = struct{}{}
	return r.reader.Get(key)
}

// Keys returns the recorded keys in ascending order.
func (r *recorder) Keys() []string {
	keys := make([]string, 0, len(r.keys))
	for key := range r.keys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// view buffers the writes of a chunk on top of a reader.
type view struct {
	reader reader
	writes map[string][]byte
}

func newView(r reader) *view {
	return &view{
		reader: r,
		writes: make(map[string][]byte),
	}
}

func (v *view) Get(key string) ([]byte, bool, error) {
	if value, ok := v.writes[key]; ok {
		return value, true, nil
	}
	return v.reader.Get(key)
}

func (v *view) Set(key string, value []byte) {
	v.writes[key] = value
}

func (v *view) account(id flow.AccountID) (Account, bool, error) {
	data, found, err := v.Get(AccountKey(id))
	if err != nil {
		return Account{}, false, fmt.Errorf("could not read account %s: %w", id, err)
	}
	if !found {
		return Account{}, false, nil
	}
	account, err := decodeAccount(data)
	if err != nil {
		return Account{}, false, fmt.Errorf("invalid state of account %s: %w", id, err)
	}
	return account, true, nil
}

func (v *view) setAccount(id flow.AccountID, account Account) {
	v.Set(AccountKey(id), encodeAccount(account))
}
