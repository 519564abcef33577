package transaction

import (
	"github.com/dgraph-io/badger/v2"
)

// Tx wraps a badger transaction together with callbacks, which run only after
// the transaction committed. Stores use them to fill their caches.
//
// Whether a transaction succeeded depends only on the return value of the
// outermost function: callbacks added by an inner function whose error was
// discarded by its caller still run.
type Tx struct {
	DBTxn     *badger.Txn
	callbacks []func()
}

// OnSucceed adds a callback to run after the commit.
func (b *Tx) OnSucceed(callback func()) {
	b.callbacks = append(b.callbacks, callback)
}

// Update runs f in a read-write transaction and, once it committed, the
// callbacks f added.
func Update(db *badger.DB, f func(*Tx) error) error {
	dbTxn := db.NewTransaction(true)
	defer dbTxn.Discard()

	tx := &Tx{DBTxn: dbTxn}
	err := f(tx)
	if err != nil {
		return err
	}

	err = dbTxn.Commit()
	if err != nil {
		return err
	}

	for _, callback := range tx.callbacks {
		callback()
	}
	return nil
}
