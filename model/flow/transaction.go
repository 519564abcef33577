package flow

import (
	"fmt"
)

// Transaction moves Amount from the Signer account to the Receiver account.
// The Nonce must be strictly larger than the current nonce of the signer.
type Transaction struct {
	Signer   AccountID
	Receiver AccountID
	Nonce    uint64
	Amount   uint64
}

// ID returns the canonical hash of the transaction.
func (tx Transaction) ID() Identifier {
	return MakeID(tx)
}

func (tx Transaction) String() string {
	return fmt.Sprintf("%s -> %s: %d (nonce %d)", tx.Signer, tx.Receiver, tx.Amount, tx.Nonce)
}

// TransactionsRoot commits to the ordered list of transaction IDs.
func TransactionsRoot(txs []*Transaction) Identifier {
	ids := make(IdentifierList, 0, len(txs))
	for _, tx := range txs {
		ids = append(ids, tx.ID())
	}
	return MakeID(ids)
}
