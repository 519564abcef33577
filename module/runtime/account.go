package runtime

import (
	"fmt"

	"github.com/onflow/flow-witness/ledger"
	"github.com/onflow/flow-witness/model/encoding/cbor"
	"github.com/onflow/flow-witness/model/flow"
)

const accountKeyPrefix = "account/"

// Account is the state of a single account.
type Account struct {
	Balance uint64
	Nonce   uint64
}

// AccountKey returns the state key under which the account is stored.
func AccountKey(id flow.AccountID) string {
	return accountKeyPrefix + string(id)
}

// AccountPayload returns the payload storing the account.
func AccountPayload(id flow.AccountID, account Account) ledger.Payload {
	return ledger.NewPayload(AccountKey(id), encodeAccount(account))
}

func encodeAccount(account Account) []byte {
	data, err := cbor.EncMode.Marshal(account)
	if err != nil {
		// encoding a struct of two integers can't fail
		panic(fmt.Errorf("could not encode account: %w", err))
	}
	return data
}

func decodeAccount(data []byte) (Account, error) {
	var account Account
	err := cbor.DecMode.Unmarshal(data, &account)
	if err != nil {
		return Account{}, fmt.Errorf("could not decode account: %w", err)
	}
	return account, nil
}
