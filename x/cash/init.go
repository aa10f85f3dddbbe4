package cash

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
// use revenue.Address, so address in hex, not base64
type GenesisAccount struct {
	Address revenue.Address `json:"address"`
	Amount  int64           `json:"amount"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ revenue.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts revenue.Options, db revenue.KVStore) error {
	accts := []GenesisAccount{}
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	c := NewController().(*controller)
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		w := Wallet{Amount: acct.Amount}
		if _, err := c.wallets.Put(db, acct.Address, &w); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
