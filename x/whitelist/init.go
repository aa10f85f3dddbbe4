package whitelist

import (
	"context"

	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
)

const optKey = "whitelist"

// GenesisList is a list together with its initial accounts.
type GenesisList struct {
	List     revenue.Address   `json:"list"`
	Accounts []revenue.Address `json:"accounts"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ revenue.Initializer = Initializer{}

// FromGenesis will parse initial lists from genesis
// and save them to the database
func (Initializer) FromGenesis(opts revenue.Options, db revenue.KVStore) error {
	var lists []GenesisList
	if err := opts.ReadOptions(optKey, &lists); err != nil {
		return err
	}
	c := NewController()
	for i, l := range lists {
		if err := c.Add(context.Background(), db, l.List, l.Accounts); err != nil {
			return errors.Wrapf(err, "list %d", i)
		}
	}
	return nil
}
