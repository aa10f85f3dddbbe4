package access

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
)

const optKey = "access"

// Genesis is used to parse the json from genesis file
// use revenue.Address, so address in hex, not base64
type Genesis struct {
	Members   []GenesisMember   `json:"members"`
	Functions []GenesisFunction `json:"functions"`
}

// GenesisMember grants a role to an account.
type GenesisMember struct {
	Role    Role            `json:"role"`
	Account revenue.Address `json:"account"`
}

// GenesisFunction assigns a role to operations of a target.
type GenesisFunction struct {
	Target     revenue.Address `json:"target"`
	Operations []string        `json:"operations"`
	Role       Role            `json:"role"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ revenue.Initializer = Initializer{}

// FromGenesis will parse initial roles from genesis
// and save them to the database
func (Initializer) FromGenesis(opts revenue.Options, db revenue.KVStore) error {
	var gen Genesis
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return err
	}
	c := NewController().(*controller)
	for i, m := range gen.Members {
		ms := Membership{Role: m.Role, Account: m.Account}
		if err := ms.Validate(); err != nil {
			return errors.Wrapf(err, "member %d", i)
		}
		if err := c.grant(db, m.Role, m.Account); err != nil {
			return errors.Wrapf(err, "member %d", i)
		}
	}
	for i, f := range gen.Functions {
		if err := c.setTargetFunctionRole(db, f.Target, f.Operations, f.Role); err != nil {
			return errors.Wrapf(err, "function %d", i)
		}
	}
	return nil
}
