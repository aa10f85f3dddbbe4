package snapshot

import (
	"context"

	"github.com/retok/revenue"
	"github.com/retok/revenue/coin"
	"github.com/retok/revenue/errors"
)

const optKey = "snapshot"

// Genesis is used to parse the json from genesis file
// use revenue.Address, so address in hex, not base64
type Genesis struct {
	Tokens []GenesisToken `json:"tokens"`
}

// GenesisToken is a token together with its initial balances. Tokens are
// assigned ids in the order they are listed, starting with 1.
type GenesisToken struct {
	Name       string           `json:"name"`
	Restricted bool             `json:"restricted"`
	Balances   []GenesisBalance `json:"balances"`
	// Checkpoints is the number of checkpoints already taken. The initial
	// balances are visible from checkpoint 1 on.
	Checkpoints int64 `json:"checkpoints"`
}

// GenesisBalance is the initial balance of a holder.
type GenesisBalance struct {
	Holder revenue.Address `json:"holder"`
	Amount int64           `json:"amount"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ revenue.Initializer = Initializer{}

// FromGenesis stores the configuration and creates the tokens listed in the
// genesis. Initial balances are not checked against reason codes or the
// transfer rule.
func (Initializer) FromGenesis(opts revenue.Options, db revenue.KVStore) error {
	if err := initConf(db, opts); err != nil {
		return errors.Wrap(err, "configuration")
	}
	var gen Genesis
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return err
	}
	c := NewController(nil, nil)
	ctx := context.Background()
	for i, gt := range gen.Tokens {
		id, err := c.Create(ctx, db, &Token{Name: gt.Name, Restricted: gt.Restricted})
		if err != nil {
			return errors.Wrapf(err, "token %d", i)
		}
		for j, b := range gt.Balances {
			if err := b.Holder.Validate(); err != nil {
				return errors.Wrapf(err, "token %d balance %d", i, j)
			}
			if b.Amount <= 0 {
				return errors.Wrapf(errors.ErrInvalidAmount, "token %d balance %d", i, j)
			}
			if err := c.change(db, id, 1, b.Holder, b.Amount, coin.Add); err != nil {
				return errors.Wrapf(err, "token %d balance %d", i, j)
			}
			if err := c.changeSupply(db, id, 1, b.Amount, coin.Add); err != nil {
				return errors.Wrapf(err, "token %d balance %d", i, j)
			}
		}
		if gt.Checkpoints < 0 {
			return errors.Wrapf(errors.ErrInvalidInput, "token %d: negative checkpoints", i)
		}
		if gt.Checkpoints > 0 {
			t := Token{Name: gt.Name, Restricted: gt.Restricted, Checkpoint: gt.Checkpoints}
			if _, err := c.tokens.Put(db, id, &t); err != nil {
				return errors.Wrapf(err, "token %d", i)
			}
		}
	}
	return nil
}
