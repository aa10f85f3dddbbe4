package distributor

import (
	"context"

	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/orm"
)

const optKey = "distributor"

// Genesis is used to parse the json from genesis file
type Genesis struct {
	Instances []GenesisInstance `json:"instances"`
}

// GenesisInstance is an instance together with the incomes it received
// before genesis. Tokens and instances are referenced by their sequence
// numbers. Instances are assigned ids in the order they are listed,
// starting with 1.
type GenesisInstance struct {
	Token       int64    `json:"token"`
	Predecessor int64    `json:"predecessor,omitempty"`
	History     []Income `json:"history,omitempty"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file. It requires the tokens to exist, so it must run after
// the snapshot initializer.
type Initializer struct {
	Ledger Ledger
}

var _ revenue.Initializer = Initializer{}

// FromGenesis stores the configuration and creates the listed instances.
func (i Initializer) FromGenesis(opts revenue.Options, db revenue.KVStore) error {
	if err := initConf(db, opts); err != nil {
		return errors.Wrap(err, "configuration")
	}
	var gen Genesis
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return err
	}
	if len(gen.Instances) == 0 {
		return nil
	}
	if i.Ledger == nil {
		return errors.Wrap(errors.ErrInvalidState, "no ledger")
	}
	c := NewController(nil, i.Ledger, nil)
	ctx := context.Background()
	for n, gi := range gen.Instances {
		if gi.Token < 1 || gi.Predecessor < 0 {
			return errors.Wrapf(errors.ErrInvalidInput, "instance %d", n)
		}
		d := Distributor{TokenID: orm.EncodeSequence(gi.Token)}
		if gi.Predecessor > 0 {
			d.Predecessor = orm.EncodeSequence(gi.Predecessor)
		}
		if _, err := c.Create(ctx, db, &d, gi.History); err != nil {
			return errors.Wrapf(err, "instance %d", n)
		}
	}
	return nil
}
