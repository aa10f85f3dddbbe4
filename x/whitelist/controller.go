package whitelist

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/orm"
)

// Controller maintains the lists and answers transfer restriction checks.
type Controller struct {
	entries orm.ModelBucket
}

// NewController returns a controller storing list entries in the
// whitelist bucket.
func NewController() *Controller {
	return &Controller{entries: orm.NewModelBucket("whitelist")}
}

// Contains returns true if the account is on the list.
func (c *Controller) Contains(db revenue.ReadOnlyKVStore, list, account revenue.Address) (bool, error) {
	if len(account) == 0 {
		return false, nil
	}
	switch err := c.entries.Has(db, entryKey(list, account)); {
	case err == nil:
		return true, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, err
	}
}

// Add puts the accounts on the list. Accounts already listed are skipped.
func (c *Controller) Add(ctx revenue.Context, db revenue.KVStore, list revenue.Address, accounts []revenue.Address) error {
	for _, a := range accounts {
		e := Entry{List: list, Account: a}
		if err := e.Validate(); err != nil {
			return errors.Wrap(errors.ErrInvalidInput, err.Error())
		}
		if ok, err := c.Contains(db, list, a); err != nil {
			return err
		} else if ok {
			continue
		}
		if _, err := c.entries.Put(db, entryKey(list, a), &e); err != nil {
			return errors.Wrap(err, "save entry")
		}
		revenue.Emit(ctx, Added{List: list, Account: a})
	}
	return nil
}

// Remove takes the accounts off the list. Accounts not listed are skipped.
func (c *Controller) Remove(ctx revenue.Context, db revenue.KVStore, list revenue.Address, accounts []revenue.Address) error {
	for _, a := range accounts {
		if ok, err := c.Contains(db, list, a); err != nil {
			return err
		} else if !ok {
			continue
		}
		if err := c.entries.Delete(db, entryKey(list, a)); err != nil {
			return errors.Wrap(err, "delete entry")
		}
		revenue.Emit(ctx, Removed{List: list, Account: a})
	}
	return nil
}

// CanMint returns true if the account may receive newly minted balance.
func (c *Controller) CanMint(db revenue.ReadOnlyKVStore, list, to revenue.Address) (bool, error) {
	return c.Contains(db, list, to)
}

// CanTransfer returns true if both parties of a transfer are listed.
func (c *Controller) CanTransfer(db revenue.ReadOnlyKVStore, list, from, to revenue.Address) (bool, error) {
	ok, err := c.Contains(db, list, from)
	if err != nil || !ok {
		return false, err
	}
	return c.Contains(db, list, to)
}
