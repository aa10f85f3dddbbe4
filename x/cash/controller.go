package cash

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/coin"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/orm"
)

// Controller is the functionality needed by the distributor to check and
// move payments.
type Controller interface {
	// Balance returns the amount held by the account. An account that was
	// never funded holds zero.
	Balance(db revenue.ReadOnlyKVStore, addr revenue.Address) (int64, error)

	// MoveCoins moves the given amount from src to dest. If src doesn't
	// have sufficient funds, it fails with ErrInsufficientFunds.
	MoveCoins(ctx revenue.Context, db revenue.KVStore, src, dest revenue.Address, amount int64) error

	// IssueCoins adds the given amount to the destination account. Fails
	// if it overflows the wallet.
	IssueCoins(ctx revenue.Context, db revenue.KVStore, dest revenue.Address, amount int64) error
}

// NewController returns a controller storing wallets in the cash bucket.
func NewController() Controller {
	return &controller{wallets: orm.NewModelBucket(BucketName)}
}

type controller struct {
	wallets orm.ModelBucket
}

var _ Controller = (*controller)(nil)

func (c *controller) Balance(db revenue.ReadOnlyKVStore, addr revenue.Address) (int64, error) {
	w, err := c.wallet(db, addr)
	if err != nil {
		return 0, err
	}
	return w.Amount, nil
}

func (c *controller) wallet(db revenue.ReadOnlyKVStore, addr revenue.Address) (*Wallet, error) {
	var w Wallet
	switch err := c.wallets.One(db, addr, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return &Wallet{}, nil
	default:
		return nil, errors.Wrap(err, "load wallet")
	}
}

func (c *controller) MoveCoins(ctx revenue.Context, db revenue.KVStore, src, dest revenue.Address, amount int64) error {
	if amount <= 0 {
		return errors.Wrapf(errors.ErrInvalidAmount, "non-positive payment %d", amount)
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}

	sender, err := c.wallet(db, src)
	if err != nil {
		return err
	}
	if sender.Amount, err = coin.Sub(sender.Amount, amount); err != nil {
		return errors.Wrapf(err, "account %s", src)
	}
	if _, err := c.wallets.Put(db, src, sender); err != nil {
		return errors.Wrap(err, "save sender")
	}

	// Loaded after the sender is saved, so paying oneself is a no-op.
	recipient, err := c.wallet(db, dest)
	if err != nil {
		return err
	}
	if recipient.Amount, err = coin.Add(recipient.Amount, amount); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if _, err := c.wallets.Put(db, dest, recipient); err != nil {
		return errors.Wrap(err, "save recipient")
	}

	revenue.GetLogger(ctx).Debug("payment", "from", src, "to", dest, "amount", amount)
	revenue.Emit(ctx, Payment{From: src, To: dest, Amount: amount})
	return nil
}

func (c *controller) IssueCoins(ctx revenue.Context, db revenue.KVStore, dest revenue.Address, amount int64) error {
	if amount <= 0 {
		return errors.Wrapf(errors.ErrInvalidAmount, "non-positive issue %d", amount)
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	recipient, err := c.wallet(db, dest)
	if err != nil {
		return err
	}
	if recipient.Amount, err = coin.Add(recipient.Amount, amount); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if _, err := c.wallets.Put(db, dest, recipient); err != nil {
		return errors.Wrap(err, "save recipient")
	}
	revenue.Emit(ctx, Issue{To: dest, Amount: amount})
	return nil
}
