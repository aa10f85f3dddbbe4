package snapshot

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/coin"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/orm"
	"github.com/retok/revenue/x/access"
)

// ShareScale is the denominator of a share. A holder of the whole supply
// has a share of ShareScale.
const ShareScale = 1000000

// TransferRule decides whether a balance may be moved. It is consulted for
// restricted tokens only, with the token address as the list.
type TransferRule interface {
	CanMint(db revenue.ReadOnlyKVStore, list, to revenue.Address) (bool, error)
	CanTransfer(db revenue.ReadOnlyKVStore, list, from, to revenue.Address) (bool, error)
}

// Controller is the balance ledger. It keeps the balance history of all
// tokens.
type Controller struct {
	auth     access.Authorizer
	rule     TransferRule
	tokens   orm.ModelBucket
	balances orm.ModelBucket
	supplies orm.ModelBucket
}

// NewController returns a ledger that authorizes privileged operations
// with auth. The rule may be nil when no token is restricted.
func NewController(auth access.Authorizer, rule TransferRule) *Controller {
	return &Controller{
		auth:     auth,
		rule:     rule,
		tokens:   orm.NewModelBucket("snap_token"),
		balances: orm.NewModelBucket("snap_balance"),
		supplies: orm.NewModelBucket("snap_supply"),
	}
}

// Create registers a new token and returns its id. The token starts at
// checkpoint 0 with no supply. The caller is not checked.
func (c *Controller) Create(ctx revenue.Context, db revenue.KVStore, t *Token) ([]byte, error) {
	t.Checkpoint = 0
	id, err := c.tokens.Put(db, nil, t)
	if err != nil {
		return nil, errors.Wrap(err, "save token")
	}
	revenue.GetLogger(ctx).Debug("token created", "id", id, "name", t.Name)
	return id, nil
}

// Token returns the token with the given id.
func (c *Controller) Token(db revenue.ReadOnlyKVStore, id []byte) (*Token, error) {
	var t Token
	if err := c.tokens.One(db, id, &t); err != nil {
		return nil, errors.Wrapf(err, "token %X", id)
	}
	return &t, nil
}

// Mint creates amount of new balance for the holder. The caller must be
// authorized for the "mint" operation of the token.
func (c *Controller) Mint(ctx revenue.Context, db revenue.KVStore, id []byte, holder revenue.Address, amount int64, code uint32) error {
	t, err := c.Token(db, id)
	if err != nil {
		return err
	}
	addr := TokenAddress(id)
	if _, err := access.Require(ctx, db, c.auth, addr, "mint"); err != nil {
		return err
	}
	if amount <= 0 {
		return errors.Wrapf(errors.ErrInvalidAmount, "non-positive mint %d", amount)
	}
	if err := holder.Validate(); err != nil {
		return errors.Wrap(err, "holder")
	}
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	if !hasCode(conf.MintCodes, code) {
		return errors.Wrapf(errors.ErrInvalidInput, "the code does not exist: %d", code)
	}
	if t.Restricted && c.rule != nil {
		ok, err := c.rule.CanMint(db, addr, holder)
		if err != nil {
			return errors.Wrap(err, "transfer rule")
		}
		if !ok {
			return errors.Wrapf(errors.ErrRestricted, "%s is not in whitelist", holder)
		}
	}

	if err := c.change(db, id, t.Checkpoint+1, holder, amount, coin.Add); err != nil {
		return err
	}
	if err := c.changeSupply(db, id, t.Checkpoint+1, amount, coin.Add); err != nil {
		return err
	}
	revenue.GetLogger(ctx).Debug("mint", "token", addr, "holder", holder, "amount", amount, "code", code)
	revenue.Emit(ctx, MintEvent{Token: addr, Holder: holder, Amount: amount, Code: code})
	return nil
}

// Burn destroys amount of the holder balance. The caller must be
// authorized for the "burn" operation of the token.
func (c *Controller) Burn(ctx revenue.Context, db revenue.KVStore, id []byte, holder revenue.Address, amount int64, code uint32) error {
	t, err := c.Token(db, id)
	if err != nil {
		return err
	}
	addr := TokenAddress(id)
	if _, err := access.Require(ctx, db, c.auth, addr, "burn"); err != nil {
		return err
	}
	if amount <= 0 {
		return errors.Wrapf(errors.ErrInvalidAmount, "non-positive burn %d", amount)
	}
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	if !hasCode(conf.BurnCodes, code) {
		return errors.Wrapf(errors.ErrInvalidInput, "the code does not exist: %d", code)
	}

	if err := c.change(db, id, t.Checkpoint+1, holder, amount, coin.Sub); err != nil {
		return errors.Wrap(err, "burn amount exceeds balance")
	}
	if err := c.changeSupply(db, id, t.Checkpoint+1, amount, coin.Sub); err != nil {
		return err
	}
	revenue.GetLogger(ctx).Debug("burn", "token", addr, "holder", holder, "amount", amount, "code", code)
	revenue.Emit(ctx, BurnEvent{Token: addr, Holder: holder, Amount: amount, Code: code})
	return nil
}

// Transfer moves amount from the caller to the recipient.
func (c *Controller) Transfer(ctx revenue.Context, db revenue.KVStore, id []byte, to revenue.Address, amount int64) error {
	t, err := c.Token(db, id)
	if err != nil {
		return err
	}
	from, ok := revenue.GetCaller(ctx)
	if !ok {
		return errors.Wrap(errors.ErrUnauthorized, "no caller")
	}
	if amount <= 0 {
		return errors.Wrapf(errors.ErrInvalidAmount, "non-positive transfer %d", amount)
	}
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	addr := TokenAddress(id)
	if t.Restricted && c.rule != nil {
		ok, err := c.rule.CanTransfer(db, addr, from, to)
		if err != nil {
			return errors.Wrap(err, "transfer rule")
		}
		if !ok {
			return errors.Wrapf(errors.ErrRestricted, "from %s to %s", from, to)
		}
	}

	if err := c.change(db, id, t.Checkpoint+1, from, amount, coin.Sub); err != nil {
		return errors.Wrap(err, "sender")
	}
	if err := c.change(db, id, t.Checkpoint+1, to, amount, coin.Add); err != nil {
		return errors.Wrap(err, "recipient")
	}
	revenue.Emit(ctx, TransferEvent{Token: addr, From: from, To: to, Amount: amount})
	return nil
}

// Snapshot creates a new checkpoint and returns its id. The caller must be
// authorized for the "snapshot" operation of the token.
func (c *Controller) Snapshot(ctx revenue.Context, db revenue.KVStore, id []byte) (int64, error) {
	t, err := c.Token(db, id)
	if err != nil {
		return 0, err
	}
	addr := TokenAddress(id)
	if _, err := access.Require(ctx, db, c.auth, addr, "snapshot"); err != nil {
		return 0, errors.Wrap(err, "sender is not allowed to take snapshots")
	}
	t.Checkpoint++
	if _, err := c.tokens.Put(db, id, t); err != nil {
		return 0, errors.Wrap(err, "save token")
	}
	revenue.GetLogger(ctx).Debug("snapshot", "token", addr, "checkpoint", t.Checkpoint)
	revenue.Emit(ctx, SnapshotEvent{Token: addr, Checkpoint: t.Checkpoint})
	return t.Checkpoint, nil
}

// CurrentCheckpoint returns the id of the latest checkpoint.
func (c *Controller) CurrentCheckpoint(db revenue.ReadOnlyKVStore, id []byte) (int64, error) {
	t, err := c.Token(db, id)
	if err != nil {
		return 0, err
	}
	return t.Checkpoint, nil
}

// BalanceOf returns the current balance of the holder.
func (c *Controller) BalanceOf(db revenue.ReadOnlyKVStore, id []byte, holder revenue.Address) (int64, error) {
	h, err := c.history(db, c.balances, holderKey(id, holder))
	if err != nil {
		return 0, err
	}
	return h.Latest(), nil
}

// TotalSupply returns the current total supply.
func (c *Controller) TotalSupply(db revenue.ReadOnlyKVStore, id []byte) (int64, error) {
	h, err := c.history(db, c.supplies, id)
	if err != nil {
		return 0, err
	}
	return h.Latest(), nil
}

// BalanceOfAt returns the balance of the holder at the given checkpoint.
func (c *Controller) BalanceOfAt(db revenue.ReadOnlyKVStore, id []byte, holder revenue.Address, cp int64) (int64, error) {
	if err := c.requireCheckpoint(db, id, cp); err != nil {
		return 0, err
	}
	h, err := c.history(db, c.balances, holderKey(id, holder))
	if err != nil {
		return 0, err
	}
	return h.At(cp), nil
}

// TotalSupplyAt returns the total supply at the given checkpoint.
func (c *Controller) TotalSupplyAt(db revenue.ReadOnlyKVStore, id []byte, cp int64) (int64, error) {
	if err := c.requireCheckpoint(db, id, cp); err != nil {
		return 0, err
	}
	h, err := c.history(db, c.supplies, id)
	if err != nil {
		return 0, err
	}
	return h.At(cp), nil
}

// ShareOfAt returns the part of the total supply held by the holder at the
// given checkpoint, in millionths, rounded down. It fails with
// ErrInvalidState when there was no supply at that checkpoint.
func (c *Controller) ShareOfAt(db revenue.ReadOnlyKVStore, id []byte, holder revenue.Address, cp int64) (int64, error) {
	supply, err := c.TotalSupplyAt(db, id, cp)
	if err != nil {
		return 0, err
	}
	if supply == 0 {
		return 0, errors.Wrapf(errors.ErrInvalidState, "no supply at checkpoint %d", cp)
	}
	balance, err := c.BalanceOfAt(db, id, holder, cp)
	if err != nil {
		return 0, err
	}
	return coin.MulDiv(balance, ShareScale, supply)
}

func (c *Controller) requireCheckpoint(db revenue.ReadOnlyKVStore, id []byte, cp int64) error {
	current, err := c.CurrentCheckpoint(db, id)
	if err != nil {
		return err
	}
	if cp < 0 {
		return errors.Wrapf(errors.ErrInvalidInput, "negative checkpoint %d", cp)
	}
	if cp > current {
		return errors.Wrapf(errors.ErrNotYetSnapshotted, "checkpoint %d, current is %d", cp, current)
	}
	return nil
}

func (c *Controller) history(db revenue.ReadOnlyKVStore, b orm.ModelBucket, key []byte) (*History, error) {
	var h History
	switch err := b.One(db, key, &h); {
	case err == nil, errors.ErrNotFound.Is(err):
		return &h, nil
	default:
		return nil, errors.Wrap(err, "load history")
	}
}

// change applies op to the holder balance and records the result under
// the given checkpoint.
func (c *Controller) change(db revenue.KVStore, id []byte, cp int64, holder revenue.Address, amount int64, op func(a, b int64) (int64, error)) error {
	key := holderKey(id, holder)
	h, err := c.history(db, c.balances, key)
	if err != nil {
		return err
	}
	val, err := op(h.Latest(), amount)
	if err != nil {
		return err
	}
	h.Record(cp, val)
	if _, err := c.balances.Put(db, key, h); err != nil {
		return errors.Wrap(err, "save balance")
	}
	return nil
}

func (c *Controller) changeSupply(db revenue.KVStore, id []byte, cp int64, amount int64, op func(a, b int64) (int64, error)) error {
	h, err := c.history(db, c.supplies, id)
	if err != nil {
		return err
	}
	val, err := op(h.Latest(), amount)
	if err != nil {
		return errors.Wrap(err, "total supply")
	}
	h.Record(cp, val)
	if _, err := c.supplies.Put(db, id, h); err != nil {
		return errors.Wrap(err, "save supply")
	}
	return nil
}
