package distributor

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/coin"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/orm"
	"github.com/retok/revenue/x/access"
	"github.com/retok/revenue/x/snapshot"
)

// Ledger is the balance ledger functionality used by the engine.
type Ledger interface {
	Snapshot(ctx revenue.Context, db revenue.KVStore, tokenID []byte) (int64, error)
	CurrentCheckpoint(db revenue.ReadOnlyKVStore, tokenID []byte) (int64, error)
	TotalSupplyAt(db revenue.ReadOnlyKVStore, tokenID []byte, cp int64) (int64, error)
	ShareOfAt(db revenue.ReadOnlyKVStore, tokenID []byte, holder revenue.Address, cp int64) (int64, error)
}

var _ Ledger = (*snapshot.Controller)(nil)

// Payments is the payment asset functionality used by the engine.
type Payments interface {
	Balance(db revenue.ReadOnlyKVStore, addr revenue.Address) (int64, error)
	MoveCoins(ctx revenue.Context, db revenue.KVStore, src, dest revenue.Address, amount int64) error
}

// Controller is the income accrual engine. A single controller serves all
// instances.
type Controller struct {
	auth         access.Authorizer
	ledger       Ledger
	payments     Payments
	predecessors PredecessorReader
	instances    orm.ModelBucket
	incomes      orm.ModelBucket
	holders      orm.ModelBucket
}

// NewController returns an engine that authorizes privileged operations with
// auth, anchors incomes in ledger and pays out with payments.
func NewController(auth access.Authorizer, ledger Ledger, payments Payments) *Controller {
	c := &Controller{
		auth:      auth,
		ledger:    ledger,
		payments:  payments,
		instances: orm.NewModelBucket("dist_instance"),
		incomes:   orm.NewModelBucket("dist_income"),
		holders:   orm.NewModelBucket("dist_holder"),
	}
	c.predecessors = c
	return c
}

// Create registers a new instance and returns its id. History is a list of
// incomes that were received before the instance existed. They must be
// anchored to existing checkpoints of the token, in order. The caller is
// not checked.
func (c *Controller) Create(ctx revenue.Context, db revenue.KVStore, d *Distributor, history []Income) ([]byte, error) {
	d.IncomeCount = 0
	if err := d.Validate(); err != nil {
		return nil, err
	}
	current, err := c.ledger.CurrentCheckpoint(db, d.TokenID)
	if err != nil {
		return nil, errors.Wrap(err, "token")
	}
	if len(d.Predecessor) != 0 {
		if err := c.instances.Has(db, d.Predecessor); err != nil {
			return nil, errors.Wrapf(err, "predecessor %X", d.Predecessor)
		}
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	var last int64
	for i, inc := range history {
		if err := validAmount(conf, inc.Amount); err != nil {
			return nil, errors.Wrapf(err, "income %d", i+1)
		}
		if inc.Checkpoint <= last || inc.Checkpoint < 1 || inc.Checkpoint > current {
			return nil, errors.Wrapf(errors.ErrInvalidInput, "income %d: checkpoint %d", i+1, inc.Checkpoint)
		}
		if err := c.requireSupply(db, d.TokenID, inc.Checkpoint); err != nil {
			return nil, errors.Wrapf(err, "income %d", i+1)
		}
		last = inc.Checkpoint
	}

	id, err := c.instances.Put(db, nil, d)
	if err != nil {
		return nil, errors.Wrap(err, "save instance")
	}
	for _, inc := range history {
		if _, err := c.appendIncome(db, id, d, inc); err != nil {
			return nil, err
		}
	}
	revenue.GetLogger(ctx).Debug("distributor created",
		"id", id, "token", d.TokenID, "predecessor", d.Predecessor, "history", len(history))
	return id, nil
}

// Instance returns the instance with the given id.
func (c *Controller) Instance(db revenue.ReadOnlyKVStore, id []byte) (*Distributor, error) {
	var d Distributor
	if err := c.instances.One(db, id, &d); err != nil {
		return nil, errors.Wrapf(err, "distributor %X", id)
	}
	return &d, nil
}

// IncomeCount returns the number of registered incomes.
func (c *Controller) IncomeCount(db revenue.ReadOnlyKVStore, id []byte) (int64, error) {
	d, err := c.Instance(db, id)
	if err != nil {
		return 0, err
	}
	return d.IncomeCount, nil
}

// Income returns the income with the given 1-based index.
func (c *Controller) Income(db revenue.ReadOnlyKVStore, id []byte, index int64) (*Income, error) {
	d, err := c.Instance(db, id)
	if err != nil {
		return nil, err
	}
	return c.income(db, id, d, index)
}

func (c *Controller) income(db revenue.ReadOnlyKVStore, id []byte, d *Distributor, index int64) (*Income, error) {
	if index < 1 || index > d.IncomeCount {
		return nil, errors.Wrapf(errors.ErrIndexOutOfRange, "index %d, count %d", index, d.IncomeCount)
	}
	var inc Income
	if err := c.incomes.One(db, incomeKey(id, index), &inc); err != nil {
		return nil, errors.Wrapf(err, "income %d", index)
	}
	return &inc, nil
}

// Holder returns the stored accrual state of a holder. It fails with
// ErrNotFound if the holder was never processed by the instance.
func (c *Controller) Holder(db revenue.ReadOnlyKVStore, id []byte, holder revenue.Address) (*Holder, error) {
	var h Holder
	if err := c.holders.One(db, holderKey(id, holder), &h); err != nil {
		return nil, errors.Wrapf(err, "holder %s", holder)
	}
	return &h, nil
}

// AddIncome registers an income and returns its index. A checkpoint of the
// token is taken on behalf of the instance, so the instance must be
// authorized to snapshot the token. The caller must be authorized for the
// "addIncome" operation of the instance.
func (c *Controller) AddIncome(ctx revenue.Context, db revenue.KVStore, id []byte, amount int64) (int64, error) {
	d, err := c.Instance(db, id)
	if err != nil {
		return 0, err
	}
	addr := InstanceAddress(id)
	if _, err := access.Require(ctx, db, c.auth, addr, "addIncome"); err != nil {
		return 0, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return 0, err
	}
	if err := validAmount(conf, amount); err != nil {
		return 0, err
	}

	cp, err := c.ledger.Snapshot(revenue.WithCaller(ctx, addr), db, d.TokenID)
	if err != nil {
		return 0, errors.Wrap(err, "snapshot")
	}
	if err := c.requireSupply(db, d.TokenID, cp); err != nil {
		return 0, err
	}
	index, err := c.appendIncome(db, id, d, Income{Amount: amount, Checkpoint: cp})
	if err != nil {
		return 0, err
	}

	mIncomes.Inc()
	mIncomeAmount.Add(float64(amount))
	revenue.GetLogger(ctx).Debug("income added", "instance", addr, "amount", amount, "index", index, "checkpoint", cp)
	revenue.Emit(ctx, IncomeAdded{Instance: addr, Amount: amount, Index: index})
	return index, nil
}

func validAmount(conf Configuration, amount int64) error {
	if amount <= 0 {
		return errors.Wrapf(errors.ErrInvalidAmount, "non-positive income %d", amount)
	}
	if amount > conf.MaxIncome {
		return errors.Wrapf(errors.ErrInvalidAmount, "income %d exceeds %d", amount, conf.MaxIncome)
	}
	return nil
}

func (c *Controller) requireSupply(db revenue.ReadOnlyKVStore, tokenID []byte, cp int64) error {
	supply, err := c.ledger.TotalSupplyAt(db, tokenID, cp)
	if err != nil {
		return errors.Wrap(err, "total supply")
	}
	if supply == 0 {
		return errors.Wrapf(errors.ErrInvalidState, "no supply at checkpoint %d", cp)
	}
	return nil
}

// appendIncome stores the income under the next index and saves the
// updated instance.
func (c *Controller) appendIncome(db revenue.KVStore, id []byte, d *Distributor, inc Income) (int64, error) {
	index := d.IncomeCount + 1
	if _, err := c.incomes.Put(db, incomeKey(id, index), &inc); err != nil {
		return 0, errors.Wrap(err, "save income")
	}
	d.IncomeCount = index
	if _, err := c.instances.Put(db, id, d); err != nil {
		return 0, errors.Wrap(err, "save instance")
	}
	return index, nil
}

// ComputeCumulativeShare catches the holder up with all incomes registered
// since the last catch-up and returns the updated state. It fails with
// ErrNotInitialized when there is nothing to accrue from, that is the
// instance has neither incomes nor a predecessor.
func (c *Controller) ComputeCumulativeShare(ctx revenue.Context, db revenue.KVStore, id []byte, holder revenue.Address) (*Holder, error) {
	d, err := c.Instance(db, id)
	if err != nil {
		return nil, err
	}
	if err := holder.Validate(); err != nil {
		return nil, errors.Wrap(err, "holder")
	}
	return c.catchUp(ctx, db, id, d, holder)
}

func (c *Controller) catchUp(ctx revenue.Context, db revenue.KVStore, id []byte, d *Distributor, holder revenue.Address) (*Holder, error) {
	h, err := c.refreshed(db, id, d, holder)
	if err != nil {
		return nil, err
	}
	if _, err := c.holders.Put(db, holderKey(id, holder), h); err != nil {
		return nil, errors.Wrap(err, "save holder")
	}
	revenue.GetLogger(ctx).Debug("holder caught up",
		"instance", InstanceAddress(id), "holder", holder, "cursor", h.LastProcessed, "entitlement", h.Entitlement)
	return h, nil
}

// refreshed returns the state the holder has after a catch-up, without
// storing it.
func (c *Controller) refreshed(db revenue.ReadOnlyKVStore, id []byte, d *Distributor, holder revenue.Address) (*Holder, error) {
	if d.IncomeCount == 0 && len(d.Predecessor) == 0 {
		return nil, errors.Wrap(errors.ErrNotInitialized, "no income")
	}

	var h Holder
	switch err := c.holders.One(db, holderKey(id, holder), &h); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
	default:
		return nil, errors.Wrap(err, "load holder")
	}
	if !h.Initialized {
		seed, err := c.seed(db, d, holder)
		if err != nil {
			return nil, err
		}
		h = Holder{Entitlement: seed, Initialized: true}
	}
	if h.LastProcessed >= d.IncomeCount {
		return &h, nil
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	processed := d.IncomeCount - h.LastProcessed
	for i := h.LastProcessed + 1; i <= d.IncomeCount; i++ {
		inc, err := c.income(db, id, d, i)
		if err != nil {
			return nil, err
		}
		share, err := c.ledger.ShareOfAt(db, d.TokenID, holder, inc.Checkpoint)
		if err != nil {
			return nil, errors.Wrapf(err, "share at income %d", i)
		}
		part, err := accrual(conf, share, inc.Amount)
		if err != nil {
			return nil, errors.Wrapf(err, "income %d", i)
		}
		if h.Entitlement, err = coin.Add(h.Entitlement, part); err != nil {
			return nil, errors.Wrap(err, "entitlement")
		}
	}
	h.LastProcessed = d.IncomeCount
	mCatchUpIncomes.Observe(float64(processed))
	return &h, nil
}

// accrual returns the part of an income owed for a share, in income units
// and rounded down.
func accrual(conf Configuration, share, amount int64) (int64, error) {
	scaled, err := coin.Mul(amount, conf.IncomeScale)
	if err != nil {
		return 0, err
	}
	return coin.MulDiv(share, scaled, snapshot.ShareScale)
}

// CumulativeShareOf returns the entitlement of the holder. By default the
// stored value is returned and reading a holder that was never caught up
// fails with ErrStaleState. When the configuration enables
// AutoRefreshReads, the value a catch-up would produce is returned instead.
func (c *Controller) CumulativeShareOf(db revenue.ReadOnlyKVStore, id []byte, holder revenue.Address) (int64, error) {
	conf, err := loadConf(db)
	if err != nil {
		return 0, err
	}
	if conf.AutoRefreshReads {
		d, err := c.Instance(db, id)
		if err != nil {
			return 0, err
		}
		h, err := c.refreshed(db, id, d, holder)
		if err != nil {
			return 0, err
		}
		return h.Entitlement, nil
	}

	h, err := c.Holder(db, id, holder)
	switch {
	case err == nil:
		return h.Entitlement, nil
	case errors.ErrNotFound.Is(err):
		return 0, errors.Wrapf(errors.ErrStaleState, "entitlement of %s was never computed", holder)
	default:
		return 0, err
	}
}

// InitIncome seeds the baseline of a holder explicitly. It can be done
// only once per holder, and only before the holder was caught up. The
// caller must be authorized for the "initIncome" operation of the instance.
func (c *Controller) InitIncome(ctx revenue.Context, db revenue.KVStore, id []byte, holder revenue.Address, b Baseline) error {
	d, err := c.Instance(db, id)
	if err != nil {
		return err
	}
	addr := InstanceAddress(id)
	if _, err := access.Require(ctx, db, c.auth, addr, "initIncome"); err != nil {
		return err
	}
	if err := holder.Validate(); err != nil {
		return errors.Wrap(err, "holder")
	}

	var h Holder
	switch err := c.holders.One(db, holderKey(id, holder), &h); {
	case err == nil:
		if h.Initialized {
			return errors.Wrapf(errors.ErrAlreadyInitialized, "holder %s", holder)
		}
	case errors.ErrNotFound.Is(err):
	default:
		return errors.Wrap(err, "load holder")
	}
	if b.Index < 0 || b.Index > d.IncomeCount {
		return errors.Wrapf(errors.ErrIndexOutOfRange, "index %d, count %d", b.Index, d.IncomeCount)
	}

	var seed int64
	if b.FromPredecessor {
		if len(d.Predecessor) == 0 {
			return errors.Wrap(errors.ErrInvalidInput, "instance has no predecessor")
		}
		if seed, err = c.seed(db, d, holder); err != nil {
			return err
		}
	}

	h = Holder{LastProcessed: b.Index, Entitlement: seed, Initialized: true}
	if _, err := c.holders.Put(db, holderKey(id, holder), &h); err != nil {
		return errors.Wrap(err, "save holder")
	}
	revenue.Emit(ctx, HolderInitialized{Instance: addr, Holder: holder, Index: b.Index, Entitlement: seed})
	return nil
}

// Withdraw settles the entitlement of the caller. The caller must be
// authorized for the "withdraw" operation of the instance.
func (c *Controller) Withdraw(ctx revenue.Context, db revenue.KVStore, id []byte) (int64, error) {
	d, err := c.Instance(db, id)
	if err != nil {
		return 0, err
	}
	caller, err := access.Require(ctx, db, c.auth, InstanceAddress(id), "withdraw")
	if err != nil {
		return 0, err
	}
	return c.settle(ctx, db, id, d, caller)
}

// WithdrawTo settles the entitlement of the holder, who does not have to be
// the caller. The caller must be authorized for the "withdrawTo" operation
// of the instance.
func (c *Controller) WithdrawTo(ctx revenue.Context, db revenue.KVStore, id []byte, holder revenue.Address) (int64, error) {
	d, err := c.Instance(db, id)
	if err != nil {
		return 0, err
	}
	if _, err := access.Require(ctx, db, c.auth, InstanceAddress(id), "withdrawTo"); err != nil {
		return 0, err
	}
	if err := holder.Validate(); err != nil {
		return 0, errors.Wrap(err, "holder")
	}
	return c.settle(ctx, db, id, d, holder)
}

// settle catches the holder up and pays the whole entitlement from the
// instance account. It returns the paid amount.
func (c *Controller) settle(ctx revenue.Context, db revenue.KVStore, id []byte, d *Distributor, holder revenue.Address) (int64, error) {
	h, err := c.catchUp(ctx, db, id, d, holder)
	if err != nil {
		return 0, err
	}
	if h.Entitlement == 0 {
		mWithdrawals.WithLabelValues("no_balance").Inc()
		return 0, errors.Wrapf(errors.ErrNoBalance, "holder %s", holder)
	}

	conf, err := loadConf(db)
	if err != nil {
		return 0, err
	}
	payment, err := coin.Mul(h.Entitlement, conf.SettlementScale)
	if err != nil {
		return 0, errors.Wrap(err, "payment")
	}
	addr := InstanceAddress(id)
	funds, err := c.payments.Balance(db, addr)
	if err != nil {
		return 0, errors.Wrap(err, "instance balance")
	}
	if funds < payment {
		mWithdrawals.WithLabelValues("insufficient_funds").Inc()
		return 0, errors.Wrapf(errors.ErrInsufficientFunds, "instance holds %d, owes %d", funds, payment)
	}
	if err := c.payments.MoveCoins(ctx, db, addr, holder, payment); err != nil {
		return 0, errors.Wrap(err, "payment")
	}

	settled := h.Entitlement
	h.Entitlement = 0
	if _, err := c.holders.Put(db, holderKey(id, holder), h); err != nil {
		return 0, errors.Wrap(err, "save holder")
	}

	mWithdrawals.WithLabelValues("ok").Inc()
	mPaid.Add(float64(payment))
	revenue.GetLogger(ctx).Debug("withdrawal", "instance", addr, "holder", holder, "amount", settled, "payment", payment)
	revenue.Emit(ctx, Withdrawal{Instance: addr, Holder: holder, Amount: settled, Payment: payment})
	return payment, nil
}

// TransferToOwner pays amount from the instance account to the caller.
// The caller must be authorized for the "transferToOwner" operation of the
// instance.
func (c *Controller) TransferToOwner(ctx revenue.Context, db revenue.KVStore, id []byte, amount int64) error {
	if _, err := c.Instance(db, id); err != nil {
		return err
	}
	addr := InstanceAddress(id)
	owner, err := access.Require(ctx, db, c.auth, addr, "transferToOwner")
	if err != nil {
		return err
	}
	if amount <= 0 {
		return errors.Wrapf(errors.ErrInvalidAmount, "non-positive sweep %d", amount)
	}
	funds, err := c.payments.Balance(db, addr)
	if err != nil {
		return errors.Wrap(err, "instance balance")
	}
	if funds < amount {
		return errors.Wrapf(errors.ErrInsufficientFunds, "instance holds %d", funds)
	}
	if err := c.payments.MoveCoins(ctx, db, addr, owner, amount); err != nil {
		return err
	}
	revenue.Emit(ctx, Sweep{Instance: addr, Owner: owner, Amount: amount})
	return nil
}
