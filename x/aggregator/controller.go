package aggregator

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/coin"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/x/access"
)

// Address is the identity the aggregator uses when calling instances. It
// is also the target the "withdraw" permission is assigned to.
var Address = revenue.NewCondition("aggr", "batch", []byte("withdrawals")).Address()

// Withdrawer settles an entitlement on behalf of a holder.
type Withdrawer interface {
	WithdrawTo(ctx revenue.Context, db revenue.KVStore, id []byte, holder revenue.Address) (int64, error)
}

// Outcome is the result of a single instance withdrawal.
type Outcome struct {
	DistributorID []byte `json:"distributor_id"`
	// Paid is the amount of the payment asset received.
	Paid int64 `json:"paid"`
	// Skipped is set when there was nothing to withdraw.
	Skipped bool `json:"skipped,omitempty"`
}

// Controller is the withdrawal aggregator.
type Controller struct {
	auth   access.Authorizer
	engine Withdrawer
}

// NewController returns an aggregator that withdraws from the instances
// of engine.
func NewController(auth access.Authorizer, engine Withdrawer) *Controller {
	return &Controller{auth: auth, engine: engine}
}

// Withdraw settles the entitlement of the caller in every listed instance,
// in order. The caller must be authorized for the "withdraw" operation of
// the Address.
func (c *Controller) Withdraw(ctx revenue.Context, db revenue.KVStore, ids [][]byte) ([]Outcome, error) {
	caller, err := access.Require(ctx, db, c.auth, Address, "withdraw")
	if err != nil {
		return nil, err
	}

	var total int64
	outcomes := make([]Outcome, 0, len(ids))
	for _, id := range ids {
		var paid int64
		err := revenue.Atomic(ctx, db, func(ctx revenue.Context, db revenue.CacheableKVStore) error {
			var err error
			paid, err = c.engine.WithdrawTo(revenue.WithCaller(ctx, Address), db, id, caller)
			return err
		})
		switch {
		case err == nil:
		case errors.ErrNoBalance.Is(err):
			outcomes = append(outcomes, Outcome{DistributorID: id, Skipped: true})
			continue
		default:
			return nil, errors.Wrapf(err, "distributor %X", id)
		}
		if total, err = coin.Add(total, paid); err != nil {
			return nil, errors.Wrap(err, "total")
		}
		outcomes = append(outcomes, Outcome{DistributorID: id, Paid: paid})
	}

	revenue.GetLogger(ctx).Debug("batch withdrawal", "holder", caller, "instances", len(ids), "paid", total)
	revenue.Emit(ctx, BatchWithdrawal{Holder: caller, Instances: int64(len(ids)), Paid: total})
	return outcomes, nil
}
