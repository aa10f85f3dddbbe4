package aggregator

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/orm"
)

var _ revenue.Msg = (*WithdrawMsg)(nil)

// WithdrawMsg withdraws the entitlement of the caller from all listed
// instances.
type WithdrawMsg struct {
	DistributorIDs [][]byte `json:"distributor_ids"`
}

// Path returns the routing path for this message
func (WithdrawMsg) Path() string {
	return "aggregator/withdraw"
}

// Validate makes sure that this is sensible
func (m *WithdrawMsg) Validate() error {
	if len(m.DistributorIDs) == 0 {
		return errors.Wrap(errors.ErrInvalidInput, "no distributors")
	}
	for i, id := range m.DistributorIDs {
		if err := orm.ValidateSequence(id); err != nil {
			return errors.Wrapf(err, "distributor %d", i)
		}
	}
	return nil
}
