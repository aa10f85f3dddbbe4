package aggregator

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r revenue.Registry, control *Controller) {
	r.Handle(WithdrawMsg{}.Path(), WithdrawHandler{control: control})
}

// WithdrawHandler runs aggregated withdrawals. The result data is the list
// of outcomes.
type WithdrawHandler struct {
	control *Controller
}

var _ revenue.Handler = WithdrawHandler{}

func (h WithdrawHandler) Deliver(ctx revenue.Context, db revenue.KVStore, msg revenue.Msg) (*revenue.DeliverResult, error) {
	m, ok := msg.(*WithdrawMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unexpected message %T", msg)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	outcomes, err := h.control.Withdraw(ctx, db, m.DistributorIDs)
	if err != nil {
		return nil, err
	}
	return &revenue.DeliverResult{Data: outcomes}, nil
}
