package distributor

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/x/access"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r revenue.Registry, auth access.Authorizer, control *Controller) {
	r.Handle(CreateMsg{}.Path(), createHandler{auth: auth, control: control})
	h := engineHandler{control: control}
	r.Handle(AddIncomeMsg{}.Path(), h)
	r.Handle(ComputeMsg{}.Path(), h)
	r.Handle(InitIncomeMsg{}.Path(), h)
	r.Handle(WithdrawMsg{}.Path(), h)
	r.Handle(WithdrawToMsg{}.Path(), h)
	r.Handle(TransferToOwnerMsg{}.Path(), h)
}

// createHandler registers new instances. The caller must be authorized for
// the "createDistributor" operation of the FactoryAddress.
type createHandler struct {
	auth    access.Authorizer
	control *Controller
}

var _ revenue.Handler = createHandler{}

func (h createHandler) Deliver(ctx revenue.Context, db revenue.KVStore, msg revenue.Msg) (*revenue.DeliverResult, error) {
	m, ok := msg.(*CreateMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unexpected message %T", msg)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if _, err := access.Require(ctx, db, h.auth, FactoryAddress, "createDistributor"); err != nil {
		return nil, err
	}
	d := Distributor{TokenID: m.TokenID, Predecessor: m.Predecessor}
	id, err := h.control.Create(ctx, db, &d, m.History)
	if err != nil {
		return nil, err
	}
	return &revenue.DeliverResult{Data: id}, nil
}

// engineHandler dispatches instance operations to the controller, which
// does the authorization.
type engineHandler struct {
	control *Controller
}

var _ revenue.Handler = engineHandler{}

func (h engineHandler) Deliver(ctx revenue.Context, db revenue.KVStore, msg revenue.Msg) (*revenue.DeliverResult, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	var (
		res revenue.DeliverResult
		err error
	)
	switch m := msg.(type) {
	case *AddIncomeMsg:
		res.Data, err = h.control.AddIncome(ctx, db, m.DistributorID, m.Amount)
	case *ComputeMsg:
		var holder *Holder
		if holder, err = h.control.ComputeCumulativeShare(ctx, db, m.DistributorID, m.Holder); err == nil {
			res.Data = holder.Entitlement
		}
	case *InitIncomeMsg:
		err = h.control.InitIncome(ctx, db, m.DistributorID, m.Holder, m.Baseline)
	case *WithdrawMsg:
		res.Data, err = h.control.Withdraw(ctx, db, m.DistributorID)
	case *WithdrawToMsg:
		res.Data, err = h.control.WithdrawTo(ctx, db, m.DistributorID, m.Holder)
	case *TransferToOwnerMsg:
		err = h.control.TransferToOwner(ctx, db, m.DistributorID, m.Amount)
	default:
		err = errors.Wrapf(errors.ErrInvalidInput, "unexpected message %T", msg)
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}
