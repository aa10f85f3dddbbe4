package snapshot

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/x/access"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r revenue.Registry, auth access.Authorizer, control *Controller) {
	r.Handle(CreateTokenMsg{}.Path(), createHandler{auth: auth, control: control})
	h := ledgerHandler{control: control}
	r.Handle(MintMsg{}.Path(), h)
	r.Handle(BurnMsg{}.Path(), h)
	r.Handle(TransferMsg{}.Path(), h)
	r.Handle(SnapshotMsg{}.Path(), h)
}

// createHandler registers new tokens. The caller must be authorized for
// the "createToken" operation of the FactoryAddress.
type createHandler struct {
	auth    access.Authorizer
	control *Controller
}

var _ revenue.Handler = createHandler{}

func (h createHandler) Deliver(ctx revenue.Context, db revenue.KVStore, msg revenue.Msg) (*revenue.DeliverResult, error) {
	m, ok := msg.(*CreateTokenMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unexpected message %T", msg)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if _, err := access.Require(ctx, db, h.auth, FactoryAddress, "createToken"); err != nil {
		return nil, err
	}
	id, err := h.control.Create(ctx, db, &Token{Name: m.Name, Restricted: m.Restricted})
	if err != nil {
		return nil, err
	}
	return &revenue.DeliverResult{Data: id}, nil
}

// ledgerHandler dispatches balance operations to the controller, which
// does the authorization.
type ledgerHandler struct {
	control *Controller
}

var _ revenue.Handler = ledgerHandler{}

func (h ledgerHandler) Deliver(ctx revenue.Context, db revenue.KVStore, msg revenue.Msg) (*revenue.DeliverResult, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	var (
		res revenue.DeliverResult
		err error
	)
	switch m := msg.(type) {
	case *MintMsg:
		err = h.control.Mint(ctx, db, m.TokenID, m.Holder, m.Amount, m.Code)
	case *BurnMsg:
		err = h.control.Burn(ctx, db, m.TokenID, m.Holder, m.Amount, m.Code)
	case *TransferMsg:
		err = h.control.Transfer(ctx, db, m.TokenID, m.Recipient, m.Amount)
	case *SnapshotMsg:
		res.Data, err = h.control.Snapshot(ctx, db, m.TokenID)
	default:
		err = errors.Wrapf(errors.ErrInvalidInput, "unexpected message %T", msg)
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}
