package whitelist

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/x/access"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r revenue.Registry, auth access.Authorizer, control *Controller) {
	h := listHandler{auth: auth, control: control}
	r.Handle(AddMsg{}.Path(), h)
	r.Handle(RemoveMsg{}.Path(), h)
}

// listHandler changes list membership. The caller must be authorized for
// the "whitelist" operation of the list.
type listHandler struct {
	auth    access.Authorizer
	control *Controller
}

var _ revenue.Handler = listHandler{}

func (h listHandler) Deliver(ctx revenue.Context, db revenue.KVStore, msg revenue.Msg) (*revenue.DeliverResult, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	switch m := msg.(type) {
	case *AddMsg:
		if _, err := access.Require(ctx, db, h.auth, m.List, "whitelist"); err != nil {
			return nil, err
		}
		if err := h.control.Add(ctx, db, m.List, m.Accounts); err != nil {
			return nil, err
		}
	case *RemoveMsg:
		if _, err := access.Require(ctx, db, h.auth, m.List, "whitelist"); err != nil {
			return nil, err
		}
		if err := h.control.Remove(ctx, db, m.List, m.Accounts); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unexpected message %T", msg)
	}
	return &revenue.DeliverResult{}, nil
}
