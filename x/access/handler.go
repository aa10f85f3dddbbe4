package access

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r revenue.Registry, control Controller) {
	h := roleHandler{control: control}
	r.Handle(GrantRoleMsg{}.Path(), h)
	r.Handle(RevokeRoleMsg{}.Path(), h)
	r.Handle(SetTargetFunctionRoleMsg{}.Path(), h)
}

// roleHandler manages roles and function assignments
type roleHandler struct {
	control Controller
}

var _ revenue.Handler = roleHandler{}

// Deliver applies the role change if the caller is an admin
func (h roleHandler) Deliver(ctx revenue.Context, db revenue.KVStore, msg revenue.Msg) (*revenue.DeliverResult, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	var err error
	switch m := msg.(type) {
	case *GrantRoleMsg:
		err = h.control.GrantRole(ctx, db, m.Role, m.Account)
	case *RevokeRoleMsg:
		err = h.control.RevokeRole(ctx, db, m.Role, m.Account)
	case *SetTargetFunctionRoleMsg:
		err = h.control.SetTargetFunctionRole(ctx, db, m.Target, m.Operations, m.Role)
	default:
		err = errors.Wrapf(errors.ErrInvalidInput, "unexpected message %T", msg)
	}
	if err != nil {
		return nil, err
	}
	return &revenue.DeliverResult{}, nil
}
