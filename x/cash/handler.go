package cash

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/x/access"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r revenue.Registry, auth access.Authorizer, control Controller) {
	r.Handle(SendMsg{}.Path(), SendHandler{control: control})
	r.Handle(IssueMsg{}.Path(), IssueHandler{auth: auth, control: control})
}

// SendHandler will handle sending coins
type SendHandler struct {
	control Controller
}

var _ revenue.Handler = SendHandler{}

// Deliver moves the tokens from the caller to the receiver if
// all preconditions are met
func (h SendHandler) Deliver(ctx revenue.Context, db revenue.KVStore, msg revenue.Msg) (*revenue.DeliverResult, error) {
	m, ok := msg.(*SendMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unexpected message %T", msg)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	caller, ok := revenue.GetCaller(ctx)
	if !ok {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no caller")
	}
	if err := h.control.MoveCoins(ctx, db, caller, m.Destination, m.Amount); err != nil {
		return nil, err
	}
	return &revenue.DeliverResult{}, nil
}

// IssueHandler creates new funds for callers holding the issue permission.
type IssueHandler struct {
	auth    access.Authorizer
	control Controller
}

var _ revenue.Handler = IssueHandler{}

// Deliver issues the funds if the caller is authorized
func (h IssueHandler) Deliver(ctx revenue.Context, db revenue.KVStore, msg revenue.Msg) (*revenue.DeliverResult, error) {
	m, ok := msg.(*IssueMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unexpected message %T", msg)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if _, err := access.Require(ctx, db, h.auth, IssuerAddress, "issue"); err != nil {
		return nil, err
	}
	if err := h.control.IssueCoins(ctx, db, m.Destination, m.Amount); err != nil {
		return nil, err
	}
	return &revenue.DeliverResult{}, nil
}
