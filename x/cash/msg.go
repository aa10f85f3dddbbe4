package cash

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
)

var _ revenue.Msg = (*SendMsg)(nil)

// SendMsg moves funds from the caller account to the destination.
type SendMsg struct {
	Destination revenue.Address `json:"destination"`
	Amount      int64           `json:"amount"`
}

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return "cash/send"
}

// Validate makes sure that this is sensible
func (m *SendMsg) Validate() error {
	if m.Amount <= 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "non-positive SendMsg")
	}
	return errors.Wrap(m.Destination.Validate(), "destination")
}

var _ revenue.Msg = (*IssueMsg)(nil)

// IssueMsg creates new funds on the destination account. It is used to
// fund distributor instances.
type IssueMsg struct {
	Destination revenue.Address `json:"destination"`
	Amount      int64           `json:"amount"`
}

// Path returns the routing path for this message
func (IssueMsg) Path() string {
	return "cash/issue"
}

// Validate makes sure that this is sensible
func (m *IssueMsg) Validate() error {
	if m.Amount <= 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "non-positive IssueMsg")
	}
	return errors.Wrap(m.Destination.Validate(), "destination")
}
