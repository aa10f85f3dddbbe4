package whitelist

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
)

var _ revenue.Msg = (*AddMsg)(nil)

// AddMsg puts accounts on a list.
type AddMsg struct {
	List     revenue.Address   `json:"list"`
	Accounts []revenue.Address `json:"accounts"`
}

// Path returns the routing path for this message
func (AddMsg) Path() string {
	return "whitelist/add"
}

// Validate makes sure that this is sensible
func (m *AddMsg) Validate() error {
	return validateAccounts(m.List, m.Accounts)
}

var _ revenue.Msg = (*RemoveMsg)(nil)

// RemoveMsg takes accounts off a list.
type RemoveMsg struct {
	List     revenue.Address   `json:"list"`
	Accounts []revenue.Address `json:"accounts"`
}

// Path returns the routing path for this message
func (RemoveMsg) Path() string {
	return "whitelist/remove"
}

// Validate makes sure that this is sensible
func (m *RemoveMsg) Validate() error {
	return validateAccounts(m.List, m.Accounts)
}

func validateAccounts(list revenue.Address, accounts []revenue.Address) error {
	if err := list.Validate(); err != nil {
		return errors.Wrap(err, "list")
	}
	if len(accounts) == 0 {
		return errors.Wrap(errors.ErrInvalidInput, "no accounts")
	}
	for i, a := range accounts {
		if err := a.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
