package access

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
)

var _ revenue.Msg = (*GrantRoleMsg)(nil)

// GrantRoleMsg gives an account a role.
type GrantRoleMsg struct {
	Role    Role            `json:"role"`
	Account revenue.Address `json:"account"`
}

// Path returns the routing path for this message
func (GrantRoleMsg) Path() string {
	return "access/grant_role"
}

// Validate makes sure that this is sensible
func (m *GrantRoleMsg) Validate() error {
	if m.Role == RolePublic {
		return errors.Wrap(errors.ErrInvalidInput, "public role cannot be granted")
	}
	return errors.Wrap(m.Account.Validate(), "account")
}

var _ revenue.Msg = (*RevokeRoleMsg)(nil)

// RevokeRoleMsg takes a role away from an account.
type RevokeRoleMsg struct {
	Role    Role            `json:"role"`
	Account revenue.Address `json:"account"`
}

// Path returns the routing path for this message
func (RevokeRoleMsg) Path() string {
	return "access/revoke_role"
}

// Validate makes sure that this is sensible
func (m *RevokeRoleMsg) Validate() error {
	if m.Role == RolePublic {
		return errors.Wrap(errors.ErrInvalidInput, "public role cannot be revoked")
	}
	return errors.Wrap(m.Account.Validate(), "account")
}

var _ revenue.Msg = (*SetTargetFunctionRoleMsg)(nil)

// SetTargetFunctionRoleMsg assigns the role required by operations of a
// target.
type SetTargetFunctionRoleMsg struct {
	Target     revenue.Address `json:"target"`
	Operations []string        `json:"operations"`
	Role       Role            `json:"role"`
}

// Path returns the routing path for this message
func (SetTargetFunctionRoleMsg) Path() string {
	return "access/set_target_function_role"
}

// Validate makes sure that this is sensible
func (m *SetTargetFunctionRoleMsg) Validate() error {
	if err := m.Target.Validate(); err != nil {
		return errors.Wrap(err, "target")
	}
	if len(m.Operations) == 0 {
		return errors.Wrap(errors.ErrInvalidInput, "no operations")
	}
	for _, op := range m.Operations {
		if !isOperation(op) {
			return errors.Wrapf(errors.ErrInvalidInput, "invalid operation %q", op)
		}
	}
	return nil
}
