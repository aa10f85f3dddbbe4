package access

import (
	"encoding/binary"
	"math"

	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/orm"
	amino "github.com/tendermint/go-amino"
)

// Role is a numeric role identifier.
type Role uint64

const (
	// RoleAdmin can manage roles and is required by every operation that
	// was not assigned a role.
	RoleAdmin Role = 0
	// RoleOwner is required for privileged instance management, for
	// example registering income or minting.
	RoleOwner Role = 10
	// RoleWithdrawer is required to withdraw an own entitlement.
	RoleWithdrawer Role = 20
	// RolePreApprovedWithdrawer is required to withdraw on behalf of
	// another holder.
	RolePreApprovedWithdrawer Role = 30
	// RoleSnapshooter is required to create ledger checkpoints.
	RoleSnapshooter Role = 40
	// RolePublic is held by every account and cannot be granted.
	RolePublic Role = math.MaxUint64
)

var cdc = amino.NewCodec()

// Membership records that an account holds a role.
type Membership struct {
	Role    Role            `json:"role"`
	Account revenue.Address `json:"account"`
}

var _ orm.Model = (*Membership)(nil)

func (m *Membership) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *Membership) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *Membership) Validate() error {
	if m.Role == RolePublic {
		return errors.Wrap(errors.ErrInvalidModel, "public role cannot be granted")
	}
	if err := m.Account.Validate(); err != nil {
		return errors.Wrap(err, "account")
	}
	return nil
}

// FunctionRole assigns the role required to execute an operation of a
// target instance.
type FunctionRole struct {
	Target    revenue.Address `json:"target"`
	Operation string          `json:"operation"`
	Role      Role            `json:"role"`
}

var _ orm.Model = (*FunctionRole)(nil)

func (m *FunctionRole) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *FunctionRole) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *FunctionRole) Validate() error {
	if err := m.Target.Validate(); err != nil {
		return errors.Wrap(err, "target")
	}
	if !isOperation(m.Operation) {
		return errors.Wrapf(errors.ErrInvalidModel, "invalid operation %q", m.Operation)
	}
	return nil
}

func membershipKey(role Role, account revenue.Address) []byte {
	key := make([]byte, 8, 8+len(account))
	binary.BigEndian.PutUint64(key, uint64(role))
	return append(key, account...)
}

func functionKey(target revenue.Address, operation string) []byte {
	key := append([]byte{}, target...)
	return append(key, operation...)
}
