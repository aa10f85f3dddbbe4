package access

import (
	"github.com/retok/revenue"
	"github.com/tendermint/tendermint/libs/common"
)

// RoleGranted is emitted when an account is given a role.
type RoleGranted struct {
	Role    Role
	Account revenue.Address
}

func (RoleGranted) EventType() string { return "RoleGranted" }

func (e RoleGranted) Attributes() []common.KVPair {
	return []common.KVPair{
		revenue.Attr("role", uint64(e.Role)),
		revenue.Attr("account", e.Account),
	}
}

// RoleRevoked is emitted when a role is taken away from an account.
type RoleRevoked struct {
	Role    Role
	Account revenue.Address
}

func (RoleRevoked) EventType() string { return "RoleRevoked" }

func (e RoleRevoked) Attributes() []common.KVPair {
	return []common.KVPair{
		revenue.Attr("role", uint64(e.Role)),
		revenue.Attr("account", e.Account),
	}
}
