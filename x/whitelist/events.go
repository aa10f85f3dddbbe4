package whitelist

import (
	"github.com/retok/revenue"
	"github.com/tendermint/tendermint/libs/common"
)

// Added is emitted when an account is put on a list.
type Added struct {
	List    revenue.Address
	Account revenue.Address
}

func (Added) EventType() string { return "WhitelistAdded" }

func (e Added) Attributes() []common.KVPair {
	return []common.KVPair{
		revenue.Attr("list", e.List),
		revenue.Attr("account", e.Account),
	}
}

// Removed is emitted when an account is taken off a list.
type Removed struct {
	List    revenue.Address
	Account revenue.Address
}

func (Removed) EventType() string { return "WhitelistRemoved" }

func (e Removed) Attributes() []common.KVPair {
	return []common.KVPair{
		revenue.Attr("list", e.List),
		revenue.Attr("account", e.Account),
	}
}
