package distributor

import (
	"github.com/retok/revenue"
	"github.com/tendermint/tendermint/libs/common"
)

// IncomeAdded is emitted when an income is registered.
type IncomeAdded struct {
	Instance revenue.Address
	Amount   int64
	Index    int64
}

func (IncomeAdded) EventType() string { return "IncomeAdded" }

func (e IncomeAdded) Attributes() []common.KVPair {
	return []common.KVPair{
		revenue.Attr("instance", e.Instance),
		revenue.Attr("amount", e.Amount),
		revenue.Attr("index", e.Index),
	}
}

// Withdrawal is emitted when an entitlement is settled.
type Withdrawal struct {
	Instance revenue.Address
	Holder   revenue.Address
	// Amount is the settled entitlement in income units.
	Amount int64
	// Payment is the amount paid in the payment asset.
	Payment int64
}

func (Withdrawal) EventType() string { return "Withdrawal" }

func (e Withdrawal) Attributes() []common.KVPair {
	return []common.KVPair{
		revenue.Attr("instance", e.Instance),
		revenue.Attr("holder", e.Holder),
		revenue.Attr("amount", e.Amount),
		revenue.Attr("payment", e.Payment),
	}
}

// Sweep is emitted when the owner takes funds out of an instance.
type Sweep struct {
	Instance revenue.Address
	Owner    revenue.Address
	Amount   int64
}

func (Sweep) EventType() string { return "Sweep" }

func (e Sweep) Attributes() []common.KVPair {
	return []common.KVPair{
		revenue.Attr("instance", e.Instance),
		revenue.Attr("owner", e.Owner),
		revenue.Attr("amount", e.Amount),
	}
}

// HolderInitialized is emitted when the baseline of a holder is seeded
// explicitly.
type HolderInitialized struct {
	Instance    revenue.Address
	Holder      revenue.Address
	Index       int64
	Entitlement int64
}

func (HolderInitialized) EventType() string { return "HolderInitialized" }

func (e HolderInitialized) Attributes() []common.KVPair {
	return []common.KVPair{
		revenue.Attr("instance", e.Instance),
		revenue.Attr("holder", e.Holder),
		revenue.Attr("index", e.Index),
		revenue.Attr("entitlement", e.Entitlement),
	}
}
