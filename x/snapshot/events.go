package snapshot

import (
	"github.com/retok/revenue"
	"github.com/tendermint/tendermint/libs/common"
)

// SnapshotEvent is emitted when a checkpoint is created.
type SnapshotEvent struct {
	Token      revenue.Address
	Checkpoint int64
}

func (SnapshotEvent) EventType() string { return "Snapshot" }

func (e SnapshotEvent) Attributes() []common.KVPair {
	return []common.KVPair{
		revenue.Attr("token", e.Token),
		revenue.Attr("checkpoint", e.Checkpoint),
	}
}

// MintEvent is emitted when a new balance is created.
type MintEvent struct {
	Token  revenue.Address
	Holder revenue.Address
	Amount int64
	Code   uint32
}

func (MintEvent) EventType() string { return "Mint" }

func (e MintEvent) Attributes() []common.KVPair {
	return []common.KVPair{
		revenue.Attr("token", e.Token),
		revenue.Attr("holder", e.Holder),
		revenue.Attr("amount", e.Amount),
		revenue.Attr("code", e.Code),
	}
}

// BurnEvent is emitted when a balance is destroyed.
type BurnEvent struct {
	Token  revenue.Address
	Holder revenue.Address
	Amount int64
	Code   uint32
}

func (BurnEvent) EventType() string { return "Burn" }

func (e BurnEvent) Attributes() []common.KVPair {
	return []common.KVPair{
		revenue.Attr("token", e.Token),
		revenue.Attr("holder", e.Holder),
		revenue.Attr("amount", e.Amount),
		revenue.Attr("code", e.Code),
	}
}

// TransferEvent is emitted when a balance moves between holders.
type TransferEvent struct {
	Token  revenue.Address
	From   revenue.Address
	To     revenue.Address
	Amount int64
}

func (TransferEvent) EventType() string { return "Transfer" }

func (e TransferEvent) Attributes() []common.KVPair {
	return []common.KVPair{
		revenue.Attr("token", e.Token),
		revenue.Attr("from", e.From),
		revenue.Attr("to", e.To),
		revenue.Attr("amount", e.Amount),
	}
}
