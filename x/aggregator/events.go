package aggregator

import (
	"github.com/retok/revenue"
	"github.com/tendermint/tendermint/libs/common"
)

// BatchWithdrawal is emitted once per aggregated withdrawal, after the
// events of the individual instances.
type BatchWithdrawal struct {
	Holder    revenue.Address
	Instances int64
	Paid      int64
}

func (BatchWithdrawal) EventType() string { return "BatchWithdrawal" }

func (e BatchWithdrawal) Attributes() []common.KVPair {
	return []common.KVPair{
		revenue.Attr("holder", e.Holder),
		revenue.Attr("instances", e.Instances),
		revenue.Attr("paid", e.Paid),
	}
}
