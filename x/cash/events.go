package cash

import (
	"github.com/retok/revenue"
	"github.com/tendermint/tendermint/libs/common"
)

// Payment is emitted whenever funds move between two accounts.
type Payment struct {
	From   revenue.Address
	To     revenue.Address
	Amount int64
}

func (Payment) EventType() string { return "Payment" }

func (e Payment) Attributes() []common.KVPair {
	return []common.KVPair{
		revenue.Attr("from", e.From),
		revenue.Attr("to", e.To),
		revenue.Attr("amount", e.Amount),
	}
}

// Issue is emitted when new funds are created.
type Issue struct {
	To     revenue.Address
	Amount int64
}

func (Issue) EventType() string { return "Issue" }

func (e Issue) Attributes() []common.KVPair {
	return []common.KVPair{
		revenue.Attr("to", e.To),
		revenue.Attr("amount", e.Amount),
	}
}
