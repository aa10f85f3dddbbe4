package app

import (
	"encoding/json"

	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/x/access"
	"github.com/retok/revenue/x/aggregator"
	"github.com/retok/revenue/x/cash"
	"github.com/retok/revenue/x/distributor"
	"github.com/retok/revenue/x/snapshot"
	"github.com/retok/revenue/x/whitelist"
)

// messages returns a fresh instance for every routed message path.
var messages = map[string]func() revenue.Msg{
	access.GrantRoleMsg{}.Path():             func() revenue.Msg { return &access.GrantRoleMsg{} },
	access.RevokeRoleMsg{}.Path():            func() revenue.Msg { return &access.RevokeRoleMsg{} },
	access.SetTargetFunctionRoleMsg{}.Path(): func() revenue.Msg { return &access.SetTargetFunctionRoleMsg{} },

	cash.SendMsg{}.Path():  func() revenue.Msg { return &cash.SendMsg{} },
	cash.IssueMsg{}.Path(): func() revenue.Msg { return &cash.IssueMsg{} },

	whitelist.AddMsg{}.Path():    func() revenue.Msg { return &whitelist.AddMsg{} },
	whitelist.RemoveMsg{}.Path(): func() revenue.Msg { return &whitelist.RemoveMsg{} },

	snapshot.CreateTokenMsg{}.Path(): func() revenue.Msg { return &snapshot.CreateTokenMsg{} },
	snapshot.MintMsg{}.Path():        func() revenue.Msg { return &snapshot.MintMsg{} },
	snapshot.BurnMsg{}.Path():        func() revenue.Msg { return &snapshot.BurnMsg{} },
	snapshot.TransferMsg{}.Path():    func() revenue.Msg { return &snapshot.TransferMsg{} },
	snapshot.SnapshotMsg{}.Path():    func() revenue.Msg { return &snapshot.SnapshotMsg{} },

	distributor.CreateMsg{}.Path():          func() revenue.Msg { return &distributor.CreateMsg{} },
	distributor.AddIncomeMsg{}.Path():       func() revenue.Msg { return &distributor.AddIncomeMsg{} },
	distributor.ComputeMsg{}.Path():         func() revenue.Msg { return &distributor.ComputeMsg{} },
	distributor.InitIncomeMsg{}.Path():      func() revenue.Msg { return &distributor.InitIncomeMsg{} },
	distributor.WithdrawMsg{}.Path():        func() revenue.Msg { return &distributor.WithdrawMsg{} },
	distributor.WithdrawToMsg{}.Path():      func() revenue.Msg { return &distributor.WithdrawToMsg{} },
	distributor.TransferToOwnerMsg{}.Path(): func() revenue.Msg { return &distributor.TransferToOwnerMsg{} },

	aggregator.WithdrawMsg{}.Path(): func() revenue.Msg { return &aggregator.WithdrawMsg{} },
}

// DecodeMsg parses the json encoded message routed under path.
func DecodeMsg(path string, raw json.RawMessage) (revenue.Msg, error) {
	fn, ok := messages[path]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "message path %q", path)
	}
	msg := fn()
	if len(raw) != 0 {
		if err := json.Unmarshal(raw, msg); err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidInput, "cannot decode %s: %s", path, err)
		}
	}
	return msg, nil
}
