package utils

import (
	"github.com/retok/revenue"
	"github.com/tendermint/tendermint/libs/common"
)

// ActionTagger will inspect the message being executed and emit an Action
// event with `path = msg.Path()`. This should be applied as a decorator so
// clients have a standard way to search / subscribe to eg. withdrawals.
//
// The event is emitted after all events of a successful call.
type ActionTagger struct{}

var _ revenue.Decorator = ActionTagger{}

// NewActionTagger creates a ActionTagger decorator
func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

// Deliver emits the action event if there is a success.
func (ActionTagger) Deliver(ctx revenue.Context, db revenue.KVStore, msg revenue.Msg, next revenue.Handler) (*revenue.DeliverResult, error) {
	res, err := next.Deliver(ctx, db, msg)
	if err != nil {
		return nil, err
	}
	revenue.Emit(ctx, Action{Path: msg.Path()})
	return res, nil
}

// Action is emitted for every successfully executed message.
type Action struct {
	Path string
}

func (Action) EventType() string { return "Action" }

func (a Action) Attributes() []common.KVPair {
	return []common.KVPair{revenue.Attr("path", a.Path)}
}
