package revenuetest

import (
	"context"

	"github.com/retok/revenue"
)

// Ctx returns a context executed on behalf of the given caller, together with
// the sink collecting all events emitted within it.
func Ctx(caller revenue.Address) (revenue.Context, *revenue.EventSink) {
	sink := &revenue.EventSink{}
	ctx := revenue.WithEventSink(context.Background(), sink)
	if caller != nil {
		ctx = revenue.WithCaller(ctx, caller)
	}
	return ctx, sink
}
