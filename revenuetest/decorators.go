package revenuetest

import "github.com/retok/revenue"

// Decorator is a mock implementation of the revenue.Decorator interface.
//
// Set DeliverErr to force error response. If the error attribute is not set
// then wrapped handler method is called and its result returned.
// Each method call is counted. Regardless of the method call result the
// counter is incremented.
type Decorator struct {
	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ revenue.Decorator = (*Decorator)(nil)

func (d *Decorator) Deliver(ctx revenue.Context, db revenue.KVStore, msg revenue.Msg, next revenue.Handler) (*revenue.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return &revenue.DeliverResult{}, d.DeliverErr
	}
	return next.Deliver(ctx, db, msg)
}

func (d *Decorator) CallCount() int {
	return d.deliverCall
}

// Decorate wraps the handler with one decorator and returns it
// as a single handler.
func Decorate(h revenue.Handler, d revenue.Decorator) revenue.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn revenue.Handler
	dc revenue.Decorator
}

var _ revenue.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Deliver(ctx revenue.Context, db revenue.KVStore, msg revenue.Msg) (*revenue.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, msg, d.hn)
}
