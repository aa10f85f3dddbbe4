package utils

import (
	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
)

// Recovery is a decorator to recover from panics in operations,
// so we can log them as errors
type Recovery struct{}

var _ revenue.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx revenue.Context, store revenue.KVStore, msg revenue.Msg, next revenue.Handler) (_ *revenue.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, msg)
}
