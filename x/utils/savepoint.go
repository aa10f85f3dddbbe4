package utils

import (
	"github.com/retok/revenue"
)

// Savepoint will isolate all data inside of the call,
// and commit/rollback to savepoint based on if error.
// Events emitted by a failed call are dropped as well.
type Savepoint struct{}

var _ revenue.Decorator = Savepoint{}

// NewSavepoint creates a Savepoint decorator
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// Deliver runs the call inside of a savepoint. Stores that cannot be
// cache wrapped are passed through unchanged.
func (s Savepoint) Deliver(ctx revenue.Context, store revenue.KVStore, msg revenue.Msg, next revenue.Handler) (*revenue.DeliverResult, error) {
	if _, ok := store.(revenue.CacheableKVStore); !ok {
		return next.Deliver(ctx, store, msg)
	}

	var res *revenue.DeliverResult
	err := revenue.Atomic(ctx, store, func(ctx revenue.Context, cache revenue.CacheableKVStore) error {
		var err error
		res, err = next.Deliver(ctx, cache, msg)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
