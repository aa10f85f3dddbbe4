package revenue

import (
	"github.com/retok/revenue/errors"
)

// Atomic executes fn inside a savepoint of the given store. All writes done
// by fn are applied only if it succeeds, otherwise they are discarded
// together with the events fn emitted. Savepoints can be nested.
func Atomic(ctx Context, db KVStore, fn func(Context, CacheableKVStore) error) error {
	cstore, ok := db.(CacheableKVStore)
	if !ok {
		return errors.Wrap(errors.ErrHuman, "store does not support savepoints")
	}

	cache := cstore.CacheWrap()
	sink := &EventSink{}
	if err := fn(WithEventSink(ctx, sink), cache); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "writing savepoint")
	}
	if parent, ok := GetEventSink(ctx); ok {
		parent.Append(sink.Events()...)
	}
	return nil
}
