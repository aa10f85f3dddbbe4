package app

import (
	"context"
	"time"

	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/store"
	"github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

// Host executes calls against the committed store. It is not safe for
// concurrent use, calls are executed one at a time.
type Host struct {
	logger log.Logger

	// Database state (committed, deliver)
	store *CommitStore

	// handler executes every call
	handler revenue.Handler

	// Code to initialize from a genesis file
	initializer revenue.Initializer

	// chainID is loaded from db in initialization
	// saved once in InitChain
	chainID string
}

// Result is the outcome of a successful call.
type Result struct {
	Data   interface{}
	Log    string
	Events []revenue.Event
	// Tags are the events rendered as key value pairs.
	Tags []common.KVPair
}

// NewHost loads the latest state of kv and returns a host executing calls
// with handler.
func NewHost(kv revenue.CommitKVStore, handler revenue.Handler) (*Host, error) {
	cs, err := NewCommitStore(kv)
	if err != nil {
		return nil, err
	}
	chainID, err := loadChainID(cs.DeliverStore())
	if err != nil {
		return nil, err
	}
	return &Host{
		logger:  log.NewNopLogger(),
		store:   cs,
		handler: handler,
		chainID: chainID,
	}, nil
}

// WithLogger sets the logger on the host and all calls
func (h *Host) WithLogger(logger log.Logger) *Host {
	h.logger = logger
	return h
}

// WithInit is used to set the init function we call
func (h *Host) WithInit(init revenue.Initializer) *Host {
	h.initializer = init
	return h
}

// ChainID returns the current chainID
func (h *Host) ChainID() string {
	return h.chainID
}

// InitChain stores the chain id and initializes all extensions from the
// genesis. It can be done only once for a store.
func (h *Host) InitChain(gen Genesis) error {
	if h.chainID != "" {
		return errors.Wrapf(errors.ErrAlreadyInitialized, "app state previously loaded for chain %s", h.chainID)
	}
	cache := h.store.DeliverStore().CacheWrap()
	if err := saveChainID(cache, gen.ChainID); err != nil {
		cache.Discard()
		return err
	}
	if h.initializer != nil {
		if err := h.initializer.FromGenesis(gen.AppState, cache); err != nil {
			cache.Discard()
			return errors.Wrap(err, "initialize from genesis")
		}
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "write genesis state")
	}
	h.chainID = gen.ChainID
	h.logger.Info("chain initialized", "chain_id", gen.ChainID)
	return nil
}

// Execute runs msg on behalf of caller. Either all changes and events of
// the call are applied, or none. A panic inside the handler is returned as
// ErrPanic.
func (h *Host) Execute(caller revenue.Address, msg revenue.Msg) (*Result, error) {
	start := time.Now()
	defer func() { mCallDuration.Observe(time.Since(start).Seconds()) }()

	sink := &revenue.EventSink{}
	ctx := revenue.WithLogger(context.Background(), h.logger)
	ctx = revenue.WithLogInfo(ctx, "call", "execute", "path", msg.Path())
	ctx = revenue.WithEventSink(ctx, sink)
	if caller != nil {
		ctx = revenue.WithCaller(ctx, caller)
	}

	cache := h.store.DeliverStore().CacheWrap()
	res, err := h.deliver(ctx, cache, msg)
	if err != nil {
		cache.Discard()
		mCalls.WithLabelValues(msg.Path(), "error").Inc()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		mCalls.WithLabelValues(msg.Path(), "error").Inc()
		return nil, errors.Wrap(err, "write call state")
	}
	mCalls.WithLabelValues(msg.Path(), "ok").Inc()

	events := sink.Events()
	return &Result{
		Data:   res.Data,
		Log:    res.Log,
		Events: events,
		Tags:   revenue.EventTags(events),
	}, nil
}

func (h *Host) deliver(ctx revenue.Context, db revenue.KVStore, msg revenue.Msg) (res *revenue.DeliverResult, err error) {
	defer errors.Recover(&err)
	res, err = h.handler.Deliver(ctx, db, msg)
	if err == nil && res == nil {
		res = &revenue.DeliverResult{}
	}
	return res, err
}

// Commit persists all executed calls as a new version.
func (h *Host) Commit() (revenue.CommitID, error) {
	id, err := h.store.Commit()
	if err != nil {
		return id, errors.Wrap(err, "commit")
	}
	mVersion.Set(float64(id.Version))
	h.logger.Info("commit synced", "version", id.Version, "hash", common.HexBytes(id.Hash))
	return id, nil
}

// CommitInfo returns the latest committed version.
func (h *Host) CommitInfo() (revenue.CommitID, error) {
	return h.store.CommitInfo()
}

// ReadStore returns the last committed state. Use it with the read models
// of the controllers.
func (h *Host) ReadStore() revenue.ReadOnlyKVStore {
	return h.store.CommittedStore()
}

// Query returns the committed value at key, or all committed values with
// key as prefix. Results are ordered by key.
func (h *Host) Query(key []byte, prefix bool) ([]store.Model, error) {
	db := h.ReadStore()
	if !prefix {
		val, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		if val == nil {
			return nil, nil
		}
		return []store.Model{store.Pair(key, val)}, nil
	}

	it, err := db.Iterator(key, prefixEnd(key))
	if err != nil {
		return nil, err
	}
	defer it.Release()
	var res []store.Model
	for {
		k, v, err := it.Next()
		switch {
		case err == nil:
			res = append(res, store.Pair(k, v))
		case errors.ErrIteratorDone.Is(err):
			return res, nil
		default:
			return nil, err
		}
	}
}

// prefixEnd returns the first key that does not start with prefix, or nil
// when there is none.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
