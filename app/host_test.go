package app

import (
	"testing"

	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/revenuetest"
	"github.com/retok/revenue/store/iavl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/common"
)

// eventHandler writes a key, emits an event and returns the configured
// error.
type eventHandler struct {
	key []byte
	err error
}

func (h eventHandler) Deliver(ctx revenue.Context, db revenue.KVStore, msg revenue.Msg) (*revenue.DeliverResult, error) {
	if err := db.Set(h.key, []byte("value")); err != nil {
		return nil, err
	}
	revenue.Emit(ctx, testEvent{path: msg.Path()})
	return &revenue.DeliverResult{Data: h.key}, h.err
}

type testEvent struct {
	path string
}

func (testEvent) EventType() string { return "Test" }

func (e testEvent) Attributes() []common.KVPair {
	return []common.KVPair{revenue.Attr("path", e.path)}
}

func TestHostExecute(t *testing.T) {
	r := NewRouter()
	r.Handle("test/ok", eventHandler{key: []byte("ok")})
	r.Handle("test/fail", eventHandler{key: []byte("fail"), err: errors.ErrNoBalance})
	r.Handle("test/panic", &revenuetest.Handler{Panic: "boom"})

	host, err := NewHost(iavl.NewMemCommitStore(), r)
	require.NoError(t, err)
	caller := revenuetest.NewAddress()

	res, err := host.Execute(caller, &revenuetest.Msg{RoutePath: "test/ok"})
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), res.Data)
	assert.Equal(t, []revenue.Event{testEvent{path: "test/ok"}}, res.Events)
	require.Len(t, res.Tags, 1)
	assert.Equal(t, "Test.path", string(res.Tags[0].Key))
	assert.Equal(t, "test/ok", string(res.Tags[0].Value))

	_, err = host.Execute(caller, &revenuetest.Msg{RoutePath: "test/fail"})
	assert.True(t, errors.ErrNoBalance.Is(err), "%+v", err)
	_, err = host.Execute(caller, &revenuetest.Msg{RoutePath: "test/panic"})
	assert.True(t, errors.ErrPanic.Is(err), "%+v", err)

	// Nothing is visible before the commit.
	got, err := host.Query([]byte("ok"), false)
	require.NoError(t, err)
	assert.Empty(t, got)

	first, err := host.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Version)
	assert.NotEmpty(t, first.Hash)

	got, err = host.Query([]byte("ok"), false)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []byte("value"), got[0].Value)

	// The failed call was rolled back.
	got, err = host.Query([]byte("fail"), false)
	require.NoError(t, err)
	assert.Empty(t, got)

	// Commit without changes keeps the hash.
	second, err := host.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Version)
	assert.Equal(t, first.Hash, second.Hash)
}

func TestHostInitChain(t *testing.T) {
	kv, cleanup := revenuetest.CommitKVStore(t)
	defer cleanup()

	var called int
	init := initFunc(func(opts revenue.Options, db revenue.KVStore) error {
		called++
		return db.Set([]byte("genesis"), []byte("loaded"))
	})
	host, err := NewHost(kv, NewRouter())
	require.NoError(t, err)
	host = host.WithInit(init)

	err = host.InitChain(Genesis{ChainID: "x"})
	assert.True(t, errors.ErrInvalidInput.Is(err), "%+v", err)
	assert.Equal(t, 0, called)

	require.NoError(t, host.InitChain(Genesis{ChainID: "test-chain"}))
	assert.Equal(t, "test-chain", host.ChainID())
	assert.Equal(t, 1, called)

	err = host.InitChain(Genesis{ChainID: "test-chain"})
	assert.True(t, errors.ErrAlreadyInitialized.Is(err), "%+v", err)

	_, err = host.Commit()
	require.NoError(t, err)

	got, err := host.Query([]byte("_rv:"), true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []byte("test-chain"), got[0].Value)

	// The chain id is loaded when the store is opened again.
	again, err := NewHost(kv, NewRouter())
	require.NoError(t, err)
	assert.Equal(t, "test-chain", again.ChainID())
}

type initFunc func(revenue.Options, revenue.KVStore) error

func (fn initFunc) FromGenesis(opts revenue.Options, db revenue.KVStore) error {
	return fn(opts, db)
}
