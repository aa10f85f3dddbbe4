package app

import (
	"testing"

	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/revenuetest"
	"github.com/retok/revenue/revenuetest/assert"
	"github.com/retok/revenue/store"
)

func TestRouter(t *testing.T) {
	r := NewRouter()

	good := &revenuetest.Handler{}
	bad := &revenuetest.Handler{DeliverErr: errors.ErrNoBalance}
	r.Handle("test/good", good)
	r.Handle("test/bad", bad)

	// make sure invalid registrations panic
	assert.Panics(t, func() { r.Handle("test/good", good) })
	assert.Panics(t, func() { r.Handle("l:7", good) })

	ctx, _ := revenuetest.Ctx(nil)
	db := store.MemStore()

	_, err := r.Deliver(ctx, db, &revenuetest.Msg{RoutePath: "test/good"})
	assert.Nil(t, err)
	assert.Equal(t, 1, good.CallCount())

	_, err = r.Deliver(ctx, db, &revenuetest.Msg{RoutePath: "test/bad"})
	assert.IsErr(t, errors.ErrNoBalance, err)
	assert.Equal(t, 1, bad.CallCount())

	_, err = r.Deliver(ctx, db, &revenuetest.Msg{RoutePath: "test/missing"})
	assert.IsErr(t, errors.ErrNotFound, err)

	_, err = r.Deliver(ctx, db, nil)
	assert.IsErr(t, errors.ErrInvalidInput, err)
	assert.Equal(t, 1, good.CallCount())
}
