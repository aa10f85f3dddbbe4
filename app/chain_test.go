package app

import (
	"testing"

	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/revenuetest"
	"github.com/retok/revenue/revenuetest/assert"
	"github.com/retok/revenue/store"
	"github.com/retok/revenue/x/utils"
)

func TestChain(t *testing.T) {
	c1 := &revenuetest.Decorator{}
	c2 := &revenuetest.Decorator{}
	c3 := &revenuetest.Decorator{}
	h := &revenuetest.Handler{}

	stack := ChainDecorators(
		c1,
		utils.NewLogging(),
		utils.NewRecovery(),
		c2,
		nil,
		c3,
	).WithHandler(h)

	ctx, _ := revenuetest.Ctx(nil)
	db := store.MemStore()
	msg := &revenuetest.Msg{RoutePath: "test/chain"}

	_, err := stack.Deliver(ctx, db, msg)
	assert.Nil(t, err)
	assert.Equal(t, 1, c1.CallCount())
	assert.Equal(t, 1, c2.CallCount())
	assert.Equal(t, 1, c3.CallCount())
	assert.Equal(t, 1, h.CallCount())

	// An error returned by a decorator stops the chain.
	c2.DeliverErr = errors.ErrHuman
	_, err = stack.Deliver(ctx, db, msg)
	assert.IsErr(t, errors.ErrHuman, err)
	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 1, c3.CallCount())
	assert.Equal(t, 1, h.CallCount())
}

func TestChainRecoversPanic(t *testing.T) {
	h := &revenuetest.Handler{Panic: "boom"}
	stack := ChainDecorators(utils.NewRecovery()).WithHandler(h)

	ctx, _ := revenuetest.Ctx(nil)
	_, err := stack.Deliver(ctx, store.MemStore(), &revenuetest.Msg{RoutePath: "test/panic"})
	assert.IsErr(t, errors.ErrPanic, err)
}

func TestChainExtends(t *testing.T) {
	c1 := &revenuetest.Decorator{}
	c2 := &revenuetest.Decorator{}
	base := ChainDecorators(c1)
	extended := base.Chain(c2)

	var h revenue.Handler = &revenuetest.Handler{}
	ctx, _ := revenuetest.Ctx(nil)
	msg := &revenuetest.Msg{RoutePath: "test/chain"}

	_, err := base.WithHandler(h).Deliver(ctx, store.MemStore(), msg)
	assert.Nil(t, err)
	assert.Equal(t, 0, c2.CallCount())

	_, err = extended.WithHandler(h).Deliver(ctx, store.MemStore(), msg)
	assert.Nil(t, err)
	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 1, c2.CallCount())
}
