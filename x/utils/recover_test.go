package utils

import (
	"context"
	"testing"

	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/revenuetest"
	"github.com/retok/revenue/store"
	"github.com/stretchr/testify/assert"
)

func TestRecovery(t *testing.T) {
	h := &revenuetest.Handler{Panic: "deliver panic"}
	msg := &revenuetest.Msg{RoutePath: "test/panic"}
	r := NewRecovery()

	ctx := context.Background()
	s := store.MemStore()

	// Panic handler panics. Test the test tool.
	assert.Panics(t, func() { _, _ = h.Deliver(ctx, s, msg) })

	// Recovery wrapped handler returns an error.
	_, err := r.Deliver(ctx, s, msg, h)
	assert.True(t, errors.ErrPanic.Is(err))
	assert.Contains(t, err.Error(), "deliver panic")
}
