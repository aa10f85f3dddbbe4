package cash

import (
	"testing"

	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/revenuetest"
	"github.com/retok/revenue/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueCoins(t *testing.T) {
	db := store.MemStore()
	addr := revenuetest.NewAddress()
	addr2 := revenuetest.NewAddress()
	ctx, sink := revenuetest.Ctx(nil)

	c := NewController()

	got, err := c.Balance(db, addr)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)

	require.NoError(t, c.IssueCoins(ctx, db, addr, 500))
	require.NoError(t, c.IssueCoins(ctx, db, addr, 250))

	got, err = c.Balance(db, addr)
	require.NoError(t, err)
	assert.Equal(t, int64(750), got)

	got, err = c.Balance(db, addr2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)

	err = c.IssueCoins(ctx, db, addr, 0)
	assert.True(t, errors.ErrInvalidAmount.Is(err), "%+v", err)
	err = c.IssueCoins(ctx, db, addr, -5)
	assert.True(t, errors.ErrInvalidAmount.Is(err), "%+v", err)

	assert.Len(t, sink.Events(), 2)
	assert.Equal(t, Issue{To: addr, Amount: 500}, sink.Events()[0])
}

func TestMoveCoins(t *testing.T) {
	src := revenuetest.NewAddress()
	dst := revenuetest.NewAddress()
	empty := revenuetest.NewAddress()

	cases := map[string]struct {
		from, to revenue.Address
		amount   int64
		wantErr  *errors.Error
		wantSrc  int64
		wantDst  int64
	}{
		"partial": {from: src, to: dst, amount: 300, wantSrc: 700, wantDst: 300},
		"all":     {from: src, to: dst, amount: 1000, wantSrc: 0, wantDst: 1000},
		"too much": {
			from: src, to: dst, amount: 1001,
			wantErr: errors.ErrInsufficientFunds, wantSrc: 1000, wantDst: 0,
		},
		"empty sender": {
			from: empty, to: dst, amount: 1,
			wantErr: errors.ErrInsufficientFunds, wantSrc: 1000, wantDst: 0,
		},
		"zero amount": {
			from: src, to: dst, amount: 0,
			wantErr: errors.ErrInvalidAmount, wantSrc: 1000, wantDst: 0,
		},
		"self": {from: src, to: src, amount: 10, wantSrc: 1000, wantDst: 0},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctx, _ := revenuetest.Ctx(nil)
			c := NewController()
			require.NoError(t, c.IssueCoins(ctx, db, src, 1000))

			err := c.MoveCoins(ctx, db, tc.from, tc.to, tc.amount)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "%+v", err)
			} else {
				require.NoError(t, err)
			}

			got, err := c.Balance(db, src)
			require.NoError(t, err)
			assert.Equal(t, tc.wantSrc, got)
			got, err = c.Balance(db, dst)
			require.NoError(t, err)
			assert.Equal(t, tc.wantDst, got)
		})
	}
}
