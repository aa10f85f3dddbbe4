package aggregator_test

import (
	"testing"

	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/revenuetest"
	"github.com/retok/revenue/store"
	"github.com/retok/revenue/x/access"
	"github.com/retok/revenue/x/aggregator"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/mock"
)

var _ aggregator.Withdrawer = (*mockWithdrawer)(nil)

type mockWithdrawer struct {
	mock.Mock
}

func (m *mockWithdrawer) WithdrawTo(ctx revenue.Context, db revenue.KVStore, id []byte, holder revenue.Address) (int64, error) {
	args := m.Called(id, holder)
	return args.Get(0).(int64), args.Error(1)
}

func TestMsg(t *testing.T) {
	Convey("Test Validate", t, func() {
		Convey("Test happy flow", func() {
			msg := &aggregator.WithdrawMsg{DistributorIDs: [][]byte{revenuetest.SequenceID(1)}}
			So(msg.Validate(), ShouldBeNil)
		})

		Convey("Test empty list", func() {
			msg := &aggregator.WithdrawMsg{}
			So(errors.ErrInvalidInput.Is(msg.Validate()), ShouldBeTrue)
		})

		Convey("Test malformed id", func() {
			msg := &aggregator.WithdrawMsg{DistributorIDs: [][]byte{revenuetest.SequenceID(1), {0x01}}}
			So(errors.ErrInvalidInput.Is(msg.Validate()), ShouldBeTrue)
		})
	})
}

func TestWithdrawOutcomes(t *testing.T) {
	Convey("Test Withdraw", t, func() {
		holder := revenuetest.NewAddress()
		first := revenuetest.SequenceID(1)
		second := revenuetest.SequenceID(2)
		engine := &mockWithdrawer{}
		control := aggregator.NewController(access.AllowAll{}, engine)
		db := store.MemStore()
		ctx, sink := revenuetest.Ctx(holder)

		Convey("Test empty instances are skipped", func() {
			engine.On("WithdrawTo", first, holder).Return(int64(0), errors.ErrNoBalance)
			engine.On("WithdrawTo", second, holder).Return(int64(5), nil)

			outcomes, err := control.Withdraw(ctx, db, [][]byte{first, second})
			So(err, ShouldBeNil)
			So(outcomes, ShouldResemble, []aggregator.Outcome{
				{DistributorID: first, Skipped: true},
				{DistributorID: second, Paid: 5},
			})
			So(sink.Events(), ShouldHaveLength, 1)
			engine.AssertExpectations(t)
		})

		Convey("Test any other failure aborts", func() {
			engine.On("WithdrawTo", first, holder).Return(int64(5), nil)
			engine.On("WithdrawTo", second, holder).Return(int64(0), errors.ErrInsufficientFunds)

			_, err := control.Withdraw(ctx, db, [][]byte{first, second})
			So(errors.ErrInsufficientFunds.Is(err), ShouldBeTrue)
			So(sink.Events(), ShouldBeEmpty)
		})
	})
}
