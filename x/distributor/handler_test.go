package distributor

import (
	"testing"

	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/revenuetest"
	"github.com/retok/revenue/revenuetest/assert"
	"github.com/retok/revenue/store"
	"github.com/retok/revenue/x/access"
	"github.com/retok/revenue/x/cash"
	"github.com/retok/revenue/x/snapshot"
)

type routes map[string]revenue.Handler

func (r routes) Handle(path string, h revenue.Handler) { r[path] = h }

func TestHandlers(t *testing.T) {
	alice := revenuetest.NewAddress()
	bob := revenuetest.NewAddress()
	tokenID := revenuetest.SequenceID(1)
	first := revenuetest.SequenceID(1)
	second := revenuetest.SequenceID(2)

	db := store.MemStore()
	ledger := snapshot.NewController(access.AllowAll{}, nil)
	payments := cash.NewController()

	ctx, _ := revenuetest.Ctx(alice)
	_, err := ledger.Create(ctx, db, &snapshot.Token{Name: "TestToken"})
	assert.Nil(t, err)
	assert.Nil(t, ledger.Mint(ctx, db, tokenID, alice, 3, 0))
	assert.Nil(t, ledger.Mint(ctx, db, tokenID, bob, 1, 0))
	assert.Nil(t, payments.IssueCoins(ctx, db, InstanceAddress(second), 1000000))

	r := routes{}
	RegisterRoutes(r, access.AllowAll{}, NewController(access.AllowAll{}, ledger, payments))
	assert.Equal(t, 7, len(r))

	steps := []struct {
		msg      revenue.Msg
		wantErr  *errors.Error
		wantData interface{}
	}{
		{msg: &CreateMsg{TokenID: []byte("x")}, wantErr: errors.ErrInvalidInput},
		{msg: &CreateMsg{TokenID: tokenID}, wantData: first},
		{msg: &ComputeMsg{DistributorID: first, Holder: alice}, wantErr: errors.ErrNotInitialized},
		{msg: &AddIncomeMsg{DistributorID: first, Amount: 4}, wantData: int64(1)},
		{msg: &AddIncomeMsg{DistributorID: first, Amount: 0}, wantErr: errors.ErrInvalidAmount},
		{msg: &ComputeMsg{DistributorID: first, Holder: alice}, wantData: int64(300)},
		{msg: &CreateMsg{TokenID: tokenID, Predecessor: first}, wantData: second},
		{msg: &InitIncomeMsg{DistributorID: second, Holder: bob, Baseline: Baseline{FromPredecessor: true}}},
		{msg: &InitIncomeMsg{DistributorID: second, Holder: bob}, wantErr: errors.ErrAlreadyInitialized},
		{msg: &WithdrawMsg{DistributorID: second}, wantErr: errors.ErrInsufficientFunds},
		{msg: &WithdrawToMsg{DistributorID: second, Holder: bob}, wantData: int64(1000000)},
		{msg: &WithdrawToMsg{DistributorID: second, Holder: bob}, wantErr: errors.ErrNoBalance},
		{msg: &TransferToOwnerMsg{DistributorID: second, Amount: 1}, wantErr: errors.ErrInsufficientFunds},
		{msg: &TransferToOwnerMsg{DistributorID: first, Amount: -1}, wantErr: errors.ErrInvalidAmount},
	}

	for i, s := range steps {
		res, err := r[s.msg.Path()].Deliver(ctx, db, s.msg)
		if s.wantErr != nil {
			if !s.wantErr.Is(err) {
				t.Fatalf("step %d: want %s, got %+v", i, s.wantErr, err)
			}
			if res != nil {
				t.Fatalf("step %d: result returned with an error", i)
			}
			continue
		}
		if err != nil {
			t.Fatalf("step %d: %+v", i, err)
		}
		if s.wantData != nil {
			assert.Equal(t, s.wantData, res.Data)
		}
	}

	bal, err := payments.Balance(db, bob)
	assert.Nil(t, err)
	assert.Equal(t, int64(1000000), bal)
}

func TestCreateRequiresPermission(t *testing.T) {
	alice := revenuetest.NewAddress()
	db := store.MemStore()
	ledger := snapshot.NewController(access.AllowAll{}, nil)
	ctx, _ := revenuetest.Ctx(alice)
	_, err := ledger.Create(ctx, db, &snapshot.Token{Name: "TestToken"})
	assert.Nil(t, err)

	roles := access.NewController()
	r := routes{}
	RegisterRoutes(r, roles, NewController(roles, ledger, cash.NewController()))

	msg := &CreateMsg{TokenID: revenuetest.SequenceID(1)}
	_, err = r[msg.Path()].Deliver(ctx, db, msg)
	assert.IsErr(t, errors.ErrUnauthorized, err)
}
