package access

import (
	"testing"

	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/revenuetest"
	"github.com/retok/revenue/revenuetest/assert"
	"github.com/retok/revenue/store"
)

func TestAuthorize(t *testing.T) {
	admin := revenuetest.NewAddress()
	owner := revenuetest.NewAddress()
	stranger := revenuetest.NewAddress()
	target := revenue.NewCondition("dist", "income", []byte{1}).Address()

	db := store.MemStore()
	c := NewController()
	ctrl := c.(*controller)
	assert.Nil(t, ctrl.grant(db, RoleAdmin, admin))

	ctx, sink := revenuetest.Ctx(admin)
	assert.Nil(t, c.GrantRole(ctx, db, RoleOwner, owner))
	assert.Nil(t, c.SetTargetFunctionRole(ctx, db, target, []string{"addIncome", "transferToOwner"}, RoleOwner))
	assert.Nil(t, c.SetTargetFunctionRole(ctx, db, target, []string{"computeCumulativeShare"}, RolePublic))
	assert.Equal(t, []revenue.Event{RoleGranted{Role: RoleOwner, Account: owner}}, sink.Events())

	cases := map[string]struct {
		caller    revenue.Address
		operation string
		want      bool
	}{
		"owner may add income":                        {owner, "addIncome", true},
		"stranger may not add income":                 {stranger, "addIncome", false},
		"admin does not implicitly hold other roles":  {admin, "addIncome", false},
		"unassigned operation requires admin":         {admin, "withdraw", true},
		"unassigned operation refuses owner":          {owner, "withdraw", false},
		"public operation is allowed to everyone":     {stranger, "computeCumulativeShare", true},
		"public operation is allowed to empty caller": {nil, "computeCumulativeShare", true},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := c.Authorize(db, tc.caller, target, tc.operation)
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestManageRoles(t *testing.T) {
	admin := revenuetest.NewAddress()
	alice := revenuetest.NewAddress()

	db := store.MemStore()
	c := NewController()
	assert.Nil(t, c.(*controller).grant(db, RoleAdmin, admin))

	// only admins can manage roles
	aliceCtx, _ := revenuetest.Ctx(alice)
	assert.IsErr(t, errors.ErrUnauthorized, c.GrantRole(aliceCtx, db, RoleWithdrawer, alice))
	assert.IsErr(t, errors.ErrUnauthorized, c.SetTargetFunctionRole(aliceCtx, db, alice, []string{"withdraw"}, RolePublic))
	noCallerCtx, _ := revenuetest.Ctx(nil)
	assert.IsErr(t, errors.ErrUnauthorized, c.GrantRole(noCallerCtx, db, RoleWithdrawer, alice))

	ctx, sink := revenuetest.Ctx(admin)
	assert.IsErr(t, errors.ErrInvalidInput, c.GrantRole(ctx, db, RolePublic, alice))
	assert.IsErr(t, errors.ErrInvalidInput, c.SetTargetFunctionRole(ctx, db, alice, []string{"not valid"}, RoleOwner))

	assert.Nil(t, c.GrantRole(ctx, db, RoleWithdrawer, alice))
	// granting twice is a no-op
	assert.Nil(t, c.GrantRole(ctx, db, RoleWithdrawer, alice))
	has, err := c.HasRole(db, RoleWithdrawer, alice)
	assert.Nil(t, err)
	assert.Equal(t, true, has)

	assert.Nil(t, c.RevokeRole(ctx, db, RoleWithdrawer, alice))
	// revoking twice is a no-op
	assert.Nil(t, c.RevokeRole(ctx, db, RoleWithdrawer, alice))
	has, err = c.HasRole(db, RoleWithdrawer, alice)
	assert.Nil(t, err)
	assert.Equal(t, false, has)

	assert.Equal(t, []revenue.Event{
		RoleGranted{Role: RoleWithdrawer, Account: alice},
		RoleRevoked{Role: RoleWithdrawer, Account: alice},
	}, sink.Events())
}

func TestRequire(t *testing.T) {
	target := revenuetest.NewAddress()
	alice := revenuetest.NewAddress()
	db := store.MemStore()

	ctx, _ := revenuetest.Ctx(alice)
	caller, err := Require(ctx, db, AllowAll{}, target, "anything")
	assert.Nil(t, err)
	assert.Equal(t, alice, caller)

	_, err = Require(ctx, db, NewController(), target, "anything")
	assert.IsErr(t, errors.ErrUnauthorized, err)

	noCaller, _ := revenuetest.Ctx(nil)
	_, err = Require(noCaller, db, AllowAll{}, target, "anything")
	assert.IsErr(t, errors.ErrUnauthorized, err)
}
