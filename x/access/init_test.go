package access

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/retok/revenue"
	"github.com/retok/revenue/revenuetest"
	"github.com/retok/revenue/revenuetest/assert"
	"github.com/retok/revenue/store"
)

func TestGenesis(t *testing.T) {
	admin := revenuetest.NewAddress()
	owner := revenuetest.NewAddress()
	distributor := revenue.NewCondition("dist", "income", revenuetest.SequenceID(1))

	genesis := fmt.Sprintf(`{
		"access": {
			"members": [
				{"role": 0, "account": "%s"},
				{"role": 10, "account": "%s"}
			],
			"functions": [
				{"target": "cond:%s", "operations": ["addIncome"], "role": 10}
			]
		}
	}`, admin, owner, distributor)

	var opts revenue.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	assert.Nil(t, Initializer{}.FromGenesis(opts, db))

	c := NewController()
	ok, err := c.HasRole(db, RoleAdmin, admin)
	assert.Nil(t, err)
	assert.Equal(t, true, ok)

	ok, err = c.Authorize(db, owner, distributor.Address(), "addIncome")
	assert.Nil(t, err)
	assert.Equal(t, true, ok)

	ok, err = c.Authorize(db, admin, distributor.Address(), "addIncome")
	assert.Nil(t, err)
	assert.Equal(t, false, ok)
}

func TestGenesisRefusesPublicMembership(t *testing.T) {
	genesis := fmt.Sprintf(`{"access": {"members": [{"role": %d, "account": "%s"}]}}`,
		uint64(RolePublic), revenuetest.NewAddress())
	var opts revenue.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}
	if err := (Initializer{}).FromGenesis(opts, store.MemStore()); err == nil {
		t.Fatal("public role must not be granted")
	}
}
