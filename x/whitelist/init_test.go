package whitelist

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
	list := revenuetest.NewAddress()
	alice := revenuetest.NewAddress()

	raw := fmt.Sprintf(`{"whitelist": [{"list": %q, "accounts": [%q]}]}`, list, alice)
	var opts revenue.Options
	assert.Nil(t, json.Unmarshal([]byte(raw), &opts))

	db := store.MemStore()
	assert.Nil(t, Initializer{}.FromGenesis(opts, db))

	ok, err := NewController().Contains(db, list, alice)
	assert.Nil(t, err)
	assert.Equal(t, true, ok)
}
