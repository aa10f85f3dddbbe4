package cash

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/revenuetest"
	"github.com/retok/revenue/revenuetest/assert"
	"github.com/retok/revenue/store"
)

func TestGenesis(t *testing.T) {
	addr := revenuetest.NewAddress()

	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
		want    int64
	}{
		"no cash section": {
			genesis: `{}`,
		},
		"one account": {
			genesis: fmt.Sprintf(`{"cash": [{"address": %q, "amount": 1234}]}`, addr),
			want:    1234,
		},
		"invalid address": {
			genesis: `{"cash": [{"address": "", "amount": 1}]}`,
			wantErr: errors.ErrInvalidInput,
		},
		"negative amount": {
			genesis: fmt.Sprintf(`{"cash": [{"address": %q, "amount": -1}]}`, addr),
			wantErr: errors.ErrInvalidModel,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts revenue.Options
			assert.Nil(t, json.Unmarshal([]byte(tc.genesis), &opts))

			db := store.MemStore()
			err := Initializer{}.FromGenesis(opts, db)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr != nil {
				return
			}
			got, err := NewController().Balance(db, addr)
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
