package gconf

import (
	"encoding/json"
	"testing"

	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/revenuetest/assert"
	"github.com/retok/revenue/store"
	amino "github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

type testConf struct {
	Name  string `json:"name"`
	Limit int64  `json:"limit"`
}

func (c *testConf) Marshal() ([]byte, error) { return cdc.MarshalBinaryBare(c) }

func (c *testConf) Unmarshal(raw []byte) error { return cdc.UnmarshalBinaryBare(raw, c) }

func (c *testConf) Validate() error {
	if c.Limit <= 0 {
		return errors.Wrap(errors.ErrInvalidModel, "limit must be positive")
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	cases := map[string]struct {
		Conf        *testConf
		WantSaveErr *errors.Error
	}{
		"valid": {
			Conf: &testConf{Name: "foobar", Limit: 852151421},
		},
		"invalid configuration cannot be saved": {
			Conf:        &testConf{Name: "foobar"},
			WantSaveErr: errors.ErrInvalidModel,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()

			err := Save(db, "mypkg", tc.Conf)
			assert.IsErr(t, tc.WantSaveErr, err)
			if tc.WantSaveErr != nil {
				var got testConf
				assert.IsErr(t, errors.ErrNotFound, Load(db, "mypkg", &got))
				return
			}

			var got testConf
			assert.Nil(t, Load(db, "mypkg", &got))
			assert.Equal(t, *tc.Conf, got)

			// other packages are not affected
			assert.IsErr(t, errors.ErrNotFound, Load(db, "otherpkg", &got))
		})
	}
}

func TestInitConfig(t *testing.T) {
	cases := map[string]struct {
		Genesis string
		WantErr *errors.Error
		Want    testConf
	}{
		"loaded from genesis": {
			Genesis: `{"conf": {"mypkg": {"name": "foo", "limit": 7}}}`,
			Want:    testConf{Name: "foo", Limit: 7},
		},
		"missing package configuration": {
			Genesis: `{"conf": {"otherpkg": {"name": "foo", "limit": 7}}}`,
			WantErr: errors.ErrNotFound,
		},
		"invalid configuration": {
			Genesis: `{"conf": {"mypkg": {"name": "foo", "limit": 0}}}`,
			WantErr: errors.ErrInvalidModel,
		},
		"malformed configuration": {
			Genesis: `{"conf": {"mypkg": {"limit": "many"}}}`,
			WantErr: errors.ErrInvalidInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts revenue.Options
			if err := json.Unmarshal([]byte(tc.Genesis), &opts); err != nil {
				t.Fatalf("cannot unmarshal genesis: %s", err)
			}

			db := store.MemStore()
			var conf testConf
			err := InitConfig(db, opts, "mypkg", &conf)
			assert.IsErr(t, tc.WantErr, err)
			if tc.WantErr != nil {
				return
			}

			var got testConf
			assert.Nil(t, Load(db, "mypkg", &got))
			assert.Equal(t, tc.Want, got)
		})
	}
}
