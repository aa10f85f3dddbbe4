package app

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/revenuetest/assert"
	"github.com/retok/revenue/store"
)

func TestLoadGenesis(t *testing.T) {
	dir, err := ioutil.TempDir("", "genesis-")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "genesis.json")
	raw := `{"chain_id": "test-chain", "app_state": {"cash": [{"address": "0000000000000000000000000000000000000001", "amount": 1}]}}`
	assert.Nil(t, ioutil.WriteFile(path, []byte(raw), 0600))

	gen, err := LoadGenesis(path)
	assert.Nil(t, err)
	assert.Equal(t, "test-chain", gen.ChainID)
	assert.Equal(t, 1, len(gen.AppState))

	_, err = LoadGenesis(filepath.Join(dir, "missing.json"))
	assert.IsErr(t, errors.ErrInvalidInput, err)

	assert.Nil(t, ioutil.WriteFile(path, []byte("{"), 0600))
	_, err = LoadGenesis(path)
	assert.IsErr(t, errors.ErrInvalidInput, err)
}

type recordingInit struct {
	called *[]string
	name   string
	err    error
}

func (r recordingInit) FromGenesis(opts revenue.Options, db revenue.KVStore) error {
	*r.called = append(*r.called, r.name)
	return r.err
}

func TestChainInitializers(t *testing.T) {
	var called []string
	init := ChainInitializers(
		recordingInit{called: &called, name: "first"},
		recordingInit{called: &called, name: "second", err: errors.ErrInvalidInput},
		recordingInit{called: &called, name: "third"},
	)
	err := init.FromGenesis(revenue.Options{}, store.MemStore())
	assert.IsErr(t, errors.ErrInvalidInput, err)
	assert.Equal(t, []string{"first", "second"}, called)
}

func TestChainID(t *testing.T) {
	db := store.MemStore()
	id, err := loadChainID(db)
	assert.Nil(t, err)
	assert.Equal(t, "", id)

	assert.IsErr(t, errors.ErrInvalidInput, saveChainID(db, "x"))
	assert.Nil(t, saveChainID(db, "test-chain"))
	assert.IsErr(t, errors.ErrUnauthorized, saveChainID(db, "other-chain"))

	id, err = loadChainID(db)
	assert.Nil(t, err)
	assert.Equal(t, "test-chain", id)
}
