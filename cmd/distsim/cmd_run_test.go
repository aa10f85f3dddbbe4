package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retok/revenue/revenuetest"
	"github.com/retok/revenue/x/distributor"
	"github.com/retok/revenue/x/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

func TestReplay(t *testing.T) {
	dir, err := ioutil.TempDir("", "distsim-")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	admin := revenuetest.NewAddress()
	alice := revenuetest.NewAddress()
	instanceID := revenuetest.SequenceID(1)
	instance := distributor.InstanceAddress(instanceID)
	token := snapshot.TokenAddress(revenuetest.SequenceID(1))

	genesis := fmt.Sprintf(`{
		"chain_id": "distsim",
		"app_state": {
			"access": {
				"members": [{"role": 0, "account": %[1]q}, {"role": 40, "account": %[2]q}],
				"functions": [
					{"target": %[3]q, "operations": ["snapshot"], "role": 40},
					{"target": %[2]q, "operations": ["withdraw"], "role": 18446744073709551615}
				]
			},
			"cash": [{"address": %[2]q, "amount": 12345000000}],
			"snapshot": {"tokens": [{"name": "Shares", "balances": [{"holder": %[4]q, "amount": 10}]}]},
			"distributor": {"instances": [{"token": 1}]}
		}
	}`, admin, instance, token, alice)
	id, err := json.Marshal(instanceID)
	require.NoError(t, err)
	script := fmt.Sprintf(`{"calls": [
		{"caller": %[1]q, "path": "distributor/add_income", "msg": {"distributor_id": %[3]s, "amount": 12345}},
		{"caller": %[2]q, "path": "distributor/withdraw", "msg": {"distributor_id": %[3]s}, "commit": true},
		{"caller": %[2]q, "path": "distributor/withdraw", "msg": {"distributor_id": %[3]s}}
	]}`, admin, alice, id)

	genesisPath := filepath.Join(dir, "genesis.json")
	scriptPath := filepath.Join(dir, "script.json")
	require.NoError(t, ioutil.WriteFile(genesisPath, []byte(genesis), 0600))
	require.NoError(t, ioutil.WriteFile(scriptPath, []byte(script), 0600))

	var out bytes.Buffer
	require.NoError(t, replay(&out, log.NewNopLogger(), genesisPath, scriptPath))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "#0 distributor/add_income")
	assert.Contains(t, lines[0], "data=1")
	assert.Contains(t, out.String(), "data=12345000000")
	assert.Contains(t, out.String(), "Action.path=distributor/withdraw")
	assert.Contains(t, out.String(), "commit version=1")
	assert.Contains(t, out.String(), "#2 distributor/withdraw")
	assert.Contains(t, out.String(), "no balance")
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "version=2 hash="), lines[len(lines)-1])
}

func TestReplayMissingFiles(t *testing.T) {
	var out bytes.Buffer
	err := replay(&out, log.NewNopLogger(), "/does/not/exist.json", "/does/not/exist.json")
	assert.Error(t, err)
	assert.Empty(t, out.String())
}
