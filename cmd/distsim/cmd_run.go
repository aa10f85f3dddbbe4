package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/retok/revenue/app"
	distsim "github.com/retok/revenue/cmd/distsim/app"
	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

var cmdRun = &cobra.Command{
	Use:   "run [genesis] [script]",
	Short: "Initialize the state from a genesis file and replay a script",
	Args:  cobra.ExactArgs(2),
	Run:   runScript,
}

var flagRun struct {
	DB          string
	StopOnError bool
}

func init() {
	cmdMain.AddCommand(cmdRun)

	cmdRun.Flags().StringVar(&flagRun.DB, "db", "", "Database path, the state is kept in memory if empty")
	cmdRun.Flags().BoolVar(&flagRun.StopOnError, "stop-on-error", false, "Stop at the first failed call")
}

func runScript(_ *cobra.Command, args []string) {
	logger, err := newLogger()
	checkf(err, "--log-level")
	check(replay(os.Stdout, logger, args[0], args[1]))
}

// replay initializes a fresh state and writes one line per call to out,
// followed by the hash of the final state.
func replay(out io.Writer, logger log.Logger, genesisPath, scriptPath string) error {
	gen, err := app.LoadGenesis(genesisPath)
	if err != nil {
		return err
	}
	script, err := distsim.LoadScript(scriptPath)
	if err != nil {
		return err
	}
	host, _, err := distsim.NewHost(flagRun.DB, logger)
	if err != nil {
		return err
	}
	if err := host.InitChain(gen); err != nil {
		return err
	}

	outcomes, err := distsim.Replay(host, script, flagRun.StopOnError)
	for i, o := range outcomes {
		printOutcome(out, i, o)
	}
	if err != nil {
		return err
	}

	id, err := host.Commit()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "version=%d hash=%X\n", id.Version, id.Hash)
	return nil
}

func printOutcome(out io.Writer, i int, o distsim.Outcome) {
	if o.Err != nil {
		fmt.Fprintf(out, "#%d %s caller=%s err=%q\n", i, o.Call.Path, o.Call.Caller, o.Err)
		return
	}
	fmt.Fprintf(out, "#%d %s caller=%s data=%s\n", i, o.Call.Path, o.Call.Caller, renderData(o.Result.Data))
	for _, tag := range o.Result.Tags {
		fmt.Fprintf(out, "    %s\n", renderTag(tag))
	}
	if o.Commit != nil {
		fmt.Fprintf(out, "    commit version=%d hash=%X\n", o.Commit.Version, o.Commit.Hash)
	}
}

func renderData(data interface{}) string {
	if data == nil {
		return "-"
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Sprint(data)
	}
	return string(raw)
}

func renderTag(tag common.KVPair) string {
	return fmt.Sprintf("%s=%s", tag.Key, tag.Value)
}
