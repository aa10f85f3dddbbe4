// Command distsim replays scripted calls against the revenue distribution
// extensions and prints the resulting events and state hash.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/libs/log"
)

var cmdMain = &cobra.Command{
	Use:   "distsim",
	Short: "Revenue distribution simulator",
	Run:   printUsageAndExit1,
}

var flagMain struct {
	LogLevel string
}

func init() {
	cmdMain.PersistentFlags().StringVar(&flagMain.LogLevel, "log-level", "error", "Log level: debug, info, error or none")
}

func main() {
	cmdMain.Execute()
}

// newLogger returns a logger writing to stderr, filtered by the log level
// flag.
func newLogger() (log.Logger, error) {
	opt, err := log.AllowLevel(flagMain.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stderr)).With("module", "distsim")
	return log.NewFilter(logger, opt), nil
}

func printUsageAndExit1(cmd *cobra.Command, args []string) {
	_ = cmd.Usage()
	os.Exit(1)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func check(err error) {
	if err != nil {
		fatalf("%v", err)
	}
}

func checkf(err error, format string, otherArgs ...interface{}) {
	if err != nil {
		fatalf(format+": %v", append(otherArgs, err)...)
	}
}
