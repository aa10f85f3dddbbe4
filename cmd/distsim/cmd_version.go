package main

import (
	"fmt"

	"github.com/retok/revenue"
	"github.com/spf13/cobra"
)

var cmdVersion = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run:   showVersion,
}

func init() {
	cmdMain.AddCommand(cmdVersion)
}

func showVersion(*cobra.Command, []string) {
	fmt.Printf("%s %s\n", cmdMain.Short, revenue.Version())
}
